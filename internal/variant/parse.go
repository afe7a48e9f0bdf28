package variant

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedPair is returned when a token cannot be split into two alleles.
var ErrMalformedPair = errors.New("malformed allele pair")

const pairSeparators = ">/,"

// ParsePair parses a token such as "A>G", "A/G" or "A,G" into a Variant.
// Exactly one separator must appear. Whitespace around each allele is
// trimmed; case is preserved.
func ParsePair(token string) (Variant, error) {
	token = strings.TrimSpace(token)

	switch strings.Count(token, ">") + strings.Count(token, "/") + strings.Count(token, ",") {
	case 0:
		return Variant{}, fmt.Errorf("parse %q: no separator: %w", token, ErrMalformedPair)
	case 1:
	default:
		return Variant{}, fmt.Errorf("parse %q: multiple separators: %w", token, ErrMalformedPair)
	}

	i := strings.IndexAny(token, pairSeparators)
	return New(strings.TrimSpace(token[:i]), strings.TrimSpace(token[i+1:])), nil
}
