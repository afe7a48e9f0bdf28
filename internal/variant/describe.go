package variant

import (
	"errors"
	"fmt"
)

// ErrPairLength is returned by Describe when the input is not a pair.
var ErrPairLength = errors.New("allele pair must have exactly two elements")

const (
	lineSNP          = "This is an SNP"
	lineNotSNP       = "This is not an SNP"
	lineBiallelic    = "This is a bi-allelic variant"
	lineTransition   = "This is a transition"
	lineNoTransition = "This is not a transition"
)

// Describe returns a human-readable classification of an allele pair.
//
// The SNP line accepts N as a base here, unlike Variant.IsSNP. The
// transition line is only reported for biallelic pairs.
func Describe(pair []string) ([]string, error) {
	if len(pair) != 2 {
		return nil, fmt.Errorf("describe %v: %w", pair, ErrPairLength)
	}

	v := New(pair[0], pair[1])
	snp := v.IsSingleBase(v.Major) && v.IsSingleBase(v.Minor)
	return v.lines(snp), nil
}

// Info returns the same lines as Describe using the variant's own SNP rule.
func (v Variant) Info() []string {
	return v.lines(v.IsSNP())
}

func (v Variant) lines(snp bool) []string {
	lines := make([]string, 0, 3)
	if snp {
		lines = append(lines, lineSNP)
	} else {
		lines = append(lines, lineNotSNP)
	}

	if !v.IsBiallelic() {
		return lines
	}
	lines = append(lines, lineBiallelic)
	if v.IsTransition() {
		lines = append(lines, lineTransition)
	} else {
		lines = append(lines, lineNoTransition)
	}
	return lines
}
