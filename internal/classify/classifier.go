// Package classify runs allele pairs through the variant predicates.
package classify

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/inodb/vibe-allele/internal/variant"
)

// ResultWriter defines the interface for writing classifications.
type ResultWriter interface {
	WriteHeader() error
	Write(v variant.Variant, c variant.Classification) error
	Flush() error
}

// Classifier classifies variants and reports unusual allele calls.
type Classifier struct {
	logger *zap.Logger
}

// New creates a classifier that logs nothing.
func New() *Classifier {
	return &Classifier{
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for warning and debug messages.
func (c *Classifier) SetLogger(l *zap.Logger) {
	c.logger = l
}

// Classify classifies a single variant. Alleles outside the single-base
// alphabet are logged but do not change the result.
func (c *Classifier) Classify(v variant.Variant) variant.Classification {
	for _, allele := range []string{v.Major, v.Minor} {
		switch {
		case allele == variant.Unknown:
			c.logger.Warn("unknown allele call", zap.Stringer("variant", v))
		case !v.IsSingleBase(allele):
			c.logger.Warn("allele is not a single base",
				zap.Stringer("variant", v),
				zap.String("allele", allele))
		}
	}

	res := v.Classify()
	c.logger.Debug("classified variant",
		zap.Stringer("variant", v),
		zap.Bool("snp", res.SNP),
		zap.Bool("biallelic", res.Biallelic),
		zap.Bool("transition", res.Transition),
		zap.Bool("transversion", res.Transversion))
	return res
}

// ClassifyAll classifies every variant and writes one row per variant.
// The caller is responsible for writing the header.
func (c *Classifier) ClassifyAll(vs []variant.Variant, writer ResultWriter) error {
	for _, v := range vs {
		if err := writer.Write(v, c.Classify(v)); err != nil {
			return fmt.Errorf("write classification %s: %w", v, err)
		}
	}

	if len(vs) == 0 {
		c.logger.Info("0 variants processed")
	}

	return writer.Flush()
}

// Mismatch is one predicate that disagreed with its expected value.
type Mismatch struct {
	Scenario  string
	Variant   variant.Variant
	Predicate string
	Got       bool
	Want      bool
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("%s (%s): %s() = %v, want %v", m.Scenario, m.Variant, m.Predicate, m.Got, m.Want)
}

// MismatchError collects every failed expectation from Check.
type MismatchError struct {
	Mismatches []Mismatch
}

func (e *MismatchError) Error() string {
	msgs := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		msgs[i] = m.Error()
	}
	return fmt.Sprintf("%d mismatches: %s", len(e.Mismatches), strings.Join(msgs, "; "))
}

// Unwrap exposes each mismatch to errors.Is and errors.As.
func (e *MismatchError) Unwrap() []error {
	errs := make([]error, len(e.Mismatches))
	for i, m := range e.Mismatches {
		errs[i] = m
	}
	return errs
}

// Check verifies each scenario and returns a *MismatchError if any
// predicate disagrees with the expected classification.
func (c *Classifier) Check(scenarios []variant.Scenario) error {
	var mismatches []Mismatch
	for _, s := range scenarios {
		got := c.Classify(s.Variant)
		for _, p := range []struct {
			name      string
			got, want bool
		}{
			{"IsTransition", got.Transition, s.Want.Transition},
			{"IsTransversion", got.Transversion, s.Want.Transversion},
			{"IsSNP", got.SNP, s.Want.SNP},
			{"IsBiallelic", got.Biallelic, s.Want.Biallelic},
		} {
			if p.got != p.want {
				mismatches = append(mismatches, Mismatch{
					Scenario:  s.Name,
					Variant:   s.Variant,
					Predicate: p.name,
					Got:       p.got,
					Want:      p.want,
				})
			}
		}
	}

	if len(mismatches) == 0 {
		return nil
	}
	err := &MismatchError{Mismatches: mismatches}
	c.logger.Error("scenario check failed", zap.Int("mismatches", len(mismatches)))
	return err
}

// IsMismatch reports whether err came from a failed Check.
func IsMismatch(err error) bool {
	var me *MismatchError
	return errors.As(err, &me)
}
