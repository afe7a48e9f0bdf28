// Package output provides classification output formatters.
package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/inodb/vibe-allele/internal/variant"
)

// TabWriter writes classifications in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Variant",
			"Major",
			"Minor",
			"SNP",
			"Biallelic",
			"Transition",
			"Transversion",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single classification.
func (tw *TabWriter) Write(v variant.Variant, c variant.Classification) error {
	values := []string{
		v.String(),
		allele(v.Major),
		allele(v.Minor),
		yesNo(c.SNP),
		yesNo(c.Biallelic),
		yesNo(c.Transition),
		yesNo(c.Transversion),
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

func allele(a string) string {
	if a == "" {
		return "-"
	}
	return a
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
