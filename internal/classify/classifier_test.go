package classify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/inodb/vibe-allele/internal/variant"
)

// recordingWriter keeps every row in memory.
type recordingWriter struct {
	rows     []variant.Variant
	results  []variant.Classification
	flushed  bool
	writeErr error
}

func (w *recordingWriter) WriteHeader() error { return nil }

func (w *recordingWriter) Write(v variant.Variant, c variant.Classification) error {
	if w.writeErr != nil {
		return w.writeErr
	}
	w.rows = append(w.rows, v)
	w.results = append(w.results, c)
	return nil
}

func (w *recordingWriter) Flush() error {
	w.flushed = true
	return nil
}

func TestClassifier_ClassifyAll(t *testing.T) {
	c := New()
	w := &recordingWriter{}

	vs := []variant.Variant{variant.New("A", "G"), variant.New("C", "A")}
	require.NoError(t, c.ClassifyAll(vs, w))

	assert.Equal(t, vs, w.rows)
	require.Len(t, w.results, 2)
	assert.True(t, w.results[0].Transition)
	assert.True(t, w.results[1].Transversion)
	assert.True(t, w.flushed)
}

func TestClassifier_ClassifyAll_WriteError(t *testing.T) {
	c := New()
	boom := errors.New("disk full")
	w := &recordingWriter{writeErr: boom}

	err := c.ClassifyAll([]variant.Variant{variant.New("A", "G")}, w)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "A>G")
	assert.False(t, w.flushed)
}

func TestClassifier_ClassifyAll_Empty(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c := New()
	c.SetLogger(zap.New(core))

	w := &recordingWriter{}
	require.NoError(t, c.ClassifyAll(nil, w))
	assert.True(t, w.flushed)
	assert.Equal(t, 1, logs.FilterMessage("0 variants processed").Len())
}

func TestClassifier_Classify_WarnsOnUnusualAlleles(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := New()
	c.SetLogger(zap.New(core))

	got := c.Classify(variant.New("A", "N"))
	assert.Equal(t, variant.New("A", "N").Classify(), got)
	assert.Equal(t, 1, logs.FilterMessage("unknown allele call").Len())

	c.Classify(variant.New("A", "CGT"))
	entries := logs.FilterMessage("allele is not a single base").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "CGT", entries[0].ContextMap()["allele"])

	before := logs.Len()
	c.Classify(variant.New("C", "T"))
	assert.Equal(t, before, logs.Len(), "canonical bases should not warn")
}

func TestClassifier_Check_ReferenceScenarios(t *testing.T) {
	c := New()
	assert.NoError(t, c.Check(variant.ReferenceScenarios()))
}

func TestClassifier_Check_Mismatch(t *testing.T) {
	c := New()
	scenarios := []variant.Scenario{
		{
			Name:    "wrong",
			Variant: variant.New("A", "G"),
			Want:    variant.Classification{SNP: true, Biallelic: true, Transition: false, Transversion: true},
		},
	}

	err := c.Check(scenarios)
	require.Error(t, err)
	assert.True(t, IsMismatch(err))

	var me *MismatchError
	require.ErrorAs(t, err, &me)
	require.Len(t, me.Mismatches, 2)
	assert.Equal(t, "IsTransition", me.Mismatches[0].Predicate)
	assert.Equal(t, "IsTransversion", me.Mismatches[1].Predicate)

	var m Mismatch
	require.ErrorAs(t, err, &m)
	assert.Equal(t, "wrong", m.Scenario)
	assert.Contains(t, err.Error(), "2 mismatches")
}
