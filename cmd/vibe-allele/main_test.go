package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-allele/internal/classify"
	"github.com/inodb/vibe-allele/internal/variant"
)

// isolate points config lookups at an empty temporary home.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	cfgFile = ""
	t.Cleanup(viper.Reset)
	return home
}

func TestRun_ExitCodes(t *testing.T) {
	isolate(t)
	out := filepath.Join(t.TempDir(), "out.tsv")

	assert.Equal(t, ExitSuccess, run([]string{"check"}))
	assert.Equal(t, ExitSuccess, run([]string{"classify", "-o", out, "A>G", "C/T"}))
	assert.Equal(t, ExitUsage, run([]string{"describe", "A"}))
	assert.Equal(t, ExitUsage, run([]string{"classify"}))
	assert.Equal(t, ExitUsage, run([]string{"frobnicate"}))
	assert.Equal(t, ExitUsage, run([]string{"classify", "--bogus", "A>G"}))
	assert.Equal(t, ExitError, run([]string{"classify", "-o", out, "AG"}))
}

func TestRunClassify_WritesFile(t *testing.T) {
	isolate(t)
	out := filepath.Join(t.TempDir(), "out.tsv")

	require.NoError(t, runClassify([]string{"A>G", "A,CGT"}, out, true))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t,
		"#Variant\tMajor\tMinor\tSNP\tBiallelic\tTransition\tTransversion\n"+
			"A>G\tA\tG\tYES\tYES\tYES\tNO\n"+
			"A>CGT\tA\tCGT\tNO\tYES\tNO\tYES\n",
		string(data))
}

func TestWriteClassifications_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeClassifications(&buf, []variant.Variant{variant.New("A", "A")}, false))
	assert.Equal(t, "A>A\tA\tA\tYES\tNO\tNO\tYES\n", buf.String())
}

func TestRunDescribe(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runDescribe(&buf, []string{"A", "G"}))
	assert.Equal(t, "This is an SNP\nThis is a bi-allelic variant\nThis is a transition\n", buf.String())
}

func TestRunCheck(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runCheck(&buf, variant.ReferenceScenarios()))
	assert.Equal(t, "success\n", buf.String())
}

func TestRunCheck_Failure(t *testing.T) {
	scenarios := variant.ReferenceScenarios()
	scenarios[1].Want.Transition = true

	var buf bytes.Buffer
	err := runCheck(&buf, scenarios)
	require.Error(t, err)
	assert.True(t, classify.IsMismatch(err))
	assert.Contains(t, buf.String(), "FAIL transversion (A>T): IsTransition() = false, want true")
	assert.NotContains(t, buf.String(), "success")
}

func TestConfig_SetAndGet(t *testing.T) {
	home := isolate(t)

	require.NoError(t, runConfigSet("output.no_header", "yes"))
	_, err := os.Stat(filepath.Join(home, ".vibe-allele.yaml"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, runConfigGet(&buf, "output.no_header"))
	assert.Equal(t, "true\n", buf.String())

	buf.Reset()
	require.NoError(t, runConfigShow(&buf))
	assert.Contains(t, buf.String(), "no_header: true")

	assert.Error(t, runConfigGet(&buf, "missing.key"))
}
