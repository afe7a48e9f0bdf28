package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/inodb/vibe-allele/internal/variant"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <major> <minor>",
		Short: "Print a plain-language description of an allele pair",
		Long: `Print whether an allele pair is an SNP and, for bi-allelic pairs,
whether it is a transition. N is accepted as a base for the SNP line.`,
		Example: `  vibe-allele describe A G
  vibe-allele describe A N`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(os.Stdout, args)
		},
	}
}

func runDescribe(w io.Writer, pair []string) error {
	lines, err := variant.Describe(pair)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}
