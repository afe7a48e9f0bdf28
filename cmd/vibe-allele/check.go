package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/inodb/vibe-allele/internal/classify"
	"github.com/inodb/vibe-allele/internal/variant"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the classifier against the reference scenarios",
		Long:  "Runs every reference scenario and prints \"success\" if all predicates agree.",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(os.Stdout, variant.ReferenceScenarios())
		},
	}
}

func runCheck(w io.Writer, scenarios []variant.Scenario) error {
	c := classify.New()
	c.SetLogger(logger)

	if err := c.Check(scenarios); err != nil {
		var me *classify.MismatchError
		if errors.As(err, &me) {
			for _, m := range me.Mismatches {
				fmt.Fprintf(w, "FAIL %s\n", m.Error())
			}
		}
		return err
	}

	fmt.Fprintln(w, "success")
	return nil
}
