package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/vibe-allele/internal/classify"
	"github.com/inodb/vibe-allele/internal/output"
	"github.com/inodb/vibe-allele/internal/variant"
)

// usageArgs marks positional argument errors as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n\n%s", err, cmd.UsageString())
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return nil
	}
}

func newClassifyCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "classify <pair>...",
		Short: "Classify allele pairs and print a tab-delimited table",
		Long:  "Each pair is written as MAJOR>MINOR, MAJOR/MINOR or MAJOR,MINOR.",
		Example: `  vibe-allele classify A>G A/T A,N
  vibe-allele classify --no-header -o out.tsv C>T`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(args, outputFile, !viper.GetBool("output.no_header"))
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().Bool("no-header", false, "Do not write the header line")
	_ = viper.BindPFlag("output.no_header", cmd.Flags().Lookup("no-header"))

	return cmd
}

func runClassify(tokens []string, outputFile string, header bool) error {
	vs := make([]variant.Variant, 0, len(tokens))
	for _, tok := range tokens {
		v, err := variant.ParsePair(tok)
		if err != nil {
			return err
		}
		vs = append(vs, v)
	}

	var out io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return writeClassifications(out, vs, header)
}

func writeClassifications(out io.Writer, vs []variant.Variant, header bool) error {
	c := classify.New()
	c.SetLogger(logger)

	writer := output.NewTabWriter(out)
	if header {
		if err := writer.WriteHeader(); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	return c.ClassifyAll(vs, writer)
}
