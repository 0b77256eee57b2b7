package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ecom-dashboard/internal/export"
	"ecom-dashboard/internal/generator"
	"ecom-dashboard/internal/services"
)

type exportOptions struct {
	months   int
	seed     uint64
	from     string
	to       string
	category string
	region   string
	out      string
}

func newExportCommand() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate the dataset, apply filters, and write the CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.months, "months", 9, "generation window in months (30 days each)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 42, "generator seed")
	cmd.Flags().StringVar(&opts.from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&opts.to, "to", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&opts.category, "category", services.FilterAll, "category filter")
	cmd.Flags().StringVar(&opts.region, "region", services.FilterAll, "region filter")
	cmd.Flags().StringVar(&opts.out, "out", "", "output file (default stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, opts *exportOptions) error {
	f := services.Filter{
		Category: opts.category,
		Region:   opts.region,
	}

	var err error
	if opts.from != "" {
		if f.From, err = time.Parse("2006-01-02", opts.from); err != nil {
			return fmt.Errorf("parsing --from %q: %w", opts.from, err)
		}
	}
	if opts.to != "" {
		if f.To, err = time.Parse("2006-01-02", opts.to); err != nil {
			return fmt.Errorf("parsing --to %q: %w", opts.to, err)
		}
	}

	dataset := generator.Generate(opts.months, opts.seed)
	res := services.Apply(dataset, f)

	var out io.Writer = cmd.OutOrStdout()
	if opts.out != "" {
		file, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", opts.out, err)
		}
		defer file.Close()
		out = file
	}

	if err := export.WriteSales(out, res.Rows); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d of %d rows\n", len(res.Rows), len(dataset))
	return nil
}
