package cli

import (
	"fmt"
	"sort"

	"github.com/okian/studypath/internal/loadtest"
	"github.com/spf13/cobra"
)

func newLoadtestCommand() *cobra.Command {
	cfg := loadtest.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "loadtest",
		Short: "Submit generated students to a running server and verify the reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := loadtest.Run(cmd.Context(), cfg)
			if stats != nil {
				printStats(cmd, stats)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "base URL of the service")
	cmd.Flags().IntVar(&cfg.Students, "students", cfg.Students, "number of students to generate")
	cmd.Flags().IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "maximum in-flight requests")
	cmd.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP request timeout")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", 0, "mark generator seed (0 picks one)")
	cmd.Flags().BoolVar(&cfg.Verbose, "verbose", false, "log every failed submission")

	return cmd
}

func printStats(cmd *cobra.Command, stats *loadtest.Stats) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "students:   %d\n", stats.StudentsGenerated)
	fmt.Fprintf(out, "submitted:  %d\n", stats.Submitted)
	fmt.Fprintf(out, "successful: %d\n", stats.Successful)
	fmt.Fprintf(out, "rejected:   %d\n", stats.Rejected)
	fmt.Fprintf(out, "failed:     %d\n", stats.Failed)
	fmt.Fprintf(out, "violations: %d\n", stats.Violations)
	fmt.Fprintf(out, "duration:   %s\n", stats.Duration)

	bands := make([]string, 0, len(stats.Performance))
	for band := range stats.Performance {
		bands = append(bands, band)
	}
	sort.Strings(bands)
	for _, band := range bands {
		fmt.Fprintf(out, "  %-18s %d\n", band+":", stats.Performance[band])
	}
}
