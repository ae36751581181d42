// Package cli implements the studentctl command line.
package cli

import (
	"fmt"

	"github.com/okian/studypath/pkg/logger"
	"github.com/spf13/cobra"
)

// Output formats accepted by --output.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// NewRootCommand builds the studentctl command tree.
func NewRootCommand() *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)

	root := &cobra.Command{
		Use:   "studentctl",
		Short: "Analyse student marks offline or load test a studypath server",
		Long: "studentctl runs the studypath analysis pipeline locally: gap analysis, " +
			"weekly study plan and career suggestions for one student.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Init(logger.WithFormat(logFormat), logger.WithOutput(cmd.ErrOrStderr())); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			return logger.SetLevelString(logLevel)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", logger.FormatText, "log format (text, json)")

	root.AddCommand(newAnalyzeCommand())
	root.AddCommand(newDemoCommand())
	root.AddCommand(newCareersCommand())
	root.AddCommand(newLoadtestCommand())

	return root
}
