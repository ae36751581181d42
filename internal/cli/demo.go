package cli

import (
	"github.com/spf13/cobra"
)

func newDemoCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Analyse the built-in demo student",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validOutput(output); err != nil {
				return err
			}
			svc, err := newService(cmd, false)
			if err != nil {
				return err
			}
			report, err := svc.Demo(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, report)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", OutputJSON, "output format (json, yaml)")

	return cmd
}

func newCareersCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "careers",
		Short: "Print the subject to careers table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validOutput(output); err != nil {
				return err
			}
			svc, err := newService(cmd, false)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, svc.CareerMap())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", OutputJSON, "output format (json, yaml)")

	return cmd
}
