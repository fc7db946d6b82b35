package cli

import (
	"github.com/projtools/projtools/internal/doctor"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the tools generated projects need are installed",
	Long:  `Check that make, npm, node, python3 and pip are on PATH. Missing tools are reported but are not an error.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := doctor.Run(cmd.OutOrStdout(), doctor.Tools, nil)
		out.Logger().Debug("doctor finished", "found", len(rep.Found), "missing", len(rep.Missing))
		return nil
	},
}
