package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/scrub/pkg/pipeline"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List the registered pipeline steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range pipeline.NewRegistry().Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}
