package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/ztk/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(out(cmd), version.Current().String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
