package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	toolkit "github.com/msto63/ztk/foundation/core/config"
	"github.com/msto63/ztk/internal/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the toolkit configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective toolkit configuration as JSON",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the effective toolkit configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigCheck,
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the locations searched for a toolkit file",
	Args:  cobra.NoArgs,
	RunE:  runConfigPaths,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configCheckCmd, configPathsCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	return printJSON(cmd, current.store.Current())
}

func runConfigCheck(cmd *cobra.Command, args []string) error {
	subject := current.toolkit
	if subject == "" {
		subject = "toolkit configuration"
	}
	return printResult(cmd, subject, toolkit.Check(current.store.Current()))
}

func runConfigPaths(cmd *cobra.Command, args []string) error {
	w := out(cmd)
	if current.app.Path != "" {
		fmt.Fprintln(w, tui.RenderField("cli config", current.app.Path))
	}
	if current.toolkit != "" {
		fmt.Fprintln(w, tui.RenderField("toolkit file", current.toolkit))
	}
	for _, path := range toolkit.ListPossibleConfigFiles(toolkit.DefaultDiscoveryOptions()) {
		fmt.Fprintln(w, path)
	}
	return nil
}
