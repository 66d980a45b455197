package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/ztk/foundation/core/lookup"
	"github.com/msto63/ztk/foundation/utils/mapx"
	"github.com/msto63/ztk/internal/tui"
)

var stripeCmd = &cobra.Command{
	Use:   "stripe [code...]",
	Short: "Look up Stripe messages",
	Long: `Prints the user-facing message for Stripe codes. Without codes the
known codes of the table are listed.

Tables: error, requirement, disabled

Examples:
  ztk stripe card_declined
  ztk stripe --table disabled rejected.fraud
  ztk stripe --table requirement`,
	RunE: runStripe,
}

var headersCmd = &cobra.Command{
	Use:   "headers",
	Short: "List the well-known HTTP header keys",
	Args:  cobra.NoArgs,
	RunE:  runHeaders,
}

func init() {
	rootCmd.AddCommand(stripeCmd, headersCmd)

	stripeCmd.Flags().String("table", string(lookup.TableErrorCodes), "error, requirement or disabled")
}

func runStripe(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("table")
	table := lookup.Table(name)
	switch table {
	case lookup.TableErrorCodes, lookup.TableRequirements, lookup.TableDisabled:
	default:
		return fmt.Errorf("unknown table %q", name)
	}

	w := out(cmd)
	if len(args) == 0 {
		for _, code := range lookup.Codes(table) {
			fmt.Fprintln(w, code)
		}
		return nil
	}
	for _, code := range args {
		fmt.Fprintln(w, tui.RenderField(code, lookup.Message(table, code)))
	}
	return nil
}

func runHeaders(cmd *cobra.Command, args []string) error {
	keys := lookup.HeaderKeys()
	for _, name := range mapx.SortedKeys(keys) {
		fmt.Fprintln(out(cmd), tui.RenderField(name, keys[name]))
	}
	return nil
}
