package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	ztklog "github.com/msto63/ztk/foundation/core/log"
	"github.com/msto63/ztk/foundation/core/validation"
	"github.com/msto63/ztk/foundation/utils/slicex"
	"github.com/msto63/ztk/internal/tui"
)

// errCheckFailed makes the process exit non-zero after a failed check was
// already printed
var errCheckFailed = fmt.Errorf("check failed")

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

// printResult renders a validation result and reports failure as an error
func printResult(cmd *cobra.Command, subject string, result validation.ValidationResult) error {
	w := out(cmd)
	if result.Valid {
		fmt.Fprintln(w, tui.RenderPass(subject))
		return nil
	}
	for _, e := range result.Errors {
		fmt.Fprintln(w, tui.RenderFail(e.Code, e.Message))
	}
	current.logger.Debug("check failed", ztklog.Fields{"subject": subject, "reason": result.ReasonCode()})
	return errCheckFailed
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(out(cmd))
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// flagString returns a pointer to the flag value when it was set explicitly
func flagString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func flagInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func flagBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func flagFloat(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

// flagList splits a comma separated flag; unset flags yield nil
func flagList(cmd *cobra.Command, name string) []string {
	s := flagString(cmd, name)
	if s == nil {
		return nil
	}
	return splitComma(*s)
}

func splitComma(s string) []string {
	return slicex.Compact(slicex.Map(strings.Split(s, ","), strings.TrimSpace))
}
