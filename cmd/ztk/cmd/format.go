package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	toolkit "github.com/msto63/ztk/foundation/core/config"
	ztklog "github.com/msto63/ztk/foundation/core/log"
	"github.com/msto63/ztk/foundation/core/options"
	"github.com/msto63/ztk/foundation/utils/mathx"
	"github.com/msto63/ztk/foundation/utils/timex"
	"github.com/msto63/ztk/internal/tui/countdown"
)

var currencyCmd = &cobra.Command{
	Use:   "currency <amount>",
	Short: "Format an amount of money",
	Long: `Formats an amount with the configured currency settings.

Examples:
  ztk currency 1234.5
  ztk currency --code EUR --locale de-DE -- -1234.5
  ztk currency --symbol CHF --parentheses -- -20`,
	Args: cobra.ExactArgs(1),
	RunE: runCurrency,
}

var dateCmd = &cobra.Command{
	Use:   "date [timestamp]",
	Short: "Format a date",
	Long: `Formats a timestamp (default: now). Named formats are iso, time,
datetime, kitchen, compact, log, display and short; anything else is a Go
layout.

Examples:
  ztk date --format display 2025-03-14T15:09:26Z
  ztk date --format short --locale de-DE --timezone Europe/Berlin 1741964966`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDate,
}

var countdownCmd = &cobra.Command{
	Use:   "countdown <target>",
	Short: "Show the time remaining until a target",
	Long: `Shows the time remaining until target, a timestamp or, with --in, a
duration from now.

Examples:
  ztk countdown 2026-12-24T18:00:00Z
  ztk countdown --in "2 days" --format short --max-units 2
  ztk countdown --in 90s --live`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCountdown,
}

func init() {
	rootCmd.AddCommand(currencyCmd, dateCmd, countdownCmd)

	currencyCmd.Flags().String("code", "", "ISO 4217 currency code")
	currencyCmd.Flags().String("symbol", "", "currency symbol")
	currencyCmd.Flags().String("position", "", "symbol position: before or after")
	currencyCmd.Flags().Int("decimals", 2, "decimal places")
	currencyCmd.Flags().String("decimal-separator", "", "decimal separator")
	currencyCmd.Flags().String("thousands-separator", "", "thousands separator")
	currencyCmd.Flags().Bool("space", false, "space between symbol and amount")
	currencyCmd.Flags().String("locale", "", "locale for separators")
	currencyCmd.Flags().Bool("parentheses", false, "wrap negative amounts in parentheses")

	dateCmd.Flags().String("format", "", "named format or Go layout")
	dateCmd.Flags().String("timezone", "", "IANA time zone")
	dateCmd.Flags().String("locale", "", "locale for the short format")

	countdownCmd.Flags().String("in", "", "duration from now instead of a target")
	countdownCmd.Flags().String("format", "", "short, long or custom")
	countdownCmd.Flags().Bool("show-zeros", false, "keep leading zero units")
	countdownCmd.Flags().Int("max-units", 4, "maximum number of units")
	countdownCmd.Flags().String("separator", "", "unit separator")
	countdownCmd.Flags().String("expired", "", "label for a passed target")
	countdownCmd.Flags().Bool("live", false, "show a live view until the target passes")
}

func runCurrency(cmd *cobra.Command, args []string) error {
	amount, err := mathx.NewDecimal(args[0])
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}

	var layers []mathx.CurrencyOptions
	if code := flagString(cmd, "code"); code != nil {
		currency, ok := mathx.GetCurrency(*code)
		if !ok {
			return fmt.Errorf("unknown currency code %q", *code)
		}
		layers = append(layers, currency.Options())
	}

	opts := mathx.CurrencyOptions{
		Symbol:                flagString(cmd, "symbol"),
		Decimals:              flagInt(cmd, "decimals"),
		DecimalSeparator:      flagString(cmd, "decimal-separator"),
		ThousandsSeparator:    flagString(cmd, "thousands-separator"),
		IncludeSpace:          flagBool(cmd, "space"),
		Locale:                flagString(cmd, "locale"),
		NegativeInParentheses: flagBool(cmd, "parentheses"),
	}
	if p := flagString(cmd, "position"); p != nil {
		opts.SymbolPosition = options.Of(mathx.SymbolPosition(*p))
	}
	layers = append(layers, opts)

	formatted, err := mathx.FormatDecimal(amount, layers...)
	if err != nil {
		return err
	}
	fmt.Fprintln(out(cmd), formatted)
	return nil
}

func runDate(cmd *cobra.Command, args []string) error {
	t := time.Now()
	if len(args) == 1 {
		parsed, err := timex.Parse(args[0], nil)
		if err != nil {
			return err
		}
		t = parsed
	}

	formatted, err := timex.FormatDate(t, timex.DateFormatOptions{
		Format:   flagString(cmd, "format"),
		Timezone: flagString(cmd, "timezone"),
		Locale:   flagString(cmd, "locale"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out(cmd), formatted)
	return nil
}

func runCountdown(cmd *cobra.Command, args []string) error {
	now := time.Now()
	var target time.Time
	switch {
	case cmd.Flags().Changed("in"):
		in, _ := cmd.Flags().GetString("in")
		d, err := timex.ParseDuration(in)
		if err != nil {
			return err
		}
		target = now.Add(d)
	case len(args) == 1:
		t, err := timex.Parse(args[0], nil)
		if err != nil {
			return err
		}
		target = t
	default:
		return fmt.Errorf("a target or --in is required")
	}

	opts := timex.CountdownOptions{
		ShowZeros:    flagBool(cmd, "show-zeros"),
		MaxUnits:     flagInt(cmd, "max-units"),
		Separator:    flagString(cmd, "separator"),
		ExpiredLabel: flagString(cmd, "expired"),
	}
	format := current.app.Countdown.Format
	if f := flagString(cmd, "format"); f != nil {
		format = *f
	}
	opts.Format = options.Of(timex.CountdownFormat(strings.ToLower(format)))

	if live, _ := cmd.Flags().GetBool("live"); live {
		return runLiveCountdown(cmd, target, now, opts)
	}

	remaining, err := timex.RemainingTime(target, now, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(out(cmd), remaining)
	return nil
}

func runLiveCountdown(cmd *cobra.Command, target, start time.Time, opts timex.CountdownOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if current.app.General.Watch && current.toolkit != "" {
		err := toolkit.Watch(ctx, current.toolkit, current.store, toolkit.WatchOptions{
			LoadOptions: toolkit.LoadOptions{EnvPrefix: "ZTK"},
			OnReload: func(toolkit.GlobalConfig) {
				current.logger.Debug("toolkit file reloaded", ztklog.Fields{"path": current.toolkit})
			},
			OnError: func(err error) {
				current.logger.WarnWithErr("toolkit reload failed", err)
			},
		})
		if err != nil {
			return fmt.Errorf("watch toolkit file: %w", err)
		}
	}

	cfg := countdown.DefaultConfig(target)
	cfg.Title = fmt.Sprintf("Countdown to %s", target.Local().Format(timex.BusinessDateTime))
	cfg.Options = opts
	cfg.Start = start
	cfg.Refresh = current.app.Countdown.Refresh.Duration
	cfg.ExitOnExpire = true

	_, err := countdown.Run(cfg,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(out(cmd)),
	)
	if err != nil && !stderrors.Is(err, tea.ErrProgramKilled) && !stderrors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
