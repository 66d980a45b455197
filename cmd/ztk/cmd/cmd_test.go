package cmd

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	toolkit "github.com/msto63/ztk/foundation/core/config"
	ztklog "github.com/msto63/ztk/foundation/core/log"
	appconfig "github.com/msto63/ztk/pkg/core/config"
)

// run executes the root command with args in an empty home and working
// directory and returns what it printed on stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	t.Setenv(appconfig.EnvConfigPath, "")
	prevWD, wdErr := os.Getwd()
	if wdErr != nil {
		t.Fatal(wdErr)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	prevStore := toolkit.Default()
	prevLogger := ztklog.GetDefault()
	t.Cleanup(func() {
		toolkit.SetDefault(prevStore)
		ztklog.SetDefault(prevLogger)
		current = nil
	})

	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

// resetFlags restores every flag to its default; cobra keeps parsed values
// between executions
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTruncateCommand(t *testing.T) {
	got, err := run(t, "truncate", "--length", "5", "Hello", "world")
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
	if got != "Hello...\n" {
		t.Errorf("truncate = %q, want %q", got, "Hello...\n")
	}

	got, err = run(t, "truncate", "--length", "5", "--position", "start", "Hello world")
	if err != nil {
		t.Fatalf("truncate --position start: %v", err)
	}
	if got != "...world\n" {
		t.Errorf("truncate --position start = %q", got)
	}
}

func TestTruncateCommandInvalidLength(t *testing.T) {
	if _, err := run(t, "truncate", "--length", "0", "Hello"); err == nil {
		t.Error("truncate --length 0 should fail")
	}
}

func TestTitlecaseCommand(t *testing.T) {
	got, err := run(t, "titlecase", "--upper", "api", "the api docs")
	if err != nil {
		t.Fatalf("titlecase: %v", err)
	}
	if got != "The API Docs\n" {
		t.Errorf("titlecase = %q", got)
	}
}

func TestRegexCommand(t *testing.T) {
	got, err := run(t, "regex", "--flags", "gi", "o+", "fOo boo", "xyz")
	if err != nil {
		t.Fatalf("regex: %v", err)
	}
	if !strings.Contains(got, "/o+/gi") {
		t.Errorf("regex output lacks the expression: %q", got)
	}
	if !strings.Contains(got, `["Oo" "oo"]`) {
		t.Errorf("regex output lacks the matches: %q", got)
	}
	if !strings.Contains(got, "no match") {
		t.Errorf("regex output lacks the miss: %q", got)
	}

	if _, err := run(t, "regex", "--flags", "x", "a"); err == nil {
		t.Error("unknown regex flag should fail")
	}
}

func TestCodeCommand(t *testing.T) {
	got, err := run(t, "code", "--length", "8", "--segments", "4,4", "--prefix", "INV-", "--count", "3")
	if err != nil {
		t.Fatalf("code: %v", err)
	}
	lines := strings.Fields(got)
	if len(lines) != 3 {
		t.Fatalf("code printed %d codes, want 3: %q", len(lines), got)
	}
	for _, code := range lines {
		if !strings.HasPrefix(code, "INV-") || len(code) != len("INV-")+9 {
			t.Errorf("unexpected code %q", code)
		}
	}
}

func TestCurrencyCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"currency", "1234.5"}, "$1,234.50\n"},
		{[]string{"currency", "98765432109876543210.125"}, "$98,765,432,109,876,543,210.13\n"},
		{[]string{"currency", "--parentheses", "--", "-42"}, "($42.00)\n"},
		{[]string{"currency", "--code", "JPY", "1234.5"}, "¥1,235\n"},
		{[]string{"currency", "--code", "eur", "9.99"}, "9.99 €\n"},
	}
	for _, tt := range tests {
		got, err := run(t, tt.args...)
		if err != nil {
			t.Errorf("%v: %v", tt.args, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
		}
	}

	if _, err := run(t, "currency", "--code", "XXX", "1"); err == nil {
		t.Error("unknown currency code should fail")
	}
	if _, err := run(t, "currency", "abc"); err == nil {
		t.Error("non-numeric amount should fail")
	}
}

func TestCurrencyCommandUsesToolkitFile(t *testing.T) {
	path := writeFile(t, "ztk.toml", []byte("[currency]\nsymbol = \"£\"\n"))
	got, err := run(t, "--toolkit", path, "currency", "5")
	if err != nil {
		t.Fatalf("currency: %v", err)
	}
	if got != "£5.00\n" {
		t.Errorf("currency with toolkit file = %q", got)
	}
}

func TestDateCommand(t *testing.T) {
	got, err := run(t, "date", "--format", "short", "--locale", "de-DE", "--timezone", "UTC", "2026-10-17T14:05:09Z")
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	if got != "17.10.2026\n" {
		t.Errorf("date = %q", got)
	}

	if _, err := run(t, "date", "not a date"); err == nil {
		t.Error("unparsable date should fail")
	}
}

func TestCountdownCommand(t *testing.T) {
	got, err := run(t, "countdown", "--in", "90s")
	if err != nil {
		t.Fatalf("countdown: %v", err)
	}
	if got != "1 minute 30 seconds\n" {
		t.Errorf("countdown = %q", got)
	}

	got, err = run(t, "countdown", "--in", "90s", "--format", "short")
	if err != nil {
		t.Fatalf("countdown --format short: %v", err)
	}
	if got != "1m 30s\n" {
		t.Errorf("countdown --format short = %q", got)
	}

	got, err = run(t, "countdown", "--expired", "done", "2000-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("countdown past target: %v", err)
	}
	if got != "done\n" {
		t.Errorf("countdown past target = %q", got)
	}

	if _, err := run(t, "countdown"); err == nil {
		t.Error("countdown without target should fail")
	}
}

func TestFileCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 3, 2))); err != nil {
		t.Fatal(err)
	}
	path := writeFile(t, "pixel.png", buf.Bytes())

	got, err := run(t, "file", path)
	if err != nil {
		t.Fatalf("file: %v", err)
	}
	if !strings.Contains(got, "PASS") || !strings.Contains(got, "image/png") {
		t.Errorf("file output = %q", got)
	}

	got, err = run(t, "file", "--types", "application/pdf", path)
	if !errors.Is(err, errCheckFailed) {
		t.Fatalf("file with pdf only: err = %v, want errCheckFailed", err)
	}
	if !strings.Contains(got, "FAIL") {
		t.Errorf("file output = %q", got)
	}

	got, err = run(t, "image", path)
	if err != nil {
		t.Fatalf("image: %v", err)
	}
	if !strings.Contains(got, "3x2") {
		t.Errorf("image output = %q", got)
	}
}

func TestImageCommandOnError(t *testing.T) {
	path := writeFile(t, "broken.png", []byte("not an image"))

	if _, err := run(t, "image", path); err == nil {
		t.Error("image on a broken file should fail by default")
	}

	got, err := run(t, "image", "--on-error", "return-null", path)
	if err != nil {
		t.Fatalf("image --on-error return-null: %v", err)
	}
	if !strings.Contains(got, "unknown") {
		t.Errorf("image output = %q", got)
	}
}

func TestFiletypeCommand(t *testing.T) {
	if _, err := run(t, "filetype", "image/png"); err != nil {
		t.Errorf("image/png should be allowed by default: %v", err)
	}
	if _, err := run(t, "filetype", "--types", "image/*", "image/webp"); !errors.Is(err, errCheckFailed) {
		t.Errorf("wildcard without --wildcard: err = %v", err)
	}
	if _, err := run(t, "filetype", "--wildcard", "--types", "image/*", "image/webp"); err != nil {
		t.Errorf("wildcard with --wildcard: %v", err)
	}
}

func TestEnumCommand(t *testing.T) {
	if _, err := run(t, "enum", "--values", "1,2,3", "2"); err != nil {
		t.Errorf("2 in 1,2,3: %v", err)
	}
	if _, err := run(t, "enum", "--values", "0.5,1.5", "1.5"); err != nil {
		t.Errorf("1.5 in 0.5,1.5: %v", err)
	}
	if _, err := run(t, "enum", "--values", "1,2", "2.0"); err != nil {
		t.Errorf("2.0 in 1,2: %v", err)
	}

	got, err := run(t, "enum", "--values", "1,2,3", "9")
	if !errors.Is(err, errCheckFailed) {
		t.Fatalf("9 in 1,2,3: err = %v", err)
	}
	if !strings.Contains(got, "VALIDATION_INVALID_VALUE") {
		t.Errorf("enum output = %q", got)
	}

	if _, err := run(t, "enum", "--values", "1,x", "1"); err == nil || errors.Is(err, errCheckFailed) {
		t.Errorf("bad enum value: err = %v", err)
	}
}

func TestEmailAndPhoneCommands(t *testing.T) {
	if _, err := run(t, "email", "jane@example.com"); err != nil {
		t.Errorf("email: %v", err)
	}
	if _, err := run(t, "email", "--domains", "example.org", "jane@example.com"); !errors.Is(err, errCheckFailed) {
		t.Errorf("email outside domains: err = %v", err)
	}
	if _, err := run(t, "phone", "+49 30 1234567"); err != nil {
		t.Errorf("phone: %v", err)
	}
	if _, err := run(t, "phone", "--country-code", "1", "+49 30 1234567"); !errors.Is(err, errCheckFailed) {
		t.Errorf("phone with other country code: err = %v", err)
	}
}

func TestStripeCommand(t *testing.T) {
	got, err := run(t, "stripe", "unknown_code")
	if err != nil {
		t.Fatalf("stripe: %v", err)
	}
	if !strings.Contains(got, "Oops, something went wrong :/") {
		t.Errorf("stripe fallback = %q", got)
	}

	got, err = run(t, "stripe", "--table", "requirement")
	if err != nil {
		t.Fatalf("stripe --table requirement: %v", err)
	}
	if strings.TrimSpace(got) == "" {
		t.Error("stripe --table requirement listed no codes")
	}

	if _, err := run(t, "stripe", "--table", "nope"); err == nil {
		t.Error("unknown table should fail")
	}
}

func TestHeadersCommand(t *testing.T) {
	got, err := run(t, "headers")
	if err != nil {
		t.Fatalf("headers: %v", err)
	}
	if !strings.Contains(got, "x-auth-token") {
		t.Errorf("headers output = %q", got)
	}
}

func TestConfigCommands(t *testing.T) {
	path := writeFile(t, "ztk.yaml", []byte("currency:\n  decimals: 3\n"))

	got, err := run(t, "--toolkit", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(got, `"decimals": 3`) {
		t.Errorf("config show = %q", got)
	}

	if _, err := run(t, "--toolkit", path, "config", "check"); err != nil {
		t.Errorf("config check: %v", err)
	}

	bad := writeFile(t, "bad.yaml", []byte("currency:\n  decimals: -1\n"))
	if _, err := run(t, "--toolkit", bad, "config", "check"); !errors.Is(err, errCheckFailed) {
		t.Errorf("config check on negative decimals: err = %v", err)
	}
}

func TestMissingToolkitFile(t *testing.T) {
	if _, err := run(t, "--toolkit", filepath.Join(t.TempDir(), "missing.toml"), "headers"); err == nil {
		t.Error("missing toolkit file should fail")
	}
}

func TestCLIConfigFile(t *testing.T) {
	toolkitPath := writeFile(t, "defaults.toml", []byte("[currency]\nsymbol = \"€\"\n"))
	cli := writeFile(t, "cli.toml", []byte("[general]\ntoolkit_file = \""+filepath.ToSlash(toolkitPath)+"\"\n[toolkit.currency]\ndecimals = 0\n"))

	got, err := run(t, "--config", cli, "currency", "7")
	if err != nil {
		t.Fatalf("currency with cli config: %v", err)
	}
	if got != "€7\n" {
		t.Errorf("currency with cli config = %q", got)
	}
}

func TestVersionCommand(t *testing.T) {
	got, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(got, "0.3.0") {
		t.Errorf("version = %q", got)
	}
}
