package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/ztk/foundation/core/options"
	"github.com/msto63/ztk/foundation/utils/stringx"
	"github.com/msto63/ztk/internal/tui"
)

var truncateCmd = &cobra.Command{
	Use:   "truncate <text>",
	Short: "Shorten text to a visible length",
	Long: `Shortens text to at most --length visible characters, ellipsis included.

Examples:
  ztk truncate --length 12 "The quick brown fox"
  ztk truncate --length 12 --position middle --word-boundary "The quick brown fox"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTruncate,
}

var titlecaseCmd = &cobra.Command{
	Use:   "titlecase <text>",
	Short: "Convert text to title case",
	Long: `Converts text to title case. Small words stay lowercase except at the start.

Examples:
  ztk titlecase "the lord of the rings"
  ztk titlecase --upper nasa,usa "nasa and the usa"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTitlecase,
}

var regexCmd = &cobra.Command{
	Use:   "regex <pattern> [input...]",
	Short: "Build a regular expression and match inputs",
	Long: `Builds a regular expression from a pattern and flags (g, i, m, s, u) and
prints the matches for each input.

Examples:
  ztk regex --flags gi "o+" "foo boo"
  ztk regex --escape "1+1" "1+1=2"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRegex,
}

var codeCmd = &cobra.Command{
	Use:   "code",
	Short: "Generate random codes",
	Long: `Generates random codes from a cryptographic source.

Examples:
  ztk code
  ztk code --length 8 --segments 4,4 --exclude-ambiguous
  ztk code --prefix INV- --count 5`,
	Args: cobra.NoArgs,
	RunE: runCode,
}

func init() {
	rootCmd.AddCommand(truncateCmd, titlecaseCmd, regexCmd, codeCmd)

	truncateCmd.Flags().Int("length", 10, "maximum visible length")
	truncateCmd.Flags().String("ellipsis", "...", "marker for removed text")
	truncateCmd.Flags().String("position", "end", "where to cut: start, middle or end")
	truncateCmd.Flags().Bool("word-boundary", false, "cut at word boundaries")

	titlecaseCmd.Flags().String("lower", "", "comma separated words kept lowercase")
	titlecaseCmd.Flags().String("upper", "", "comma separated words kept uppercase")
	titlecaseCmd.Flags().String("separators", "", "comma separated word separators")
	titlecaseCmd.Flags().Bool("force-first", true, "always capitalize the first word")
	titlecaseCmd.Flags().String("locale", "", "casing locale")

	regexCmd.Flags().String("flags", "", "flags from gimsu")
	regexCmd.Flags().Bool("escape", false, "treat the pattern as literal text")
	regexCmd.Flags().Bool("global", false, "return all matches")

	codeCmd.Flags().Int("length", 6, "code length without prefix, suffix and separators")
	codeCmd.Flags().String("charset", "", "alphabet to draw from")
	codeCmd.Flags().String("prefix", "", "prefix")
	codeCmd.Flags().String("suffix", "", "suffix")
	codeCmd.Flags().String("separator", "-", "segment separator")
	codeCmd.Flags().String("segments", "", "comma separated segment sizes")
	codeCmd.Flags().Bool("exclude-ambiguous", false, "drop 0, O, I and l")
	codeCmd.Flags().Int("count", 1, "number of codes")
}

func runTruncate(cmd *cobra.Command, args []string) error {
	opts := stringx.TruncateOptions{
		Length:       flagInt(cmd, "length"),
		Ellipsis:     flagString(cmd, "ellipsis"),
		WordBoundary: flagBool(cmd, "word-boundary"),
	}
	if p := flagString(cmd, "position"); p != nil {
		opts.Position = options.Of(stringx.TruncatePosition(*p))
	}

	result, err := stringx.TruncateString(strings.Join(args, " "), opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(out(cmd), result)
	return nil
}

func runTitlecase(cmd *cobra.Command, args []string) error {
	opts := stringx.TitleCaseOptions{
		LowercaseWords:      flagList(cmd, "lower"),
		UppercaseWords:      flagList(cmd, "upper"),
		Separators:          flagList(cmd, "separators"),
		ForceFirstUppercase: flagBool(cmd, "force-first"),
		Locale:              flagString(cmd, "locale"),
	}
	fmt.Fprintln(out(cmd), stringx.ConvertToTitleCase(strings.Join(args, " "), opts))
	return nil
}

func runRegex(cmd *cobra.Command, args []string) error {
	re, err := stringx.CreateRegexMatch(args[0], stringx.RegexOptions{
		Flags:  flagString(cmd, "flags"),
		Escape: flagBool(cmd, "escape"),
		Global: flagBool(cmd, "global"),
	})
	if err != nil {
		return err
	}

	w := out(cmd)
	fmt.Fprintln(w, tui.RenderField("regex", re.String()))
	for _, input := range args[1:] {
		matches := re.Match(input)
		if matches == nil {
			fmt.Fprintln(w, tui.RenderField(input, "no match"))
			continue
		}
		fmt.Fprintln(w, tui.RenderField(input, fmt.Sprintf("%q", matches)))
	}
	return nil
}

func runCode(cmd *cobra.Command, args []string) error {
	opts := stringx.CodeOptions{
		Length:           flagInt(cmd, "length"),
		Charset:          flagString(cmd, "charset"),
		Prefix:           flagString(cmd, "prefix"),
		Suffix:           flagString(cmd, "suffix"),
		Separator:        flagString(cmd, "separator"),
		ExcludeAmbiguous: flagBool(cmd, "exclude-ambiguous"),
	}
	for _, s := range flagList(cmd, "segments") {
		var n int
		if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
			return fmt.Errorf("invalid segment size %q", s)
		}
		opts.Segments = append(opts.Segments, n)
	}

	count, _ := cmd.Flags().GetInt("count")
	for i := 0; i < count; i++ {
		code, err := stringx.GenerateUniqueCode(opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(out(cmd), code)
	}
	return nil
}
