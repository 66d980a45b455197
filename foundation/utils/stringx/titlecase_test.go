package stringx

import (
	"testing"

	"github.com/msto63/ztk/foundation/core/options"
)

func TestConvertToTitleCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  TitleCaseOptions
		want  string
	}{
		{"empty", "", TitleCaseOptions{}, ""},
		{"default lowercase words", "the lord of the rings", TitleCaseOptions{}, "The Lord of the Rings"},
		{"first word forced", "of mice and men", TitleCaseOptions{}, "Of Mice and Men"},
		{"first word not forced", "the lord", TitleCaseOptions{ForceFirstUppercase: options.Of(false)}, "the Lord"},
		{"mixed case input", "hELLO wORLD", TitleCaseOptions{}, "Hello World"},
		{"default separators kept", "hello-world_foo bar", TitleCaseOptions{}, "Hello-World_Foo Bar"},
		{"repeated separators", "a  b", TitleCaseOptions{}, "A  B"},
		{"uppercase words", "the api docs", TitleCaseOptions{UppercaseWords: []string{"API"}}, "The API Docs"},
		{"uppercase wins over lowercase", "lord of rings", TitleCaseOptions{UppercaseWords: []string{"of"}}, "Lord OF Rings"},
		{"case-insensitive exceptions", "lord OF rings", TitleCaseOptions{}, "Lord of Rings"},
		{"multi-rune separator", "foo::bar baz", TitleCaseOptions{Separators: []string{"::"}}, "Foo::Bar baz"},
		{"custom lowercase words replace defaults", "the end of it", TitleCaseOptions{LowercaseWords: []string{"it"}}, "The End Of it"},
		{"turkish dotted i", "istanbul", TitleCaseOptions{Locale: options.Of("tr")}, "İstanbul"},
		{"bad locale falls back", "hello world", TitleCaseOptions{Locale: options.Of("!!")}, "Hello World"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConvertToTitleCase(tt.input, tt.opts); got != tt.want {
				t.Errorf("ConvertToTitleCase(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSortedSeparators(t *testing.T) {
	got := sortedSeparators([]string{" ", "", "::", "-"})
	if len(got) != 3 || got[0] != "::" {
		t.Errorf("sortedSeparators() = %q", got)
	}
}
