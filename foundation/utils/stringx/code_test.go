package stringx

import (
	stderrors "errors"
	"regexp"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/msto63/ztk/foundation/core/errors"
	"github.com/msto63/ztk/foundation/core/options"
)

func TestGenerateUniqueCode(t *testing.T) {
	tests := []struct {
		name    string
		opts    CodeOptions
		pattern string
	}{
		{"defaults", CodeOptions{}, `^[A-Z0-9]{6}$`},
		{"length", CodeOptions{Length: options.Of(12)}, `^[A-Z0-9]{12}$`},
		{"segments", CodeOptions{Segments: []int{4, 4, 2}}, `^[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{2}$`},
		{"prefix suffix separator", CodeOptions{Prefix: options.Of("V-"), Suffix: options.Of("!"), Separator: options.Of("."), Segments: []int{3, 3}}, `^V-[A-Z0-9]{3}\.[A-Z0-9]{3}!$`},
		{"digits only", CodeOptions{Charset: options.Of(Digits)}, `^[0-9]{6}$`},
		{"excluding ambiguous", CodeOptions{Length: options.Of(64), ExcludeAmbiguous: options.Of(true)}, `^[A-HJ-NP-Z1-9]{64}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateUniqueCode(tt.opts)
			if err != nil {
				t.Fatalf("GenerateUniqueCode() error = %v", err)
			}
			if !regexp.MustCompile(tt.pattern).MatchString(got) {
				t.Errorf("GenerateUniqueCode() = %q; want match for %s", got, tt.pattern)
			}
		})
	}
}

func TestGenerateUniqueCodeSingleCharacter(t *testing.T) {
	got, err := GenerateUniqueCode(CodeOptions{Charset: options.Of("XXX"), Length: options.Of(5)})
	if err != nil {
		t.Fatal(err)
	}
	if got != "XXXXX" {
		t.Errorf("GenerateUniqueCode() = %q; want XXXXX", got)
	}
}

func TestGenerateUniqueCodeUsesWholeAlphabet(t *testing.T) {
	got, err := GenerateUniqueCode(CodeOptions{Charset: options.Of("AB"), Length: options.Of(256)})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "A") || !strings.Contains(got, "B") {
		t.Errorf("256 draws from AB produced %q", got)
	}
}

func TestGenerateUniqueCodeDrawsUniformly(t *testing.T) {
	const draws, length = 1000, 8
	var counts [length]int
	for i := 0; i < draws; i++ {
		got, err := GenerateUniqueCode(CodeOptions{Charset: options.Of("AB"), Length: options.Of(length)})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != length || strings.Trim(got, "AB") != "" {
			t.Fatalf("GenerateUniqueCode() = %q; want %d characters from AB", got, length)
		}
		for pos, r := range got {
			if r == 'A' {
				counts[pos]++
			}
		}
	}

	// more than six standard deviations either side of 500
	for pos, n := range counts {
		if n < 400 || n > 600 {
			t.Errorf("position %d drew A %d times out of %d", pos, n, draws)
		}
	}
}

func TestEffectiveCharset(t *testing.T) {
	if got := string(effectiveCharset("AABBA", false)); got != "AB" {
		t.Errorf("effectiveCharset() = %q; want AB", got)
	}
	if got := string(effectiveCharset("0O1Il", true)); got != "1" {
		t.Errorf("effectiveCharset() = %q; want 1", got)
	}
}

func TestGenerateUniqueCodeInvalidSpec(t *testing.T) {
	tests := []struct {
		name string
		opts CodeOptions
	}{
		{"only ambiguous characters", CodeOptions{Charset: options.Of(AmbiguousChars), ExcludeAmbiguous: options.Of(true)}},
		{"empty charset", CodeOptions{Charset: options.Of("")}},
		{"zero length", CodeOptions{Length: options.Of(0)}},
		{"zero segment", CodeOptions{Segments: []int{3, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateUniqueCode(tt.opts)
			if !errors.IsInvalidSpec(err) {
				t.Errorf("GenerateUniqueCode() error = %v; want INVALID_SPEC", err)
			}
			if got != "" {
				t.Errorf("GenerateUniqueCode() = %q alongside an error", got)
			}
		})
	}
}

func TestGenerateUniqueCodeEntropyFailure(t *testing.T) {
	saved := entropy
	entropy = iotest.ErrReader(stderrors.New("no entropy"))
	defer func() { entropy = saved }()

	_, err := GenerateUniqueCode()
	if !errors.IsPlatformUnavailable(err) {
		t.Errorf("GenerateUniqueCode() error = %v; want PLATFORM_UNAVAILABLE", err)
	}
}
