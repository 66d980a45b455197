package slicex

import (
	"reflect"
	"strings"
	"testing"
)

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4, 5, 6}, func(x int) bool { return x%2 == 0 })
	if want := []int{2, 4, 6}; !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
	if Filter[int](nil, func(int) bool { return true }) != nil {
		t.Error("Filter(nil) should be nil")
	}
	if got := Filter([]int{1}, func(int) bool { return false }); got == nil || len(got) != 0 {
		t.Errorf("Filter() with no match = %#v, want empty non-nil", got)
	}
}

func TestMap(t *testing.T) {
	got := Map([]string{" a", "b "}, strings.TrimSpace)
	if want := []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}
	if Map[string, string](nil, strings.TrimSpace) != nil {
		t.Error("Map(nil) should be nil")
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]string{"b", "a", "b", "c", "a"})
	if want := []string{"b", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Unique() = %v, want %v", got, want)
	}
	runes := Unique([]rune("aabbca"))
	if string(runes) != "abc" {
		t.Errorf("Unique(runes) = %q", string(runes))
	}
}

func TestUniqueBy(t *testing.T) {
	got := UniqueBy([]string{"Image/PNG", "image/png", "image/gif"}, strings.ToLower)
	if want := []string{"Image/PNG", "image/gif"}; !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueBy() = %v, want %v", got, want)
	}
}

func TestCompact(t *testing.T) {
	got := Compact([]string{"a", "", "b", ""})
	if want := []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Compact() = %v, want %v", got, want)
	}
}

func TestContainsBy(t *testing.T) {
	hasPrefix := func(s string) bool { return strings.HasPrefix(s, "image/") }
	if !ContainsBy([]string{"text/plain", "image/png"}, hasPrefix) {
		t.Error("ContainsBy() = false, want true")
	}
	if ContainsBy(nil, hasPrefix) {
		t.Error("ContainsBy(nil) = true")
	}
	if ContainsBy([]string{"x"}, nil) {
		t.Error("ContainsBy() with nil predicate = true")
	}
}

func TestClone(t *testing.T) {
	src := []int{1, 2}
	got := Clone(src)
	got[0] = 9
	if src[0] != 1 {
		t.Error("Clone() shares the backing array")
	}
	if Clone[int](nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}
