package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestIsString(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsString(""))
	assert.True(t, validator.IsString("hello"))
	assert.False(t, validator.IsString(nil))
	assert.False(t, validator.IsString(42))
	assert.False(t, validator.IsString([]byte("hello")))
}

func TestTrimString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "John   Doe", validator.TrimString("  John   Doe \t\n"))
	assert.Equal(t, "", validator.TrimString(42))
	assert.Equal(t, "", validator.TrimString(nil))
}

func TestIsStringRequired(t *testing.T) {
	t.Parallel()

	t.Run("required rejects blank values", func(t *testing.T) {
		assert.False(t, validator.IsStringRequired("", true))
		assert.False(t, validator.IsStringRequired(" \t ", true))
		assert.True(t, validator.IsStringRequired(" x ", true))
	})

	t.Run("optional accepts anything", func(t *testing.T) {
		assert.True(t, validator.IsStringRequired("", false))
		assert.True(t, validator.IsStringRequired("   ", false))
	})
}

func TestStringLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"accented letters count once", "héllo", 5},
		{"astral characters count twice", "😀😀", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.StringLength(tt.input))
		})
	}

	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.True(t, validator.IsStringLengthAtLeast("abc", 3))
		assert.False(t, validator.IsStringLengthAtLeast("ab", 3))
		assert.True(t, validator.IsStringLengthAtMost("abc", 3))
		assert.False(t, validator.IsStringLengthAtMost("abcd", 3))
	})
}

func TestContainsChar(t *testing.T) {
	t.Parallel()

	t.Run("returns the first entry of the set that occurs", func(t *testing.T) {
		c, ok := validator.ContainsDisallowedChar("Hello@#", []string{"@", "#"})
		assert.True(t, ok)
		assert.Equal(t, "@", c)

		c, ok = validator.ContainsDisallowedChar("Hello@#", []string{"#", "@"})
		assert.True(t, ok)
		assert.Equal(t, "#", c)
	})

	t.Run("no match", func(t *testing.T) {
		c, ok := validator.ContainsDisallowedChar("Hello", []string{"@", "#"})
		assert.False(t, ok)
		assert.Empty(t, c)
	})

	t.Run("empty set finds nothing", func(t *testing.T) {
		_, ok := validator.ContainsAllowedChar("Hello", nil)
		assert.False(t, ok)
		_, ok = validator.ContainsDisallowedChar("Hello", []string{})
		assert.False(t, ok)
	})

	t.Run("empty entries are ignored", func(t *testing.T) {
		_, ok := validator.ContainsAllowedChar("Hello", []string{""})
		assert.False(t, ok)
	})

	t.Run("multi-character entries", func(t *testing.T) {
		c, ok := validator.ContainsAllowedChar("path/to//file", []string{"\\", "//"})
		assert.True(t, ok)
		assert.Equal(t, "//", c)
	})
}

func TestContainsBlacklistedWord(t *testing.T) {
	t.Parallel()

	t.Run("matches ignoring case and returns the entry as supplied", func(t *testing.T) {
		w, ok := validator.ContainsBlacklistedWord("Buy SPAM now", []string{"eggs", "Spam"})
		assert.True(t, ok)
		assert.Equal(t, "Spam", w)
	})

	t.Run("first entry in list order wins", func(t *testing.T) {
		w, ok := validator.ContainsBlacklistedWord("foo bar", []string{"bar", "foo"})
		assert.True(t, ok)
		assert.Equal(t, "bar", w)
	})

	t.Run("substring match", func(t *testing.T) {
		_, ok := validator.ContainsBlacklistedWord("administrator", []string{"admin"})
		assert.True(t, ok)
	})

	t.Run("no match", func(t *testing.T) {
		w, ok := validator.ContainsBlacklistedWord("hello world", []string{"spam", ""})
		assert.False(t, ok)
		assert.Empty(t, w)
	})
}

func TestAffixes(t *testing.T) {
	t.Parallel()

	t.Run("absent affix is satisfied", func(t *testing.T) {
		assert.True(t, validator.DoesStringStartWith("anything", ""))
		assert.True(t, validator.DoesStringEndWith("anything", ""))
		assert.True(t, validator.DoesStringStartWith("", ""))
	})

	t.Run("present affix must match exactly", func(t *testing.T) {
		assert.True(t, validator.DoesStringStartWith("Mr Smith", "Mr"))
		assert.False(t, validator.DoesStringStartWith("mr Smith", "Mr"))
		assert.True(t, validator.DoesStringEndWith("Johnson", "son"))
		assert.False(t, validator.DoesStringEndWith("Johnsen", "son"))
	})
}

func TestIsSpacesAllowed(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsSpacesAllowed("John Doe", true))
	assert.False(t, validator.IsSpacesAllowed("John Doe", false))
	assert.True(t, validator.IsSpacesAllowed("JohnDoe", false))
	// Only U+0020 counts as a space.
	assert.True(t, validator.IsSpacesAllowed("John\tDoe", false))
}

func TestWordCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"blank", "  \t ", 0},
		{"single word", "John", 1},
		{"whitespace runs", "  John \t Ronald\n  Doe ", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.WordCount(tt.input))
		})
	}

	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.True(t, validator.IsWordCountAtLeast("a b", 2))
		assert.False(t, validator.IsWordCountAtLeast("", 1))
		assert.True(t, validator.IsWordCountAtMost("a b", 2))
		assert.False(t, validator.IsWordCountAtMost("a b c", 2))
	})
}

func TestHasExcessiveRepetitiveChars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		limit int
		want  bool
	}{
		{"run equal to limit", "aab", 2, false},
		{"run one above limit", "aaab", 2, true},
		{"run at the end", "abccc", 2, true},
		{"no runs with limit one", "abc", 1, false},
		{"pair with limit one", "abbc", 1, true},
		{"limit zero trips on any character", "a", 0, true},
		{"limit zero on empty", "", 0, false},
		{"runs are counted per character", "aabbaabb", 2, false},
		{"multibyte runs", "ééé", 2, true},
		{"spaces count", "a   b", 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.HasExcessiveRepetitiveChars(tt.input, tt.limit))
		})
	}
}
