package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("no transforms returns input", func(t *testing.T) {
		assert.Equal(t, " a ", sanitizer.Apply(" a "))
	})

	t.Run("runs left to right", func(t *testing.T) {
		got := sanitizer.Apply("  John   Doe ",
			sanitizer.Trim,
			sanitizer.JoinWords("."),
			strings.ToLower,
		)
		assert.Equal(t, "john.doe", got)
	})

	t.Run("generic over value type", func(t *testing.T) {
		double := func(n int) int { return n * 2 }
		inc := func(n int) int { return n + 1 }
		assert.Equal(t, 7, sanitizer.Apply(3, double, inc))
		assert.Equal(t, 8, sanitizer.Apply(3, inc, double))
	})
}

func TestCompose(t *testing.T) {
	t.Parallel()

	slug := sanitizer.Compose(strings.ToLower, sanitizer.JoinWords("-"))

	assert.Equal(t, "hello-world", slug("  Hello  World "))
	assert.Equal(t, "", slug(""))
	// Reusable across calls.
	assert.Equal(t, "a-b", slug("A B"))
}
