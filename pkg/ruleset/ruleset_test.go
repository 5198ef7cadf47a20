package ruleset_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/ruleset"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	for _, file := range []string{"signup.yaml", "signup.json", "signup.toml"} {
		t.Run(file, func(t *testing.T) {
			t.Parallel()

			set, err := ruleset.Load(filepath.Join("testdata", file))
			require.NoError(t, err)
			assert.Contains(t, set.StringRules(), "username")
			assert.Contains(t, set.NumberRules(), "age")

			res, err := set.ValidateString("username", "  john_doe ")
			require.NoError(t, err)
			assert.True(t, res.IsValid)
			assert.Equal(t, "john_doe", res.ValidatedInput)

			res, err = set.ValidateString("username", "sysadmin")
			require.NoError(t, err)
			assert.Equal(t, "blacklistWordsError", res.ErrorKey)

			res, err = set.ValidateString("username", "jo")
			require.NoError(t, err)
			assert.Equal(t, "Name must be at least 3 characters long", res.ErrorMessage)

			num, err := set.ValidateNumber("age", 42)
			require.NoError(t, err)
			assert.True(t, num.IsValid)
			assert.Equal(t, 42.0, num.ReturnedNumber)

			num, err = set.ValidateNumber("age", 12.5)
			require.NoError(t, err)
			assert.Equal(t, "integerError", num.ErrorKey)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := ruleset.Load("rules.ini")
		assert.ErrorIs(t, err, ruleset.ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ruleset.Load(filepath.Join("testdata", "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid rule", func(t *testing.T) {
		_, err := ruleset.Load(filepath.Join("testdata", "invalid.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ruleset.ErrInvalidRule)
		assert.ErrorIs(t, err, validator.ErrInvalidOptions)
		assert.Contains(t, err.Error(), "strings.username")

		var cfgErr *validator.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, []string{"minLength"}, cfgErr.Unknown)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("full name rule", func(t *testing.T) {
		set, err := ruleset.Parse(mustRead(t, "signup.yaml"), ruleset.FormatYAML)
		require.NoError(t, err)

		res, err := set.ValidateString("full_name", "Cher")
		require.NoError(t, err)
		assert.Equal(t, "Please enter your first and last name", res.ErrorMessage)

		res, err = set.ValidateString("full_name", "Jane \t Roe")
		require.NoError(t, err)
		assert.Equal(t, "Jane Roe", res.ValidatedInput)

		num, err := set.ValidateNumber("discount", 0.125)
		require.NoError(t, err)
		assert.Equal(t, "maxDecimalError", num.ErrorKey)
	})

	t.Run("pattern names are resolved on load", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("strings:\n  code:\n    regexPattern: NOT_A_KEY\n"), ruleset.FormatYAML)
		require.Error(t, err)
		assert.ErrorIs(t, err, ruleset.ErrInvalidRule)
		assert.ErrorIs(t, err, validator.ErrUnknownPattern)
	})

	t.Run("resolved options keep a matcher", func(t *testing.T) {
		set, err := ruleset.Parse([]byte(`{"strings":{"code":{"regexPattern":"NUMBERS_ONLY"}}}`), ruleset.FormatJSON)
		require.NoError(t, err)

		opts, ok := set.StringOptions("code")
		require.True(t, ok)
		assert.Implements(t, (*validator.Matcher)(nil), opts.RegexPattern)
	})

	t.Run("empty yaml document", func(t *testing.T) {
		set, err := ruleset.Parse(nil, ruleset.FormatYAML)
		require.NoError(t, err)
		assert.Zero(t, set.Len())
	})

	t.Run("unknown top-level section", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("fields:\n  a: {}\n"), ruleset.FormatYAML)
		assert.ErrorIs(t, err, ruleset.ErrInvalidDocument)

		_, err = ruleset.Parse([]byte(`{"fields":{}}`), ruleset.FormatJSON)
		assert.ErrorIs(t, err, ruleset.ErrInvalidDocument)

		_, err = ruleset.Parse([]byte("[fields.a]\nx = 1\n"), ruleset.FormatTOML)
		assert.ErrorIs(t, err, ruleset.ErrInvalidDocument)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("strings: ["), ruleset.FormatYAML)
		assert.ErrorIs(t, err, ruleset.ErrInvalidDocument)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("{}"), ruleset.Format("xml"))
		assert.ErrorIs(t, err, ruleset.ErrUnsupportedFormat)
	})

	t.Run("logs at debug level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		_, err := ruleset.Parse(mustRead(t, "signup.yaml"), ruleset.FormatYAML, ruleset.WithLogger(logger))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "rule set loaded")
		assert.Contains(t, buf.String(), "strings=2")
		assert.Contains(t, buf.String(), "numbers=2")
	})
}

func TestSet_RuleNotFound(t *testing.T) {
	t.Parallel()

	set, err := ruleset.Load(filepath.Join("testdata", "signup.yaml"))
	require.NoError(t, err)

	_, err = set.ValidateString("age", "x")
	assert.ErrorIs(t, err, ruleset.ErrRuleNotFound)

	_, err = set.ValidateNumber("username", 1)
	assert.ErrorIs(t, err, ruleset.ErrRuleNotFound)

	_, ok := set.NumberOptions("username")
	assert.False(t, ok)
}

func TestSet_Lists(t *testing.T) {
	t.Parallel()

	set, err := ruleset.Load(filepath.Join("testdata", "signup.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"full_name", "username"}, set.StringRules())
	assert.Equal(t, []string{"age", "discount"}, set.NumberRules())
	assert.Equal(t, 4, set.Len())
}

func TestSet_ConcurrentUse(t *testing.T) {
	t.Parallel()

	set, err := ruleset.Load(filepath.Join("testdata", "signup.yaml"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				res, err := set.ValidateString("username", "jane_roe")
				assert.NoError(t, err)
				assert.True(t, res.IsValid)
			}
		}()
	}
	wg.Wait()
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]ruleset.Format{
		"rules.yaml": ruleset.FormatYAML,
		"rules.YML":  ruleset.FormatYAML,
		"rules.json": ruleset.FormatJSON,
		"rules.toml": ruleset.FormatTOML,
	}
	for path, want := range tests {
		got, err := ruleset.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := ruleset.FormatFromPath("rules")
	assert.ErrorIs(t, err, ruleset.ErrUnsupportedFormat)
}

func mustRead(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}
