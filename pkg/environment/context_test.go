package environment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  environment.Environment
	}{
		{"", environment.Development},
		{"dev", environment.Development},
		{"Development", environment.Development},
		{"stage", environment.Staging},
		{"staging", environment.Staging},
		{" PROD ", environment.Production},
		{"production", environment.Production},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := environment.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		_, err := environment.Parse("qa")
		assert.ErrorIs(t, err, environment.ErrUnknownEnvironment)
	})
}

func TestWithContext(t *testing.T) {
	t.Parallel()

	for _, env := range []environment.Environment{
		environment.Development,
		environment.Staging,
		environment.Production,
		environment.Environment("custom"),
	} {
		t.Run(env.String(), func(t *testing.T) {
			t.Parallel()

			ctx := environment.WithContext(context.Background(), env)
			assert.Equal(t, env, environment.FromContext(ctx))
		})
	}
}

func TestFromContext_Missing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, environment.FromContext(context.Background()))
	assert.Empty(t, environment.FromContext(nil))
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	prod := environment.WithContext(context.Background(), environment.Production)
	assert.True(t, environment.IsProduction(prod))
	assert.False(t, environment.IsDevelopment(prod))
	assert.False(t, environment.IsStaging(prod))

	stage := environment.WithContext(context.Background(), environment.Staging)
	assert.True(t, environment.IsStaging(stage))

	dev := environment.WithContext(context.Background(), environment.Development)
	assert.True(t, environment.IsDevelopment(dev))

	assert.False(t, environment.IsProduction(context.Background()))
}
