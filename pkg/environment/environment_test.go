package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want environment.Environment
	}{
		{name: "canonical production", raw: "production", want: environment.Production},
		{name: "production alias", raw: "prod", want: environment.Production},
		{name: "staging alias", raw: "stage", want: environment.Staging},
		{name: "mixed case and padding", raw: "  Staging ", want: environment.Staging},
		{name: "development", raw: "development", want: environment.Development},
		{name: "empty falls back", raw: "", want: environment.Development},
		{name: "unknown falls back", raw: "qa", want: environment.Development},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, environment.Parse(tt.raw))
		})
	}
}

func TestEnvironmentPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Staging.IsProduction())
	assert.True(t, environment.Development.IsDevelopment())
	assert.Equal(t, "staging", environment.Staging.String())
}
