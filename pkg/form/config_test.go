package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/form"
)

func TestConfigFromEnvironment(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("FORM_VALIDATE_ON_EVENT", "onBlur")
	t.Setenv("FORM_ERROR_HELP", "Check this field")

	var cfg form.Config
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, form.Config{ValidateOnEvent: "onBlur", ErrorHelp: "Check this field", Lang: "en"}, cfg)

	f := newForm(t, nil, form.WithConfig(cfg))
	require.NoError(t, f.Register(form.NewInput("name", form.KindText, form.WithRules("required"))))

	handled, _ := f.HandleEvent("name", "change")
	assert.False(t, handled)

	handled, valid := f.HandleEvent("name", "blur")
	assert.True(t, handled)
	assert.False(t, valid)
	assert.Equal(t, "Check this field", f.Help("name"))
}
