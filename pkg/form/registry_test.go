package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
)

type bareField struct {
	name string
	kind form.Kind
}

func (f *bareField) Name() string    { return f.name }
func (f *bareField) Kind() form.Kind { return f.kind }

type valueField struct {
	attrs map[string]string
}

func (f valueField) Name() string    { return "attrs" }
func (f valueField) Kind() form.Kind { return form.KindText }
func (f valueField) Value() any      { return f.attrs }

func TestRegistryRegister(t *testing.T) {
	t.Parallel()

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		reg := form.NewRegistry(nil)
		require.ErrorIs(t, reg.Register(form.NewInput("", form.KindText)), form.ErrMissingName)
		require.ErrorIs(t, reg.Register(nil), form.ErrMissingName)
		assert.Zero(t, reg.Len())
	})

	t.Run("typed nil field", func(t *testing.T) {
		t.Parallel()

		reg := form.NewRegistry(nil)
		var in *form.Input
		err := reg.Register(in)
		require.ErrorIs(t, err, form.ErrNilField)
		assert.True(t, form.IsConfigurationError(err))
		assert.False(t, reg.Unregister(in))
		assert.Zero(t, reg.Len())
	})

	t.Run("missing accessor", func(t *testing.T) {
		t.Parallel()

		reg := form.NewRegistry(nil)
		err := reg.Register(&bareField{name: "terms", kind: form.KindCheckbox})
		require.ErrorIs(t, err, form.ErrMissingAccessor)
		assert.True(t, form.IsConfigurationError(err))
	})

	t.Run("uncomparable field", func(t *testing.T) {
		t.Parallel()

		reg := form.NewRegistry(nil)
		require.ErrorIs(t, reg.Register(valueField{}), form.ErrUncomparableField)
	})

	t.Run("unknown rule is not stored", func(t *testing.T) {
		t.Parallel()

		reg := form.NewRegistry(nil)
		err := reg.Register(form.NewInput("name", form.KindText, form.WithRules("required,shiny")))
		require.ErrorIs(t, err, form.ErrUnknownRule)
		assert.Contains(t, err.Error(), `"name"`)
		assert.Zero(t, reg.Len())
	})

	t.Run("order of first registration", func(t *testing.T) {
		t.Parallel()

		reg := form.NewRegistry(nil)
		for _, name := range []string{"b", "a", "b", "c"} {
			require.NoError(t, reg.Register(form.NewInput(name, form.KindText)))
		}
		assert.Equal(t, []string{"b", "a", "c"}, reg.Names())
		assert.Equal(t, 3, reg.Len())
		assert.Len(t, reg.Fields("b"), 2)
	})
}

func TestRegistryValue(t *testing.T) {
	t.Parallel()

	reg := form.NewRegistry(nil)
	require.NoError(t, reg.Register(form.NewInput("username", form.KindText, form.WithValue("john"))))
	require.NoError(t, reg.Register(form.NewInput("terms", form.KindCheckbox, form.WithChecked(true))))
	require.NoError(t, reg.Register(form.NewInput("avatar", form.KindFile)))
	require.NoError(t, reg.Register(form.NewInput("email", form.KindOther, form.WithValue("a@b.c"))))
	require.NoError(t, reg.Register(form.NewInput("email", form.KindOther, form.WithValue("x@y.z"))))

	v, err := reg.Value("username")
	require.NoError(t, err)
	assert.Equal(t, "john", v)

	v, err = reg.Value("terms")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = reg.Value("avatar")
	require.NoError(t, err)
	assert.Empty(t, v)

	_, err = reg.Value("email")
	require.ErrorIs(t, err, form.ErrAmbiguousField)

	_, err = reg.Value("missing")
	require.ErrorIs(t, err, form.ErrFieldNotFound)

	vals := reg.Snapshot().Values()
	assert.Equal(t, []string{"username", "terms", "avatar", "email"}, vals.Names())
	got, ok := vals.Get("email")
	assert.True(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, "john", vals.String("username"))
	assert.True(t, vals.Bool("terms"))
}

func TestRegistryUnregister(t *testing.T) {
	t.Parallel()

	reg := form.NewRegistry(nil)
	first := form.NewInput("email", form.KindText, form.WithValue("first"))
	second := form.NewInput("email", form.KindText, form.WithValue("second"))
	require.NoError(t, reg.Register(first))
	require.NoError(t, reg.Register(second))

	snap := reg.Snapshot()

	assert.False(t, reg.Unregister(form.NewInput("email", form.KindText)))
	assert.True(t, reg.Unregister(first))
	assert.False(t, reg.Unregister(first))

	v, err := reg.Value("email")
	require.NoError(t, err)
	assert.Equal(t, "second", v)

	assert.True(t, reg.Unregister(second))
	assert.Empty(t, reg.Names())

	assert.Equal(t, []string{"email"}, snap.Names())
	assert.Len(t, snap.Fields("email"), 2)
	_, err = snap.Value("email")
	require.ErrorIs(t, err, form.ErrAmbiguousField)
}
