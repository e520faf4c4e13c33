package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("register and lookup", func(t *testing.T) {
		t.Parallel()
		reg := validator.NewRegistry("custom").
			Register("even", func(v any, _ ...string) bool { return v.(int)%2 == 0 })

		fn, ok := reg.Lookup("even")
		require.True(t, ok)
		assert.True(t, fn(4))
		assert.False(t, fn(3))
		assert.True(t, reg.Has("even"))
		assert.False(t, reg.Has("odd"))
		assert.Equal(t, "custom", reg.Name())
	})

	t.Run("check reports unknown rules", func(t *testing.T) {
		t.Parallel()
		err := validator.NewStandard().Check("nope", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrUnknownRule)
		assert.Contains(t, err.Error(), "standard")
	})

	t.Run("check runs param checks", func(t *testing.T) {
		t.Parallel()
		reg := validator.NewStandard()

		assert.NoError(t, reg.Check("minLength", []string{"3"}))
		assert.ErrorIs(t, reg.Check("minLength", []string{"abc"}), validator.ErrInvalidParams)
		assert.ErrorIs(t, reg.Check("minLength", nil), validator.ErrInvalidParams)
		assert.ErrorIs(t, reg.Check("required", []string{"x"}), validator.ErrInvalidParams)
		assert.ErrorIs(t, reg.Check("matches", []string{"("}), validator.ErrInvalidParams)
		assert.NoError(t, reg.Check("in", []string{"a", "b", "c"}))
		assert.NoError(t, validator.NewFile().Check("maxSize", []string{"5MB"}))
		assert.ErrorIs(t, validator.NewFile().Check("maxSize", []string{"lots"}), validator.ErrInvalidParams)
		assert.ErrorIs(t, validator.NewFile().Check("maxSize", []string{"99999999999GB"}), validator.ErrInvalidParams)
		assert.NoError(t, validator.NewFile().Check("maxSize", []string{"8589934591GB"}))
	})

	t.Run("clone is independent", func(t *testing.T) {
		t.Parallel()
		base := validator.NewStandard()
		ext := base.Clone().Register("never", func(any, ...string) bool { return false })

		assert.True(t, ext.Has("never"))
		assert.True(t, ext.Has("email"))
		assert.False(t, base.Has("never"))
	})

	t.Run("names are sorted", func(t *testing.T) {
		t.Parallel()
		names := validator.NewRegistry("x").
			Register("b", validator.Required).
			Register("a", validator.Required).
			Names()
		assert.Equal(t, []string{"a", "b"}, names)
	})

	t.Run("panics on misuse", func(t *testing.T) {
		t.Parallel()
		reg := validator.NewRegistry("x")
		assert.Panics(t, func() { reg.Register("", validator.Required) })
		assert.Panics(t, func() { reg.Register("nil", nil) })
	})
}

func TestArity(t *testing.T) {
	t.Parallel()

	check := validator.Arity(1, 2)
	assert.Error(t, check(nil))
	assert.NoError(t, check([]string{"a"}))
	assert.NoError(t, check([]string{"a", "b"}))
	assert.Error(t, check([]string{"a", "b", "c"}))
	assert.NoError(t, validator.Arity(0, -1)([]string{"a", "b", "c", "d"}))
}
