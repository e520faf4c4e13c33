package validator_test

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01")

func upload(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="f"; filename="`+filename+`"`)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["f"][0]
}

func TestFileRules(t *testing.T) {
	reg := validator.NewFile()
	png := upload(t, "avatar.PNG", pngBytes)
	text := upload(t, "notes.txt", bytes.Repeat([]byte("a"), 2048))
	files := []*multipart.FileHeader{png, text}

	call := func(t *testing.T, rule string, value any, params ...string) bool {
		t.Helper()
		require.NoError(t, reg.Check(rule, params))
		fn, ok := reg.Lookup(rule)
		require.True(t, ok)
		return fn(value, params...)
	}

	t.Run("required", func(t *testing.T) {
		assert.True(t, call(t, "required", files))
		assert.True(t, call(t, "required", png))
		assert.False(t, call(t, "required", []*multipart.FileHeader{}))
		assert.False(t, call(t, "required", nil))
	})

	t.Run("file counts", func(t *testing.T) {
		assert.True(t, call(t, "maxFiles", files, "2"))
		assert.False(t, call(t, "maxFiles", files, "1"))
		assert.True(t, call(t, "minFiles", files, "2"))
		assert.False(t, call(t, "minFiles", nil, "1"))
	})

	t.Run("sizes", func(t *testing.T) {
		assert.True(t, call(t, "maxSize", files, "2KB"))
		assert.False(t, call(t, "maxSize", files, "1KB"))
		assert.True(t, call(t, "minSize", text, "2048"))
		assert.False(t, call(t, "minSize", files, "1KB"))
	})

	t.Run("mime types", func(t *testing.T) {
		assert.True(t, call(t, "accept", png, "image/*"))
		assert.True(t, call(t, "accept", files, "image/png", "text/plain"))
		assert.False(t, call(t, "accept", files, "image/*"))
		assert.True(t, call(t, "image", png))
		assert.False(t, call(t, "image", files))
		assert.False(t, call(t, "pdf", png))
	})

	t.Run("extensions", func(t *testing.T) {
		assert.True(t, call(t, "extension", png, "png"))
		assert.True(t, call(t, "extension", files, ".png", "txt"))
		assert.False(t, call(t, "extension", files, "png"))
	})

	t.Run("shape rules pass on empty collections", func(t *testing.T) {
		assert.True(t, call(t, "image", nil))
		assert.True(t, call(t, "maxSize", []*multipart.FileHeader{}, "1B"))
		assert.True(t, call(t, "accept", nil, "image/*"))
	})
}
