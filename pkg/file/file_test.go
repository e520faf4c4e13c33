package file_test

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/file"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	pdfHeader = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")
)

func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="upload"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	require.Len(t, form.File["upload"], 1)
	return form.File["upload"][0]
}

func TestDetectMIMEType(t *testing.T) {
	t.Run("sniffs content over the declared type", func(t *testing.T) {
		fh := fileHeader(t, "avatar.txt", "text/plain", pngHeader)
		mt, err := file.DetectMIMEType(fh)
		require.NoError(t, err)
		assert.Equal(t, "image/png", mt)
	})

	t.Run("falls back to header for unknown binary", func(t *testing.T) {
		fh := fileHeader(t, "data.bin", "application/x-custom", []byte{0x00, 0x01, 0x02, 0xff})
		mt, err := file.DetectMIMEType(fh)
		require.NoError(t, err)
		assert.Equal(t, "application/x-custom", mt)
	})

	t.Run("nil header", func(t *testing.T) {
		_, err := file.DetectMIMEType(nil)
		assert.ErrorIs(t, err, file.ErrNilFileHeader)
	})
}

func TestMatchMIME(t *testing.T) {
	t.Parallel()

	assert.True(t, file.MatchMIME("image/png", "image/png"))
	assert.True(t, file.MatchMIME("image/png", "image/*"))
	assert.True(t, file.MatchMIME("IMAGE/PNG", " image/* "))
	assert.True(t, file.MatchMIME("application/pdf", "*/*"))
	assert.False(t, file.MatchMIME("image/png", "image/jpeg"))
	assert.False(t, file.MatchMIME("imagery/png", "image/*"))
}

func TestCategories(t *testing.T) {
	png := fileHeader(t, "a.png", "", pngHeader)
	pdf := fileHeader(t, "doc.pdf", "", pdfHeader)
	fake := fileHeader(t, "fake.png", "", []byte("just some text"))

	assert.True(t, file.IsImage(png))
	assert.False(t, file.IsImage(pdf))
	assert.False(t, file.IsImage(fake), "content wins over extension")
	assert.True(t, file.IsPDF(pdf))
	assert.False(t, file.IsPDF(png))
	assert.False(t, file.IsVideo(png))
	assert.False(t, file.IsAudio(nil))
	assert.Equal(t, ".png", file.Extension(png))
	assert.Equal(t, "", file.Extension(nil))
}
