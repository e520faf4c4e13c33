package file

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// sniffLen is the maximum number of bytes http.DetectContentType considers.
const sniffLen = 512

// genericMIMEType is what DetectContentType returns when it has no idea.
const genericMIMEType = "application/octet-stream"

var categoryExtensions = map[string][]string{
	"image": {".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".bmp", ".tiff", ".tif", ".heic", ".heif", ".avif"},
	"video": {".mp4", ".mpeg", ".mpg", ".webm", ".mov", ".avi", ".flv", ".3gp", ".mkv"},
	"audio": {".mp3", ".ogg", ".wav", ".aac", ".m4a", ".opus", ".flac"},
}

// Extension returns the lower-cased extension including the dot.
func Extension(fh *multipart.FileHeader) string {
	if fh == nil {
		return ""
	}
	return strings.ToLower(filepath.Ext(fh.Filename))
}

// DetectMIMEType sniffs the file content. It falls back to the part's
// Content-Type header, then to the extension, when sniffing only yields
// application/octet-stream.
func DetectMIMEType(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", ErrNilFileHeader
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	detected := mediaType(http.DetectContentType(buf[:n]))
	if detected != genericMIMEType && n > 0 {
		return detected, nil
	}
	if ct := mediaType(fh.Header.Get("Content-Type")); ct != "" {
		return ct, nil
	}
	if byExt := mediaType(mime.TypeByExtension(Extension(fh))); byExt != "" {
		return byExt, nil
	}
	return detected, nil
}

// MatchMIME reports whether mimeType satisfies pattern. Patterns are exact
// media types ("image/png"), type wildcards ("image/*") or "*/*".
func MatchMIME(mimeType, pattern string) bool {
	mimeType = strings.ToLower(mimeType)
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if pattern == "*/*" || pattern == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
		return strings.HasPrefix(mimeType, prefix+"/")
	}
	return mimeType == pattern
}

// IsImage checks if the file is an image.
func IsImage(fh *multipart.FileHeader) bool {
	return isCategory(fh, "image")
}

// IsVideo checks if the file is a video.
func IsVideo(fh *multipart.FileHeader) bool {
	return isCategory(fh, "video")
}

// IsAudio checks if the file is an audio file.
func IsAudio(fh *multipart.FileHeader) bool {
	return isCategory(fh, "audio")
}

// IsPDF checks if the file is a PDF document.
func IsPDF(fh *multipart.FileHeader) bool {
	if fh == nil {
		return false
	}
	if mt, err := DetectMIMEType(fh); err == nil && mt != genericMIMEType {
		return mt == "application/pdf"
	}
	return Extension(fh) == ".pdf"
}

func isCategory(fh *multipart.FileHeader, category string) bool {
	if fh == nil {
		return false
	}
	if mt, err := DetectMIMEType(fh); err == nil && mt != genericMIMEType {
		return MatchMIME(mt, category+"/*")
	}
	ext := Extension(fh)
	for _, e := range categoryExtensions[category] {
		if e == ext {
			return true
		}
	}
	return false
}

func mediaType(ct string) string {
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return mt
}
