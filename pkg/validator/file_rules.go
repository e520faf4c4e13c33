package validator

import (
	"strings"

	"github.com/dmitrymomot/formkit/pkg/file"
)

// FileRequired passes when at least one file is present.
func FileRequired(value any, _ ...string) bool {
	return len(toFiles(value)) > 0
}

// MinFiles: minFiles:n.
func MinFiles(value any, params ...string) bool {
	return len(toFiles(value)) >= atoi(params[0])
}

// MaxFiles: maxFiles:n.
func MaxFiles(value any, params ...string) bool {
	return len(toFiles(value)) <= atoi(params[0])
}

// MaxSize: maxSize:5MB. Every file must fit.
func MaxSize(value any, params ...string) bool {
	limit, err := parseSize(params[0])
	if err != nil {
		return false
	}
	for _, fh := range toFiles(value) {
		if fh.Size > limit {
			return false
		}
	}
	return true
}

// MinSize: minSize:1KB. Every file must reach it.
func MinSize(value any, params ...string) bool {
	limit, err := parseSize(params[0])
	if err != nil {
		return false
	}
	for _, fh := range toFiles(value) {
		if fh.Size < limit {
			return false
		}
	}
	return true
}

// Accept: accept:image/png:image/*. Every file's detected MIME type must match
// one of the patterns.
func Accept(value any, params ...string) bool {
	for _, fh := range toFiles(value) {
		mt, err := file.DetectMIMEType(fh)
		if err != nil {
			return false
		}
		matched := false
		for _, pattern := range params {
			if file.MatchMIME(mt, pattern) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// Extension: extension:jpg:.png. Leading dots are optional, comparison is case-insensitive.
func Extension(value any, params ...string) bool {
	for _, fh := range toFiles(value) {
		ext := strings.TrimPrefix(file.Extension(fh), ".")
		matched := false
		for _, p := range params {
			if strings.EqualFold(ext, strings.TrimPrefix(p, ".")) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func Image(value any, _ ...string) bool {
	return allFiles(value, file.IsImage)
}

func Video(value any, _ ...string) bool {
	return allFiles(value, file.IsVideo)
}

func Audio(value any, _ ...string) bool {
	return allFiles(value, file.IsAudio)
}

func PDF(value any, _ ...string) bool {
	return allFiles(value, file.IsPDF)
}
