package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrEmptyLanguage        = errors.New("empty language code in translations")
	ErrLoadingFileCancelled = errors.New("loading translation file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrUnsupportedFile      = errors.New("unsupported translation file format")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")
	ErrInvalidStructure     = errors.New("invalid translation structure")
)
