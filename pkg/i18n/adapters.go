package i18n

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// TranslationAdapter loads catalogs from some storage.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves catalogs from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return map[string]map[string]any{}, nil
	}
	return a.Data, nil
}

// FileAdapter reads a single catalog file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates an adapter for path. A nil parser is chosen from the extension on Load.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	parser := a.parser
	if parser == nil {
		p, err := ParserForFile(a.path)
		if err != nil {
			return nil, err
		}
		parser = p
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	translations, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", a.path, err))
	}
	return translations, nil
}

// ContentAdapter parses catalog content held in memory, such as an embedded file.
type ContentAdapter struct {
	parser  Parser
	content []byte
}

func NewContentAdapter(parser Parser, content []byte) *ContentAdapter {
	return &ContentAdapter{parser: parser, content: content}
}

func (a *ContentAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil {
		return nil, ErrUnsupportedFile
	}
	translations, err := a.parser.Parse(ctx, a.content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return translations, nil
}
