package form

import (
	"mime/multipart"
	"slices"
	"sync"
)

// Input is a ready-made field usable by views, adapters and tests.
type Input struct {
	name       string
	kind       Kind
	rules      string
	help       Help
	validateOn string
	validate   func(value any, vals Values) Result

	mu      sync.RWMutex
	value   any
	checked bool
	files   []*multipart.FileHeader
}

// InputOption configures an Input.
type InputOption func(*Input)

// WithRules sets the rule string, e.g. "required,minLength:3".
func WithRules(rules string) InputOption {
	return func(in *Input) { in.rules = rules }
}

// WithValidate sets a field-local validator that replaces the rules.
func WithValidate(fn func(value any, vals Values) Result) InputOption {
	return func(in *Input) { in.validate = fn }
}

// WithHelp sets the error message source.
func WithHelp(help Help) InputOption {
	return func(in *Input) { in.help = help }
}

// WithValidateOn overrides the form's trigger event for this field.
func WithValidateOn(event string) InputOption {
	return func(in *Input) { in.validateOn = event }
}

func WithValue(v any) InputOption {
	return func(in *Input) { in.value = v }
}

func WithChecked(checked bool) InputOption {
	return func(in *Input) { in.checked = checked }
}

func WithFiles(files ...*multipart.FileHeader) InputOption {
	return func(in *Input) { in.files = files }
}

// NewInput creates an input of kind.
func NewInput(name string, kind Kind, opts ...InputOption) *Input {
	in := &Input{name: name, kind: kind}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

func (in *Input) Name() string       { return in.name }
func (in *Input) Kind() Kind         { return in.kind }
func (in *Input) Rules() string      { return in.rules }
func (in *Input) ErrorHelp() Help    { return in.help }
func (in *Input) ValidateOn() string { return in.validateOn }

func (in *Input) Validate(value any, vals Values) (Result, bool) {
	if in.validate == nil {
		return Result{}, false
	}
	return in.validate(value, vals), true
}

func (in *Input) Value() any {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.value
}

func (in *Input) SetValue(v any) {
	in.mu.Lock()
	in.value = v
	in.mu.Unlock()
}

func (in *Input) Checked() bool {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.checked
}

func (in *Input) SetChecked(checked bool) {
	in.mu.Lock()
	in.checked = checked
	in.mu.Unlock()
}

func (in *Input) Files() []*multipart.FileHeader {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return slices.Clone(in.files)
}

func (in *Input) SetFiles(files ...*multipart.FileHeader) {
	in.mu.Lock()
	in.files = files
	in.mu.Unlock()
}
