package form

import (
	"log/slog"
	"maps"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Failures maps failing field names to a message detail (string, error, bool or nil).
type Failures map[string]any

// Translator renders message keys for a language.
type Translator interface {
	T(lang, key string, args ...string) string
}

type config struct {
	model       map[string]any
	validateOne func(name string, value any, vals Values) Result
	validateAll func(vals Values) Failures
	validateOn  string
	defaults    Help
	onValid     func(vals Values)
	onInvalid   func(failed []string, vals Values)
	logger      *slog.Logger
	standard    *validator.Registry
	file        *validator.Registry
	translator  Translator
	lang        string
}

// Option configures a Form.
type Option func(*config)

// WithModel sets initial values exposed through Form.Default.
func WithModel(model map[string]any) Option {
	return func(c *config) { c.model = maps.Clone(model) }
}

// WithValidateOne overrides validation of every single field.
func WithValidateOne(fn func(name string, value any, vals Values) Result) Option {
	return func(c *config) { c.validateOne = fn }
}

// WithValidateAll overrides whole-form validation. A nil or empty result means valid.
func WithValidateAll(fn func(vals Values) Failures) Option {
	return func(c *config) { c.validateAll = fn }
}

// WithValidateOnEvent sets the event that triggers field validation. Default "change".
func WithValidateOnEvent(event string) Option {
	return func(c *config) {
		if event != "" {
			c.validateOn = normalizeEvent(event)
		}
	}
}

// WithErrorHelp sets the message source used when a field has none for the failing rule.
func WithErrorHelp(help Help) Option {
	return func(c *config) { c.defaults = help }
}

// WithValidSubmit sets the handler called with the values of a valid submit. Required.
func WithValidSubmit(fn func(vals Values)) Option {
	return func(c *config) { c.onValid = fn }
}

// WithInvalidSubmit sets the handler called with failing names of an invalid submit.
func WithInvalidSubmit(fn func(failed []string, vals Values)) Option {
	return func(c *config) { c.onInvalid = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStandardRegistry replaces the registry used by non-file fields.
func WithStandardRegistry(r *validator.Registry) Option {
	return func(c *config) {
		if r != nil {
			c.standard = r
		}
	}
}

// WithFileRegistry replaces the registry used by file fields.
func WithFileRegistry(r *validator.Registry) Option {
	return func(c *config) {
		if r != nil {
			c.file = r
		}
	}
}

// WithTranslator renders rule failure messages as translation keys.
func WithTranslator(tr Translator) Option {
	return func(c *config) { c.translator = tr }
}

// WithLanguage sets the language passed to the translator. Default "en".
func WithLanguage(lang string) Option {
	return func(c *config) {
		if lang != "" {
			c.lang = lang
		}
	}
}

// WithConfig applies the non-empty settings of cfg.
func WithConfig(cfg Config) Option {
	return func(c *config) {
		WithValidateOnEvent(cfg.ValidateOnEvent)(c)
		WithLanguage(cfg.Lang)(c)
		if cfg.ErrorHelp != "" {
			c.defaults = HelpText(cfg.ErrorHelp)
		}
	}
}

// Form coordinates field registration, validation and submission.
type Form struct {
	cfg      config
	registry *Registry
	errors   *ErrorState
	log      *slog.Logger
	tiers    []tier
}

// New creates a Form. WithValidSubmit is required.
func New(opts ...Option) (*Form, error) {
	cfg := config{
		validateOn: "change",
		lang:       "en",
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.onValid == nil {
		return nil, ErrMissingSubmitHandler
	}
	if cfg.onInvalid == nil {
		cfg.onInvalid = func([]string, Values) {}
	}
	if cfg.standard == nil {
		cfg.standard = validator.NewStandard()
	}
	if cfg.file == nil {
		cfg.file = validator.NewFile()
	}

	compiler := &Compiler{
		Standard: cfg.standard,
		File:     cfg.file,
		Defaults: cfg.defaults,
	}
	if cfg.translator != nil {
		tr, lang := cfg.translator, cfg.lang
		compiler.Translate = func(key string, args ...string) string {
			return tr.T(lang, key, args...)
		}
	}

	f := &Form{
		cfg:      cfg,
		registry: NewRegistry(compiler),
		errors:   NewErrorState(),
		log:      cfg.logger.With(logger.Component("form")),
	}
	f.tiers = f.buildTiers()
	return f, nil
}

// Register adds a field. Configuration problems such as unknown rules are
// returned here instead of surfacing during validation.
func (f *Form) Register(field Field) error {
	if err := f.registry.Register(field); err != nil {
		f.log.Error("field registration failed", logger.Error(err))
		return err
	}
	f.log.Debug("field registered", logger.Field(field.Name()), logger.Kind(field.Kind()))
	return nil
}

// Unregister removes field. When no field is left under its name, the name's
// error entry is dropped too.
func (f *Form) Unregister(field Field) bool {
	removed, emptied := f.registry.unregister(field)
	if emptied {
		f.errors.Delete(field.Name())
	}
	if removed {
		f.log.Debug("field unregistered", logger.Field(field.Name()))
	}
	return removed
}

// Value returns the value of the single field registered as name.
func (f *Form) Value(name string) (any, error) {
	return f.registry.Value(name)
}

// Values snapshots all field values in registration order.
func (f *Form) Values() Values {
	return f.registry.Snapshot().Values()
}

// Names returns the registered names in registration order.
func (f *Form) Names() []string {
	return f.registry.Names()
}

// Errors returns the current error snapshot.
func (f *Form) Errors() Errors {
	return f.errors.Snapshot()
}

// ErrorState exposes the underlying state for change detection via Version.
func (f *Form) ErrorState() *ErrorState {
	return f.errors
}

// Error returns the entry for name.
func (f *Form) Error(name string) (ErrorEntry, bool) {
	return f.errors.Get(name)
}

// ClearErrors resets every field to unvalidated.
func (f *Form) ClearErrors() {
	f.errors.Clear()
}

// Default returns the model value for name.
func (f *Form) Default(name string) (any, bool) {
	v, ok := f.cfg.model[name]
	return v, ok
}

// Help returns the text a view shows under name: the stored message, or the
// field's help text when the error carries none, or the form default text.
func (f *Form) Help(name string) string {
	e, ok := f.errors.Get(name)
	if !ok || !e.Invalid {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}

	text := f.cfg.defaults.Text()
	if fields := f.registry.Fields(name); len(fields) == 1 {
		if help := fieldHelp(fields[0]); !help.IsZero() {
			text = help.Text()
		}
	}
	if text != "" && f.cfg.translator != nil {
		return f.cfg.translator.T(f.cfg.lang, text, "field", name)
	}
	return text
}
