package form

// Config holds form defaults that can come from the environment.
//
//	var cfg form.Config
//	if err := config.Load(&cfg); err != nil { ... }
//	f, err := form.New(form.WithConfig(cfg), ...)
type Config struct {
	ValidateOnEvent string `env:"FORM_VALIDATE_ON_EVENT" envDefault:"change"`
	ErrorHelp       string `env:"FORM_ERROR_HELP"`
	Lang            string `env:"FORM_LANG" envDefault:"en"`
}
