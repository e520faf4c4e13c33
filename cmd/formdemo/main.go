// Command formdemo serves a signup endpoint validated by the form engine.
package main

import (
	"context"
	_ "embed"
	"log/slog"
	"os"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

//go:embed messages.yaml
var defaultMessages []byte

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Service  string `env:"APP_NAME" envDefault:"formdemo"`
	LogLevel string `env:"LOG_LEVEL"`

	// Messages points to a YAML or JSON catalog replacing the embedded one.
	Messages string `env:"FORM_MESSAGES"`
}

func main() {
	ctx := context.Background()

	var cfg appConfig
	config.MustLoad(&cfg)

	opts := []logger.Option{logger.WithEnvironment(cfg.Env, cfg.Service)}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	log := logger.New(opts...)

	if err := run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "formdemo stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	var formCfg form.Config
	if err := config.Load(&formCfg); err != nil {
		return err
	}
	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	tr, err := newTranslator(ctx, cfg.Messages, formCfg.Lang, log)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(newApp(formCfg, tr, log)))
}

func newTranslator(ctx context.Context, path, lang string, log *slog.Logger) (*i18n.Translator, error) {
	var adapter i18n.TranslationAdapter = i18n.NewContentAdapter(i18n.NewYAMLParser(), defaultMessages)
	if path != "" {
		adapter = i18n.NewFileAdapter(nil, path)
	}
	return i18n.NewTranslator(ctx, adapter,
		i18n.WithDefaultLanguage(lang),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
}
