package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/httpform"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

var signupFields = []httpform.Spec{
	{
		Name:     "username",
		Kind:     form.KindText,
		Rules:    "required,length:3:20,slug",
		Sanitize: sanitizer.Compose(sanitizer.StripControl, sanitizer.Trim),
		Help: form.HelpRules(map[string]string{
			"required": "signup.username.required",
			"length":   "signup.username.length",
			"slug":     "signup.username.slug",
		}),
	},
	{
		Name:     "email",
		Kind:     form.KindOther,
		Rules:    "required,email",
		Help:     form.HelpText("signup.email"),
		Sanitize: sanitizer.Email,
	},
	{
		Name:  "password",
		Kind:  form.KindOther,
		Rules: "required,minLength:8",
		Help: form.HelpRules(map[string]string{
			"required":  "signup.password.required",
			"minLength": "signup.password.minLength",
		}),
	},
	{Name: "terms", Kind: form.KindCheckbox, Rules: "checked", Help: form.HelpText("signup.terms")},
	{
		Name:  "avatar",
		Kind:  form.KindFile,
		Rules: "maxFiles:1,maxSize:2MB,image",
		Help: form.HelpRules(map[string]string{
			"maxFiles": "signup.avatar.maxFiles",
			"maxSize":  "signup.avatar.maxSize",
			"image":    "signup.avatar.image",
		}),
	},
}

type app struct {
	formCfg form.Config
	tr      *i18n.Translator
	matcher language.Matcher
	langs   []string
	log     *slog.Logger
}

func newApp(formCfg form.Config, tr *i18n.Translator, log *slog.Logger) *app {
	langs := tr.SupportedLanguages()
	tags := make([]language.Tag, 0, len(langs)+1)
	// The first tag is the matcher's fallback.
	tags = append(tags, language.Make(formCfg.Lang))
	for _, l := range langs {
		tags = append(tags, language.Make(l))
	}
	return &app{
		formCfg: formCfg,
		tr:      tr,
		matcher: language.NewMatcher(tags),
		langs:   langs,
		log:     log.With(logger.Component("formdemo")),
	}
}

func newRouter(a *app) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	r.Get("/healthz", httpserver.Health(a.log))
	r.Post("/signup", a.signup)
	return r
}

type signupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
}

func (a *app) signup(w http.ResponseWriter, r *http.Request) {
	log := a.log.With(logger.RequestID(middleware.GetReqID(r.Context())))

	var accepted form.Values
	f, err := form.New(
		form.WithErrorHelp(form.HelpText("form.invalid")),
		form.WithConfig(a.formCfg),
		form.WithLanguage(a.language(r)),
		form.WithTranslator(a.tr),
		form.WithLogger(log),
		form.WithValidSubmit(func(vals form.Values) { accepted = vals }),
	)
	if err != nil {
		log.ErrorContext(r.Context(), "form setup failed", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	out, err := httpform.Submit(r, f, signupFields...)
	if err != nil {
		if form.IsConfigurationError(err) {
			log.ErrorContext(r.Context(), "signup form misconfigured", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !out.Valid {
		log.InfoContext(r.Context(), "signup rejected", logger.Fields(out.Failed))
		httpform.WriteErrors(w, out.Errors)
		return
	}

	resp := signupResponse{
		Username: accepted.String("username"),
		Email:    accepted.String("email"),
	}
	if files := accepted.Files("avatar"); len(files) > 0 {
		resp.Avatar = files[0].Filename
	}

	log.InfoContext(r.Context(), "signup accepted", logger.Field(resp.Username))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(resp)
}

// language picks the catalog language from Accept-Language.
func (a *app) language(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return lang
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return a.formCfg.Lang
	}
	_, idx, _ := a.matcher.Match(tags...)
	if idx == 0 || idx > len(a.langs) {
		return a.formCfg.Lang
	}
	return a.langs[idx-1]
}
