// Package i18n translates validation messages and other UI strings from
// message catalogs.
//
// Catalogs map a language to a (possibly nested) set of keys:
//
//	en:
//	  signup:
//	    username: "Pick a username of at least %{param} characters"
//	de:
//	  signup:
//	    username: "Mindestens %{param} Zeichen"
//
// A Translator loads catalogs once through a TranslationAdapter (MapAdapter
// for in-memory data, FileAdapter for a YAML or JSON file) and resolves
// dot-separated keys. Placeholders use the %{name} form and are filled from
// key/value argument pairs:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFileAdapter(i18n.NewYAMLParser(), "messages.yaml"))
//	msg := tr.T("de", "signup.username", "param", "3")
//
// Missing languages fall back to the default language, missing keys fall back
// to the key itself unless WithFallbackToKey(false) is set. The form package
// relies on the key fallback: literal messages pass through untouched.
package i18n
