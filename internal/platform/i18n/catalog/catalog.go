// Package catalog loads localized tracker strings and registers them with
// golang.org/x/text/message.
//
// Catalog files live at locales/<locale>/<namespace>.yaml. Every key must be
// prefixed by its namespace, and a key may be defined once per locale.
package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const (
	// BaseLocale is the canonical source locale for catalogs.
	BaseLocale = "en-US"
)

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle contains all locale catalogs.
type Bundle struct {
	locales map[string]map[string]string
}

//go:embed locales/*/*.yaml
var embeddedCatalogFS embed.FS

var defaultBundle = mustLoadAndRegisterEmbedded()

// Default returns the process-wide embedded catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads catalog files from the provided filesystem.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := bundle.addFile(p, file); err != nil {
			return nil, err
		}
	}

	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return bundle, nil
}

func (b *Bundle) addFile(p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	namespaceFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	namespace := strings.TrimSpace(file.Namespace)
	if namespace != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", p, namespace, namespaceFromPath)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages are required", p)
	}

	messages, ok := b.locales[locale]
	if !ok {
		messages = map[string]string{}
		b.locales[locale] = messages
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if !strings.HasPrefix(key, namespace+".") {
			return fmt.Errorf("catalog %s: key %q must be prefixed by namespace %q", p, key, namespace)
		}
		if _, exists := messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		messages[key] = value
	}
	return nil
}

// Register registers all catalog messages with x/text/message, under both
// the full locale tag and its base language.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, _ := tag.Base(); base.String() != "und" {
			if baseTag, err := language.Parse(base.String()); err == nil && baseTag != tag {
				tags = append(tags, baseTag)
			}
		}
		for key, value := range b.locales[locale] {
			for _, registerTag := range tags {
				if err := message.SetString(registerTag, key, value); err != nil {
					return fmt.Errorf("register %s/%s: %w", locale, key, err)
				}
			}
		}
	}
	return nil
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns all available locale identifiers.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Message returns one message value with base-locale fallback.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if value, ok := b.locales[strings.TrimSpace(locale)][key]; ok {
		return value, true
	}
	value, ok := b.locales[BaseLocale][key]
	return value, ok
}

// LocaleMessages returns a copy of every message defined for locale,
// without base-locale fallback.
func (b *Bundle) LocaleMessages(locale string) map[string]string {
	out := map[string]string{}
	if b == nil {
		return out
	}
	for key, value := range b.locales[strings.TrimSpace(locale)] {
		out[key] = value
	}
	return out
}

// Namespaces returns the sorted namespaces that have keys in locale.
func (b *Bundle) Namespaces(locale string) []string {
	set := map[string]struct{}{}
	for key := range b.LocaleMessages(locale) {
		if namespace, _, ok := strings.Cut(key, "."); ok {
			set[namespace] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for namespace := range set {
		out = append(out, namespace)
	}
	sort.Strings(out)
	return out
}

// NamespaceMessages returns the messages of locale that belong to namespace.
func (b *Bundle) NamespaceMessages(locale, namespace string) map[string]string {
	out := map[string]string{}
	prefix := namespace + "."
	for key, value := range b.LocaleMessages(locale) {
		if strings.HasPrefix(key, prefix) {
			out[key] = value
		}
	}
	return out
}

// Tag resolves a requested language to the closest supported locale tag.
func (b *Bundle) Tag(requested string) language.Tag {
	locales := b.Locales()
	supported := make([]language.Tag, 0, len(locales)+1)
	supported = append(supported, language.MustParse(BaseLocale))
	for _, locale := range locales {
		if locale != BaseLocale {
			supported = append(supported, language.MustParse(locale))
		}
	}
	want, err := language.Parse(strings.TrimSpace(requested))
	if err != nil {
		return supported[0]
	}
	_, index, confidence := language.NewMatcher(supported).Match(want)
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}

func mustLoadAndRegisterEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}
