// Package i18nstatus reports how completely each locale translates the
// base tracker catalog.
package i18nstatus

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	i18ncatalog "github.com/louisbranch/hitpoints/internal/platform/i18n/catalog"
)

// Report is the coverage of every locale against the base locale.
type Report struct {
	BaseLocale string         `json:"base_locale"`
	Locales    []LocaleStatus `json:"locales"`
}

// LocaleStatus is the coverage of one locale.
type LocaleStatus struct {
	Locale      string            `json:"locale"`
	BaseKeys    int               `json:"base_keys"`
	Translated  int               `json:"translated"`
	Completion  float64           `json:"completion"`
	Namespaces  []NamespaceStatus `json:"namespaces"`
	MissingKeys []string          `json:"missing_keys"`
	ExtraKeys   []string          `json:"extra_keys"`
}

// NamespaceStatus is the coverage of one namespace within a locale.
type NamespaceStatus struct {
	Namespace  string  `json:"namespace"`
	BaseKeys   int     `json:"base_keys"`
	Translated int     `json:"translated"`
	Completion float64 `json:"completion"`
}

// Complete reports whether every locale defines exactly the base keys.
func (r Report) Complete() bool {
	for _, locale := range r.Locales {
		if len(locale.MissingKeys) > 0 || len(locale.ExtraKeys) > 0 {
			return false
		}
	}
	return true
}

// Config holds i18n status command configuration.
type Config struct {
	BaseLocale string
	Format     string
	Strict     bool
}

// ParseConfig parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{BaseLocale: i18ncatalog.BaseLocale, Format: "markdown"}
	fs.StringVar(&cfg.BaseLocale, "base-locale", cfg.BaseLocale, "base locale used as translation source of truth")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: markdown or json")
	fs.BoolVar(&cfg.Strict, "strict", false, "fail when any locale has missing or extra keys")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Format != "markdown" && cfg.Format != "json" {
		return Config{}, fmt.Errorf("unknown format %q", cfg.Format)
	}
	return cfg, nil
}

// ErrIncomplete is returned in strict mode when a locale drifts from the base.
var ErrIncomplete = errors.New("locale catalogs are incomplete")

// Run writes the status report for the embedded catalog to out.
func Run(cfg Config, out io.Writer) error {
	bundle, err := i18ncatalog.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load i18n catalogs: %w", err)
	}
	if !bundle.HasLocale(cfg.BaseLocale) {
		return fmt.Errorf("base locale %q is missing from catalogs", cfg.BaseLocale)
	}

	rep := Build(bundle, cfg.BaseLocale)
	if cfg.Format == "json" {
		err = WriteJSON(out, rep)
	} else {
		err = WriteMarkdown(out, rep)
	}
	if err != nil {
		return err
	}
	if cfg.Strict && !rep.Complete() {
		return ErrIncomplete
	}
	return nil
}

// Build compares every locale of bundle against baseLocale.
func Build(bundle *i18ncatalog.Bundle, baseLocale string) Report {
	baseMessages := bundle.LocaleMessages(baseLocale)

	locales := bundle.Locales()
	statuses := make([]LocaleStatus, 0, len(locales))
	for _, locale := range locales {
		localeMessages := bundle.LocaleMessages(locale)
		missing := diffKeys(baseMessages, localeMessages)
		translated := len(baseMessages) - len(missing)

		namespaceSet := map[string]struct{}{}
		for _, namespace := range bundle.Namespaces(baseLocale) {
			namespaceSet[namespace] = struct{}{}
		}
		for _, namespace := range bundle.Namespaces(locale) {
			namespaceSet[namespace] = struct{}{}
		}

		namespaces := make([]NamespaceStatus, 0, len(namespaceSet))
		for _, namespace := range sortedKeys(namespaceSet) {
			baseNS := bundle.NamespaceMessages(baseLocale, namespace)
			nsTranslated := len(baseNS) - len(diffKeys(baseNS, bundle.NamespaceMessages(locale, namespace)))
			namespaces = append(namespaces, NamespaceStatus{
				Namespace:  namespace,
				BaseKeys:   len(baseNS),
				Translated: nsTranslated,
				Completion: percent(nsTranslated, len(baseNS)),
			})
		}

		statuses = append(statuses, LocaleStatus{
			Locale:      locale,
			BaseKeys:    len(baseMessages),
			Translated:  translated,
			Completion:  percent(translated, len(baseMessages)),
			Namespaces:  namespaces,
			MissingKeys: missing,
			ExtraKeys:   diffKeys(localeMessages, baseMessages),
		})
	}
	return Report{BaseLocale: baseLocale, Locales: statuses}
}

// WriteJSON writes rep as indented JSON.
func WriteJSON(w io.Writer, rep Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rep); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}
	return nil
}

// WriteMarkdown writes rep as markdown tables.
func WriteMarkdown(w io.Writer, rep Report) error {
	var b strings.Builder
	b.WriteString("# I18n Status\n\n")
	fmt.Fprintf(&b, "Base locale: `%s`.\n\n", rep.BaseLocale)

	b.WriteString("| Locale | Base Keys | Translated | Missing | Extra | Completion |\n")
	b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: |\n")
	for _, locale := range rep.Locales {
		fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %d | %.1f%% |\n",
			locale.Locale, locale.BaseKeys, locale.Translated, len(locale.MissingKeys), len(locale.ExtraKeys), locale.Completion)
	}

	for _, locale := range rep.Locales {
		fmt.Fprintf(&b, "\n## `%s`\n\n", locale.Locale)
		b.WriteString("| Namespace | Base Keys | Translated | Completion |\n")
		b.WriteString("| --- | ---: | ---: | ---: |\n")
		for _, ns := range locale.Namespaces {
			fmt.Fprintf(&b, "| `%s` | %d | %d | %.1f%% |\n", ns.Namespace, ns.BaseKeys, ns.Translated, ns.Completion)
		}
		writeKeyList(&b, "Missing Keys", locale.MissingKeys)
		writeKeyList(&b, "Extra Keys", locale.ExtraKeys)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}
	return nil
}

func writeKeyList(b *strings.Builder, title string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(b, "\n### %s\n\n", title)
	for _, key := range keys {
		fmt.Fprintf(b, "- `%s`\n", key)
	}
}

// diffKeys returns the sorted keys of from that are absent in to.
func diffKeys(from, to map[string]string) []string {
	out := make([]string, 0)
	for key := range from {
		if _, ok := to[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func sortedKeys(entries map[string]struct{}) []string {
	out := make([]string, 0, len(entries))
	for key := range entries {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

func percent(numerator, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}
