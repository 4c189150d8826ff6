// Package catalog loads the embedded locale message files into an x/text
// catalog used by every page printer.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the canonical source locale; other locales fall back to it.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadEmbedded()

// File is the on-disk shape of one locale catalog.
type File struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds parsed locale files and the compiled x/text catalog.
type Bundle struct {
	locales map[string]map[string]string
	catalog catalog.Catalog
	tags    []language.Tag
}

// Default returns the process-wide embedded bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadFromFS parses every locales/*.yaml file in fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	base := language.MustParse(BaseLocale)
	builder := catalog.NewBuilder(catalog.Fallback(base))
	bundle := &Bundle{locales: map[string]map[string]string{}}

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file File
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		locale := strings.TrimSpace(file.Locale)
		if want := strings.TrimSuffix(path.Base(p), ".yaml"); locale != want {
			return nil, fmt.Errorf("catalog %s: locale %q must match file name %q", p, locale, want)
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: parse locale: %w", p, err)
		}
		for key, msg := range file.Messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("catalog %s: set %q: %w", p, key, err)
			}
		}
		bundle.locales[locale] = file.Messages
		bundle.tags = append(bundle.tags, tag)
	}

	if _, ok := bundle.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	bundle.catalog = builder
	return bundle, nil
}

// Catalog returns the compiled catalog for message printers.
func (b *Bundle) Catalog() catalog.Catalog {
	return b.catalog
}

// Tags returns the locales present in the bundle, in file order.
func (b *Bundle) Tags() []language.Tag {
	return append([]language.Tag(nil), b.tags...)
}

// Keys returns the sorted message keys defined for locale.
func (b *Bundle) Keys(locale string) []string {
	messages := b.locales[locale]
	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// MissingKeys lists base-locale keys that locale does not translate.
func (b *Bundle) MissingKeys(locale string) []string {
	messages := b.locales[locale]
	var missing []string
	for _, key := range b.Keys(BaseLocale) {
		if _, ok := messages[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

func mustLoadEmbedded() *Bundle {
	bundle, err := LoadFromFS(embeddedFS)
	if err != nil {
		panic(fmt.Sprintf("load embedded locale catalogs: %v", err))
	}
	return bundle
}
