// Package catalog loads the embedded YAML message catalogs and exposes them
// as an x/text catalog.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	textcatalog "golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other catalog is checked against.
const BaseLocale = "en-US"

// catalogFile is one locales/<locale>/<namespace>.yaml document.
type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds the messages of every locale.
type Bundle struct {
	// messages maps locale to message key to text.
	messages map[string]map[string]string
	builder  *textcatalog.Builder
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var (
	defaultOnce   sync.Once
	defaultBundle *Bundle
)

// Default returns the bundle built from the embedded catalogs. It panics when
// the embedded files are invalid, which the package tests rule out.
func Default() *Bundle {
	defaultOnce.Do(func() {
		bundle, err := LoadEmbedded()
		if err != nil {
			panic(err)
		}
		defaultBundle = bundle
	})
	return defaultBundle
}

// LoadEmbedded loads the catalogs compiled into this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from fsys. Each
// file must declare the locale and namespace it is stored under, and a key
// may appear only once per locale.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{messages: map[string]map[string]string{}}
	for _, filePath := range paths {
		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", filePath, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", filePath, err)
		}
		if err := bundle.add(filePath, file); err != nil {
			return nil, err
		}
	}
	if _, ok := bundle.messages[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if err := bundle.build(); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (b *Bundle) add(filePath string, file catalogFile) error {
	wantLocale := path.Base(path.Dir(filePath))
	wantNamespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

	locale := strings.TrimSpace(file.Locale)
	if locale != wantLocale {
		return fmt.Errorf("catalog %s: locale %q must match directory %q", filePath, locale, wantLocale)
	}
	if namespace := strings.TrimSpace(file.Namespace); namespace != wantNamespace {
		return fmt.Errorf("catalog %s: namespace %q must match file name %q", filePath, namespace, wantNamespace)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages are required", filePath)
	}

	messages, ok := b.messages[locale]
	if !ok {
		messages = map[string]string{}
		b.messages[locale] = messages
	}
	for key, text := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", filePath)
		}
		if _, exists := messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", filePath, key, locale)
		}
		messages[key] = text
	}
	return nil
}

// build registers every locale with an x/text builder. A locale is also
// registered under its bare language so "pt" finds the pt-BR messages.
func (b *Bundle) build() error {
	base := language.MustParse(BaseLocale)
	b.builder = textcatalog.NewBuilder(textcatalog.Fallback(base))
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if lang, confidence := tag.Base(); confidence != language.No {
			if bare := language.Make(lang.String()); bare.String() != tag.String() {
				tags = append(tags, bare)
			}
		}
		for key, text := range b.messages[locale] {
			for _, registerTag := range tags {
				if err := b.builder.SetString(registerTag, key, text); err != nil {
					return fmt.Errorf("register %s/%s: %w", locale, key, err)
				}
			}
		}
	}
	return nil
}

// Catalog returns the x/text catalog for message printers.
func (b *Bundle) Catalog() textcatalog.Catalog {
	return b.builder
}

// Locales returns the available locales in sorted order.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.messages))
	for locale := range b.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Message returns the text for key in locale, falling back to BaseLocale.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	if text, ok := b.messages[strings.TrimSpace(locale)][key]; ok {
		return text, true
	}
	text, ok := b.messages[BaseLocale][key]
	return text, ok
}

// MissingKeys lists the base locale keys that locale does not translate.
func (b *Bundle) MissingKeys(locale string) []string {
	if b == nil {
		return nil
	}
	messages := b.messages[strings.TrimSpace(locale)]
	var missing []string
	for key := range b.messages[BaseLocale] {
		if _, ok := messages[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
