package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if got, want := bundle.Locales(), []string{"en-US", "pt-BR"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("locales = %v, want %v", got, want)
	}
}

func TestEmbeddedLocalesShareKeys(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range bundle.Locales() {
		if missing := bundle.MissingKeys(locale); len(missing) > 0 {
			t.Fatalf("locale %s is missing keys %v", locale, missing)
		}
	}
}

func TestMissingKeysReportsGaps(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "a.key": "a"
  "b.key": "b"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/pt-BR/core.yaml"), `locale: "pt-BR"
namespace: "core"
messages:
  "a.key": "a"
`)

	bundle, err := LoadFromFS(os.DirFS(tempDir))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := bundle.MissingKeys("pt-BR"); !reflect.DeepEqual(got, []string{"b.key"}) {
		t.Fatalf("missing = %v, want [b.key]", got)
	}
	if got := bundle.MissingKeys("fr-FR"); len(got) != 2 {
		t.Fatalf("unknown locale should miss every key, got %v", got)
	}
}

func TestLoadFromFSRejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{
			name: "duplicate key across namespaces",
			files: map[string]string{
				"locales/en-US/core.yaml":  "locale: \"en-US\"\nnamespace: \"core\"\nmessages:\n  \"a.key\": \"a\"\n",
				"locales/en-US/users.yaml": "locale: \"en-US\"\nnamespace: \"users\"\nmessages:\n  \"a.key\": \"b\"\n",
			},
		},
		{
			name: "locale mismatch",
			files: map[string]string{
				"locales/en-US/core.yaml": "locale: \"pt-BR\"\nnamespace: \"core\"\nmessages:\n  \"a.key\": \"a\"\n",
			},
		},
		{
			name: "namespace mismatch",
			files: map[string]string{
				"locales/en-US/core.yaml": "locale: \"en-US\"\nnamespace: \"users\"\nmessages:\n  \"a.key\": \"a\"\n",
			},
		},
		{
			name: "empty messages",
			files: map[string]string{
				"locales/en-US/core.yaml": "locale: \"en-US\"\nnamespace: \"core\"\nmessages: {}\n",
			},
		},
		{
			name: "invalid yaml",
			files: map[string]string{
				"locales/en-US/core.yaml": "locale: [unterminated\n",
			},
		},
		{
			name: "missing base locale",
			files: map[string]string{
				"locales/pt-BR/core.yaml": "locale: \"pt-BR\"\nnamespace: \"core\"\nmessages:\n  \"a.key\": \"a\"\n",
			},
		},
		{
			name:  "no files",
			files: map[string]string{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tempDir := t.TempDir()
			for name, content := range tc.files {
				mustWriteFile(t, filepath.Join(tempDir, name), content)
			}
			if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle := Default()
	value, ok := bundle.Message("fr-FR", "users.action.save")
	if !ok || value != "Save" {
		t.Fatalf("Message = %q, %v; want %q, true", value, ok, "Save")
	}
	if value, _ := bundle.Message("pt-BR", "users.action.save"); value != "Salvar" {
		t.Fatalf("pt-BR save = %q, want Salvar", value)
	}
	if _, ok := bundle.Message("en-US", " "); ok {
		t.Fatal("expected blank key to miss")
	}
}

func TestCatalogPrinters(t *testing.T) {
	cat := message.Catalog(Default().Catalog())

	tests := []struct {
		tag  string
		key  string
		args []any
		want string
	}{
		{tag: "pt-BR", key: "users.action.delete", want: "Deletar"},
		{tag: "pt", key: "users.action.delete", want: "Deletar"},
		{tag: "en", key: "users.pagination.range", args: []any{1, 10, 42}, want: "1-10 of 42"},
		{tag: "pt-BR", key: "users.pagination.range", args: []any{1, 10, 42}, want: "1-10 de 42"},
	}
	for _, tc := range tests {
		printer := message.NewPrinter(language.MustParse(tc.tag), cat)
		if got := printer.Sprintf(tc.key, tc.args...); got != tc.want {
			t.Fatalf("%s %s = %q, want %q", tc.tag, tc.key, got, tc.want)
		}
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
