package catalog

import (
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestDefaultBundleTranslatesEveryBaseKey(t *testing.T) {
	bundle := Default()
	for _, tag := range bundle.Tags() {
		if missing := bundle.MissingKeys(tag.String()); len(missing) > 0 {
			t.Fatalf("locale %s missing keys: %v", tag, missing)
		}
	}
}

func TestDefaultBundlePrintsLocalizedMessages(t *testing.T) {
	cat := Default().Catalog()
	en := message.NewPrinter(language.MustParse("en-US"), message.Catalog(cat))
	pt := message.NewPrinter(language.MustParse("pt-BR"), message.Catalog(cat))

	if got := en.Sprintf("resume.coming_soon"); got != "Resume coming soon." {
		t.Fatalf("en resume.coming_soon = %q", got)
	}
	if got := pt.Sprintf("resume.coming_soon"); got == "resume.coming_soon" || got == "Resume coming soon." {
		t.Fatalf("pt resume.coming_soon = %q, want translated text", got)
	}
	if got := en.Sprintf("validation.name_too_long", "100"); got != "Name must be at most 100 characters" {
		t.Fatalf("en validation.name_too_long = %q", got)
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/pt-BR.yaml": {Data: []byte("locale: pt-BR\nmessages:\n  a: b\n")},
	}
	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US.yaml": {Data: []byte("locale: pt-BR\nmessages:\n  a: b\n")},
	}
	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSReportsMissingTranslations(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US.yaml": {Data: []byte("locale: en-US\nmessages:\n  a: A\n  b: B\n")},
		"locales/pt-BR.yaml": {Data: []byte("locale: pt-BR\nmessages:\n  a: Á\n")},
	}
	bundle, err := LoadFromFS(fsys)
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	missing := bundle.MissingKeys("pt-BR")
	if len(missing) != 1 || missing[0] != "b" {
		t.Fatalf("MissingKeys = %v, want [b]", missing)
	}
}
