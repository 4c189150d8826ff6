package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagPrefersQueryParam(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en-US"})
	req.Header.Set("Accept-Language", "en-US")

	tag, persist := ResolveTag(req)
	if tag != language.MustParse("pt-BR") {
		t.Fatalf("tag = %s, want pt-BR", tag)
	}
	if !persist {
		t.Fatal("expected query language to be persisted")
	}
}

func TestResolveTagFallsBackToCookieThenHeader(t *testing.T) {
	t.Parallel()

	cookieReq := httptest.NewRequest(http.MethodGet, "/", nil)
	cookieReq.AddCookie(&http.Cookie{Name: LangCookieName, Value: "pt-BR"})
	if tag, persist := ResolveTag(cookieReq); tag != language.MustParse("pt-BR") || persist {
		t.Fatalf("cookie tag = %s persist=%v", tag, persist)
	}

	headerReq := httptest.NewRequest(http.MethodGet, "/", nil)
	headerReq.Header.Set("Accept-Language", "pt-PT;q=0.9, fr;q=0.5")
	if tag, _ := ResolveTag(headerReq); tag != language.MustParse("pt-BR") {
		t.Fatalf("header tag = %s, want pt-BR", tag)
	}
}

func TestResolveTagIgnoresUnsupportedValues(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=!!", nil)
	if tag, persist := ResolveTag(req); tag != Default() || persist {
		t.Fatalf("tag = %s persist=%v, want default", tag, persist)
	}
	if tag, _ := ResolveTag(nil); tag != Default() {
		t.Fatalf("nil request tag = %s", tag)
	}
}

func TestResolveLocalizerSetsCookieForExplicitChoice(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/about?lang=pt-BR", nil)

	printer, tag := ResolveLocalizer(rec, req)
	if tag != language.MustParse("pt-BR") {
		t.Fatalf("tag = %s", tag)
	}
	if got := printer.Sprintf("nav.about"); got != "Sobre" {
		t.Fatalf("nav.about = %q, want %q", got, "Sobre")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "pt-BR" {
		t.Fatalf("cookies = %+v", cookies)
	}
}

func TestLanguageURLReplacesParam(t *testing.T) {
	t.Parallel()

	got := LanguageURL("/projects", "category=Web&lang=en-US", "pt-BR")
	if got != "/projects?category=Web&lang=pt-BR" {
		t.Fatalf("LanguageURL = %q", got)
	}
	if got := LanguageURL("", "", "en-US"); got != "/?lang=en-US" {
		t.Fatalf("LanguageURL empty = %q", got)
	}
}

func TestLanguageOptionsMarksActive(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	options := LanguageOptions(req, language.MustParse("pt-BR"))
	if len(options) != 2 {
		t.Fatalf("options = %d, want 2", len(options))
	}
	if options[0].Active || !options[1].Active {
		t.Fatalf("active flags = %v %v", options[0].Active, options[1].Active)
	}
	if options[1].URL != "/contact?lang=pt-BR" {
		t.Fatalf("option url = %q", options[1].URL)
	}
}
