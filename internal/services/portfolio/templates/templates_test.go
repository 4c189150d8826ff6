package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/content"
	"github.com/louisbranch/portfolio/internal/platform/i18n"
	"github.com/louisbranch/portfolio/internal/services/portfolio/counter"
	"golang.org/x/net/html"
)

func testLocalizer() Localizer {
	return i18n.Printer(i18n.Default())
}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func parseFragment(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return doc
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == tag }
}

func byClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, field := range strings.Fields(attr(n, "class")) {
			if field == class {
				return true
			}
		}
		return false
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func TestProjectCardShowsFourStackItemsAndOverflow(t *testing.T) {
	t.Parallel()

	project := content.Project{
		Slug:  "ledger",
		Title: "ledger",
		Stack: content.StringList{"Go", "SQLite", "templ", "chi", "zap", "otel"},
	}
	doc := parseFragment(t, renderString(t, ProjectCard(testLocalizer(), project)))

	links := findAll(doc, byClass("project-card-link"))
	if len(links) != 1 {
		t.Fatalf("card links = %d, want 1", len(links))
	}
	if got := attr(links[0], "href"); got != "/projects/ledger" {
		t.Fatalf("href = %q, want %q", got, "/projects/ledger")
	}
	items := findAll(doc, func(n *html.Node) bool { return byTag("li")(n) })
	if len(items) != 5 {
		t.Fatalf("chips = %d, want 5", len(items))
	}
	if got := textOf(items[4]); got != "+2" {
		t.Fatalf("overflow chip = %q, want %q", got, "+2")
	}
	initial := findAll(doc, byClass("project-initial"))
	if len(initial) != 1 || textOf(initial[0]) != "l" {
		t.Fatalf("expected title initial placeholder without cover image")
	}
}

func TestProjectCardUsesCoverImage(t *testing.T) {
	t.Parallel()

	project := content.Project{Slug: "a", Title: "Atlas", CoverImageURL: "https://cdn.example.com/atlas.png"}
	doc := parseFragment(t, renderString(t, ProjectCard(testLocalizer(), project)))
	imgs := findAll(doc, byTag("img"))
	if len(imgs) != 1 {
		t.Fatalf("images = %d, want 1", len(imgs))
	}
	if got := attr(imgs[0], "src"); got != project.CoverImageURL {
		t.Fatalf("src = %q, want %q", got, project.CoverImageURL)
	}
	if len(findAll(doc, byClass("project-initial"))) != 0 {
		t.Fatalf("initial placeholder should not render with a cover image")
	}
	if len(findAll(doc, byClass("chips"))) != 0 {
		t.Fatalf("empty stack should not render chips")
	}
}

func TestNavbarMarksCurrentPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: "/"},
		{path: "/projects", want: "/projects"},
		{path: "/projects/ledger", want: "/projects"},
		{path: "/resume", want: "/resume"},
	}
	for _, tc := range tests {
		doc := parseFragment(t, renderString(t, Navbar(Chrome{Loc: testLocalizer(), CurrentPath: tc.path})))
		current := findAll(doc, func(n *html.Node) bool { return byTag("a")(n) && attr(n, "aria-current") == "page" })
		if len(current) != 1 {
			t.Fatalf("path %q: current links = %d, want 1", tc.path, len(current))
		}
		if got := attr(current[0], "href"); got != tc.want {
			t.Fatalf("path %q: current href = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestFooterRendersSocialLinksOnlyWhenPresent(t *testing.T) {
	t.Parallel()

	chrome := Chrome{Loc: testLocalizer(), Year: 2026}
	body := renderString(t, Footer(chrome))
	if strings.Contains(body, "GitHub") {
		t.Fatalf("footer rendered social links without settings: %q", body)
	}
	if !strings.Contains(body, "© 2026 All rights reserved.") {
		t.Fatalf("footer missing copyright: %q", body)
	}
	if !strings.Contains(body, "Mohd Irfan") {
		t.Fatalf("footer missing default owner name")
	}

	chrome.Settings = content.Settings{Name: "Ada", GitHub: "https://github.com/ada", Email: "ada@example.com"}
	doc := parseFragment(t, renderString(t, Footer(chrome)))
	social := findAll(doc, byClass("social"))
	if len(social) != 1 {
		t.Fatalf("social lists = %d, want 1", len(social))
	}
	links := findAll(social[0], byTag("a"))
	if len(links) != 2 {
		t.Fatalf("social links = %d, want 2", len(links))
	}
	if got := attr(links[1], "href"); got != "mailto:ada@example.com" {
		t.Fatalf("mail href = %q", got)
	}
}

func TestLayoutEscapesTitleAndRendersNotice(t *testing.T) {
	t.Parallel()

	chrome := Chrome{
		Title:  "<Projects>",
		Loc:    testLocalizer(),
		Notice: &Notice{Kind: "success", Message: "Message sent! I'll respond soon."},
	}
	body := renderString(t, Layout(chrome, templ.NopComponent))
	if strings.Contains(body, "<Projects>") {
		t.Fatalf("title was not escaped: %q", body)
	}
	doc := parseFragment(t, body)
	titles := findAll(doc, byTag("title"))
	if len(titles) != 1 || textOf(titles[0]) != "<Projects> | Mohd Irfan" {
		t.Fatalf("unexpected document title")
	}
	toasts := findAll(doc, byClass("toast-success"))
	if len(toasts) != 1 || textOf(toasts[0]) != "Message sent! I'll respond soon." {
		t.Fatalf("expected success toast")
	}
	if got := attr(findAll(doc, byTag("html"))[0], "lang"); got != "en-US" {
		t.Fatalf("lang = %q, want en-US", got)
	}
}

func TestHomeRendersMetricsWithFrames(t *testing.T) {
	t.Parallel()

	view := HomeView{
		Hero:    Hero{Name: "Ada", Title: "Engineer", Text: "Hello"},
		Metrics: []counter.Metric{{Label: "Projects", Value: 12, Suffix: "+"}},
	}
	doc := parseFragment(t, renderString(t, Home(testLocalizer(), view)))
	values := findAll(doc, byClass("metric-value"))
	if len(values) != 1 {
		t.Fatalf("metric values = %d, want 1", len(values))
	}
	if got := textOf(values[0]); got != "12+" {
		t.Fatalf("metric text = %q, want %q", got, "12+")
	}
	frames := strings.Split(attr(values[0], "data-frames"), ",")
	if frames[len(frames)-1] != "12" {
		t.Fatalf("last frame = %q, want 12", frames[len(frames)-1])
	}
	if len(findAll(doc, byClass("featured"))) != 0 {
		t.Fatalf("featured section should be hidden when empty")
	}
	if len(findAll(doc, byClass("skills"))) != 0 {
		t.Fatalf("skills section should be hidden when empty")
	}
	if len(findAll(doc, byClass("alert-error"))) != 0 {
		t.Fatalf("error alert rendered without load error")
	}
}

func TestProjectsRendersTabsAndEmptyState(t *testing.T) {
	t.Parallel()

	doc := parseFragment(t, renderString(t, Projects(testLocalizer(), ProjectsView{Categories: []string{"All"}, Active: "All"})))
	if len(findAll(doc, byClass("tabs"))) != 0 {
		t.Fatalf("tabs should be hidden with only the All category")
	}
	empty := findAll(doc, byClass("empty-state"))
	if len(empty) != 1 || textOf(empty[0]) != "No projects found." {
		t.Fatalf("expected empty state")
	}

	view := ProjectsView{
		Categories: []string{"All", "Web", "CLI"},
		Active:     "Web",
		Projects:   []content.Project{{Slug: "a", Title: "A", Category: "Web"}},
	}
	doc = parseFragment(t, renderString(t, Projects(testLocalizer(), view)))
	tabs := findAll(doc, byClass("tab"))
	if len(tabs) != 3 {
		t.Fatalf("tabs = %d, want 3", len(tabs))
	}
	if attr(tabs[1], "aria-current") != "page" {
		t.Fatalf("active tab not marked")
	}
	if got := attr(tabs[1], "href"); got != "/projects?category=Web" {
		t.Fatalf("tab href = %q", got)
	}
}

func TestCertificatesLimitsSkillsAndOpensSelectedDialog(t *testing.T) {
	t.Parallel()

	certs := []content.Certificate{
		{ID: "1", Title: "Cloud", Issuer: "ACME", IssueDate: content.ParseDate("2024-03-10"), CredentialID: "XYZ", Skills: content.StringList{"a", "b", "c", "d", "e"}, VerifyURL: "https://verify.example.com/xyz"},
		{ID: "2", Title: "Data", Issuer: "ACME"},
	}
	view := CertificatesView{Certificates: certs, Selected: &certs[0]}
	doc := parseFragment(t, renderString(t, Certificates(testLocalizer(), view)))

	cards := findAll(doc, byClass("certificate-card"))
	if len(cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(cards))
	}
	chips := findAll(cards[0], byTag("li"))
	if len(chips) != 4 || textOf(chips[3]) != "+2" {
		t.Fatalf("expected 3 skills plus +2 overflow")
	}
	if !strings.Contains(textOf(cards[0]), "Mar 2024") {
		t.Fatalf("card missing issue date: %q", textOf(cards[0]))
	}

	dialogs := findAll(doc, byTag("dialog"))
	if len(dialogs) != 2 {
		t.Fatalf("dialogs = %d, want 2", len(dialogs))
	}
	if !hasAttr(dialogs[0], "open") || hasAttr(dialogs[1], "open") {
		t.Fatalf("only the selected dialog should be open")
	}
	if !strings.Contains(textOf(dialogs[0]), "Credential ID: XYZ") {
		t.Fatalf("dialog missing credential id")
	}
	if !strings.Contains(textOf(dialogs[0]), "March 2024") {
		t.Fatalf("dialog missing long date")
	}
}

func TestCertificatesEmptyState(t *testing.T) {
	t.Parallel()

	body := renderString(t, Certificates(testLocalizer(), CertificatesView{}))
	if !strings.Contains(body, "No certificates published yet.") {
		t.Fatalf("missing empty state: %q", body)
	}
}

func TestAboutHidesEmptySectionsAndShowsPresent(t *testing.T) {
	t.Parallel()

	view := AboutView{
		Experience: []content.Experience{{Role: "Engineer", Company: "ACME", StartDate: content.ParseDate("2022-01-01")}},
	}
	doc := parseFragment(t, renderString(t, About(testLocalizer(), view)))
	if len(findAll(doc, byClass("testimonials"))) != 0 || len(findAll(doc, byClass("skills"))) != 0 {
		t.Fatalf("empty sections should be hidden")
	}
	periods := findAll(doc, byClass("period"))
	if len(periods) != 1 || textOf(periods[0]) != "Jan 2022 – Present" {
		t.Fatalf("unexpected period rendering")
	}
}

func TestResumeLinksAndPlaceholder(t *testing.T) {
	t.Parallel()

	body := renderString(t, Resume(testLocalizer(), ""))
	if !strings.Contains(body, "Resume coming soon.") || strings.Contains(body, "<a") {
		t.Fatalf("expected placeholder without links: %q", body)
	}

	doc := parseFragment(t, renderString(t, Resume(testLocalizer(), "https://cdn.example.com/cv.pdf")))
	links := findAll(doc, byTag("a"))
	if len(links) != 2 {
		t.Fatalf("links = %d, want 2", len(links))
	}
	if attr(links[0], "target") != "_blank" || textOf(links[0]) != "View Resume" {
		t.Fatalf("unexpected view link")
	}
	if !hasAttr(links[1], "download") || textOf(links[1]) != "Download" {
		t.Fatalf("unexpected download link")
	}
}

func TestContactRendersFieldErrorsAndHoneypot(t *testing.T) {
	t.Parallel()

	input := content.ContactInput{Name: "", Email: "nope", Message: `<b>hi</b>`}
	view := ContactView{Input: input, Errors: input.Validate()}
	body := renderString(t, Contact(testLocalizer(), view))
	if strings.Contains(body, "<b>hi</b>") {
		t.Fatalf("message was not escaped")
	}
	doc := parseFragment(t, body)

	errs := findAll(doc, byClass("field-error"))
	if len(errs) != 2 {
		t.Fatalf("field errors = %d, want 2", len(errs))
	}
	if textOf(errs[0]) != "Name is required" || textOf(errs[1]) != "Invalid email" {
		t.Fatalf("unexpected field errors: %q, %q", textOf(errs[0]), textOf(errs[1]))
	}
	honeypot := findAll(doc, func(n *html.Node) bool { return byTag("input")(n) && attr(n, "name") == "website" })
	if len(honeypot) != 1 {
		t.Fatalf("honeypot inputs = %d, want 1", len(honeypot))
	}
	textareas := findAll(doc, byTag("textarea"))
	if len(textareas) != 1 || textOf(textareas[0]) != "<b>hi</b>" {
		t.Fatalf("textarea should keep submitted value")
	}
}

func TestFieldMessageFormatsLimit(t *testing.T) {
	t.Parallel()

	got := FieldMessage(testLocalizer(), content.FieldError{Key: content.KeyNameTooLong, Limit: 100})
	if got != "Name must be at most 100 characters" {
		t.Fatalf("FieldMessage() = %q", got)
	}
}

func TestErrorStateUsesStatus(t *testing.T) {
	t.Parallel()

	body := renderString(t, ErrorState(testLocalizer(), 404))
	if !strings.Contains(body, "Page not found") {
		t.Fatalf("missing not found title: %q", body)
	}
	body = renderString(t, ErrorState(testLocalizer(), 500))
	if !strings.Contains(body, "Something went wrong") {
		t.Fatalf("missing server error title: %q", body)
	}
}
