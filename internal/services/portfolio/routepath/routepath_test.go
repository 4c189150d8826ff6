package routepath

import "testing"

func TestProject(t *testing.T) {
	t.Parallel()

	if got := Project(" my app "); got != "/projects/my%20app" {
		t.Fatalf("Project() = %q, want %q", got, "/projects/my%20app")
	}
}

func TestProjectsInCategory(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":          "/projects",
		"All":       "/projects",
		"Web":       "/projects?category=Web",
		"Web ":      "/projects?category=Web+",
		"AI & Data": "/projects?category=AI+%26+Data",
	}
	for in, want := range tests {
		if got := ProjectsInCategory(in); got != want {
			t.Fatalf("ProjectsInCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCertificateAndStatic(t *testing.T) {
	t.Parallel()

	if got := Certificate("42"); got != "/certificates?cert=42" {
		t.Fatalf("Certificate() = %q", got)
	}
	if got := Static("/app.js"); got != "/static/app.js" {
		t.Fatalf("Static() = %q", got)
	}
}
