package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
)

type stubModule struct {
	id     string
	prefix string
	err    error
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount(module.Dependencies) (module.Mount, error) {
	if m.err != nil {
		return module.Mount{}, m.err
	}
	return module.Mount{Prefix: m.prefix, Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Module", m.id)
		w.WriteHeader(http.StatusNoContent)
	})}, nil
}

func TestComposeRoutesPrefixesAndSubtrees(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	err := Compose(router, ComposeInput{Modules: []module.Module{
		stubModule{id: "home", prefix: "/"},
		stubModule{id: "projects", prefix: "/projects"},
	}})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		path       string
		wantModule string
		wantStatus int
	}{
		{path: "/", wantModule: "home", wantStatus: http.StatusNoContent},
		{path: "/projects", wantModule: "projects", wantStatus: http.StatusNoContent},
		{path: "/projects/atlas", wantModule: "projects", wantStatus: http.StatusNoContent},
		{path: "/unknown", wantStatus: http.StatusNotFound},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != tc.wantStatus {
			t.Fatalf("%s: status = %d, want %d", tc.path, rr.Code, tc.wantStatus)
		}
		if got := rr.Header().Get("X-Module"); got != tc.wantModule {
			t.Fatalf("%s: module = %q, want %q", tc.path, got, tc.wantModule)
		}
	}
}

func TestComposeRejectsInvalidModules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modules []module.Module
	}{
		{name: "nil module", modules: []module.Module{nil}},
		{name: "duplicate prefix", modules: []module.Module{stubModule{id: "a", prefix: "/a"}, stubModule{id: "b", prefix: "/a"}}},
		{name: "relative prefix", modules: []module.Module{stubModule{id: "a", prefix: "a"}}},
		{name: "mount error", modules: []module.Module{stubModule{id: "a", err: errors.New("boom")}}},
	}
	for _, tc := range tests {
		if err := Compose(chi.NewRouter(), ComposeInput{Modules: tc.modules}); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
	if err := Compose(nil, ComposeInput{}); err == nil {
		t.Fatalf("expected error for nil router")
	}
}
