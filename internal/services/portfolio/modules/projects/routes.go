package projects

import (
	"net/http"

	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Projects, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsTree+"{$}", h.redirectIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsTree+"{slug}", h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsTree, h.handleNotFound)
}
