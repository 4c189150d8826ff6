package certificates

import (
	"net/http"

	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Certificates, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.Certificates+"/", h.handleNotFound)
}
