package about

import (
	"net/http"

	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.About, h.handleIndex)
}
