// Package static embeds the site stylesheet and the script that plays the
// counter frames, reveals sections and opens certificate dialogs.
package static

import (
	"embed"
	"net/http"
)

//go:embed *.css *.js
var files embed.FS

// MaxAge is the Cache-Control lifetime for every asset.
const MaxAge = "public, max-age=3600"

// Handler serves the embedded assets relative to the static prefix.
// Directory listings are not exposed.
func Handler() http.Handler {
	fileServer := http.FileServer(http.FS(files))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || r.URL.Path == "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", MaxAge)
		fileServer.ServeHTTP(w, r)
	})
}
