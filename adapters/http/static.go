package http

import (
	"net/http"
	"strings"

	"github.com/cloudlagoon/lagoon/ports"
	"github.com/spf13/afero"
)

// FileServer serves the files below root read only under prefix.
// Directory listings are disabled - the cache layout is an
// implementation detail of the server.
func FileServer(prefix string, f ports.FS, root string) http.Handler {
	httpFs := afero.NewHttpFs(afero.NewReadOnlyFs(f))
	fileServer := http.StripPrefix(prefix, http.FileServer(httpFs.Dir(root)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}
