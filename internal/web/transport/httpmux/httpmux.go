// Package httpmux wires shared transport routes into the root mux.
package httpmux

import (
	"io/fs"
	"net/http"

	"github.com/snipshot/website/internal/web/routepath"
)

// MountStatic wires the embedded static asset route into the root mux.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS)))
	rootMux.Handle(routepath.StaticPrefix, staticHandler)
}

// MountRoot wires the composed page handler under the root prefix.
func MountRoot(rootMux *http.ServeMux, pageHandler http.Handler) {
	if rootMux == nil || pageHandler == nil {
		return
	}
	rootMux.Handle(routepath.Root, pageHandler)
}
