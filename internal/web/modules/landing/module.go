// Package landing provides the public marketing page routes.
package landing

import (
	"net/http"
	"strings"

	"github.com/snipshot/website/internal/web/content"
	module "github.com/snipshot/website/internal/web/module"
	"github.com/snipshot/website/internal/web/routepath"
)

// Module serves the localized landing page, health probe, and 404 fallback.
type Module struct {
	site   content.Site
	id     string
	prefix string
}

// New returns the landing module backed by the embedded site metadata.
func New() (Module, error) {
	site, err := content.Load()
	if err != nil {
		return Module{}, err
	}
	return NewWithSite(site), nil
}

// NewWithSite returns a landing module with explicit site metadata.
func NewWithSite(site content.Site) Module {
	return Module{site: site, id: "landing", prefix: routepath.Root}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	id := strings.TrimSpace(m.id)
	if id == "" {
		return "landing"
	}
	return id
}

// Mount wires landing routes under the root prefix.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.site, deps)
	mux.HandleFunc(routepath.Root, h.handleRoot)
	mux.HandleFunc(routepath.Health, h.handleHealth)
	prefix := strings.TrimSpace(m.prefix)
	if prefix == "" {
		prefix = routepath.Root
	}
	return module.Mount{Prefix: prefix, Handler: mux}, nil
}
