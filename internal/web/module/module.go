// Package module defines the feature contract used by web composition.
package module

import "net/http"

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// Dependencies carries request-scoped resolution callbacks shared by all
// mounted modules.
type Dependencies struct {
	ResolveLanguage ResolveLanguage
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
