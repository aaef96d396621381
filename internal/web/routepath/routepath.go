// Package routepath stores canonical HTTP paths for the site.
package routepath

const (
	Root         = "/"
	Health       = "/healthz"
	StaticPrefix = "/static/"
)
