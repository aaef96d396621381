// Package static exposes embedded site assets for HTTP serving.
package static

import "embed"

//go:embed *.css *.js
var FS embed.FS
