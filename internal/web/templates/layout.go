package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LandingLayout wraps page content in the public document shell. The child
// component supplied through templ.WithChildren renders inside <body>.
func LandingLayout(title string, metaDescription string, lang string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<!doctype html><html lang="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><meta name="description" content="%s"><title>%s</title><link rel="stylesheet" href="/static/site.css"><script src="/static/embed.js" defer></script></head><body>`,
			templ.EscapeString(lang),
			templ.EscapeString(metaDescription),
			templ.EscapeString(title),
		)
		if err != nil {
			return err
		}
		if children := templ.GetChildren(ctx); children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</body></html>`)
		return err
	})
}
