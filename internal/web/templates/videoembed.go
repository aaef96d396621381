package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/snipshot/website/internal/web/videoembed"
)

// VideoEmbed renders a deferred video embed in its current display state:
// a clickable poster while dormant, the live player once active.
//
// The dormant markup never contains the player URL; activation in the
// browser derives it from the video id, mirroring Embed.PlayerURL.
func VideoEmbed(embed *videoembed.Embed) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if embed == nil {
			return nil
		}
		if embed.Active() {
			return renderPlayer(w, embed)
		}
		return renderPoster(w, embed)
	})
}

func renderPoster(w io.Writer, embed *videoembed.Embed) error {
	imgLoading := `loading="lazy"`
	if embed.Priority() {
		imgLoading = `loading="eager" fetchpriority="high"`
	}
	_, err := fmt.Fprintf(w,
		`<div class="video-embed" data-video-id="%s"><button type="button" class="video-embed__poster" aria-label="%s" data-embed-activate><img src="%s" alt="%s" data-poster-fallback="%s" %s width="1280" height="720"><span class="video-embed__play" aria-hidden="true"></span></button></div>`,
		templ.EscapeString(embed.VideoID()),
		templ.EscapeString(embed.Title()),
		templ.EscapeString(embed.PosterURL()),
		templ.EscapeString(embed.Title()),
		templ.EscapeString(embed.FallbackPosterURL()),
		imgLoading,
	)
	return err
}

func renderPlayer(w io.Writer, embed *videoembed.Embed) error {
	_, err := fmt.Fprintf(w,
		`<div class="video-embed video-embed--active"><iframe src="%s" title="%s" loading="lazy" allow="autoplay; encrypted-media; picture-in-picture" allowfullscreen referrerpolicy="strict-origin-when-cross-origin"></iframe></div>`,
		templ.EscapeString(embed.PlayerURL()),
		templ.EscapeString(embed.Title()),
	)
	return err
}
