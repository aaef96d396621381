package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/snipshot/website/internal/web/content"
	webi18n "github.com/snipshot/website/internal/web/platform/i18n"
	"github.com/snipshot/website/internal/web/platform/i18nhttp"
	"github.com/snipshot/website/internal/web/videoembed"
)

// LandingPage describes everything the landing fragment renders.
type LandingPage struct {
	Copy            webi18n.LandingCopy
	Site            content.Site
	Loc             Localizer
	Demo            *videoembed.Embed
	LanguageOptions []i18nhttp.LanguageOption
	CurrentPath     string
	CurrentQuery    string
}

// LandingFragment renders the landing page body.
func LandingFragment(page LandingPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := renderHero(w, page); err != nil {
			return err
		}
		if err := renderFeatures(w, page); err != nil {
			return err
		}
		if err := renderVideoSection(ctx, w, page); err != nil {
			return err
		}
		return renderFooter(w, page)
	})
}

// NotFoundFragment renders the localized 404 body.
func NotFoundFragment(copy webi18n.LandingCopy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<main class="not-found"><h1>%s</h1><p>%s</p><a href="/">%s</a></main>`,
			templ.EscapeString(copy.NotFoundTitle),
			templ.EscapeString(copy.NotFoundBody),
			templ.EscapeString(copy.NotFoundHome),
		)
		return err
	})
}

func renderHero(w io.Writer, page LandingPage) error {
	_, err := fmt.Fprintf(w,
		`<header class="hero"><h1>%s</h1><p class="hero__tagline">%s</p><div class="hero__stores"><a class="store-link" href="%s" rel="noopener">%s</a><a class="store-link" href="%s" rel="noopener">%s</a><a class="store-link" href="%s" rel="noopener">%s</a></div><a class="hero__cta" href="%s" rel="noopener">%s</a></header>`,
		templ.EscapeString(page.Copy.Title),
		templ.EscapeString(page.Copy.Tagline),
		templ.EscapeString(page.Site.Stores.Chrome),
		templ.EscapeString(page.Copy.StoreChrome),
		templ.EscapeString(page.Site.Stores.Firefox),
		templ.EscapeString(page.Copy.StoreFirefox),
		templ.EscapeString(page.Site.Stores.Edge),
		templ.EscapeString(page.Copy.StoreEdge),
		templ.EscapeString(page.Site.Stores.Chrome),
		templ.EscapeString(page.Copy.InstallCTA),
	)
	return err
}

func renderFeatures(w io.Writer, page LandingPage) error {
	if _, err := fmt.Fprintf(w, `<section class="features"><h2>%s</h2><ul class="features__grid">`, templ.EscapeString(page.Copy.FeaturesHeading)); err != nil {
		return err
	}
	for _, feature := range page.Site.Features {
		_, err := fmt.Fprintf(w,
			`<li class="feature feature--%s"><h3>%s</h3><p>%s</p></li>`,
			templ.EscapeString(feature.Icon),
			templ.EscapeString(T(page.Loc, feature.TitleKey())),
			templ.EscapeString(T(page.Loc, feature.BodyKey())),
		)
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</ul></section>`)
	return err
}

func renderVideoSection(ctx context.Context, w io.Writer, page LandingPage) error {
	if page.Demo == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, `<section class="demo"><h2>%s</h2><p class="demo__hint">%s</p>`, templ.EscapeString(page.Copy.VideoHeading), templ.EscapeString(page.Copy.VideoHint)); err != nil {
		return err
	}
	if err := VideoEmbed(page.Demo).Render(ctx, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</section>`)
	return err
}

func renderFooter(w io.Writer, page LandingPage) error {
	if _, err := fmt.Fprintf(w, `<footer class="footer"><p>%s</p><nav class="footer__languages" aria-label="%s"><ul>`, templ.EscapeString(page.Copy.FooterNote), templ.EscapeString(page.Copy.LanguageLabel)); err != nil {
		return err
	}
	for _, option := range page.LanguageOptions {
		class := "lang-option"
		if option.Active {
			class = "lang-option lang-option--active"
		}
		_, err := fmt.Fprintf(w,
			`<li><a class="%s" href="%s" hreflang="%s">%s</a></li>`,
			class,
			templ.EscapeString(i18nhttp.LanguageURL(page.CurrentPath, page.CurrentQuery, option.Tag)),
			templ.EscapeString(option.Tag),
			templ.EscapeString(option.Label),
		)
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</ul></nav></footer>`)
	return err
}
