package landing

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/snipshot/website/internal/web/content"
	module "github.com/snipshot/website/internal/web/module"
	"github.com/snipshot/website/internal/web/platform/httpx"
	webi18n "github.com/snipshot/website/internal/web/platform/i18n"
	"github.com/snipshot/website/internal/web/platform/i18nhttp"
	"github.com/snipshot/website/internal/web/routepath"
	"github.com/snipshot/website/internal/web/templates"
	"github.com/snipshot/website/internal/web/videoembed"
	"golang.org/x/text/language"
)

type handlers struct {
	site content.Site
	deps module.Dependencies
}

func newHandlers(site content.Site, deps module.Dependencies) handlers {
	return handlers{site: site, deps: deps}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		h.writeNotFoundPage(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		httpx.MethodNotAllowed(http.MethodGet)(w, r)
		return
	}

	langTag := h.resolveTag(w, r)
	copy := webi18n.Landing(langTag)

	opts := []videoembed.Option{videoembed.WithPriority()}
	if r.URL.Query().Get("autoplay") == "1" {
		opts = append(opts, videoembed.WithAutoPlay())
	}
	demo, err := videoembed.New(h.site.Video.ID, copy.VideoTitle, opts...)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	page := templates.LandingPage{
		Copy:            copy,
		Site:            h.site,
		Loc:             i18nhttp.Printer(langTag),
		Demo:            demo,
		LanguageOptions: i18nhttp.BuildLanguageOptions(langTag.String()),
		CurrentPath:     r.URL.Path,
		CurrentQuery:    r.URL.RawQuery,
	}
	h.writePage(w, r, copy.Title, copy.MetaDescription, langTag.String(), http.StatusOK, templates.LandingFragment(page))
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteHTML(w, http.StatusOK, "ok")
}

func (h handlers) writeNotFoundPage(w http.ResponseWriter, r *http.Request) {
	langTag := h.resolveTag(w, r)
	copy := webi18n.Landing(langTag)
	h.writePage(w, r, copy.NotFoundTitle, copy.MetaDescription, langTag.String(), http.StatusNotFound, templates.NotFoundFragment(copy))
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, title string, metaDesc string, lang string, statusCode int, body templ.Component) {
	ctx := templ.WithChildren(r.Context(), body)
	var rendered bytes.Buffer
	if err := templates.LandingLayout(title, metaDesc, lang).Render(ctx, &rendered); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(rendered.Bytes())
}

func (h handlers) resolveTag(w http.ResponseWriter, r *http.Request) language.Tag {
	if h.deps.ResolveLanguage != nil {
		return i18nhttp.NormalizeTag(h.deps.ResolveLanguage(r))
	}
	langTag, persist := i18nhttp.ResolveTag(r)
	if persist {
		i18nhttp.SetLanguageCookie(w, langTag)
	}
	return langTag
}
