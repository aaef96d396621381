package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/snipshot/website/internal/web/content"
	webi18n "github.com/snipshot/website/internal/web/platform/i18n"
	"github.com/snipshot/website/internal/web/platform/i18nhttp"
	"github.com/snipshot/website/internal/web/videoembed"
	"golang.org/x/text/language"
)

func testPage(t *testing.T, tag language.Tag) LandingPage {
	t.Helper()
	site, err := content.Load()
	if err != nil {
		t.Fatalf("load site content: %v", err)
	}
	demo, err := videoembed.New(site.Video.ID, "Snipshot product tour", videoembed.WithPriority())
	if err != nil {
		t.Fatalf("new embed: %v", err)
	}
	return LandingPage{
		Copy:            webi18n.Landing(tag),
		Site:            site,
		Loc:             i18nhttp.Printer(tag),
		Demo:            demo,
		LanguageOptions: i18nhttp.BuildLanguageOptions(tag.String()),
		CurrentPath:     "/",
	}
}

func renderLanding(t *testing.T, page LandingPage) string {
	t.Helper()
	var buf bytes.Buffer
	if err := LandingFragment(page).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render landing: %v", err)
	}
	return buf.String()
}

func TestLandingFragmentRendersLocalizedSections(t *testing.T) {
	t.Parallel()

	markup := renderLanding(t, testPage(t, language.MustParse("de")))
	for _, want := range []string{"Sprache", "Ganzseitige Aufnahme", "video-embed", "lang-option--active"} {
		if !strings.Contains(markup, want) {
			t.Fatalf("markup missing %q", want)
		}
	}
}

func TestLandingFragmentListsAllLanguages(t *testing.T) {
	t.Parallel()

	markup := renderLanding(t, testPage(t, language.MustParse("en-US")))
	if got := strings.Count(markup, `class="lang-option`); got != 15 {
		t.Fatalf("language option count = %d, want 15", got)
	}
}

func TestLandingFragmentRendersStoreLinks(t *testing.T) {
	t.Parallel()

	page := testPage(t, language.MustParse("en-US"))
	markup := renderLanding(t, page)
	for _, link := range []string{page.Site.Stores.Chrome, page.Site.Stores.Firefox, page.Site.Stores.Edge} {
		if !strings.Contains(markup, link) {
			t.Fatalf("markup missing store link %q", link)
		}
	}
}

func TestLayoutWrapsChildrenAndSetsLang(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	body := NotFoundFragment(webi18n.Landing(language.MustParse("fr")))
	ctx := templ.WithChildren(context.Background(), body)
	if err := LandingLayout("Snipshot", "desc", "fr").Render(ctx, &buf); err != nil {
		t.Fatalf("render layout: %v", err)
	}
	markup := buf.String()
	if !strings.Contains(markup, `<html lang="fr">`) {
		t.Fatalf("markup missing lang attribute: %s", markup)
	}
	if !strings.Contains(markup, "Page introuvable") {
		t.Fatal("markup missing localized child content")
	}
}

func TestNotFoundFragmentLinksHome(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NotFoundFragment(webi18n.Landing(language.MustParse("en-US"))).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), `href="/"`) {
		t.Fatalf("markup missing home link: %s", buf.String())
	}
}
