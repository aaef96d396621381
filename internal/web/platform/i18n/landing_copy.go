package i18n

import (
	"fmt"
	"strings"

	_ "github.com/snipshot/website/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LandingCopy holds translatable copy for the public landing page.
type LandingCopy struct {
	MetaDescription string
	Title           string
	Tagline         string
	InstallCTA      string
	FeaturesHeading string
	VideoHeading    string
	VideoTitle      string
	VideoHint       string
	StoreChrome     string
	StoreFirefox    string
	StoreEdge       string
	FooterNote      string
	LanguageLabel   string
	NotFoundTitle   string
	NotFoundBody    string
	NotFoundHome    string
}

const productDisplayName = "Snipshot"

// Landing returns localized landing copy for the provided language tag.
func Landing(tag language.Tag) LandingCopy {
	loc := message.NewPrinter(tag)

	title := localizeWithFallback(loc, "title.landing", "Capture the web, beautifully")
	notFoundTitle := localizeWithFallback(loc, "title.not_found", "Page not found")

	return LandingCopy{
		MetaDescription: localizeWithFallback(loc, "meta.description", "Snipshot is a free browser extension for capturing, annotating, and organizing screenshots of any web page."),
		Title:           withProductSuffix(title),
		Tagline:         localizeWithFallback(loc, "landing.tagline", "Full-page screenshots, instant annotations, and tidy boards for everything you clip. Right in your browser."),
		InstallCTA:      localizeWithFallback(loc, "landing.install", "Add to your browser — it's free"),
		FeaturesHeading: localizeWithFallback(loc, "landing.features_heading", "Everything you need to clip the web"),
		VideoHeading:    localizeWithFallback(loc, "landing.video_heading", "See it in action"),
		VideoTitle:      localizeWithFallback(loc, "landing.video_title", "Snipshot product tour"),
		VideoHint:       localizeWithFallback(loc, "landing.video_hint", "Play the two-minute tour"),
		StoreChrome:     localizeWithFallback(loc, "landing.store.chrome", "Chrome Web Store"),
		StoreFirefox:    localizeWithFallback(loc, "landing.store.firefox", "Firefox Add-ons"),
		StoreEdge:       localizeWithFallback(loc, "landing.store.edge", "Edge Add-ons"),
		FooterNote:      localizeWithFallback(loc, "landing.footer_note", "Made for people who collect the web."),
		LanguageLabel:   localizeWithFallback(loc, "nav.language", "Language"),
		NotFoundTitle:   withProductSuffix(notFoundTitle),
		NotFoundBody:    localizeWithFallback(loc, "not_found.body", "The page you are looking for does not exist or has moved."),
		NotFoundHome:    localizeWithFallback(loc, "not_found.home", "Back to the home page"),
	}
}

// Localizer provides translated strings for templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

func withProductSuffix(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return productDisplayName
	}
	return fmt.Sprintf("%s | %s", trimmed, productDisplayName)
}

func localizeWithFallback(loc *message.Printer, key string, fallback string, args ...any) string {
	if loc != nil {
		value := strings.TrimSpace(loc.Sprintf(key, args...))
		if value != "" && value != key {
			return value
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(fallback, args...)
	}
	return fallback
}
