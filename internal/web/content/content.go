// Package content holds the landing page's language-independent metadata:
// the feature grid, browser-store links, and the demo video reference.
package content

import (
	_ "embed"
	"fmt"
	"net/url"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed site.toml
var embeddedSite []byte

// Feature is one entry in the landing feature grid. Copy lives in the locale
// catalogs, keyed by the feature id.
type Feature struct {
	ID   string `toml:"id"`
	Icon string `toml:"icon"`
}

// TitleKey returns the locale catalog key for the feature title.
func (f Feature) TitleKey() string {
	return "landing.feature." + f.ID + ".title"
}

// BodyKey returns the locale catalog key for the feature description.
func (f Feature) BodyKey() string {
	return "landing.feature." + f.ID + ".body"
}

// StoreLinks are the browser extension store listing URLs.
type StoreLinks struct {
	Chrome  string `toml:"chrome"`
	Firefox string `toml:"firefox"`
	Edge    string `toml:"edge"`
}

// Video identifies the landing demo video.
type Video struct {
	ID string `toml:"id"`
}

// Site is the decoded landing content metadata.
type Site struct {
	Video    Video      `toml:"video"`
	Stores   StoreLinks `toml:"stores"`
	Features []Feature  `toml:"features"`
}

// Load decodes and validates the embedded site metadata.
func Load() (Site, error) {
	return Decode(embeddedSite)
}

// Decode decodes and validates site metadata from TOML bytes.
func Decode(data []byte) (Site, error) {
	var site Site
	if err := toml.Unmarshal(data, &site); err != nil {
		return Site{}, fmt.Errorf("decode site content: %w", err)
	}
	if err := site.validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}

func (s Site) validate() error {
	if strings.TrimSpace(s.Video.ID) == "" {
		return fmt.Errorf("site content: video id is required")
	}
	if len(s.Features) == 0 {
		return fmt.Errorf("site content: at least one feature is required")
	}
	seen := map[string]bool{}
	for _, feature := range s.Features {
		id := strings.TrimSpace(feature.ID)
		if id == "" {
			return fmt.Errorf("site content: feature id is required")
		}
		if seen[id] {
			return fmt.Errorf("site content: duplicate feature id %q", id)
		}
		seen[id] = true
	}
	for name, link := range map[string]string{
		"chrome":  s.Stores.Chrome,
		"firefox": s.Stores.Firefox,
		"edge":    s.Stores.Edge,
	} {
		if err := validateStoreURL(name, link); err != nil {
			return err
		}
	}
	return nil
}

func validateStoreURL(name string, link string) error {
	if strings.TrimSpace(link) == "" {
		return fmt.Errorf("site content: %s store link is required", name)
	}
	parsed, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("site content: parse %s store link: %w", name, err)
	}
	if parsed.Scheme != "https" || parsed.Host == "" {
		return fmt.Errorf("site content: %s store link must be an absolute https URL", name)
	}
	return nil
}
