// Package videoembed models a deferred YouTube embed: a lightweight poster
// image stands in for the player until the viewer activates it.
package videoembed

import (
	"errors"
	"fmt"
	"strings"
)

const posterHost = "https://i.ytimg.com"

const playerHost = "https://www.youtube.com"

// playerParams pins the player query string: start immediately on
// activation, suppress unrelated suggestions and branding, and allow
// inline playback on mobile.
const playerParams = "autoplay=1&rel=0&modestbranding=1&playsinline=1"

// Quality selects the poster thumbnail rendition.
type Quality string

// Poster thumbnail renditions, smallest to largest.
const (
	QualityDefault  Quality = "default"
	QualityMedium   Quality = "mqdefault"
	QualityHigh     Quality = "hqdefault"
	QualityStandard Quality = "sddefault"
	QualityMax      Quality = "maxresdefault"
)

// Format selects the poster image encoding.
type Format string

const (
	FormatWebP Format = "webp"
	FormatJPEG Format = "jpg"
)

// State tracks the embed display mode.
type State int

const (
	// StateDormant shows the clickable poster image.
	StateDormant State = iota
	// StateActive shows the live player.
	StateActive
)

// ErrVideoIDRequired reports a missing video id.
var ErrVideoIDRequired = errors.New("video id is required")

// ErrTitleRequired reports a missing accessible title.
var ErrTitleRequired = errors.New("title is required")

// Embed is a deferred video embed. The zero value is not usable; build one
// with New.
type Embed struct {
	videoID  string
	title    string
	autoPlay bool
	quality  Quality
	format   Format
	priority bool
	state    State
}

// Option adjusts embed construction.
type Option func(*Embed)

// WithAutoPlay constructs the embed already active so the player renders
// on first paint.
func WithAutoPlay() Option {
	return func(e *Embed) {
		e.autoPlay = true
		e.state = StateActive
	}
}

// WithQuality overrides the poster thumbnail rendition.
func WithQuality(quality Quality) Option {
	return func(e *Embed) {
		if quality != "" {
			e.quality = quality
		}
	}
}

// WithFormat overrides the poster image encoding.
func WithFormat(format Format) Option {
	return func(e *Embed) {
		if format != "" {
			e.format = format
		}
	}
}

// WithPriority marks the poster as above-the-fold so it loads eagerly.
func WithPriority() Option {
	return func(e *Embed) {
		e.priority = true
	}
}

// New builds a dormant embed for the given video.
func New(videoID, title string, opts ...Option) (*Embed, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, ErrVideoIDRequired
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	embed := &Embed{
		videoID: videoID,
		title:   title,
		quality: QualityHigh,
		format:  FormatWebP,
		state:   StateDormant,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(embed)
		}
	}
	return embed, nil
}

// VideoID returns the YouTube video id.
func (e *Embed) VideoID() string { return e.videoID }

// Title returns the accessible title.
func (e *Embed) Title() string { return e.title }

// Priority reports whether the poster should load eagerly.
func (e *Embed) Priority() bool { return e.priority }

// AutoPlay reports whether the embed was constructed already active.
func (e *Embed) AutoPlay() bool { return e.autoPlay }

// State returns the current display state.
func (e *Embed) State() State { return e.state }

// Active reports whether the live player should render.
func (e *Embed) Active() bool { return e.state == StateActive }

// Activate switches the embed to the live player. The transition is
// one-way; activating an active embed is a no-op.
func (e *Embed) Activate() {
	e.state = StateActive
}

// PosterFailed downgrades the poster to the JPEG rendition after the
// preferred format failed to load. The downgrade never reverses.
func (e *Embed) PosterFailed() {
	e.format = FormatJPEG
}

// PosterURL returns the poster thumbnail URL in the current format.
func (e *Embed) PosterURL() string {
	return posterURL(e.videoID, e.quality, e.format)
}

// FallbackPosterURL returns the JPEG poster URL regardless of the current
// format, for use as the client-side error fallback.
func (e *Embed) FallbackPosterURL() string {
	return posterURL(e.videoID, e.quality, FormatJPEG)
}

// PlayerURL returns the embedded player URL with the fixed playback
// parameters. Callers render it only once the embed is active.
func (e *Embed) PlayerURL() string {
	return fmt.Sprintf("%s/embed/%s?%s", playerHost, e.videoID, playerParams)
}

func posterURL(videoID string, quality Quality, format Format) string {
	if format == FormatWebP {
		return fmt.Sprintf("%s/vi_webp/%s/%s.webp", posterHost, videoID, quality)
	}
	return fmt.Sprintf("%s/vi/%s/%s.jpg", posterHost, videoID, quality)
}
