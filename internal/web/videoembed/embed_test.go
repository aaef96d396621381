package videoembed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresVideoIDAndTitle(t *testing.T) {
	t.Parallel()

	_, err := New("", "Snipshot product tour")
	assert.ErrorIs(t, err, ErrVideoIDRequired)

	_, err = New("   ", "Snipshot product tour")
	assert.ErrorIs(t, err, ErrVideoIDRequired)

	_, err = New("abc123", "")
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = New("abc123", "   ")
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestNewDefaultsToDormantHighQualityWebP(t *testing.T) {
	t.Parallel()

	embed, err := New("abc123", "Snipshot product tour")
	require.NoError(t, err)

	assert.Equal(t, StateDormant, embed.State())
	assert.False(t, embed.Active())
	assert.False(t, embed.Priority())
	assert.Equal(t, "https://i.ytimg.com/vi_webp/abc123/hqdefault.webp", embed.PosterURL())
}

func TestPosterURLPerQualityAndFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		quality Quality
		format  Format
		want    string
	}{
		{"high webp", QualityHigh, FormatWebP, "https://i.ytimg.com/vi_webp/abc123/hqdefault.webp"},
		{"high jpg", QualityHigh, FormatJPEG, "https://i.ytimg.com/vi/abc123/hqdefault.jpg"},
		{"max webp", QualityMax, FormatWebP, "https://i.ytimg.com/vi_webp/abc123/maxresdefault.webp"},
		{"medium jpg", QualityMedium, FormatJPEG, "https://i.ytimg.com/vi/abc123/mqdefault.jpg"},
		{"standard webp", QualityStandard, FormatWebP, "https://i.ytimg.com/vi_webp/abc123/sddefault.webp"},
		{"default jpg", QualityDefault, FormatJPEG, "https://i.ytimg.com/vi/abc123/default.jpg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			embed, err := New("abc123", "Snipshot product tour", WithQuality(tc.quality), WithFormat(tc.format))
			require.NoError(t, err)
			assert.Equal(t, tc.want, embed.PosterURL())
		})
	}
}

func TestFallbackPosterURLIsAlwaysJPEG(t *testing.T) {
	t.Parallel()

	embed, err := New("abc123", "Snipshot product tour")
	require.NoError(t, err)
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/hqdefault.jpg", embed.FallbackPosterURL())

	embed.PosterFailed()
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/hqdefault.jpg", embed.FallbackPosterURL())
}

func TestPlayerURLCarriesFixedParams(t *testing.T) {
	t.Parallel()

	embed, err := New("xyz789", "Snipshot product tour")
	require.NoError(t, err)
	assert.Equal(t,
		"https://www.youtube.com/embed/xyz789?autoplay=1&rel=0&modestbranding=1&playsinline=1",
		embed.PlayerURL(),
	)
}

func TestActivateIsOneWayAndIdempotent(t *testing.T) {
	t.Parallel()

	embed, err := New("abc123", "Snipshot product tour")
	require.NoError(t, err)
	require.False(t, embed.Active())

	embed.Activate()
	assert.True(t, embed.Active())

	embed.Activate()
	assert.True(t, embed.Active())
	assert.Equal(t, StateActive, embed.State())
}

func TestWithAutoPlayStartsActive(t *testing.T) {
	t.Parallel()

	embed, err := New("abc123", "Snipshot product tour", WithAutoPlay())
	require.NoError(t, err)
	assert.True(t, embed.AutoPlay())
	assert.True(t, embed.Active())
}

func TestPosterFailedDowngradeIsMonotonic(t *testing.T) {
	t.Parallel()

	embed, err := New("abc123", "Snipshot product tour")
	require.NoError(t, err)
	require.Equal(t, "https://i.ytimg.com/vi_webp/abc123/hqdefault.webp", embed.PosterURL())

	embed.PosterFailed()
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/hqdefault.jpg", embed.PosterURL())

	embed.PosterFailed()
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/hqdefault.jpg", embed.PosterURL())
}

func TestPosterFailedDoesNotActivate(t *testing.T) {
	t.Parallel()

	embed, err := New("abc123", "Snipshot product tour")
	require.NoError(t, err)

	embed.PosterFailed()
	assert.False(t, embed.Active())
}

func TestWithPriorityMarksEagerLoad(t *testing.T) {
	t.Parallel()

	embed, err := New("abc123", "Snipshot product tour", WithPriority())
	require.NoError(t, err)
	assert.True(t, embed.Priority())
}

func TestOptionsIgnoreEmptyOverrides(t *testing.T) {
	t.Parallel()

	embed, err := New("abc123", "Snipshot product tour", WithQuality(""), WithFormat(""))
	require.NoError(t, err)
	assert.Equal(t, "https://i.ytimg.com/vi_webp/abc123/hqdefault.webp", embed.PosterURL())
}
