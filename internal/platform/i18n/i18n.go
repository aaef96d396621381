// Package i18n defines the supported locale set and request language matching.
package i18n

import "golang.org/x/text/language"

// supported lists every shipped locale. The first entry is the default and
// the base translation locale.
var supported = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("de"),
	language.MustParse("es"),
	language.MustParse("fr"),
	language.MustParse("it"),
	language.MustParse("ja"),
	language.MustParse("ko"),
	language.MustParse("nl"),
	language.MustParse("pl"),
	language.MustParse("pt-BR"),
	language.MustParse("ru"),
	language.MustParse("tr"),
	language.MustParse("uk"),
	language.MustParse("zh-CN"),
	language.MustParse("zh-TW"),
}

var matcher = language.NewMatcher(supported)

// SupportedTags returns the shipped locales in display order.
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, len(supported))
	copy(tags, supported)
	return tags
}

// DefaultTag returns the fallback locale.
func DefaultTag() language.Tag {
	return supported[0]
}

// ParseTag resolves a user-provided locale identifier to a supported tag.
// The bool reports whether the value mapped to a supported locale.
func ParseTag(value string) (language.Tag, bool) {
	parsed, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, index, confidence := matcher.Match(parsed)
	if confidence < language.High {
		return DefaultTag(), false
	}
	return supported[index], true
}

// MatchTags picks the best supported locale for the requested tags,
// falling back to the default locale when nothing matches.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supported[index]
}
