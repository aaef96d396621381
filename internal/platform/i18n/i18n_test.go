package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestSupportedTagsCountAndDefault(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	if got, want := len(tags), 15; got != want {
		t.Fatalf("len(SupportedTags()) = %d, want %d", got, want)
	}
	if got := DefaultTag().String(); got != "en-US" {
		t.Fatalf("DefaultTag() = %q, want %q", got, "en-US")
	}
	if tags[0] != DefaultTag() {
		t.Fatal("first supported tag must be the default")
	}
}

func TestSupportedTagsReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	tags[0] = language.MustParse("sv")
	if DefaultTag().String() != "en-US" {
		t.Fatal("mutating the returned slice changed the supported set")
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value  string
		want   string
		wantOK bool
	}{
		{value: "en-US", want: "en-US", wantOK: true},
		{value: "pt-BR", want: "pt-BR", wantOK: true},
		{value: "pt-br", want: "pt-BR", wantOK: true},
		{value: "JA", want: "ja", wantOK: true},
		{value: "zh-TW", want: "zh-TW", wantOK: true},
		{value: "en", want: "en-US", wantOK: true},
		{value: "", want: "en-US", wantOK: false},
		{value: "not-a-tag!", want: "en-US", wantOK: false},
	}
	for _, tc := range cases {
		tag, ok := ParseTag(tc.value)
		if ok != tc.wantOK {
			t.Fatalf("ParseTag(%q) ok = %v, want %v", tc.value, ok, tc.wantOK)
		}
		if got := tag.String(); got != tc.want {
			t.Fatalf("ParseTag(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestMatchTagsPrefersRequestedLocale(t *testing.T) {
	t.Parallel()

	requested := []language.Tag{language.MustParse("ja"), language.MustParse("en")}
	if got := MatchTags(requested).String(); got != "ja" {
		t.Fatalf("MatchTags() = %q, want %q", got, "ja")
	}
}

func TestMatchTagsFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %v, want default", got)
	}
}
