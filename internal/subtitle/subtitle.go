// Package subtitle narrows a video's subtitle tracks to the languages a user asked for.
package subtitle

import (
	"slices"
	"strings"
	"unicode"

	"appledev/internal/media"
)

// Matches reports whether sub is in the given language. A language matches a track whose
// BCP 47 tag equals it or starts with it ("en" matches "en-GB"), or a track with a label
// word starting with it ("span" matches "Spanish").
func Matches(sub media.Subtitle, language string) bool {
	lang := strings.ToLower(strings.TrimSpace(language))
	if lang == "" {
		return true
	}

	tag := strings.ToLower(sub.Language)
	if tag == lang || strings.HasPrefix(tag, lang+"-") {
		return true
	}
	for _, word := range strings.FieldsFunc(strings.ToLower(sub.Label), notLetter) {
		if strings.HasPrefix(word, lang) {
			return true
		}
	}
	return false
}

func notLetter(r rune) bool {
	return !unicode.IsLetter(r)
}

// Filter returns subtitles matching the preferred language (case-insensitive).
func Filter(subtitles []media.Subtitle, language string) []media.Subtitle {
	if strings.TrimSpace(language) == "" {
		return subtitles
	}

	matched := make([]media.Subtitle, 0)
	for _, sub := range subtitles {
		if Matches(sub, language) {
			matched = append(matched, sub)
		}
	}
	return matched
}

// BestMatch returns the best matching subtitle for the given language.
// Prefers an exact tag match, then a track without captions for the hard of hearing,
// then the first match.
func BestMatch(subtitles []media.Subtitle, language string) *media.Subtitle {
	filtered := Filter(subtitles, language)
	if len(filtered) == 0 {
		return nil
	}

	lang := strings.ToLower(strings.TrimSpace(language))
	for _, sub := range filtered {
		if strings.ToLower(sub.Language) == lang && !isSDH(sub) {
			return &sub
		}
	}
	for _, sub := range filtered {
		if !isSDH(sub) {
			return &sub
		}
	}
	return &filtered[0]
}

func isSDH(sub media.Subtitle) bool {
	label := strings.ToLower(sub.Label)
	return strings.Contains(label, "sdh") || strings.Contains(label, "(cc)")
}

// Languages returns the distinct language tags of subtitles, sorted.
func Languages(subtitles []media.Subtitle) []string {
	langs := make([]string, 0, len(subtitles))
	for _, sub := range subtitles {
		if sub.Language != "" && !slices.Contains(langs, sub.Language) {
			langs = append(langs, sub.Language)
		}
	}
	slices.Sort(langs)
	return langs
}

// Apply filters the subtitles of a video result, or of every resolved item of a playlist.
func Apply(r *media.Result, language string) {
	switch r.Type {
	case media.Video:
		if r.Entry != nil {
			r.Entry.Subtitles = Filter(r.Entry.Subtitles, language)
		}
	case media.Playlist:
		for _, it := range r.Playlist.Entries {
			if it.Entry != nil {
				it.Entry.Subtitles = Filter(it.Entry.Subtitles, language)
			}
		}
	}
}
