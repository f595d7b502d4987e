package subtitle

import (
	"testing"

	"appledev/internal/media"
)

func TestFilter(t *testing.T) {
	subs := []media.Subtitle{
		{Language: "en", Label: "English"},
		{Language: "en-GB", Label: "English (UK)"},
		{Language: "es", Label: "Spanish"},
		{Language: "ja", Label: "Japanese"},
		{Language: "zh-Hans", Label: "Chinese, Simplified"},
	}

	tests := []struct {
		lang     string
		expected int
	}{
		{"en", 2},
		{"EN", 2},
		{"english", 2},
		{"es", 1},
		{"ja", 1},
		{"zh", 1},
		{"chinese", 1},
		{"de", 0},
		{"", 5},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			got := Filter(subs, tt.lang)
			if len(got) != tt.expected {
				t.Errorf("Filter(%q) returned %d subs, want %d", tt.lang, len(got), tt.expected)
			}
		})
	}
}

func TestFilterNoMatchIsEmpty(t *testing.T) {
	got := Filter([]media.Subtitle{{Language: "en"}}, "ko")
	if got == nil || len(got) != 0 {
		t.Errorf("Filter() = %#v, want empty slice", got)
	}
}

func TestBestMatch(t *testing.T) {
	subs := []media.Subtitle{
		{Language: "en-US", Label: "English (CC)", URL: "https://example.com/cc.vtt"},
		{Language: "en", Label: "English", URL: "https://example.com/en.vtt"},
		{Language: "es", Label: "Spanish", URL: "https://example.com/es.vtt"},
	}

	best := BestMatch(subs, "en")
	if best == nil {
		t.Fatal("BestMatch returned nil for en")
	}
	if best.URL != "https://example.com/en.vtt" {
		t.Errorf("BestMatch preferred %q, want the plain English track", best.Label)
	}

	best = BestMatch(subs, "spanish")
	if best == nil || best.Language != "es" {
		t.Errorf("BestMatch(spanish) = %+v", best)
	}

	if best = BestMatch(subs, "japanese"); best != nil {
		t.Error("BestMatch should return nil for unmatched language")
	}

	// Only captioned tracks available.
	best = BestMatch(subs[:1], "en")
	if best == nil || best.Label != "English (CC)" {
		t.Errorf("BestMatch fallback = %+v", best)
	}
}

func TestLanguages(t *testing.T) {
	subs := []media.Subtitle{
		{Language: "ja"}, {Language: "en"}, {Language: "ja"}, {Language: ""}, {Language: "de"},
	}
	got := Languages(subs)
	want := []string{"de", "en", "ja"}
	if len(got) != len(want) {
		t.Fatalf("Languages() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Languages()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestApply(t *testing.T) {
	newEntry := func() *media.Entry {
		return &media.Entry{Subtitles: []media.Subtitle{{Language: "en"}, {Language: "ja"}}}
	}

	video := media.VideoResult(newEntry())
	Apply(video, "ja")
	if len(video.Entry.Subtitles) != 1 || video.Entry.Subtitles[0].Language != "ja" {
		t.Errorf("video subtitles = %+v", video.Entry.Subtitles)
	}

	playlist := media.NewPlaylistResult("p", "P", []media.Item{
		{Entry: newEntry()},
		{URL: "https://developer.apple.com/videos/play/wwdc2024/10223/"},
	})
	Apply(playlist, "en")
	if subs := playlist.Playlist.Entries[0].Entry.Subtitles; len(subs) != 1 || subs[0].Language != "en" {
		t.Errorf("playlist entry subtitles = %+v", subs)
	}
}
