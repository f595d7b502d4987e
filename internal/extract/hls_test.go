package extract

import (
	"context"
	"fmt"
	"os"
	"testing"
)

const manifestURL = "https://devstreaming-cdn.apple.com/videos/wwdc/2023/10036/4/ABC/cmaf.m3u8"

// fakePages serves canned bodies keyed by URL.
type fakePages map[string]string

func (f fakePages) Fetch(_ context.Context, url, id string) (string, error) {
	body, ok := f[url]
	if !ok {
		return "", fmt.Errorf("%s: unexpected status 404 for %s", id, url)
	}
	return body, nil
}

func loadManifest(t *testing.T, filename string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + filename)
	if err != nil {
		t.Fatalf("reading test fixture %s: %v", filename, err)
	}
	return string(data)
}

func TestExtractMasterPlaylist(t *testing.T) {
	pages := fakePages{manifestURL: loadManifest(t, "master.m3u8")}

	stream, err := New(pages).Extract(context.Background(), manifestURL, "wwdc2023-10036")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if stream.ManifestURL != manifestURL {
		t.Errorf("ManifestURL = %q, want %q", stream.ManifestURL, manifestURL)
	}

	// Audio rendition + three variants; the I-frame stream is skipped.
	if len(stream.Formats) != 4 {
		t.Fatalf("expected 4 formats, got %d: %+v", len(stream.Formats), stream.Formats)
	}

	audio := stream.Formats[0]
	if audio.ID != "hls-program_audio-English" {
		t.Errorf("audio ID = %q", audio.ID)
	}
	if audio.VCodec != "none" || audio.ACodec != "" {
		t.Errorf("audio rendition codecs = %q/%q, want none/<undetected>", audio.VCodec, audio.ACodec)
	}
	if audio.URL != "https://devstreaming-cdn.apple.com/videos/wwdc/2023/10036/4/ABC/audio/en/prog_index.m3u8" {
		t.Errorf("audio URL = %q", audio.URL)
	}
	if audio.Language != "en" {
		t.Errorf("audio language = %q, want en", audio.Language)
	}

	hd := stream.Formats[1]
	if hd.ID != "hls-5100" {
		t.Errorf("hd ID = %q, want hls-5100 (average bandwidth)", hd.ID)
	}
	if hd.Width != 1920 || hd.Height != 1080 {
		t.Errorf("hd resolution = %dx%d", hd.Width, hd.Height)
	}
	if hd.VCodec != "avc1.640028" || hd.ACodec != "mp4a.40.2" {
		t.Errorf("hd codecs = %q/%q", hd.VCodec, hd.ACodec)
	}
	if hd.URL != "https://devstreaming-cdn.apple.com/videos/wwdc/2023/10036/4/ABC/hvc/1080/prog_index.m3u8" {
		t.Errorf("hd URL = %q", hd.URL)
	}
	if hd.Protocol != "m3u8_native" || hd.Ext != "mp4" {
		t.Errorf("hd protocol/ext = %q/%q", hd.Protocol, hd.Ext)
	}

	sd := stream.Formats[2]
	if sd.ID != "hls-2200" {
		t.Errorf("sd ID = %q, want hls-2200", sd.ID)
	}
	if sd.URL != "https://cdn.example.com/wwdc/540/prog_index.m3u8" {
		t.Errorf("absolute variant URL changed: %q", sd.URL)
	}

	aac := stream.Formats[3]
	if aac.VCodec != "none" || aac.ACodec != "mp4a.40.2" {
		t.Errorf("audio-only variant codecs = %q/%q", aac.VCodec, aac.ACodec)
	}

	if len(stream.Subtitles) != 2 {
		t.Fatalf("expected 2 subtitle tracks, got %d", len(stream.Subtitles))
	}
	if stream.Subtitles[0].Language != "en" || stream.Subtitles[1].Language != "ja" {
		t.Errorf("subtitle languages = %q, %q", stream.Subtitles[0].Language, stream.Subtitles[1].Language)
	}
	if stream.Subtitles[1].Label != "Japanese" || stream.Subtitles[1].Ext != "vtt" {
		t.Errorf("unexpected subtitle track %+v", stream.Subtitles[1])
	}
}

func TestExtractMediaPlaylist(t *testing.T) {
	pages := fakePages{manifestURL: loadManifest(t, "media.m3u8")}

	stream, err := New(pages).Extract(context.Background(), manifestURL, "tech-talks-204")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(stream.Formats) != 1 {
		t.Fatalf("expected 1 format, got %d", len(stream.Formats))
	}
	if stream.Formats[0].URL != manifestURL {
		t.Errorf("media playlist format URL = %q, want manifest URL", stream.Formats[0].URL)
	}
	if len(stream.Subtitles) != 0 {
		t.Errorf("expected no subtitles, got %d", len(stream.Subtitles))
	}
}

func TestExtractErrors(t *testing.T) {
	pages := fakePages{manifestURL: "<html>not a playlist</html>"}

	tests := []struct {
		name string
		url  string
	}{
		{"empty URL", ""},
		{"fetch failure", "https://devstreaming-cdn.apple.com/missing.m3u8"},
		{"not a playlist", manifestURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewHLS(pages).Extract(context.Background(), tt.url, "id"); err == nil {
				t.Errorf("Extract(%q) expected error", tt.url)
			}
		})
	}
}

func TestParseResolution(t *testing.T) {
	tests := []struct {
		input string
		w, h  int
	}{
		{"1920x1080", 1920, 1080},
		{"640x360", 640, 360},
		{"", 0, 0},
		{"1920", 0, 0},
		{"axb", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, h := parseResolution(tt.input)
			if w != tt.w || h != tt.h {
				t.Errorf("parseResolution(%q) = %dx%d, want %dx%d", tt.input, w, h, tt.w, tt.h)
			}
		})
	}
}
