package provider

import (
	"os"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func loadTestPage(t *testing.T, filename string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + filename)
	if err != nil {
		t.Fatalf("reading test fixture %s: %v", filename, err)
	}
	return string(data)
}

func loadTestDoc(t *testing.T, filename string) *goquery.Document {
	t.Helper()
	return mustParse(t, loadTestPage(t, filename))
}

func mustParse(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := parseDocument(page)
	if err != nil {
		t.Fatalf("parsing page: %v", err)
	}
	return doc
}

func TestMetaContent(t *testing.T) {
	doc := loadTestDoc(t, "video_page.html")

	tests := []struct {
		key  string
		want string
	}{
		{"og:video", "https://devstreaming-cdn.apple.com/videos/tutorials/20170912/204gte9v1xmbqbm/ios_storage_best_practices/hls_vod_mvp.m3u8"},
		{"uploadDate", "2017-09-11T16:00:00-07:00"},
		{"uploaddate", "2017-09-11T16:00:00-07:00"},
		{"description", "Learn tips for keeping your app's on-disk storage as organized and optimized as possible."},
		{"og:type", "video.other"},
		{"twitter:card", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := metaContent(doc, tt.key); got != tt.want {
				t.Errorf("metaContent(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestMetaContentSkipsEmpty(t *testing.T) {
	doc := mustParse(t, `<html><head>
		<meta property="og:title" content="  ">
		<meta name="og:title" content="Second">
	</head></html>`)

	if got := metaContent(doc, "og:title"); got != "Second" {
		t.Errorf("metaContent() = %q, want Second", got)
	}
}

func TestOGVideoURL(t *testing.T) {
	tests := []struct {
		name string
		page string
		want string
	}{
		{
			"secure url preferred",
			`<meta property="og:video" content="http://a/v.m3u8"><meta property="og:video:secure_url" content="https://a/v.m3u8">`,
			"https://a/v.m3u8",
		},
		{
			"url before plain",
			`<meta property="og:video" content="https://a/plain.m3u8"><meta property="og:video:url" content="https://a/url.m3u8">`,
			"https://a/url.m3u8",
		},
		{"plain", `<meta property="og:video" content="https://a/plain.m3u8">`, "https://a/plain.m3u8"},
		{"absent", `<meta property="og:image" content="https://a/i.jpg">`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ogVideoURL(mustParse(t, tt.page)); got != tt.want {
				t.Errorf("ogVideoURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenericTitle(t *testing.T) {
	tests := []struct {
		name string
		page string
		want string
	}{
		{"og title", `<title>Page</title><meta property="og:title" content="OG &amp; Title">`, "OG & Title"},
		{"title fallback", `<title> Apple Developer </title>`, "Apple Developer"},
		{"nothing", `<p>no title</p>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := genericTitle(mustParse(t, tt.page)); got != tt.want {
				t.Errorf("genericTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScrapePage(t *testing.T) {
	meta := scrapePage(loadTestDoc(t, "video_page.html"))

	if meta.title != "iOS Storage Best Practices - Tech Talks - Videos - Apple Developer" {
		t.Errorf("title = %q", meta.title)
	}
	if meta.thumbnail != "https://devimages-cdn.apple.com/wwdc-services/images/8/2003/2003_wide_250x141_2x.jpg" {
		t.Errorf("thumbnail = %q", meta.thumbnail)
	}
	if meta.description != "Learn tips for keeping your app's on-disk storage as organized and optimized as possible. See how to enable direct access to documents in..." {
		t.Errorf("description = %q", meta.description)
	}
	if meta.published != "2017-09-11T16:00:00-07:00" {
		t.Errorf("published = %q", meta.published)
	}
}
