package provider

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// metaKeyAttrs are the attributes a meta tag may use to name its content.
var metaKeyAttrs = []string{"itemprop", "property", "name"}

// parseDocument parses page text with goquery instead of matching raw HTML.
func parseDocument(page string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return doc, nil
}

// metaContent returns the content of the first non-empty meta tag named key.
func metaContent(doc *goquery.Document, key string) string {
	var content string

	doc.Find("meta[content]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, attr := range metaKeyAttrs {
			v, ok := s.Attr(attr)
			if !ok || !strings.EqualFold(strings.TrimSpace(v), key) {
				continue
			}
			if c := strings.TrimSpace(s.AttrOr("content", "")); c != "" {
				content = c
				return false
			}
		}
		return true
	})

	return content
}

// firstMeta returns the content of the first of keys present on the page.
func firstMeta(doc *goquery.Document, keys ...string) string {
	for _, key := range keys {
		if c := metaContent(doc, key); c != "" {
			return c
		}
	}
	return ""
}

// ogVideoURL returns the Open Graph video URL, or "" if the page has none.
func ogVideoURL(doc *goquery.Document) string {
	return firstMeta(doc, "og:video:secure_url", "og:video:url", "og:video")
}

// genericTitle returns og:title, falling back to the document title.
func genericTitle(doc *goquery.Document) string {
	if t := metaContent(doc, "og:title"); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// pageMeta is the best-effort metadata scraped from a video page.
type pageMeta struct {
	title       string
	description string
	thumbnail   string
	videoURL    string
	uploadDate  string
	published   string
}

func scrapePage(doc *goquery.Document) pageMeta {
	return pageMeta{
		title:       genericTitle(doc),
		description: firstMeta(doc, "og:description", "description"),
		thumbnail:   firstMeta(doc, "og:image", "og:image:url", "og:image:secure_url"),
		videoURL:    ogVideoURL(doc),
		uploadDate:  metaContent(doc, "uploadDate"),
		published:   metaContent(doc, "datePublished"),
	}
}
