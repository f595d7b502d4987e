package provider

import (
	"context"
	"fmt"
	"regexp"

	"appledev/internal/catalog"
	"appledev/internal/harvest"
	"appledev/internal/media"
)

// newsVideoLink captures absolute video links from a news article.
var newsVideoLink = regexp.MustCompile(`<a[^>]+href="(https://developer\.apple\.com/videos/play/(?:[-\w]+)/(?:\d+)[^"]+)"`)

// sessionsPlaylist lists every topic's videos for the active event.
func sessionsPlaylist(ctx context.Context, cat *catalog.Catalog, groups map[string]string) (*media.Result, error) {
	category := groups["category"]

	entries, err := cat.AllEntries(ctx)
	if err != nil {
		return nil, err
	}
	return media.NewPlaylistResult(category, fmt.Sprintf("%s sessions", category), media.EntryItems(entries)), nil
}

// topicsPlaylist lists one topic's videos for the active event.
func topicsPlaylist(ctx context.Context, cat *catalog.Catalog, groups map[string]string) (*media.Result, error) {
	slug := groups["topic"]

	title, ok := cat.TopicTitle(slug)
	if !ok {
		return nil, &ExpectedError{Msg: fmt.Sprintf("topic %q not found", slug)}
	}
	entries, _, err := cat.TopicEntries(ctx, slug)
	if err != nil {
		return nil, err
	}

	title = fmt.Sprintf("%s - Topics - %s", title, cat.Event().Name)
	return media.NewPlaylistResult(slug, title, media.EntryItems(entries)), nil
}

// newsPlaylist lists the videos linked from a news article, left for the host to resolve.
func newsPlaylist(page, base string, groups map[string]string) (*media.Result, error) {
	doc, err := parseDocument(page)
	if err != nil {
		return nil, err
	}

	items, err := harvest.References(page, newsVideoLink, base)
	if err != nil {
		return nil, err
	}
	return media.NewPlaylistResult(groups["news"], genericTitle(doc), items), nil
}
