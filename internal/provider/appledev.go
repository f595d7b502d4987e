package provider

import (
	"context"
	"fmt"

	"appledev/internal/catalog"
	"appledev/internal/extract"
	"appledev/internal/httputil"
	"appledev/internal/logging"
	"appledev/internal/media"
)

// AppleDeveloper implements the Provider interface for developer.apple.com.
type AppleDeveloper struct {
	base       string // e.g., "https://developer.apple.com"
	dataSource string // WWDC JSON feed
	pages      httputil.Fetcher
	streams    extract.Extractor
}

// NewAppleDeveloper creates a provider that fetches pages through pages and resolves
// HLS manifests through streams.
func NewAppleDeveloper(base, dataSource string, pages httputil.Fetcher, streams extract.Extractor) *AppleDeveloper {
	return &AppleDeveloper{
		base:       base,
		dataSource: dataSource,
		pages:      pages,
		streams:    streams,
	}
}

func (a *AppleDeveloper) Name() string {
	return "AppleDeveloper"
}

func (a *AppleDeveloper) Suitable(rawURL string) bool {
	_, _, ok := Match(rawURL)
	return ok
}

// Extract resolves rawURL. Listings backed by the WWDC feed fetch it once per call.
func (a *AppleDeveloper) Extract(ctx context.Context, rawURL string) (*media.Result, error) {
	kind, groups, ok := Match(rawURL)
	if !ok {
		return nil, &ExpectedError{Msg: fmt.Sprintf("unsupported URL: %s", rawURL)}
	}
	logging.Debug("extracting", "kind", kind, "url", rawURL)

	switch kind {
	case Video:
		entry, err := a.extractVideo(ctx, rawURL, groups)
		if err != nil {
			return nil, err
		}
		return media.VideoResult(entry), nil

	case Sessions:
		cat, err := a.Catalog(ctx)
		if err != nil {
			return nil, err
		}
		return sessionsPlaylist(ctx, cat, groups)

	case Topics:
		cat, err := a.Catalog(ctx)
		if err != nil {
			return nil, err
		}
		return topicsPlaylist(ctx, cat, groups)

	case News:
		page, err := a.pages.Fetch(ctx, rawURL, groups["news"])
		if err != nil {
			return nil, err
		}
		return newsPlaylist(page, a.base, groups)

	default:
		return nil, fmt.Errorf("no extractor for %s URLs", kind)
	}
}

// Catalog fetches and parses the WWDC data feed.
func (a *AppleDeveloper) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	data, err := a.pages.Fetch(ctx, a.dataSource, "data_source")
	if err != nil {
		return nil, fmt.Errorf("fetching WWDC data: %w", err)
	}
	return catalog.New([]byte(data), a.streams)
}

// ResolvePending extracts every pending item of a playlist result in place. Items whose
// URL yields anything other than a single video stay pending.
func ResolvePending(ctx context.Context, p Provider, r *media.Result) error {
	if r.Type != media.Playlist {
		return nil
	}

	items := r.Playlist.Entries
	for i := range items {
		if !items[i].Pending() {
			continue
		}
		res, err := p.Extract(ctx, items[i].URL)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", items[i].URL, err)
		}
		if res.Type != media.Video {
			logging.Warn("playlist member is not a video", "url", items[i].URL)
			continue
		}
		items[i].Entry = res.Entry
	}
	return nil
}
