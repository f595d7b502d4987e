// Package extract resolves HLS manifest URLs into stream formats and subtitle tracks.
package extract

import (
	"context"

	"appledev/internal/httputil"
	"appledev/internal/media"
)

// Extractor resolves a manifest URL into the formats and subtitles of one video.
type Extractor interface {
	Extract(ctx context.Context, manifestURL, videoID string) (*media.Stream, error)
}

// New returns the HLS extractor fetching manifests through pages.
func New(pages httputil.Fetcher) Extractor {
	return NewHLS(pages)
}
