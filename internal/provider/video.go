package provider

import (
	"context"
	"fmt"

	"appledev/internal/httputil"
	"appledev/internal/logging"
	"appledev/internal/media"
)

// extractVideo resolves a /videos/play/<category>/<id> page.
func (a *AppleDeveloper) extractVideo(ctx context.Context, rawURL string, groups map[string]string) (*media.Entry, error) {
	category := groups["category"]
	id := fmt.Sprintf("%s-%s", category, groups["id"])

	page, err := a.pages.Fetch(ctx, rawURL, id)
	if err != nil {
		return nil, err
	}
	doc, err := parseDocument(page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}

	meta := scrapePage(doc)
	if meta.videoURL == "" {
		return nil, ErrVideoUnavailable
	}
	manifestURL, err := httputil.JoinURL(rawURL, meta.videoURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}

	stream, err := a.streams.Extract(ctx, manifestURL, id)
	if err != nil {
		return nil, err
	}
	fixAudioFormats(stream.Formats)

	timestamp, err := optionalTimestamp(meta.uploadDate)
	if err != nil {
		return nil, fmt.Errorf("%s: uploadDate: %w", id, err)
	}
	release, err := optionalTimestamp(meta.published)
	if err != nil {
		return nil, fmt.Errorf("%s: datePublished: %w", id, err)
	}

	logging.Debug("video resolved", "id", id, "formats", len(stream.Formats), "subtitles", len(stream.Subtitles))

	return &media.Entry{
		ID:               id,
		Title:            meta.title,
		Formats:          stream.Formats,
		Subtitles:        stream.Subtitles,
		Categories:       []string{category},
		Thumbnail:        meta.thumbnail,
		Description:      meta.description,
		Timestamp:        timestamp,
		ReleaseTimestamp: release,
	}, nil
}

// fixAudioFormats marks renditions with no video and an undetected audio codec as AAC
// audio so they can be muxed into mp4.
func fixAudioFormats(formats []media.Format) {
	for i := range formats {
		f := &formats[i]
		if f.VCodec == "none" && f.ACodec == "" {
			f.Ext = "m4a"
			f.ACodec = "aac"
		}
	}
}

func optionalTimestamp(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	ts, err := media.ParseTimestamp(s)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
