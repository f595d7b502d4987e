package catalog

import (
	"context"
	"fmt"

	"appledev/internal/extract"
	"appledev/internal/media"
)

// buildEntry turns one feed video into a media entry. The title matches the og:title of
// the video's /videos/play/ page.
func buildEntry(ctx context.Context, streams extract.Extractor, v rawVideo, event Event, topicTitle string) (*media.Entry, error) {
	id := string(v.ID)

	published, err := media.ParseTimestamp(v.OriginalPublishingDate)
	if err != nil {
		return nil, fmt.Errorf("video %s: originalPublishingDate: %w", id, err)
	}
	updated, err := media.ParseTimestamp(v.ContentUpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("video %s: contentUpdatedAt: %w", id, err)
	}

	stream, err := streams.Extract(ctx, v.Media.DownloadHLS, id)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", id, err)
	}

	return &media.Entry{
		ID:               id,
		Title:            fmt.Sprintf("%s - %s - Videos - Apple Developer", v.Title, event.Name),
		Formats:          stream.Formats,
		Subtitles:        stream.Subtitles,
		Categories:       []string{event.Name, topicTitle},
		Thumbnail:        thumbnailURL(event.ImagesBase, string(v.StaticContentID)),
		Description:      v.Description,
		Timestamp:        &published,
		ReleaseTimestamp: &updated,
	}, nil
}

// thumbnailURL builds the wide 2x thumbnail URL the video pages have used for years.
// e.g., https://devimages-cdn.apple.com/wwdc-services/images/<event>/8745/8745_wide_250x141_2x.jpg
func thumbnailURL(imagesBase, contentID string) string {
	return fmt.Sprintf("%s/%s/%s_wide_250x141_2x.jpg", imagesBase, contentID, contentID)
}
