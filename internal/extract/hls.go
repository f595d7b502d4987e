package extract

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/grafov/m3u8"

	"appledev/internal/httputil"
	"appledev/internal/logging"
	"appledev/internal/media"
)

const hlsProtocol = "m3u8_native"

// HLS extracts formats from HLS master or media playlists.
type HLS struct {
	pages httputil.Fetcher
}

// NewHLS creates a new HLS extractor.
func NewHLS(pages httputil.Fetcher) *HLS {
	return &HLS{pages: pages}
}

// Extract downloads and decodes the manifest at manifestURL.
func (h *HLS) Extract(ctx context.Context, manifestURL, videoID string) (*media.Stream, error) {
	if manifestURL == "" {
		return nil, fmt.Errorf("%s: empty manifest URL", videoID)
	}

	body, err := h.pages.Fetch(ctx, manifestURL, videoID+" manifest")
	if err != nil {
		return nil, fmt.Errorf("fetching manifest: %w", err)
	}

	stream, err := parseManifest(body, manifestURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", videoID, err)
	}

	logging.Debug("parsed manifest", "id", videoID, "formats", len(stream.Formats), "subtitles", len(stream.Subtitles))
	return stream, nil
}

// parseManifest decodes an m3u8 document. Relative URIs resolve against manifestURL.
func parseManifest(body, manifestURL string) (*media.Stream, error) {
	p, listType, err := m3u8.DecodeFrom(strings.NewReader(body), false)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	stream := &media.Stream{ManifestURL: manifestURL}

	switch listType {
	case m3u8.MEDIA:
		// A bare media playlist is a single rendition.
		stream.Formats = []media.Format{{
			ID:       "hls",
			URL:      manifestURL,
			Ext:      "mp4",
			Protocol: hlsProtocol,
		}}
	case m3u8.MASTER:
		master := p.(*m3u8.MasterPlaylist)
		if err := addMasterFormats(stream, master, manifestURL); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown playlist type")
	}

	return stream, nil
}

func addMasterFormats(stream *media.Stream, master *m3u8.MasterPlaylist, manifestURL string) error {
	seen := make(map[string]bool)

	for _, v := range master.Variants {
		if v == nil {
			continue
		}

		// Renditions hang off the variant that follows their EXT-X-MEDIA lines.
		for _, alt := range v.Alternatives {
			if alt == nil || alt.URI == "" || seen[alt.URI] {
				continue
			}
			seen[alt.URI] = true

			u, err := httputil.JoinURL(manifestURL, alt.URI)
			if err != nil {
				return err
			}

			switch alt.Type {
			case "AUDIO":
				stream.Formats = append(stream.Formats, media.Format{
					ID:       renditionID(alt.GroupId, alt.Name),
					URL:      u,
					Ext:      "mp4",
					Protocol: hlsProtocol,
					VCodec:   "none",
					Language: alt.Language,
				})
			case "SUBTITLES":
				stream.Subtitles = append(stream.Subtitles, media.Subtitle{
					Language: alt.Language,
					Label:    alt.Name,
					URL:      u,
					Ext:      "vtt",
				})
			}
		}

		if v.Iframe || v.URI == "" {
			continue
		}

		u, err := httputil.JoinURL(manifestURL, v.URI)
		if err != nil {
			return err
		}

		bandwidth := v.AverageBandwidth
		if bandwidth == 0 {
			bandwidth = v.Bandwidth
		}
		tbr := float64(bandwidth) / 1000

		f := media.Format{
			ID:       "hls-" + strconv.Itoa(int(math.Round(tbr))),
			URL:      u,
			Ext:      "mp4",
			Protocol: hlsProtocol,
			TBR:      tbr,
			FPS:      v.FrameRate,
		}
		f.Width, f.Height = parseResolution(v.Resolution)
		f.VCodec, f.ACodec = parseCodecs(v.Codecs)

		stream.Formats = append(stream.Formats, f)
	}

	return nil
}

func renditionID(group, name string) string {
	id := "hls"
	if group != "" {
		id += "-" + group
	}
	if name != "" {
		id += "-" + strings.ReplaceAll(name, " ", "_")
	}
	return id
}

// parseResolution splits "1920x1080" into width and height. Malformed input yields zeros.
func parseResolution(res string) (int, int) {
	w, h, ok := strings.Cut(res, "x")
	if !ok {
		return 0, 0
	}
	width, err1 := strconv.Atoi(w)
	height, err2 := strconv.Atoi(h)
	if err1 != nil || err2 != nil {
		return 0, 0
	}
	return width, height
}
