// Package provider maps Apple Developer URLs to videos and playlists.
package provider

import (
	"context"
	"regexp"

	"appledev/internal/media"
)

// Provider is the interface that content providers must implement.
type Provider interface {
	// Name identifies the provider in logs and listings.
	Name() string

	// Suitable reports whether the provider recognizes rawURL.
	Suitable(rawURL string) bool

	// Extract resolves rawURL to a single video or a playlist.
	Extract(ctx context.Context, rawURL string) (*media.Result, error)
}

// Kind is the shape of URL a provider recognized.
type Kind int

const (
	Video Kind = iota
	Sessions
	Topics
	News
)

func (k Kind) String() string {
	switch k {
	case Video:
		return "video"
	case Sessions:
		return "sessions"
	case Topics:
		return "topics"
	case News:
		return "news"
	default:
		return "unknown"
	}
}

type route struct {
	kind    Kind
	pattern *regexp.Regexp
}

// routes is tried in order; the first match wins. A "topics#all" URL is a sessions listing.
var routes = []route{
	{Video, regexp.MustCompile(`^https?://developer\.apple\.com/videos/play/(?P<category>[-\w]+)/(?P<id>\d+)`)},
	{Sessions, regexp.MustCompile(`^https?://developer\.apple\.com/(?P<category>[-\w]+)/sessions-and-labs(/(session-videos|topics(#all)?)?)?$`)},
	{Topics, regexp.MustCompile(`^https?://developer\.apple\.com/(?P<category>[-\w]+)/sessions-and-labs/topics#(?P<topic>[-\w]+)`)},
	{News, regexp.MustCompile(`^https?://developer\.apple\.com/news/\?id=(?P<news>[-\w]+)`)},
}

// Match returns the kind of rawURL and its named pattern groups.
func Match(rawURL string) (Kind, map[string]string, bool) {
	for _, r := range routes {
		m := r.pattern.FindStringSubmatch(rawURL)
		if m == nil {
			continue
		}

		groups := make(map[string]string)
		for i, name := range r.pattern.SubexpNames() {
			if name != "" {
				groups[name] = m[i]
			}
		}
		return r.kind, groups, true
	}
	return 0, nil, false
}

// Pattern describes one recognized URL shape.
type Pattern struct {
	Kind Kind
	Expr string
}

// Patterns lists the recognized URL shapes in match order.
func Patterns() []Pattern {
	patterns := make([]Pattern, 0, len(routes))
	for _, r := range routes {
		patterns = append(patterns, Pattern{Kind: r.kind, Expr: r.pattern.String()})
	}
	return patterns
}
