// Package harvest collects playlist member URLs from HTML pages.
package harvest

import (
	"fmt"
	"regexp"

	"appledev/internal/httputil"
	"appledev/internal/media"
)

// Links applies pattern to page and returns every captured URL resolved against base,
// deduplicated in first-seen order. The pattern must have exactly one capturing group.
func Links(page string, pattern *regexp.Regexp, base string) ([]string, error) {
	if n := pattern.NumSubexp(); n != 1 {
		return nil, fmt.Errorf("link pattern %q has %d capturing groups, want 1", pattern, n)
	}

	seen := make(map[string]struct{})
	links := make([]string, 0)
	for _, m := range pattern.FindAllStringSubmatch(page, -1) {
		link, err := httputil.JoinURL(base, m[1])
		if err != nil {
			return nil, err
		}
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}
		links = append(links, link)
	}
	return links, nil
}

// References harvests links like Links and wraps each one as a pending playlist item.
func References(page string, pattern *regexp.Regexp, base string) ([]media.Item, error) {
	links, err := Links(page, pattern, base)
	if err != nil {
		return nil, err
	}

	items := make([]media.Item, 0, len(links))
	for _, link := range links {
		items = append(items, media.Item{URL: link})
	}
	return items, nil
}
