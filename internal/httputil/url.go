package httputil

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURL checks that a URL is well-formed and uses HTTPS.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("only HTTPS URLs are allowed, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}

// JoinURL resolves ref against base using standard relative-reference rules.
// A ref with a scheme is returned unchanged, even if it would not parse.
func JoinURL(base, ref string) (string, error) {
	if hasScheme(ref) {
		return ref, nil
	}

	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("malformed reference %q: %w", ref, err)
	}

	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("malformed base %q: %w", base, err)
	}
	return b.ResolveReference(r).String(), nil
}

// hasScheme reports whether s starts with an RFC 3986 scheme followed by a colon.
func hasScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
			if i == 0 {
				return false
			}
		case c == ':':
			return i > 0
		default:
			return false
		}
	}
	return false
}

// URLBasename returns the last non-empty path segment of a URL.
// e.g., "https://developer.apple.com/videos/accessibility-inclusion/" -> "accessibility-inclusion"
func URLBasename(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	path := strings.Trim(u.Path, "/")
	if path == "" {
		return ""
	}
	parts := strings.Split(path, "/")
	return parts[len(parts)-1]
}
