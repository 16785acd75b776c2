// Package discover: URL rules.
// Helpers to resolve, normalize and classify outline URLs.
package discover

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// outlineExtensions are file extensions that identify outline documents.
var outlineExtensions = map[string]bool{
	".opml": true,
}

// IsOutlineURL checks if the URL path names an outline document.
func IsOutlineURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(parsed.Path))
	return outlineExtensions[ext]
}

// ResolveURL resolves ref against base. base may be a URL or a local file
// path; an empty base or an absolute ref returns ref unchanged.
func ResolveURL(ref, base string) string {
	if base == "" || ref == "" {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil || refURL.IsAbs() {
		return ref
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	if baseURL.Scheme == "" {
		if filepath.IsAbs(ref) {
			return ref
		}
		return filepath.Join(filepath.Dir(base), filepath.FromSlash(ref))
	}

	resolved := baseURL.ResolveReference(refURL)
	resolved.Fragment = ""
	return resolved.String()
}

// NormalizeURL strips fragments and trailing slashes for deduplication.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" {
		return rawURL
	}

	parsed.Fragment = ""

	// Keep root "/".
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}

	return parsed.String()
}

// skipHref reports hrefs that never point at a document.
func skipHref(href string) bool {
	for _, prefix := range []string{"mailto:", "javascript:", "tel:", "#"} {
		if strings.HasPrefix(href, prefix) {
			return true
		}
	}
	return false
}
