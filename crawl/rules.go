// Package crawl — URL admission rules.
// Decides which discovered links are worth fetching and puts URLs in
// a canonical form so the frontier can deduplicate them.
package crawl

import (
	"net/url"
	"path"
	"strings"
)

// assetExtensions lists path extensions that never resolve to pages
// worth converting.
var assetExtensions = map[string]bool{
	".bmp": true, ".gif": true, ".ico": true, ".jpeg": true,
	".jpg": true, ".png": true, ".svg": true, ".webp": true,
	".css": true, ".js": true, ".mjs": true,
	".eot": true, ".ttf": true, ".woff": true, ".woff2": true,
	".mp3": true, ".mp4": true, ".wav": true, ".webm": true,
	".gz": true, ".tar": true, ".zip": true,
	".doc": true, ".docx": true, ".pdf": true, ".xls": true, ".xlsx": true,
	".json": true, ".txt": true, ".xml": true,
}

// IsSameDomain reports whether rawURL is hosted on the given domain.
// Subdomains do not count as the same domain.
func IsSameDomain(rawURL string, domain string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Host == domain
}

// IsStaticAsset reports whether the URL path names a static asset
// rather than a page. The extension check ignores case and the query
// string.
func IsStaticAsset(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return assetExtensions[strings.ToLower(path.Ext(parsed.Path))]
}

// NormalizeURL puts a URL in canonical form for deduplication. The
// fragment is dropped and a trailing slash is trimmed from every path
// except the bare root.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.Fragment = ""
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}
	return parsed.String()
}
