// Package origin derives the per-site key used for typography overrides.
package origin

import (
	"fmt"
	"net/url"
	"strings"
)

// SiteKeyPrefix marks per-origin records in local storage.
const SiteKeyPrefix = "site_"

// Parse reduces a URL (or bare host) to its origin: lower-case scheme and
// host plus the port when it is not the scheme default. Bare hosts get https.
// An empty input yields an empty origin, meaning "no site".
func Parse(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL has no host: %s", raw)
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	port := u.Port()
	if (scheme == "https" && port == "443") || (scheme == "http" && port == "80") {
		port = ""
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if port != "" {
		host += ":" + port
	}
	return scheme + "://" + host, nil
}

// SiteKey returns the local storage key for an origin.
func SiteKey(origin string) string {
	return SiteKeyPrefix + origin
}

// FromSiteKey reverses SiteKey.
func FromSiteKey(key string) (string, bool) {
	if !strings.HasPrefix(key, SiteKeyPrefix) || len(key) == len(SiteKeyPrefix) {
		return "", false
	}
	return strings.TrimPrefix(key, SiteKeyPrefix), true
}
