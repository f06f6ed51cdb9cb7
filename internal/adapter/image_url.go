package adapter

import (
	"fmt"
	"net/url"
	"strings"
)

// normalizeBaseURL turns a configured address into an absolute API base URL
// without a trailing slash. A missing scheme defaults to http.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidAddress)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// assetOrigin derives the root that relative asset paths hang off: the API
// base with its trailing /api segment removed.
func assetOrigin(baseURL string) string {
	origin := strings.TrimRight(baseURL, "/")
	origin = strings.TrimSuffix(origin, "/api")
	return strings.TrimRight(origin, "/")
}

// resolveImageURL makes raw directly loadable:
//   - empty stays empty
//   - http:// and https:// URLs are kept as is
//   - scheme-less "//host/x" gets the scheme of the base URL
//   - "/x" becomes origin+"/x"
//   - "x" becomes origin+"/x"
func resolveImageURL(origin, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}

	if strings.HasPrefix(raw, "//") {
		scheme := "http"
		if u, err := url.Parse(origin); err == nil && u.Scheme != "" {
			scheme = u.Scheme
		}
		return scheme + ":" + raw
	}

	if strings.HasPrefix(raw, "/") {
		return origin + raw
	}

	return origin + "/" + raw
}
