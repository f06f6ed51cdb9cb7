package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent resty client bound to baseURL.
//
// A trailing slash on baseURL is dropped so request paths can always start
// with "/". A non-positive timeout leaves resty's default (no timeout).
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000/api", 15*time.Second)
//	resp, err := client.R().Get("/cats/")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
