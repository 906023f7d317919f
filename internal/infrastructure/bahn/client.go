package bahn

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://www.bahn.de"

	locationsPath = "/web/api/reiseloesung/orte"
	bestPricePath = "/web/api/angebote/tagesbestpreis"

	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:137.0) Gecko/20100101 Firefox/137.0"
	acceptLanguage = "de-DE,de;q=0.9,en;q=0.8"
)

// Client talks to the bahn.de web API. It implements both
// domain.StationResolver and domain.FareProvider.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient creates a client for baseURL. A zero timeout means the client
// waits for the upstream as long as the transport allows.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// setBrowserHeaders makes the request look like desktop Firefox; the
// upstream rejects or degrades requests without these.
func setBrowserHeaders(req *http.Request, referer string) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("Referer", referer)
}

func (c *Client) siteURL(path string) string {
	return c.baseURL + path
}
