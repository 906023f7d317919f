package bahn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/X1ag/BahnBestpreis/internal/domain"
	"github.com/X1ag/BahnBestpreis/internal/logging"
)

type location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Resolve looks up query at the location search endpoint and returns the
// first hit. The id is passed on untouched since the fare endpoint only
// accepts the token as issued. All failures collapse into ErrStationNotFound.
func (c *Client) Resolve(ctx context.Context, query string) (*domain.StationRef, error) {
	logger := logging.FromContext(ctx, c.logger)
	if query == "" {
		return nil, domain.ErrStationNotFound
	}
	logger.Info("searching station", "query", query)

	station, err := c.searchLocation(ctx, query)
	if err != nil {
		logger.Error("station search failed", "query", query, "error", err)
		return nil, domain.ErrStationNotFound
	}
	if station == nil {
		logger.Info("station not found", "query", query)
		return nil, domain.ErrStationNotFound
	}

	logger.Info("found station", "name", station.Name, "id", station.ID)
	return station, nil
}

func (c *Client) searchLocation(ctx context.Context, query string) (*domain.StationRef, error) {
	u := fmt.Sprintf("%s?suchbegriff=%s&typ=ALL&limit=10", c.siteURL(locationsPath), encodeURIComponent(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	setBrowserHeaders(req, c.siteURL("/"))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var data []location
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode locations: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &domain.StationRef{ID: data[0].ID, Name: data[0].Name}, nil
}

// encodeURIComponent escapes s for a query value using %20 for spaces.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
