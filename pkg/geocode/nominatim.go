package geocode

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	// Per-lookup budget; a stalled geocoding service degrades latency
	// but cannot hang a submission indefinitely.
	lookupTimeout = 5 * time.Second

	userAgent = "wander-travel-planner"
)

// NominatimClient resolves queries against a Nominatim-compatible
// search endpoint.
type NominatimClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewNominatimClient(baseURL string) *NominatimClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &NominatimClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: lookupTimeout},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (c *NominatimClient) Geocode(ctx context.Context, query string) (Point, bool) {
	if query == "" {
		return Point{}, false
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return Point{}, false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and unreachable service are a miss, not a fault.
		log.Printf("geocode lookup failed for %q: %v", query, err)
		return Point{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("geocode lookup for %q returned status %d", query, resp.StatusCode)
		return Point{}, false
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		log.Printf("geocode lookup for %q returned malformed body: %v", query, err)
		return Point{}, false
	}
	if len(results) == 0 {
		return Point{}, false
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return Point{}, false
	}

	return Point{Lat: lat, Lon: lon}, true
}
