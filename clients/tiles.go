/*
# Module: clients/tiles.go
OpenStreetMap raster tile client for the static map fallback.

## Linked Modules
(None - standalone HTTP client)

## Tags
api-client, osm, tiles, map

## Exports
TileClient, NewTileClient, Tile

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "clients/tiles.go" ;
    code:description "OpenStreetMap raster tile client for the static map fallback" ;
    code:exports :TileClient, :NewTileClient, :Tile ;
    code:tags "api-client", "osm", "tiles", "map" .
<!-- End LinkedDoc RDF -->
*/
package clients

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"
)

// DefaultTileBaseURL is the public OSM raster tile endpoint.
const DefaultTileBaseURL = "https://tile.openstreetmap.org"

// TileClient fetches raster map tiles. OSM's usage policy requires an
// identifying User-Agent.
type TileClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewTileClient creates a tile client. An empty baseURL falls back to the
// public OSM endpoint.
func NewTileClient(baseURL string) *TileClient {
	if baseURL == "" {
		baseURL = DefaultTileBaseURL
	}
	return &TileClient{
		baseURL:    baseURL,
		userAgent:  "tom-location/1.0 (family dashboard)",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Tile fetches and decodes a single z/x/y raster tile.
func (c *TileClient) Tile(z, x, y int) (image.Image, error) {
	url := fmt.Sprintf("%s/%d/%d/%d.png", c.baseURL, z, x, y)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create tile request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tile %d/%d/%d: %w", z, x, y, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tile server returned status %d for %d/%d/%d", resp.StatusCode, z, x, y)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tile %d/%d/%d: %w", z, x, y, err)
	}

	return img, nil
}
