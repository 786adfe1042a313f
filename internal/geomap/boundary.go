package geomap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Hans4yu/commerce-insights/internal/logger"
)

// DefaultBoundaryURL serves country polygons including Brazil.
const DefaultBoundaryURL = "https://raw.githubusercontent.com/datasets/geo-countries/master/data/countries.geojson"

// Approximate Brazil bounding box, used when no polygon source is reachable.
const (
	brazilMinLng = -73.9922
	brazilMinLat = -33.7683
	brazilMaxLng = -34.7299
	brazilMaxLat = 5.2713
)

// Point is a lng/lat coordinate.
type Point struct {
	Lng float64
	Lat float64
}

// Boundary is a country outline as one or more polygon rings.
type Boundary struct {
	Rings  [][]Point
	Source string
}

// Provider yields a boundary or a failure; providers are tried in priority
// order and the last one in a chain must be infallible.
type Provider interface {
	Name() string
	Fetch(ctx context.Context) (Boundary, error)
}

// LocalFileProvider reads a bundled GeoJSON boundary file.
type LocalFileProvider struct {
	Path string
}

func (p *LocalFileProvider) Name() string { return "local" }

func (p *LocalFileProvider) Fetch(ctx context.Context) (Boundary, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return Boundary{}, fmt.Errorf("failed to read boundary file %s: %w", p.Path, err)
	}

	rings, err := decodeCountryRings(data, "Brazil")
	if err != nil {
		return Boundary{}, err
	}
	return Boundary{Rings: rings, Source: p.Name()}, nil
}

// RemoteProvider downloads a GeoJSON boundary dataset.
type RemoteProvider struct {
	URL    string
	Client *http.Client
}

func (p *RemoteProvider) Name() string { return "remote" }

func (p *RemoteProvider) Fetch(ctx context.Context) (Boundary, error) {
	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return Boundary{}, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3")

	resp, err := client.Do(req)
	if err != nil {
		return Boundary{}, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Boundary{}, fmt.Errorf("non-OK HTTP response: %s", resp.Status)
	}

	rings, err := decodeCountryRingsFromReader(resp.Body, "Brazil")
	if err != nil {
		return Boundary{}, err
	}
	return Boundary{Rings: rings, Source: p.Name()}, nil
}

// BoundingBoxProvider is the unconditional final tier: a rectangle around
// Brazil. Fetch never fails.
type BoundingBoxProvider struct{}

func (p *BoundingBoxProvider) Name() string { return "bounding-box" }

func (p *BoundingBoxProvider) Fetch(ctx context.Context) (Boundary, error) {
	ring := []Point{
		{Lng: brazilMinLng, Lat: brazilMinLat},
		{Lng: brazilMaxLng, Lat: brazilMinLat},
		{Lng: brazilMaxLng, Lat: brazilMaxLat},
		{Lng: brazilMinLng, Lat: brazilMaxLat},
		{Lng: brazilMinLng, Lat: brazilMinLat},
	}
	return Boundary{Rings: [][]Point{ring}, Source: p.Name()}, nil
}

// DefaultProviders is the standard three-tier chain: bundled file, network
// fetch, hardcoded bounding box.
func DefaultProviders(localPath, remoteURL string) []Provider {
	return []Provider{
		&LocalFileProvider{Path: localPath},
		&RemoteProvider{URL: remoteURL},
		&BoundingBoxProvider{},
	}
}

// Resolve tries the providers in order and commits to the first success.
// It never returns an error: the final fallback is unconditional, surfaced
// only as a warning.
func Resolve(ctx context.Context, providers []Provider, appLogger *logger.Logger) Boundary {
	const component = "BoundaryResolver"

	for i, p := range providers {
		boundary, err := p.Fetch(ctx)
		if err != nil {
			appLogger.Debug(component, "Boundary provider failed: provider=%s error=%v", p.Name(), err)
			continue
		}
		if i == len(providers)-1 {
			appLogger.Warn(component, "Couldn't load Brazil map, using approximate boundaries")
		}
		appLogger.Info(component, "Boundary resolved: provider=%s rings=%d", p.Name(), len(boundary.Rings))
		return boundary
	}

	// Unreachable when the chain ends with BoundingBoxProvider; kept so a
	// misconfigured chain still renders something.
	boundary, _ := (&BoundingBoxProvider{}).Fetch(ctx)
	appLogger.Warn(component, "All boundary providers failed, using approximate boundaries")
	return boundary
}
