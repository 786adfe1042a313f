package geomap

import (
	"encoding/json"
	"fmt"
	"io"
)

// Minimal GeoJSON decoding: just enough to pull one country's polygon rings
// out of a FeatureCollection. No geo library is worth carrying for this.

type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Properties map[string]any `json:"properties"`
	Geometry   geometry       `json:"geometry"`
}

type geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

func decodeCountryRingsFromReader(r io.Reader, country string) ([][]Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read boundary data: %w", err)
	}
	return decodeCountryRings(data, country)
}

func decodeCountryRings(data []byte, country string) ([][]Point, error) {
	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to decode GeoJSON: %w", err)
	}

	var rings [][]Point
	for _, f := range fc.Features {
		if !featureMatchesCountry(f, country) {
			continue
		}
		geomRings, err := f.Geometry.rings()
		if err != nil {
			return nil, err
		}
		rings = append(rings, geomRings...)
	}

	if len(rings) == 0 {
		return nil, fmt.Errorf("no boundary found for %q", country)
	}
	return rings, nil
}

// Country datasets disagree on the name property; ADMIN and name cover the
// sources in use.
func featureMatchesCountry(f feature, country string) bool {
	for _, key := range []string{"ADMIN", "admin", "name", "NAME"} {
		if v, ok := f.Properties[key].(string); ok && v == country {
			return true
		}
	}
	return false
}

func (g geometry) rings() ([][]Point, error) {
	switch g.Type {
	case "Polygon":
		var coords [][][]float64
		if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("failed to decode Polygon coordinates: %w", err)
		}
		return ringsFromPolygon(coords), nil
	case "MultiPolygon":
		var coords [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("failed to decode MultiPolygon coordinates: %w", err)
		}
		var rings [][]Point
		for _, polygon := range coords {
			rings = append(rings, ringsFromPolygon(polygon)...)
		}
		return rings, nil
	default:
		return nil, fmt.Errorf("unsupported geometry type: %s", g.Type)
	}
}

func ringsFromPolygon(polygon [][][]float64) [][]Point {
	rings := make([][]Point, 0, len(polygon))
	for _, ring := range polygon {
		points := make([]Point, 0, len(ring))
		for _, pos := range ring {
			if len(pos) < 2 {
				continue
			}
			points = append(points, Point{Lng: pos[0], Lat: pos[1]})
		}
		if len(points) > 0 {
			rings = append(rings, points)
		}
	}
	return rings
}
