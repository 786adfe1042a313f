package geomap

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hans4yu/commerce-insights/internal/analytics"
	"github.com/Hans4yu/commerce-insights/internal/dataset"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRenderPNG(t *testing.T) {
	boundary, err := (&BoundingBoxProvider{}).Fetch(context.Background())
	require.NoError(t, err)

	points := analytics.BucketByState([]dataset.GeoPoint{
		{Lat: -23.54, Lng: -46.63, State: "SP"},
		{Lat: -22.90, Lng: -43.17, State: "RJ"},
		{Lat: -19.92, Lng: -43.93, State: "MG"},
	}, len(Palette))

	img, err := RenderPNG(points, boundary)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(img, pngMagic), "output should be a PNG image")
}

func TestRenderPNGNoPoints(t *testing.T) {
	boundary, err := (&BoundingBoxProvider{}).Fetch(context.Background())
	require.NoError(t, err)

	img, err := RenderPNG(nil, boundary)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}
