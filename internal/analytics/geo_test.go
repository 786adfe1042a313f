package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hans4yu/commerce-insights/internal/dataset"
)

func TestBucketByStateFirstSeenOrder(t *testing.T) {
	points := []dataset.GeoPoint{
		{State: "SP"},
		{State: "RJ"},
		{State: "SP"},
		{State: "MG"},
	}

	bucketed := BucketByState(points, 8)
	require.Len(t, bucketed, 4)
	assert.Equal(t, 0, bucketed[0].ColorGroup) // SP
	assert.Equal(t, 1, bucketed[1].ColorGroup) // RJ
	assert.Equal(t, 0, bucketed[2].ColorGroup) // SP again
	assert.Equal(t, 2, bucketed[3].ColorGroup) // MG
}

func TestBucketByStateWrapsAtPaletteSize(t *testing.T) {
	points := []dataset.GeoPoint{
		{State: "SP"}, {State: "RJ"}, {State: "MG"}, {State: "RS"},
	}

	bucketed := BucketByState(points, 3)
	assert.Equal(t, 0, bucketed[3].ColorGroup) // fourth state wraps to 0
}

func TestBucketByStateIsDeterministic(t *testing.T) {
	points := []dataset.GeoPoint{
		{State: "SP"}, {State: "RJ"}, {State: "MG"}, {State: "SP"},
	}

	first := BucketByState(points, 8)
	second := BucketByState(points, 8)
	assert.Equal(t, first, second)
}

func TestBucketByStateGuardsPaletteSize(t *testing.T) {
	points := []dataset.GeoPoint{{State: "SP"}}
	bucketed := BucketByState(points, 0)
	require.Len(t, bucketed, 1)
	assert.Equal(t, 0, bucketed[0].ColorGroup)
}
