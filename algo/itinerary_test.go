package algo

import (
	"testing"
	"travel-journal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindItinerary(t *testing.T) {
	j := sampleJourney(t)

	it, err := j.FindItinerary("bordeaux", "copenhagen")
	require.NoError(t, err)

	require.True(t, it.Found)
	assert.Equal(t, []string{"bordeaux", "paris", "copenhagen"}, it.Path)
	require.Len(t, it.Legs, 2)
	assert.Equal(t, "Paris, France", it.Legs[0].ToName)
	assert.InDelta(t, it.Legs[0].Distance+it.Legs[1].Distance, it.Distance, 1e-6)
	assert.InDelta(t, j.TotalDistance(), it.Distance, 1e-6)
	// 巴黎到哥本哈根大致朝东北
	assert.Greater(t, it.Legs[1].Bearing, 0.0)
	assert.Less(t, it.Legs[1].Bearing, 90.0)
}

func TestFindItineraryBidirectionalReverse(t *testing.T) {
	j := sampleJourney(t)

	it, err := j.FindItinerary("copenhagen", "paris")
	require.NoError(t, err)

	require.True(t, it.Found)
	require.Len(t, it.Legs, 1)
	assert.True(t, it.Legs[0].Reversed)
}

func TestFindItineraryOneWay(t *testing.T) {
	j := sampleJourney(t)

	// 波尔多 -> 巴黎是单向路线, 反过来走不通
	it, err := j.FindItinerary("paris", "bordeaux")
	require.NoError(t, err)
	assert.False(t, it.Found)
	assert.NotNil(t, it.Path)
	assert.Empty(t, it.Path)
	assert.NotNil(t, it.Legs)
	assert.Empty(t, it.Legs)
}

func TestFindItinerarySameWaypoint(t *testing.T) {
	j := sampleJourney(t)

	it, err := j.FindItinerary("paris", "paris")
	require.NoError(t, err)

	assert.True(t, it.Found)
	assert.Equal(t, []string{"paris"}, it.Path)
	assert.Empty(t, it.Legs)
	assert.Equal(t, 0.0, it.Distance)
}

func TestFindItineraryPrefersShorter(t *testing.T) {
	j := sampleJourney(t)
	require.NoError(t, j.AddRoute(model.RouteEdge{From: "bordeaux", To: "copenhagen"}))

	it, err := j.FindItinerary("bordeaux", "copenhagen")
	require.NoError(t, err)

	// 直飞比经巴黎更短
	assert.Equal(t, []string{"bordeaux", "copenhagen"}, it.Path)
}

func TestFindItineraryUnknownWaypoint(t *testing.T) {
	j := sampleJourney(t)

	_, err := j.FindItinerary("paris", "rome")
	assert.ErrorIs(t, err, ErrWaypointNotFound)
}
