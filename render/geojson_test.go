package render

import (
	"encoding/json"
	"testing"
	"travel-journal/algo"
	"travel-journal/model"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleJourney(t *testing.T) *algo.Journey {
	t.Helper()
	j, err := algo.NewJourneyFromData(model.JourneyData{
		Waypoints: []model.Waypoint{
			{ID: "bordeaux", Name: "Bordeaux, France", Lat: 44.837789, Lng: -0.57918, Status: model.StatusCompleted},
			{ID: "paris", Name: "Paris, France", Lat: 48.8566, Lng: 2.3522, Status: model.StatusCompleted},
			{ID: "copenhagen", Name: "Copenhagen, Denmark", Lat: 55.6761, Lng: 12.5683, Status: model.StatusCurrent,
				Highlights: []string{"Nyhavn Harbor"}},
		},
		Routes: []model.RouteEdge{
			{From: "bordeaux", To: "paris", Direction: model.Unidirectional},
			{From: "paris", To: "copenhagen", Direction: model.Bidirectional},
		},
	})
	require.NoError(t, err)
	return j
}

func countKind(fc *geojson.FeatureCollection, kind string) int {
	n := 0
	for _, f := range fc.Features {
		if f.Properties["kind"] == kind {
			n++
		}
	}
	return n
}

func TestRoutes(t *testing.T) {
	fc, err := Routes(sampleJourney(t), 5, 20)
	require.NoError(t, err)

	assert.Equal(t, 2, countKind(fc, KindRoute))
	assert.Equal(t, 3, countKind(fc, KindArrow))

	line, ok := fc.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Len(t, line, 21)
	// GeoJSON 坐标是 [lng, lat]
	assert.Equal(t, orb.Point{-0.57918, 44.837789}, line[0])
	assert.Equal(t, orb.Point{2.3522, 48.8566}, line[len(line)-1])
	assert.Equal(t, "bordeaux", fc.Features[0].Properties["from"])
	assert.Equal(t, 0.15, fc.Features[0].Properties["curvature"])
}

func TestRoutesArrowProperties(t *testing.T) {
	fc, err := Routes(sampleJourney(t), 6, 0)
	require.NoError(t, err)

	var reversed, forward int
	for _, f := range fc.Features {
		if f.Properties["kind"] != KindArrow || f.Properties["from"] != "paris" {
			continue
		}
		assert.Equal(t, model.BidirectionalArrowT, f.Properties["t"])
		_, isPoint := f.Geometry.(orb.Point)
		assert.True(t, isPoint)
		if f.Properties["reversed"] == true {
			reversed++
		} else {
			forward++
		}
	}
	assert.Equal(t, 1, reversed)
	assert.Equal(t, 1, forward)
}

func TestRoutesHeadingsIndependentOfZoom(t *testing.T) {
	j := sampleJourney(t)

	low, err := Routes(j, 3, 0)
	require.NoError(t, err)
	high, err := Routes(j, 9, 0)
	require.NoError(t, err)

	require.Equal(t, len(low.Features), len(high.Features))
	for i := range low.Features {
		if low.Features[i].Properties["kind"] != KindArrow {
			continue
		}
		assert.InDelta(t, low.Features[i].Properties["heading"], high.Features[i].Properties["heading"], 1e-6)
	}
}

func TestRoutesUnknownWaypoint(t *testing.T) {
	j := sampleJourney(t)
	j.Routes = append(j.Routes, model.RouteEdge{From: "paris", To: "lisbon"})

	_, err := Routes(j, 5, 0)

	assert.ErrorIs(t, err, algo.ErrWaypointNotFound)
}

func TestWaypointCollection(t *testing.T) {
	j := sampleJourney(t)

	fc := WaypointCollection(j.WaypointList)

	require.Len(t, fc.Features, 3)
	cph := fc.Features[2]
	assert.Equal(t, "copenhagen", cph.ID)
	assert.Equal(t, orb.Point{12.5683, 55.6761}, cph.Geometry)
	assert.Equal(t, "current", cph.Properties["status"])
	assert.Equal(t, "Currently Here", cph.Properties["status_text"])
	assert.Equal(t, []string{"Nyhavn Harbor"}, cph.Properties["highlights"])

	body, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"FeatureCollection"`)
}
