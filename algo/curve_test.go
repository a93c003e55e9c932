package algo

import (
	"math"
	"testing"
	"travel-journal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestControlPointPerpendicularOffset(t *testing.T) {
	start := model.Point{Lat: 0, Lng: 0}
	end := model.Point{Lat: 0, Lng: 10}

	ctrl := ControlPoint(start, end, 0.2)

	assert.InDelta(t, -2.0, ctrl.Lat, eps)
	assert.InDelta(t, 5.0, ctrl.Lng, eps)
}

func TestControlPointDistanceFromMidpoint(t *testing.T) {
	cases := []struct {
		start, end model.Point
		factor     float64
	}{
		{model.Point{Lat: 44.837789, Lng: -0.57918}, model.Point{Lat: 48.8566, Lng: 2.3522}, 0.19},
		{model.Point{Lat: 48.8566, Lng: 2.3522}, model.Point{Lat: 55.6761, Lng: 12.5683}, 0.22},
		{model.Point{Lat: -10, Lng: 20}, model.Point{Lat: 5, Lng: -3}, 1.5},
		{model.Point{Lat: 1, Lng: 1}, model.Point{Lat: 1.0001, Lng: 1.0002}, 0.05},
	}

	for _, tc := range cases {
		ctrl := ControlPoint(tc.start, tc.end, tc.factor)
		mid := model.Point{Lat: (tc.start.Lat + tc.end.Lat) / 2, Lng: (tc.start.Lng + tc.end.Lng) / 2}

		dLat := tc.end.Lat - tc.start.Lat
		dLng := tc.end.Lng - tc.start.Lng
		norm := math.Hypot(dLat, dLng)

		offLat := ctrl.Lat - mid.Lat
		offLng := ctrl.Lng - mid.Lng

		assert.InDelta(t, tc.factor*norm, math.Hypot(offLat, offLng), 1e-9)
		// 偏移方向与连线垂直
		assert.InDelta(t, 0, offLat*dLat+offLng*dLng, 1e-9)
	}
}

func TestControlPointCoincidentPoints(t *testing.T) {
	p := model.Point{Lat: 55.6761, Lng: 12.5683}

	ctrl := ControlPoint(p, p, 0.19)

	assert.False(t, math.IsNaN(ctrl.Lat) || math.IsNaN(ctrl.Lng))
	assert.Equal(t, p, ctrl)
}

func TestControlPointZeroFactor(t *testing.T) {
	start := model.Point{Lat: 2, Lng: 4}
	end := model.Point{Lat: 6, Lng: 8}

	ctrl := ControlPoint(start, end, 0)

	assert.InDelta(t, 4.0, ctrl.Lat, eps)
	assert.InDelta(t, 6.0, ctrl.Lng, eps)
}

func TestSampleBezierEndpoints(t *testing.T) {
	start := model.Point{Lat: 44.837789, Lng: -0.57918}
	end := model.Point{Lat: 48.8566, Lng: 2.3522}
	ctrl := ControlPoint(start, end, 0.19)

	points := SampleBezier(start, ctrl, end, 40)

	require.Len(t, points, 41)
	assert.Equal(t, start, points[0])
	assert.Equal(t, end, points[40])
}

func TestSampleBezierDefaultSegments(t *testing.T) {
	points := SampleBezier(model.Point{}, model.Point{Lat: 1}, model.Point{Lng: 1}, 0)
	assert.Len(t, points, model.DefaultCurveSegments+1)
}

func TestSampleBezierMidpoint(t *testing.T) {
	start := model.Point{Lat: 0, Lng: 0}
	ctrl := model.Point{Lat: 4, Lng: 2}
	end := model.Point{Lat: 0, Lng: 8}

	points := SampleBezier(start, ctrl, end, 2)

	require.Len(t, points, 3)
	// t = 0.5: 0.25*start + 0.5*ctrl + 0.25*end
	assert.InDelta(t, 2.0, points[1].Lat, eps)
	assert.InDelta(t, 3.0, points[1].Lng, eps)
}

func TestSampleBezierDeterministic(t *testing.T) {
	start := model.Point{Lat: 1, Lng: 2}
	ctrl := model.Point{Lat: 3, Lng: -1}
	end := model.Point{Lat: 5, Lng: 7}

	assert.Equal(t, SampleBezier(start, ctrl, end, 17), SampleBezier(start, ctrl, end, 17))
}

func TestReverseDoesNotMutate(t *testing.T) {
	points := []model.Point{{Lat: 1}, {Lat: 2}, {Lat: 3}}

	reversed := Reverse(points)

	assert.Equal(t, []model.Point{{Lat: 3}, {Lat: 2}, {Lat: 1}}, reversed)
	assert.Equal(t, []model.Point{{Lat: 1}, {Lat: 2}, {Lat: 3}}, points)
}

func TestBuildCurveUsesParams(t *testing.T) {
	edge := model.RouteEdge{From: "a", To: "b"}
	start := model.Point{Lat: 0, Lng: 0}
	end := model.Point{Lat: 0, Lng: 10}

	c := BuildCurve(edge, start, end, model.EdgeParams{Curvature: 0.2, ArrowT: 0.5}, 10)

	assert.InDelta(t, -2.0, c.Control.Lat, eps)
	assert.Len(t, c.Points, 11)
	assert.Equal(t, edge, c.Edge)
}
