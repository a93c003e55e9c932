package utils

import (
	"testing"
	"travel-journal/model"

	"github.com/stretchr/testify/assert"
)

func TestWebMercatorProjectOrigin(t *testing.T) {
	p := NewWebMercator(0).Project(model.Point{Lat: 0, Lng: 0})
	assert.InDelta(t, 128, p.X, 1e-6)
	assert.InDelta(t, 128, p.Y, 1e-6)

	p = NewWebMercator(1).Project(model.Point{Lat: 0, Lng: 0})
	assert.InDelta(t, 256, p.X, 1e-6)
	assert.InDelta(t, 256, p.Y, 1e-6)
}

func TestWebMercatorAxes(t *testing.T) {
	m := NewWebMercator(3)

	west := m.Project(model.Point{Lat: 0, Lng: -180})
	east := m.Project(model.Point{Lat: 0, Lng: 180})
	assert.InDelta(t, 0, west.X, 1e-6)
	assert.InDelta(t, 256*8, east.X, 1e-6)

	// 纬度越高 y 越小
	north := m.Project(model.Point{Lat: 60, Lng: 0})
	south := m.Project(model.Point{Lat: -60, Lng: 0})
	assert.Less(t, north.Y, south.Y)
}

func TestWebMercatorRoundTrip(t *testing.T) {
	m := WebMercator{Zoom: 7, TileSize: 512, Origin: model.PointXY{X: 1000, Y: 2000}}

	for _, p := range []model.Point{
		{Lat: 44.837789, Lng: -0.57918},
		{Lat: 48.8566, Lng: 2.3522},
		{Lat: 55.6761, Lng: 12.5683},
		{Lat: -33.8688, Lng: 151.2093},
	} {
		back := m.Unproject(m.Project(p))
		assert.InDelta(t, p.Lat, back.Lat, 1e-9)
		assert.InDelta(t, p.Lng, back.Lng, 1e-9)
	}
}

func TestWebMercatorOriginShift(t *testing.T) {
	base := NewWebMercator(4)
	shifted := base
	shifted.Origin = model.PointXY{X: 100, Y: -50}

	p := model.Point{Lat: 48.8566, Lng: 2.3522}
	a := base.Project(p)
	b := shifted.Project(p)

	assert.InDelta(t, a.X-100, b.X, 1e-9)
	assert.InDelta(t, a.Y+50, b.Y, 1e-9)
}

func TestWebMercatorDefaultTileSize(t *testing.T) {
	m := WebMercator{Zoom: 0}
	p := m.Project(model.Point{})
	assert.InDelta(t, DefaultTileSize/2, p.X, 1e-6)
}
