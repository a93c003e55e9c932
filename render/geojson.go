// Package render 把旅程和路线曲线转换成前端可直接绘制的 GeoJSON
package render

import (
	"travel-journal/algo"
	"travel-journal/model"
	"travel-journal/utils"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature 的 kind 属性
const (
	KindWaypoint = "waypoint"
	KindRoute    = "route"
	KindArrow    = "arrow"
)

// GeoJSONDrawer 实现 algo.Drawer, 把曲线和箭头收集为 FeatureCollection
type GeoJSONDrawer struct {
	Collection *geojson.FeatureCollection
}

// NewGeoJSONDrawer 创建空的收集器
func NewGeoJSONDrawer() *GeoJSONDrawer {
	return &GeoJSONDrawer{Collection: geojson.NewFeatureCollection()}
}

// DrawCurve 曲线 -> LineString
func (d *GeoJSONDrawer) DrawCurve(c algo.Curve) error {
	line := make(orb.LineString, len(c.Points))
	for i, p := range c.Points {
		line[i] = toOrb(p)
	}

	f := geojson.NewFeature(line)
	f.Properties["kind"] = KindRoute
	f.Properties["from"] = c.Edge.From
	f.Properties["to"] = c.Edge.To
	f.Properties["direction"] = string(c.Edge.Direction)
	f.Properties["curvature"] = c.Params.Curvature
	f.Properties["distance_m"] = utils.HaversineDistance(c.Start, c.End)
	d.Collection.Append(f)
	return nil
}

// DrawArrow 箭头 -> Point, 朝向放在 heading 属性里, 前端用 CSS rotate
func (d *GeoJSONDrawer) DrawArrow(c algo.Curve, a algo.ArrowPlacement) error {
	f := geojson.NewFeature(toOrb(a.Point))
	f.Properties["kind"] = KindArrow
	f.Properties["from"] = c.Edge.From
	f.Properties["to"] = c.Edge.To
	f.Properties["t"] = a.T
	f.Properties["heading"] = a.Heading
	f.Properties["reversed"] = a.Reversed
	d.Collection.Append(f)
	return nil
}

// Routes 在给定缩放级别下渲染旅程的全部路线
// 箭头的朝向和弧长位置与平移无关, 所以投影原点取世界左上角
func Routes(j *algo.Journey, zoom float64, segments int) (*geojson.FeatureCollection, error) {
	d := NewGeoJSONDrawer()
	if err := algo.Render(j, utils.NewWebMercator(zoom), d, segments); err != nil {
		return nil, err
	}
	return d.Collection, nil
}

// WaypointCollection 航点 -> Point FeatureCollection
func WaypointCollection(waypoints []model.Waypoint) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, w := range waypoints {
		f := geojson.NewFeature(toOrb(w.Point()))
		f.ID = w.ID
		f.Properties["kind"] = KindWaypoint
		f.Properties["id"] = w.ID
		f.Properties["name"] = w.Name
		f.Properties["status"] = string(w.Status)
		f.Properties["status_text"] = w.Status.Label()
		f.Properties["description"] = w.Description
		f.Properties["arrival_date"] = w.ArrivalDate
		f.Properties["departure_date"] = w.DepartureDate
		f.Properties["highlights"] = []string(w.Highlights)
		fc.Append(f)
	}
	return fc
}

// toOrb GeoJSON 坐标顺序为 [lng, lat]
func toOrb(p model.Point) orb.Point {
	return orb.Point{p.Lng, p.Lat}
}
