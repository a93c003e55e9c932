package utils

import (
	"math"
	"travel-journal/model"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// DefaultTileSize Leaflet 默认瓦片边长 (像素)
const DefaultTileSize = 256.0

// 墨卡托投影在 EPSG:3857 下的半周长 (米)
var mercatorHalfWorld = math.Pi * EarthRadius

// WebMercator 网页墨卡托投影, 把经纬度换算成某个缩放级别下的像素坐标
// Origin 是视图左上角的像素坐标, 相当于地图平移量
type WebMercator struct {
	Zoom     float64
	TileSize float64
	Origin   model.PointXY
}

// NewWebMercator 创建原点在世界左上角的投影
func NewWebMercator(zoom float64) WebMercator {
	return WebMercator{Zoom: zoom, TileSize: DefaultTileSize}
}

// worldSize 当前缩放级别下整个世界的像素边长
func (m WebMercator) worldSize() float64 {
	size := m.TileSize
	if size <= 0 {
		size = DefaultTileSize
	}
	return size * math.Pow(2, m.Zoom)
}

// Project 经纬度 -> 像素
func (m WebMercator) Project(p model.Point) model.PointXY {
	merc := project.WGS84.ToMercator(orb.Point{p.Lng, p.Lat})
	scale := m.worldSize() / (2 * mercatorHalfWorld)
	return model.PointXY{
		X: (merc.X()+mercatorHalfWorld)*scale - m.Origin.X,
		Y: (mercatorHalfWorld-merc.Y())*scale - m.Origin.Y,
	}
}

// Unproject 像素 -> 经纬度
func (m WebMercator) Unproject(p model.PointXY) model.Point {
	scale := m.worldSize() / (2 * mercatorHalfWorld)
	merc := orb.Point{
		(p.X+m.Origin.X)/scale - mercatorHalfWorld,
		mercatorHalfWorld - (p.Y+m.Origin.Y)/scale,
	}
	ll := project.Mercator.ToWGS84(merc)
	return model.Point{Lat: ll.Lat(), Lng: ll.Lon()}
}
