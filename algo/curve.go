package algo

import (
	"math"
	"travel-journal/model"
)

// ControlPoint 计算二次贝塞尔曲线的控制点
// 控制点位于起终点连线的中垂线上, 偏移量 = factor × 两点距离
// 距离直接用经纬度分量计算, 不是大地线距离, 只用于显示弧度
func ControlPoint(start, end model.Point, factor float64) model.Point {
	mid := model.Point{
		Lat: (start.Lat + end.Lat) / 2,
		Lng: (start.Lng + end.Lng) / 2,
	}

	dLat := end.Lat - start.Lat
	dLng := end.Lng - start.Lng
	norm := math.Hypot(dLat, dLng)
	if norm == 0 {
		// 起终点重合, 垂直向量为零, 控制点退化为中点
		norm = 1
	}

	// 单位垂直向量: 交换分量并对其中一个取反
	perpLat := -dLng / norm
	perpLng := dLat / norm

	offset := factor * norm
	return model.Point{
		Lat: mid.Lat + perpLat*offset,
		Lng: mid.Lng + perpLng*offset,
	}
}

// SampleBezier 按 t = i/n 对二次贝塞尔曲线采样, 返回 n+1 个点
// n <= 0 时使用 model.DefaultCurveSegments
func SampleBezier(start, control, end model.Point, n int) []model.Point {
	if n <= 0 {
		n = model.DefaultCurveSegments
	}

	points := make([]model.Point, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		a := (1 - t) * (1 - t)
		b := 2 * (1 - t) * t
		c := t * t
		points[i] = model.Point{
			Lat: a*start.Lat + b*control.Lat + c*end.Lat,
			Lng: a*start.Lng + b*control.Lng + c*end.Lng,
		}
	}
	// 两端点直接取输入值, 避免控制点为 Inf 时 0*Inf 产生 NaN
	points[0] = start
	points[n] = end
	return points
}

// Curve 一条路线对应的曲线, 每次渲染重新计算, 不缓存
type Curve struct {
	Edge    model.RouteEdge
	Params  model.EdgeParams
	Start   model.Point
	Control model.Point
	End     model.Point
	Points  []model.Point
}

// BuildCurve 根据两端点和参数生成曲线
func BuildCurve(edge model.RouteEdge, start, end model.Point, params model.EdgeParams, segments int) Curve {
	control := ControlPoint(start, end, params.Curvature)
	return Curve{
		Edge:    edge,
		Params:  params,
		Start:   start,
		Control: control,
		End:     end,
		Points:  SampleBezier(start, control, end, segments),
	}
}

// Reverse 返回点序反转后的新切片, 不修改原切片
func Reverse(points []model.Point) []model.Point {
	reversed := make([]model.Point, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	return reversed
}
