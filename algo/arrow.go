package algo

import (
	"math"
	"travel-journal/model"
	"travel-journal/utils"
)

// Projector 地图视图的投影 (经纬度 <-> 像素)
// 投影依赖当前缩放和平移, 视图变化后必须重新计算箭头位置
type Projector interface {
	Project(p model.Point) model.PointXY
	Unproject(p model.PointXY) model.Point
}

// ArrowPlacement 箭头在曲线上的位置和朝向
type ArrowPlacement struct {
	T           float64       `json:"t"`            // 弧长比例 [0, 1]
	Segment     int           `json:"segment"`      // 所在线段下标
	SegFraction float64       `json:"seg_fraction"` // 在线段内的比例
	Pixel       model.PointXY `json:"pixel"`        // 像素坐标
	Point       model.Point   `json:"point"`        // 经纬度坐标
	Heading     float64       `json:"heading"`      // 朝向 (度, 屏幕坐标系, 0 为向右, 顺时针为正)
	Reversed    bool          `json:"reversed"`     // 是否在反向点序上计算
}

// cumulativeLengths 返回每个点处的累计像素长度, cum[0] = 0
func cumulativeLengths(pixels []model.PointXY) []float64 {
	cum := make([]float64, len(pixels))
	for i := 1; i < len(pixels); i++ {
		cum[i] = cum[i-1] + math.Hypot(pixels[i].X-pixels[i-1].X, pixels[i].Y-pixels[i-1].Y)
	}
	return cum
}

// LocateSegment 在像素折线上按弧长比例 t 定位
// 返回线段下标、线段内比例和插值后的像素点
// 下标始终在 [0, len-2] 内; 点数少于 2 时返回 0 和第一个点
func LocateSegment(pixels []model.PointXY, t float64) (int, float64, model.PointXY) {
	if len(pixels) == 0 {
		return 0, 0, model.PointXY{}
	}
	if len(pixels) == 1 {
		return 0, 0, pixels[0]
	}

	t = math.Max(0, math.Min(1, t))
	cum := cumulativeLengths(pixels)
	total := cum[len(cum)-1]
	target := t * total

	last := len(pixels) - 2
	idx := last
	for i := 0; i < len(pixels)-1; i++ {
		if cum[i+1] >= target {
			idx = i
			break
		}
	}

	segLen := cum[idx+1] - cum[idx]
	frac := 0.0
	if segLen > 0 {
		frac = (target - cum[idx]) / segLen
	}
	frac = math.Max(0, math.Min(1, frac))

	a, b := pixels[idx], pixels[idx+1]
	pt := model.PointXY{
		X: a.X + (b.X-a.X)*frac,
		Y: a.Y + (b.Y-a.Y)*frac,
	}
	return idx, frac, pt
}

// headingAt 用线段前后各一个点计算朝向, 比单个线段更平滑
func headingAt(pixels []model.PointXY, idx int) float64 {
	if len(pixels) < 2 {
		return 0
	}
	before := max(0, idx-1)
	after := min(len(pixels)-1, idx+1)
	dx := pixels[after].X - pixels[before].X
	dy := pixels[after].Y - pixels[before].Y
	return utils.RadiansToDegrees(math.Atan2(dy, dx))
}

// PlaceArrow 把曲线点投影到像素空间, 按弧长比例放置箭头
func PlaceArrow(points []model.Point, proj Projector, t float64) ArrowPlacement {
	if len(points) == 0 {
		return ArrowPlacement{T: t}
	}

	pixels := make([]model.PointXY, len(points))
	for i, p := range points {
		pixels[i] = proj.Project(p)
	}

	idx, frac, pt := LocateSegment(pixels, t)
	placement := ArrowPlacement{
		T:           t,
		Segment:     idx,
		SegFraction: frac,
		Pixel:       pt,
		Heading:     headingAt(pixels, idx),
	}
	if len(points) == 1 {
		placement.Point = points[0]
	} else {
		placement.Point = proj.Unproject(pt)
	}
	return placement
}
