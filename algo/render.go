package algo

import (
	"fmt"
	"travel-journal/model"
)

// Drawer 接收渲染结果, 例如生成 GeoJSON 或在地图上画图层
type Drawer interface {
	DrawCurve(c Curve) error
	DrawArrow(c Curve, a ArrowPlacement) error
}

// BuildCurves 解析所有路线并生成曲线
// 先全部解析, 任何一条路线引用未知航点都直接返回错误, 不会生成部分结果
func (j *Journey) BuildCurves(segments int) ([]Curve, error) {
	type resolved struct {
		edge     model.RouteEdge
		from, to model.Point
	}

	edges := make([]resolved, 0, len(j.Routes))
	for _, e := range j.Routes {
		from, to, err := j.Resolve(e)
		if err != nil {
			return nil, err
		}
		edges = append(edges, resolved{edge: e, from: from.Point(), to: to.Point()})
	}

	curves := make([]Curve, 0, len(edges))
	for _, r := range edges {
		curves = append(curves, BuildCurve(r.edge, r.from, r.to, j.ParamsFor(r.edge), segments))
	}
	return curves, nil
}

// ArrowsFor 计算一条曲线上的箭头
// 单向路线: 一个箭头, 位置取路线参数
// 双向路线: 正向点序和反向点序上各一个, 都在 0.30 处
func ArrowsFor(c Curve, proj Projector) []ArrowPlacement {
	if !c.Edge.IsBidirectional() {
		return []ArrowPlacement{PlaceArrow(c.Points, proj, c.Params.ArrowT)}
	}

	forward := PlaceArrow(c.Points, proj, model.BidirectionalArrowT)
	backward := PlaceArrow(Reverse(c.Points), proj, model.BidirectionalArrowT)
	backward.Reversed = true
	return []ArrowPlacement{forward, backward}
}

// Render 渲染所有路线: 画曲线, 再按当前投影放置箭头
func Render(j *Journey, proj Projector, d Drawer, segments int) error {
	curves, err := j.BuildCurves(segments)
	if err != nil {
		return err
	}

	for _, c := range curves {
		if err := d.DrawCurve(c); err != nil {
			return fmt.Errorf("绘制路线 %s 失败: %w", c.Edge.Key(), err)
		}
		for _, a := range ArrowsFor(c, proj) {
			if err := d.DrawArrow(c, a); err != nil {
				return fmt.Errorf("绘制箭头 %s 失败: %w", c.Edge.Key(), err)
			}
		}
	}
	return nil
}
