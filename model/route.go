package model

import (
	"errors"
	"fmt"
)

// Direction 路线方向
type Direction string

const (
	Unidirectional Direction = "unidirectional" // 单向, 画一个箭头
	Bidirectional  Direction = "bidirectional"  // 双向, 正反各一个箭头
)

// Valid 判断方向是否为已知枚举值, 空值按单向处理
func (d Direction) Valid() bool {
	switch d {
	case Unidirectional, Bidirectional, "":
		return true
	}
	return false
}

// 路线渲染的默认参数
const (
	DefaultCurvature     = 0.19 // 曲率系数: 控制点偏移 = 系数 × 两端点距离
	DefaultArrowT        = 0.45 // 单向路线箭头的位置 (弧长比例)
	BidirectionalArrowT  = 0.30 // 双向路线正反两个箭头的位置
	DefaultCurveSegments = 40   // 贝塞尔曲线采样段数
)

// ErrInvalidRoute 路线数据不合法
var ErrInvalidRoute = errors.New("路线数据不合法")

// RouteEdge 两个航点之间的一条路线
type RouteEdge struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	From      string    `json:"from" gorm:"index"`
	To        string    `json:"to" gorm:"index"`
	Direction Direction `json:"direction"`

	// 可选的单条路线覆盖参数, 优先级高于 EdgeParamsTable
	Curvature *float64 `json:"curvature,omitempty"`
	ArrowT    *float64 `json:"arrow_t,omitempty"`
}

// Key 返回路线的查表键
func (e RouteEdge) Key() EdgeKey {
	return EdgeKey{From: e.From, To: e.To}
}

// IsBidirectional 是否为双向路线
func (e RouteEdge) IsBidirectional() bool {
	return e.Direction == Bidirectional
}

// Validate 检查路线字段 (不检查航点是否存在)
func (e RouteEdge) Validate() error {
	if e.From == "" || e.To == "" {
		return fmt.Errorf("%w: 起点和终点不能为空", ErrInvalidRoute)
	}
	if !e.Direction.Valid() {
		return fmt.Errorf("%w: %s: 未知方向 %q", ErrInvalidRoute, e.Key(), e.Direction)
	}
	if e.Curvature != nil && *e.Curvature < 0 {
		return fmt.Errorf("%w: %s: 曲率不能为负数", ErrInvalidRoute, e.Key())
	}
	if e.ArrowT != nil && (*e.ArrowT < 0 || *e.ArrowT > 1) {
		return fmt.Errorf("%w: %s: 箭头位置必须在 0 到 1 之间", ErrInvalidRoute, e.Key())
	}
	return nil
}

// EdgeKey 由起点和终点 ID 组成的路线键
type EdgeKey struct {
	From string
	To   string
}

func (k EdgeKey) String() string {
	return k.From + "->" + k.To
}

// EdgeParams 单条路线的渲染参数
type EdgeParams struct {
	Curvature float64 `json:"curvature"`
	ArrowT    float64 `json:"arrow_t"`
}

// DefaultEdgeParams 未在表中出现的路线使用的参数
var DefaultEdgeParams = EdgeParams{Curvature: DefaultCurvature, ArrowT: DefaultArrowT}

// EdgeParamsTable 手工调好的路线参数 (箭头避开标记、曲线避开海岸线)
var EdgeParamsTable = map[EdgeKey]EdgeParams{
	{From: "bordeaux", To: "paris"}:   {Curvature: 0.15, ArrowT: 0.50},
	{From: "paris", To: "copenhagen"}: {Curvature: 0.22, ArrowT: 0.40},
}

// LookupEdgeParams 查表得到路线参数, 路线自带的覆盖值优先
func LookupEdgeParams(e RouteEdge, table map[EdgeKey]EdgeParams) EdgeParams {
	params, ok := table[e.Key()]
	if !ok {
		params = DefaultEdgeParams
	}
	if e.Curvature != nil {
		params.Curvature = *e.Curvature
	}
	if e.ArrowT != nil {
		params.ArrowT = *e.ArrowT
	}
	return params
}

// JourneyData 用于解析整个旅程 JSON 文件
type JourneyData struct {
	Meta      map[string]interface{} `json:"meta,omitempty"`
	Waypoints []Waypoint             `json:"waypoints"`
	Routes    []RouteEdge            `json:"routes"`
	Legend    []LegendItem           `json:"legend,omitempty"`
}
