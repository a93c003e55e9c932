package model

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lib/pq"
)

// Point 代表一个经纬度点 (WGS84)
type Point struct {
	Lat float64 `json:"lat"` // 纬度
	Lng float64 `json:"lng"` // 经度
}

// PointXY 代表平面坐标系中的一个点
// 渲染路线时表示当前视图下的像素坐标 (x 向右, y 向下)
type PointXY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Status 航点状态
type Status string

const (
	StatusCompleted Status = "completed" // 已到访
	StatusCurrent   Status = "current"   // 当前所在
	StatusPlanned   Status = "planned"   // 计划中
)

// Valid 判断状态是否为已知枚举值
func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusCurrent, StatusPlanned:
		return true
	}
	return false
}

// Label 弹窗中显示的状态文字
func (s Status) Label() string {
	switch s {
	case StatusCurrent:
		return "Currently Here"
	case StatusCompleted:
		return "Journey Complete"
	default:
		return "Planned Visit"
	}
}

// ErrInvalidWaypoint 航点数据不合法
var ErrInvalidWaypoint = errors.New("航点数据不合法")

// Waypoint 旅程中的一个航点 (城市、港口等)
type Waypoint struct {
	ID            string         `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"index"`
	Lat           float64        `json:"lat"`
	Lng           float64        `json:"lng"`
	Status        Status         `json:"status" gorm:"index"`
	Description   string         `json:"description"`
	ArrivalDate   string         `json:"arrival_date"`
	DepartureDate string         `json:"departure_date"`
	Highlights    pq.StringArray `json:"highlights" gorm:"type:text[]"`
	// Position 在旅程中的顺序, 从数据库加载时用于保持原有顺序
	Position int `json:"-" gorm:"index"`
}

// Point 返回航点坐标
func (w Waypoint) Point() Point {
	return Point{Lat: w.Lat, Lng: w.Lng}
}

// Validate 检查 ID、坐标与状态
func (w Waypoint) Validate() error {
	if strings.TrimSpace(w.ID) == "" {
		return fmt.Errorf("%w: ID 不能为空", ErrInvalidWaypoint)
	}
	if err := ValidateCoordinates(w.Lat, w.Lng); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidWaypoint, w.ID, err)
	}
	if !w.Status.Valid() {
		return fmt.Errorf("%w: %s: 未知状态 %q", ErrInvalidWaypoint, w.ID, w.Status)
	}
	return nil
}

// ValidateCoordinates 检查经纬度是否在合法范围内
func ValidateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return errors.New("坐标不能为 NaN")
	}
	if math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return errors.New("坐标不能为无穷大")
	}
	if lat < -90 || lat > 90 {
		return errors.New("纬度必须在 -90 到 90 之间")
	}
	if lng < -180 || lng > 180 {
		return errors.New("经度必须在 -180 到 180 之间")
	}
	return nil
}

// LegendItem 地图图例项
type LegendItem struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Color string `json:"color"`
}
