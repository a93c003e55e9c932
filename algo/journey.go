package algo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"travel-journal/model"
	"travel-journal/utils"
)

var (
	// ErrWaypointNotFound 路线引用了不存在的航点
	ErrWaypointNotFound = errors.New("航点不存在")
	// ErrDuplicateWaypoint 航点 ID 重复
	ErrDuplicateWaypoint = errors.New("航点 ID 重复")
)

// Journey 旅程数据: 航点、路线、图例和路线参数表
// 加载后只读, 可以在多个请求间共享
type Journey struct {
	Waypoints    map[string]*model.Waypoint // 航点字典 (ID -> Waypoint)
	WaypointList []model.Waypoint           // 航点列表 (保持旅程顺序)
	Routes       []model.RouteEdge
	Legend       []model.LegendItem
	Params       map[model.EdgeKey]model.EdgeParams // 路线参数表
}

// NewJourney 创建一个空的旅程, 参数表使用 model.EdgeParamsTable
func NewJourney() *Journey {
	return &Journey{
		Waypoints: make(map[string]*model.Waypoint),
		Params:    model.EdgeParamsTable,
	}
}

// LoadFromJSON 从 JSON 文件加载旅程数据
func LoadFromJSON(filepath string) (*Journey, error) {
	file, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("读取文件失败: %w", err)
	}

	var data model.JourneyData
	if err := json.Unmarshal(file, &data); err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}

	return NewJourneyFromData(data)
}

// NewJourneyFromData 校验并构建旅程
// 任何航点或路线不合法都会返回错误, 调用方应视为配置错误
func NewJourneyFromData(data model.JourneyData) (*Journey, error) {
	j := NewJourney()
	j.Legend = data.Legend

	for _, w := range data.Waypoints {
		if err := j.AddWaypoint(w); err != nil {
			return nil, err
		}
	}
	for _, e := range data.Routes {
		if err := j.AddRoute(e); err != nil {
			return nil, err
		}
	}
	return j, nil
}

// AddWaypoint 添加航点 (扩展入口, 例如行程途中新增一站)
func (j *Journey) AddWaypoint(w model.Waypoint) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if _, exists := j.Waypoints[w.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateWaypoint, w.ID)
	}

	j.WaypointList = append(j.WaypointList, w)
	// 指向 map 自己持有的副本, 避免 append 扩容后指针失效
	stored := w
	j.Waypoints[w.ID] = &stored
	return nil
}

// AddRoute 添加路线, 两端航点必须已经存在
func (j *Journey) AddRoute(e model.RouteEdge) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.Direction == "" {
		e.Direction = model.Unidirectional
	}
	if _, _, err := j.Resolve(e); err != nil {
		return err
	}
	j.Routes = append(j.Routes, e)
	return nil
}

// Waypoint 按 ID 查找航点
func (j *Journey) Waypoint(id string) (*model.Waypoint, error) {
	w := j.Waypoints[id]
	if w == nil {
		return nil, fmt.Errorf("%w: %q", ErrWaypointNotFound, id)
	}
	return w, nil
}

// Resolve 解析路线的起点和终点
func (j *Journey) Resolve(e model.RouteEdge) (from, to *model.Waypoint, err error) {
	from, err = j.Waypoint(e.From)
	if err != nil {
		return nil, nil, fmt.Errorf("路线 %s: %w", e.Key(), err)
	}
	to, err = j.Waypoint(e.To)
	if err != nil {
		return nil, nil, fmt.Errorf("路线 %s: %w", e.Key(), err)
	}
	return from, to, nil
}

// ParamsFor 查找路线的渲染参数
func (j *Journey) ParamsFor(e model.RouteEdge) model.EdgeParams {
	return model.LookupEdgeParams(e, j.Params)
}

// Current 返回状态为 current 的航点, 没有则返回 nil
func (j *Journey) Current() *model.Waypoint {
	for i := range j.WaypointList {
		if j.WaypointList[i].Status == model.StatusCurrent {
			return j.Waypoints[j.WaypointList[i].ID]
		}
	}
	return nil
}

// FindNearestWaypoint 找到离给定坐标最近的航点
func (j *Journey) FindNearestWaypoint(lat, lng float64) *model.Waypoint {
	var nearest *model.Waypoint
	minDist := -1.0

	target := model.Point{Lat: lat, Lng: lng}
	for _, w := range j.Waypoints {
		dist := utils.HaversineDistance(target, w.Point())
		if minDist < 0 || dist < minDist {
			minDist = dist
			nearest = w
		}
	}

	return nearest
}

// Search 按名称或 ID 搜索航点 (不区分大小写)
func (j *Journey) Search(query string) []model.Waypoint {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]model.Waypoint, 0)
	if q == "" {
		return results
	}
	for _, w := range j.WaypointList {
		if strings.Contains(strings.ToLower(w.Name), q) || strings.Contains(strings.ToLower(w.ID), q) {
			results = append(results, w)
		}
	}
	return results
}

// RouteDistance 路线两端的球面距离 (米)
func (j *Journey) RouteDistance(e model.RouteEdge) (float64, error) {
	from, to, err := j.Resolve(e)
	if err != nil {
		return 0, err
	}
	return utils.HaversineDistance(from.Point(), to.Point()), nil
}

// TotalDistance 所有路线的总里程 (米), 双向路线只计一次
func (j *Journey) TotalDistance() float64 {
	total := 0.0
	for _, e := range j.Routes {
		d, err := j.RouteDistance(e)
		if err != nil {
			continue
		}
		total += d
	}
	return total
}

// Data 导出为 JourneyData, 用于写入数据库或序列化
func (j *Journey) Data() model.JourneyData {
	return model.JourneyData{
		Waypoints: append([]model.Waypoint(nil), j.WaypointList...),
		Routes:    append([]model.RouteEdge(nil), j.Routes...),
		Legend:    append([]model.LegendItem(nil), j.Legend...),
	}
}
