package handler

import (
	"errors"
	"net/http"
	"strconv"
	"travel-journal/algo"
	"travel-journal/model"
	"travel-journal/render"

	"github.com/gin-gonic/gin"
)

// WaypointInfo 航点信息
type WaypointInfo struct {
	model.Waypoint
	StatusText string `json:"status_text"`
}

// JourneyResponse 旅程概览
type JourneyResponse struct {
	Waypoints      []WaypointInfo     `json:"waypoints"`
	Routes         []RouteInfo        `json:"routes"`
	Legend         []model.LegendItem `json:"legend"`
	Current        *WaypointInfo      `json:"current,omitempty"`
	TotalDistance  float64            `json:"total_distance_m"`
	WaypointsCount int                `json:"waypoints_count"`
}

// RouteInfo 路线信息
type RouteInfo struct {
	From      string           `json:"from"`
	To        string           `json:"to"`
	Direction model.Direction  `json:"direction"`
	Params    model.EdgeParams `json:"params"`
	Distance  float64          `json:"distance_m"`
}

func waypointInfo(w model.Waypoint) WaypointInfo {
	return WaypointInfo{Waypoint: w, StatusText: w.Status.Label()}
}

func waypointInfos(list []model.Waypoint) []WaypointInfo {
	infos := make([]WaypointInfo, 0, len(list))
	for _, w := range list {
		infos = append(infos, waypointInfo(w))
	}
	return infos
}

// GetJourney 获取旅程概览 (航点、路线、图例、当前位置、总里程)
func (h *Handler) GetJourney(c *gin.Context) {
	routes := make([]RouteInfo, 0, len(h.Journey.Routes))
	for _, e := range h.Journey.Routes {
		dist, err := h.Journey.RouteDistance(e)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		routes = append(routes, RouteInfo{
			From:      e.From,
			To:        e.To,
			Direction: e.Direction,
			Params:    h.Journey.ParamsFor(e),
			Distance:  dist,
		})
	}

	legend := h.Journey.Legend
	if legend == nil {
		legend = []model.LegendItem{}
	}

	resp := JourneyResponse{
		Waypoints:      waypointInfos(h.Journey.WaypointList),
		Routes:         routes,
		Legend:         legend,
		TotalDistance:  h.Journey.TotalDistance(),
		WaypointsCount: len(h.Journey.WaypointList),
	}
	if cur := h.Journey.Current(); cur != nil {
		info := waypointInfo(*cur)
		resp.Current = &info
	}

	c.JSON(http.StatusOK, resp)
}

// GetWaypoints 获取所有航点信息
func (h *Handler) GetWaypoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count":     len(h.Journey.WaypointList),
		"waypoints": waypointInfos(h.Journey.WaypointList),
	})
}

// GetWaypointsGeoJSON 航点的 GeoJSON
func (h *Handler) GetWaypointsGeoJSON(c *gin.Context) {
	writeGeoJSON(c, render.WaypointCollection(h.Journey.WaypointList))
}

// GetWaypointByID 根据 ID 获取航点信息
func (h *Handler) GetWaypointByID(c *gin.Context) {
	w, err := h.Journey.Waypoint(c.Param("id"))
	if err != nil {
		if errors.Is(err, algo.ErrWaypointNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "航点不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, waypointInfo(*w))
}

// SearchWaypoints 搜索航点 (根据名称或 ID 模糊匹配)
func (h *Handler) SearchWaypoints(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少搜索关键词"})
		return
	}

	results := waypointInfos(h.Journey.Search(query))
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

// NearestWaypoint 找到离给定坐标最近的航点
func (h *Handler) NearestWaypoint(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat 和 lng 必须是数字"})
		return
	}
	if err := model.ValidateCoordinates(lat, lng); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w := h.Journey.FindNearestWaypoint(lat, lng)
	if w == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "没有航点"})
		return
	}
	c.JSON(http.StatusOK, waypointInfo(*w))
}

// FindItinerary 沿路线查找两个航点之间的行程
func (h *Handler) FindItinerary(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "起点或终点未指定"})
		return
	}

	it, err := h.Journey.FindItinerary(from, to)
	if err != nil {
		if errors.Is(err, algo.ErrWaypointNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, it)
}
