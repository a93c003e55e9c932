package handler

import (
	"math"
	"net/http"
	"strconv"
	"travel-journal/model"
	"travel-journal/render"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb/geojson"
)

// 路线渲染参数范围
const (
	defaultZoom  = 5.0
	maxZoom      = 22.0
	maxSegments  = 500
	geoJSONMedia = "application/geo+json"
)

// GetRoutes GET /api/routes?zoom=&segments=
// 每次请求都按当前缩放级别重新计算曲线和箭头
func (h *Handler) GetRoutes(c *gin.Context) {
	zoom := defaultZoom
	if v := c.Query("zoom"); v != "" {
		z, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(z) || z < 0 || z > maxZoom {
			c.JSON(http.StatusBadRequest, gin.H{"error": "zoom 必须在 0 到 22 之间"})
			return
		}
		zoom = z
	}

	segments := model.DefaultCurveSegments
	if v := c.Query("segments"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxSegments {
			c.JSON(http.StatusBadRequest, gin.H{"error": "segments 必须在 1 到 500 之间"})
			return
		}
		segments = n
	}

	fc, err := render.Routes(h.Journey, zoom, segments)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	writeGeoJSON(c, fc)
}

func writeGeoJSON(c *gin.Context, fc *geojson.FeatureCollection) {
	body, err := fc.MarshalJSON()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "GeoJSON 序列化失败"})
		return
	}
	c.Data(http.StatusOK, geoJSONMedia, body)
}
