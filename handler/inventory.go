package handler

import (
	"net/http"
	"travel-journal/inventory"

	"github.com/gin-gonic/gin"
)

// GetInventory GET /api/inventory?category=&q=
func (h *Handler) GetInventory(c *gin.Context) {
	if h.Inventory == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "装备清单未加载"})
		return
	}

	var f inventory.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
		return
	}

	items := h.Inventory.Filter(f)
	c.JSON(http.StatusOK, gin.H{
		"count":      len(items),
		"items":      items,
		"stats":      h.Inventory.Stats(),
		"categories": h.Inventory.UsedCategories(),
	})
}
