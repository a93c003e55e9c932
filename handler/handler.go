package handler

import (
	"travel-journal/algo"
	"travel-journal/inventory"
)

// Handler 持有请求处理需要的全部数据
// 旅程和清单加载后只读, 可以被并发请求共享
type Handler struct {
	Journey   *algo.Journey
	Inventory *inventory.Catalog // 为 nil 表示没有加载清单数据
	Tiles     *TileProxy
	PublicDir string
}

// New 创建 Handler
func New(journey *algo.Journey, catalog *inventory.Catalog, tiles *TileProxy, publicDir string) *Handler {
	return &Handler{
		Journey:   journey,
		Inventory: catalog,
		Tiles:     tiles,
		PublicDir: publicDir,
	}
}
