package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// 固定页面, 相对于 PublicDir
const (
	MapPage       = "map.html"
	InventoryPage = "inventory.html"
	ResumeFile    = "assets/docs/resume.pdf"
)

// Page 返回一个发送固定文件的处理函数
func (h *Handler) Page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := filepath.Join(h.PublicDir, filepath.FromSlash(name))
		if _, err := os.Stat(path); err != nil {
			c.String(http.StatusNotFound, "Not found")
			return
		}
		c.File(path)
	}
}

// Static 其余路径按 PublicDir 下的静态文件处理
func (h *Handler) Static() gin.HandlerFunc {
	return gin.WrapH(http.FileServer(http.Dir(h.PublicDir)))
}
