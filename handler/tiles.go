package handler

import (
	"io"
	"log"
	"net/http"
	"strings"
	"travel-journal/config"

	"github.com/gin-gonic/gin"
)

// TileProxy 地图瓦片代理
// 只负责注入 token 并透传状态码和内容类型, 不缓存也不合并请求
type TileProxy struct {
	Client      *http.Client
	URLTemplate string
	Token       string
}

// NewTileProxy 根据配置创建瓦片代理
func NewTileProxy(cfg config.TileConfig) *TileProxy {
	return &TileProxy{
		Client:      &http.Client{Timeout: cfg.Timeout},
		URLTemplate: cfg.URLTemplate,
		Token:       cfg.Token,
	}
}

// TileURL 拼出服务商的瓦片地址, z/x/y 不做校验
func (p *TileProxy) TileURL(z, x, y string) string {
	return strings.NewReplacer(
		"{z}", z,
		"{x}", x,
		"{y}", y,
		"{key}", p.Token,
	).Replace(p.URLTemplate)
}

// redact 日志里隐藏 token
func (p *TileProxy) redact(url string) string {
	if p.Token == "" {
		return url
	}
	return strings.ReplaceAll(url, p.Token, "***")
}

// ServeTile GET /tiles/:z/:x/:tile  (tile 形如 "12.png")
func (p *TileProxy) ServeTile(c *gin.Context) {
	z, x := c.Param("z"), c.Param("x")
	y, ok := strings.CutSuffix(c.Param("tile"), ".png")
	if !ok || y == "" {
		c.String(http.StatusNotFound, "Tile not found")
		return
	}

	url := p.TileURL(z, x, y)
	rid := requestID(c)
	log.Printf("[%s] 获取瓦片: %s", rid, p.redact(url))

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, url, nil)
	if err != nil {
		log.Printf("[%s] 构造瓦片请求失败: %v", rid, err)
		c.String(http.StatusInternalServerError, "Error fetching tile")
		return
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		log.Printf("[%s] 获取瓦片失败: %v", rid, err)
		c.String(http.StatusInternalServerError, "Error fetching tile")
		return
	}
	defer resp.Body.Close()

	log.Printf("[%s] 瓦片状态: %d", rid, resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Printf("[%s] 瓦片服务商返回错误: %d %s", rid, resp.StatusCode, strings.TrimSpace(string(body)))
		c.String(resp.StatusCode, "Tile not found")
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}
	c.DataFromReader(resp.StatusCode, resp.ContentLength, contentType, resp.Body, nil)
}
