package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"travel-journal/algo"
	"travel-journal/config"
	"travel-journal/db"
	"travel-journal/handler"
	"travel-journal/inventory"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var cfg = config.Load()

var rootCmd = &cobra.Command{
	Use:   "journey",
	Short: "Expedition travel journal: map tiles, curved routes and packing list",
	Long: `journey 旅行日志网站服务

  journey serve              启动网站 (默认)
  journey routes --zoom 6    输出路线曲线和箭头的 GeoJSON
  journey check              校验旅程和装备清单数据`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动网站服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfg.JourneyFile, "journey", cfg.JourneyFile, "旅程数据 JSON 文件")
	rootCmd.PersistentFlags().StringVar(&cfg.InventoryFile, "inventory", cfg.InventoryFile, "装备清单 JSON 文件")
	rootCmd.PersistentFlags().StringVar(&cfg.PublicDir, "public", cfg.PublicDir, "静态文件目录")
	serveCmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "监听端口")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd, routesCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe() error {
	fmt.Println("=== 欢迎使用 Expedition Journal - 旅行日志地图 ===")

	// 1. 加载旅程数据, 路线引用未知航点时直接退出
	journey, err := loadJourney(cfg)
	if err != nil {
		log.Fatalf("加载旅程失败: %v", err)
	}
	fmt.Printf("旅程加载成功! 航点数: %d, 路线数: %d\n", len(journey.WaypointList), len(journey.Routes))

	// 2. 加载装备清单, 失败不影响地图页面
	catalog, err := inventory.Load(cfg.InventoryFile)
	if err != nil {
		log.Printf("警告: 装备清单加载失败: %v", err)
	}

	if cfg.Tile.Token == "" {
		log.Println("警告: 未设置 MAP_TILE_TOKEN, 瓦片请求将由服务商拒绝")
	}

	h := handler.New(journey, catalog, handler.NewTileProxy(cfg.Tile), cfg.PublicDir)

	// 3. 初始化 Gin 引擎并配置路由
	r := gin.Default()
	setupRoutes(r, h)

	fmt.Println("\n服务器启动中...")
	fmt.Printf("访问地址: http://localhost:%s\n", cfg.Port)
	fmt.Println("API 文档:")
	fmt.Println("  - GET    /tiles/:z/:x/:y.png        - 地图瓦片代理")
	fmt.Println("  - GET    /api/journey               - 旅程概览")
	fmt.Println("  - GET    /api/journey/path          - 两个航点之间的行程")
	fmt.Println("  - GET    /api/routes?zoom=          - 路线曲线和箭头 (GeoJSON)")
	fmt.Println("  - GET    /api/waypoints             - 获取所有航点")
	fmt.Println("  - GET    /api/waypoints/:id         - 获取指定航点")
	fmt.Println("  - GET    /api/waypoints/search      - 搜索航点")
	fmt.Println("  - GET    /api/waypoints/nearest     - 最近航点")
	fmt.Println("  - GET    /api/inventory             - 装备清单")
	fmt.Println("\n按 Ctrl+C 退出")

	if err := r.Run(cfg.Addr()); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("服务器启动失败: %w", err)
	}
	return nil
}

// loadJourney 配置了数据库时从数据库读取 (首次运行用 JSON 文件导入), 否则直接读 JSON 文件
func loadJourney(cfg *config.Config) (*algo.Journey, error) {
	if !cfg.DB.Enabled() {
		return algo.LoadFromJSON(cfg.JourneyFile)
	}

	conn, err := db.Open(cfg.DB)
	if err != nil {
		return nil, err
	}

	seed, err := algo.LoadFromJSON(cfg.JourneyFile)
	if err != nil {
		log.Printf("警告: 无法读取初始旅程数据: %v", err)
	} else if err := db.Seed(conn, seed.Data()); err != nil {
		return nil, err
	}

	fmt.Println("正在从数据库加载旅程...")
	data, err := db.LoadJourney(conn)
	if err != nil {
		return nil, err
	}
	if seed != nil {
		data.Legend = seed.Legend
	}
	return algo.NewJourneyFromData(data)
}

// setupRoutes 配置路由
func setupRoutes(r *gin.Engine, h *handler.Handler) {
	r.Use(handler.CORS())
	r.Use(handler.RequestID())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "ok",
		})
	})

	// 瓦片代理, 最后一段形如 "12.png"
	r.GET("/tiles/:z/:x/:tile", h.Tiles.ServeTile)

	// 固定页面
	r.GET("/", h.Page(handler.MapPage))
	r.GET("/inventory", h.Page(handler.InventoryPage))
	r.GET("/resume", h.Page(handler.ResumeFile))

	// API 路由组
	api := r.Group("/api")
	{
		api.GET("/journey", h.GetJourney)
		api.GET("/journey/path", h.FindItinerary)
		api.GET("/routes", h.GetRoutes)
		api.GET("/waypoints", h.GetWaypoints)
		api.GET("/waypoints.geojson", h.GetWaypointsGeoJSON)
		api.GET("/waypoints/search", h.SearchWaypoints)
		api.GET("/waypoints/nearest", h.NearestWaypoint)
		api.GET("/waypoints/:id", h.GetWaypointByID)
		api.GET("/inventory", h.GetInventory)
	}

	// 其余路径作为静态文件 (css、js、图片、数据 JSON)
	r.NoRoute(h.Static())
}
