package db

import (
	"fmt"
	"log"
	"time"
	"travel-journal/config"
	"travel-journal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// maxRetries 连接重试次数 (Docker 启动时数据库可能还没准备好)
const maxRetries = 30

// Open 连接 PostgreSQL 并自动迁移表结构
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	var (
		conn *gorm.DB
		err  error
	)
	for i := 0; i < maxRetries; i++ {
		conn, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err == nil {
			break
		}
		log.Printf("等待数据库就绪... (%d/%d): %v", i+1, maxRetries, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	// 自动迁移模式 (自动创建表结构)
	if err := conn.AutoMigrate(&model.Waypoint{}, &model.RouteEdge{}); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	log.Println("数据库连接并初始化成功！")
	return conn, nil
}

// Seed 数据库为空时导入初始旅程数据
func Seed(conn *gorm.DB, data model.JourneyData) error {
	var count int64
	if err := conn.Model(&model.Waypoint{}).Count(&count).Error; err != nil {
		return fmt.Errorf("统计航点失败: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("检测到数据库为空，正在导入旅程数据...")
	waypoints, routes := prepareRows(data)

	return conn.Transaction(func(tx *gorm.DB) error {
		if len(waypoints) > 0 {
			if err := tx.CreateInBatches(waypoints, 100).Error; err != nil {
				return fmt.Errorf("插入航点失败: %w", err)
			}
			log.Printf("导入了 %d 个航点", len(waypoints))
		}
		if len(routes) > 0 {
			if err := tx.CreateInBatches(routes, 100).Error; err != nil {
				return fmt.Errorf("插入路线失败: %w", err)
			}
			log.Printf("导入了 %d 条路线", len(routes))
		}
		return nil
	})
}

// LoadJourney 按导入顺序读取航点和路线
func LoadJourney(conn *gorm.DB) (model.JourneyData, error) {
	var data model.JourneyData
	if err := conn.Order("position").Find(&data.Waypoints).Error; err != nil {
		return data, fmt.Errorf("读取航点失败: %w", err)
	}
	if err := conn.Order("id").Find(&data.Routes).Error; err != nil {
		return data, fmt.Errorf("读取路线失败: %w", err)
	}
	return data, nil
}

// prepareRows 记录航点顺序, 清空路线主键让数据库自增
func prepareRows(data model.JourneyData) ([]model.Waypoint, []model.RouteEdge) {
	waypoints := make([]model.Waypoint, len(data.Waypoints))
	for i, w := range data.Waypoints {
		w.Position = i
		waypoints[i] = w
	}

	routes := make([]model.RouteEdge, len(data.Routes))
	for i, e := range data.Routes {
		e.ID = 0
		if e.Direction == "" {
			e.Direction = model.Unidirectional
		}
		routes[i] = e
	}
	return waypoints, routes
}
