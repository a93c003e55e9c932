// Package config 从环境变量读取服务配置 (为了 Docker / Netlify 部署方便)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultTileURLTemplate MapTiler 水彩风格瓦片, {key} 会被替换为 MAP_TILE_TOKEN
const DefaultTileURLTemplate = "https://api.maptiler.com/maps/aquarelle/256/{z}/{x}/{y}.png?key={key}"

// Config 服务配置
type Config struct {
	Port          string
	PublicDir     string
	JourneyFile   string
	InventoryFile string
	Tile          TileConfig
	DB            DBConfig
}

// TileConfig 瓦片代理配置
type TileConfig struct {
	URLTemplate string
	Token       string // 不做校验, 缺失时由瓦片服务商返回错误
	Timeout     time.Duration
}

// DBConfig 数据库配置, Host 为空表示不使用数据库
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	TimeZone string
}

// Load 读取环境变量, 未设置的项使用默认值
func Load() *Config {
	publicDir := GetEnvOrDefault("PUBLIC_DIR", "./public")

	timeout := 10 * time.Second
	if v := os.Getenv("TILE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			timeout = d
		} else if secs, err := strconv.Atoi(v); err == nil {
			timeout = time.Duration(secs) * time.Second
		}
	}

	return &Config{
		Port:          GetEnvOrDefault("PORT", "3000"),
		PublicDir:     publicDir,
		JourneyFile:   GetEnvOrDefault("JOURNEY_FILE", filepath.Join(publicDir, "assets", "data", "journey.json")),
		InventoryFile: GetEnvOrDefault("INVENTORY_FILE", filepath.Join(publicDir, "assets", "data", "inventory.json")),
		Tile: TileConfig{
			URLTemplate: GetEnvOrDefault("TILE_URL_TEMPLATE", DefaultTileURLTemplate),
			Token:       os.Getenv("MAP_TILE_TOKEN"),
			Timeout:     timeout,
		},
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     GetEnvOrDefault("DB_PORT", "5432"),
			User:     GetEnvOrDefault("DB_USER", "journey"),
			Password: GetEnvOrDefault("DB_PASSWORD", "journey"),
			Name:     GetEnvOrDefault("DB_NAME", "journey"),
			TimeZone: GetEnvOrDefault("DB_TIMEZONE", "Europe/Paris"),
		},
	}
}

// Addr gin 监听地址
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Enabled 是否从数据库加载旅程
func (d DBConfig) Enabled() bool {
	return d.Host != ""
}

// DSN PostgreSQL 连接串
func (d DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.TimeZone,
	)
}

// GetEnvOrDefault 获取环境变量，如果不存在则返回默认值
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
