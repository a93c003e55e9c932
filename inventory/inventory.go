// Package inventory 装备清单的查询和统计
// 数据只读, 前端勾选"已打包"只改本地状态, 不回写服务器
package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"travel-journal/model"
)

// CategoryAll 不按分类过滤
const CategoryAll = "all"

// Catalog 装备清单
type Catalog struct {
	categories []model.Category
	byName     map[string]model.Category
	items      []model.InventoryItem
}

// Filter 查询条件
type Filter struct {
	Category string `form:"category"`
	Search   string `form:"q"`
}

// Stats 打包进度
type Stats struct {
	Total           int `json:"total"`
	Packed          int `json:"packed"`
	Essential       int `json:"essential"`
	EssentialPacked int `json:"essential_packed"`
}

// New 从解析好的数据创建清单
func New(data model.InventoryData) *Catalog {
	c := &Catalog{
		categories: data.Categories,
		byName:     make(map[string]model.Category, len(data.Categories)),
		items:      data.InventoryItems,
	}
	for _, cat := range data.Categories {
		c.byName[cat.Name] = cat
	}
	return c
}

// Load 读取 inventory.json
func Load(path string) (*Catalog, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取文件失败: %w", err)
	}

	var data model.InventoryData
	if err := json.Unmarshal(file, &data); err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}
	return New(data), nil
}

// Items 全部物品 (副本)
func (c *Catalog) Items() []model.InventoryItem {
	return append([]model.InventoryItem(nil), c.items...)
}

// Categories 全部分类
func (c *Catalog) Categories() []model.Category {
	return append([]model.Category(nil), c.categories...)
}

// Category 按名称查找分类
func (c *Catalog) Category(name string) (model.Category, bool) {
	cat, ok := c.byName[name]
	return cat, ok
}

// UsedCategories 物品实际用到的分类, 按物品出现顺序去重
// 分类表里没有的名称会被跳过
func (c *Catalog) UsedCategories() []model.Category {
	seen := make(map[string]bool)
	used := make([]model.Category, 0)
	for _, item := range c.items {
		if seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		if cat, ok := c.byName[item.Category]; ok {
			used = append(used, cat)
		}
	}
	return used
}

// Filter 先按分类过滤, 再按关键词匹配名称、描述或分类
func (c *Catalog) Filter(f Filter) []model.InventoryItem {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	results := make([]model.InventoryItem, 0, len(c.items))

	for _, item := range c.items {
		if f.Category != "" && f.Category != CategoryAll && item.Category != f.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) &&
			!strings.Contains(strings.ToLower(item.Category), search) {
			continue
		}
		results = append(results, item)
	}
	return results
}

// Stats 统计全部物品的打包进度
func (c *Catalog) Stats() Stats {
	return StatsFor(c.items)
}

// StatsFor 统计给定物品的打包进度
func StatsFor(items []model.InventoryItem) Stats {
	var s Stats
	for _, item := range items {
		s.Total++
		if item.Packed {
			s.Packed++
		}
		if item.Essential {
			s.Essential++
			if item.Packed {
				s.EssentialPacked++
			}
		}
	}
	return s
}
