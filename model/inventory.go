package model

// Category 装备分类
type Category struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// InventoryItem 装备清单中的一件物品
type InventoryItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Subname     string `json:"subname,omitempty"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Essential   bool   `json:"essential"`
	Packed      bool   `json:"packed"`
	Photo       string `json:"photo"`
}

// InventoryData 对应 inventory.json 的结构
type InventoryData struct {
	Categories     []Category      `json:"categories"`
	InventoryItems []InventoryItem `json:"inventoryItems"`
}
