package config

import (
	"fmt"

	"github.com/gonewx/blockhud/pkg/embedded"
	"github.com/gonewx/blockhud/pkg/hud"
	"gopkg.in/yaml.v3"
)

// ItemConfig 单个物品定义
type ItemConfig struct {
	Name           string `yaml:"name"`
	Type           string `yaml:"type"` // none / node / craft / tool
	Description    string `yaml:"description"`
	InventoryImage string `yaml:"inventory_image"`
}

// ItemsFile data/items.yaml 的顶层结构
type ItemsFile struct {
	Items []ItemConfig `yaml:"items"`
}

// ParseItemType 解析物品类型名，空字符串视为 none
func ParseItemType(s string) (hud.ItemType, error) {
	switch s {
	case "", "none":
		return hud.ItemNone, nil
	case "node":
		return hud.ItemNode, nil
	case "craft":
		return hud.ItemCraft, nil
	case "tool":
		return hud.ItemTool, nil
	}
	return hud.ItemNone, fmt.Errorf("未知的物品类型: %q", s)
}

// Definition 转换为 HUD 使用的物品定义
func (c ItemConfig) Definition() (hud.ItemDefinition, error) {
	t, err := ParseItemType(c.Type)
	if err != nil {
		return hud.ItemDefinition{}, fmt.Errorf("物品 %s: %w", c.Name, err)
	}
	return hud.ItemDefinition{
		Name:           c.Name,
		Type:           t,
		Description:    c.Description,
		InventoryImage: c.InventoryImage,
	}, nil
}

// LoadItemDefinitions 加载物品定义列表
// 物品名不能为空且不能重复
func LoadItemDefinitions(path string) ([]hud.ItemDefinition, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取物品定义 %s: %w", path, err)
	}

	var file ItemsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("无法解析物品定义 %s: %w", path, err)
	}

	seen := make(map[string]bool, len(file.Items))
	defs := make([]hud.ItemDefinition, 0, len(file.Items))
	for i, item := range file.Items {
		if item.Name == "" {
			return nil, fmt.Errorf("物品 #%d 缺少 'name' 字段", i)
		}
		if seen[item.Name] {
			return nil, fmt.Errorf("物品 %s 重复定义", item.Name)
		}
		seen[item.Name] = true

		def, err := item.Definition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}
