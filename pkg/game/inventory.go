package game

import (
	"fmt"
	"sort"

	"github.com/gonewx/blockhud/pkg/hud"
)

// InventoryList 固定大小的物品列表，实现 hud.InventoryList
type InventoryList struct {
	name   string
	stacks []hud.ItemStack
}

// NewInventoryList 创建指定大小的空列表
func NewInventoryList(name string, size int) *InventoryList {
	if size < 0 {
		size = 0
	}
	return &InventoryList{name: name, stacks: make([]hud.ItemStack, size)}
}

// Name 列表名称
func (l *InventoryList) Name() string { return l.name }

// Len 格子数
func (l *InventoryList) Len() int { return len(l.stacks) }

// Item 返回第 i 格物品，越界时返回空格
func (l *InventoryList) Item(i int) hud.ItemStack {
	if i < 0 || i >= len(l.stacks) {
		return hud.ItemStack{}
	}
	return l.stacks[i]
}

// SetItem 设置第 i 格物品
func (l *InventoryList) SetItem(i int, stack hud.ItemStack) error {
	if i < 0 || i >= len(l.stacks) {
		return fmt.Errorf("inventory list %s: slot %d out of range [0,%d)", l.name, i, len(l.stacks))
	}
	l.stacks[i] = stack
	return nil
}

// Inventory 玩家物品栏，由若干命名列表组成
type Inventory struct {
	lists map[string]*InventoryList
}

// NewInventory 创建空物品栏
func NewInventory() *Inventory {
	return &Inventory{lists: make(map[string]*InventoryList)}
}

// AddList 添加（或替换）一个列表
func (inv *Inventory) AddList(name string, size int) *InventoryList {
	l := NewInventoryList(name, size)
	inv.lists[name] = l
	return l
}

// GetList 按名称获取列表，不存在时返回 nil
func (inv *Inventory) GetList(name string) *InventoryList {
	return inv.lists[name]
}

// ListNames 返回全部列表名称（已排序）
func (inv *Inventory) ListNames() []string {
	names := make([]string, 0, len(inv.lists))
	for name := range inv.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ItemSystem 组合物品栏与物品注册表，实现 hud.ItemSystem
type ItemSystem struct {
	inventory *Inventory
	registry  *ItemRegistry
}

// NewItemSystem 创建物品系统
func NewItemSystem(inventory *Inventory, registry *ItemRegistry) *ItemSystem {
	return &ItemSystem{inventory: inventory, registry: registry}
}

// List 按名称获取物品列表，不存在时返回 nil 接口
func (s *ItemSystem) List(name string) hud.InventoryList {
	l := s.inventory.GetList(name)
	if l == nil {
		return nil
	}
	return l
}

// Definition 查询物品定义
func (s *ItemSystem) Definition(name string) hud.ItemDefinition {
	return s.registry.Definition(name)
}

// InventoryTexture 查询物品图标
func (s *ItemSystem) InventoryTexture(name string) hud.Texture {
	return s.registry.InventoryTexture(name)
}
