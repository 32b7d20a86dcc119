package game

import (
	"log"
	"sort"

	"github.com/gonewx/blockhud/pkg/hud"
)

// 未注册物品使用的定义
const (
	UnknownItemName  = "unknown"
	UnknownItemImage = "unknown_item.png"
)

// ItemRegistry 物品定义注册表
type ItemRegistry struct {
	defs     map[string]hud.ItemDefinition
	textures hud.TextureSource
}

// NewItemRegistry 创建注册表，textures 用于查找物品图标
func NewItemRegistry(textures hud.TextureSource) *ItemRegistry {
	return &ItemRegistry{
		defs:     make(map[string]hud.ItemDefinition),
		textures: textures,
	}
}

// Register 注册物品定义，同名定义会被覆盖
func (r *ItemRegistry) Register(def hud.ItemDefinition) {
	if _, exists := r.defs[def.Name]; exists {
		log.Printf("[ItemRegistry] Warning: overriding definition of %q", def.Name)
	}
	r.defs[def.Name] = def
}

// Definition 查询物品定义，未注册时返回 unknown 定义
func (r *ItemRegistry) Definition(name string) hud.ItemDefinition {
	if def, ok := r.defs[name]; ok {
		return def
	}
	return hud.ItemDefinition{
		Name:           UnknownItemName,
		Type:           hud.ItemNone,
		Description:    "Unknown Item",
		InventoryImage: UnknownItemImage,
	}
}

// InventoryTexture 返回物品图标
// name 可以是物品名，也可以是 Definition 返回的定义名（包括 unknown）
func (r *ItemRegistry) InventoryTexture(name string) hud.Texture {
	image := r.Definition(name).InventoryImage
	if image == "" || r.textures == nil {
		return nil
	}
	return r.textures.Texture(image)
}

// Names 返回全部已注册物品名（已排序）
func (r *ItemRegistry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
