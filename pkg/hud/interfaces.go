package hud

import (
	"image"
	"image/color"
)

// Texture 渲染后端持有的纹理句柄
type Texture interface {
	// Size 返回纹理原始尺寸（像素）
	Size() image.Point
}

// Renderer 2D/3D 绘制后端
//
// clip 为 nil 表示不裁剪。所有矩形均为屏幕坐标。
type Renderer interface {
	DrawFilledRect(c color.Color, r image.Rectangle, clip *image.Rectangle)
	// DrawTexturedRect 将纹理的 src 区域拉伸绘制到 dst
	// colors 为四个角的顶点颜色（左上、右上、右下、左下），作为颜色滤镜乘到纹理上
	DrawTexturedRect(tex Texture, dst, src image.Rectangle, clip *image.Rectangle, colors [4]color.Color, useAlpha bool)
	DrawLine(from, to image.Point, c color.Color)
	DrawWireBox(box Box3, c color.Color)
}

// Font 字体度量与文本绘制
type Font interface {
	MeasureText(s string) image.Point
	DrawText(s string, r image.Rectangle, c color.Color, clip *image.Rectangle)
	// LineHeight 单行文本高度（像素）
	LineHeight() int
}

// TextureSource 按名称查找纹理
type TextureSource interface {
	// HasImage 判断源图片是否存在（不触发加载失败日志）
	HasImage(name string) bool
	// Texture 返回纹理，不存在时返回 nil
	Texture(name string) Texture
}

// ItemType 物品定义类型
type ItemType int

const (
	ItemNone ItemType = iota
	ItemNode
	ItemCraft
	ItemTool
)

// ItemDefinition 物品定义（只读）
type ItemDefinition struct {
	Name           string
	Type           ItemType
	Description    string
	InventoryImage string
}

// MaxWear 工具磨损上限，0 表示全新
const MaxWear = 65535

// ItemStack 物品栏中的一格物品
type ItemStack struct {
	Name  string
	Count int
	Wear  uint16
}

// Empty 判断是否为空格
func (s ItemStack) Empty() bool {
	return s.Name == "" || s.Count == 0
}

// InventoryList 只读物品列表
type InventoryList interface {
	Len() int
	Item(i int) ItemStack
}

// ItemSystem 物品系统
type ItemSystem interface {
	// List 按名称获取物品列表，不存在时返回 nil
	List(name string) InventoryList
	Definition(name string) ItemDefinition
	// InventoryTexture 返回物品在物品栏中显示的图标，可能为 nil
	InventoryTexture(name string) Texture
}

// PlayerState 本地玩家的 HUD 相关状态，每帧只读一次
type PlayerState interface {
	HudFlags() Flags
	HotbarItemCount() int
	// Elements 返回脚本 HUD 元素列表，可能包含 nil（已删除的槽位）
	Elements() []Element
	HotbarImage() string
	HotbarSelectedImage() string
}

// Config 构造时读取的颜色配置
type Config struct {
	CrosshairColor    color.NRGBA
	SelectionBoxColor color.NRGBA
}
