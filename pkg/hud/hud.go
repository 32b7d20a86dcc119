package hud

import (
	"image"
	"image/color"
)

// 内置 HUD 组件使用的纹理与布局常量
const (
	HeartTexture     = "heart.png"
	BubbleTexture    = "bubble.png"
	CrosshairTexture = "crosshair.png"

	// MainListName 快捷栏读取的物品列表
	MainListName = "main"

	// StatbarLift 生命/氧气条相对快捷栏上移的像素
	StatbarLift = 4
	// BreathbarOffsetX 氧气条相对快捷栏左边缘的水平偏移
	BreathbarOffsetX = 180
	// LowBreathThreshold 氧气值不超过该值时才显示氧气条
	LowBreathThreshold = 10
	// CrosshairArm 矢量准星每条臂的长度
	CrosshairArm = 10
)

var (
	white         = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	whiteCorners  = [4]color.Color{white, white, white, white}
	slotShade     = color.NRGBA{A: 128}
	selectionEdge = color.NRGBA{A: 255}
)

// HUD 抬头显示渲染器
//
// 所有协作者通过构造函数注入，HUD 只读取它们，不修改玩家或物品状态。
// 非并发安全，应在渲染线程的 Draw 中调用。
type HUD struct {
	renderer Renderer
	font     Font
	textures TextureSource
	items    ItemSystem
	player   PlayerState

	geometry        ScreenGeometry
	hotbarImageSize int

	crosshairColor    color.NRGBA
	selectionBoxColor color.NRGBA
	useCrosshairImage bool

	hotbarImage         textureMemo
	hotbarSelectedImage textureMemo
}

// NewHUD 创建 HUD 渲染器
//
// 颜色配置只在此处读取一次；是否使用准星图片也只在此处判断一次。
// 选择框颜色的透明度固定为 255。
func NewHUD(r Renderer, font Font, textures TextureSource, items ItemSystem, player PlayerState, cfg Config) *HUD {
	selection := cfg.SelectionBoxColor
	selection.A = 255

	return &HUD{
		renderer:          r,
		font:              font,
		textures:          textures,
		items:             items,
		player:            player,
		hotbarImageSize:   48,
		crosshairColor:    cfg.CrosshairColor,
		selectionBoxColor: selection,
		useCrosshairImage: textures.HasImage(CrosshairTexture),
	}
}

// Resize 更新屏幕几何信息并重新计算快捷栏图标尺寸
// 重复调用相同尺寸结果不变
func (h *HUD) Resize(size image.Point) {
	h.geometry = NewScreenGeometry(size)
	h.hotbarImageSize = HotbarImageSize(size.Y)
}

// Geometry 返回当前屏幕几何信息
func (h *HUD) Geometry() ScreenGeometry {
	return h.geometry
}

// HotbarImageSize 返回当前快捷栏图标尺寸
func (h *HUD) HotbarImageSize() int {
	return h.hotbarImageSize
}

// UsesCrosshairImage 返回准星是否使用图片绘制
func (h *HUD) UsesCrosshairImage() bool {
	return h.useCrosshairImage
}

// fullSource 返回覆盖整张纹理的源矩形
func fullSource(tex Texture) image.Rectangle {
	return image.Rectangle{Max: tex.Size()}
}
