// Package hud 负责绘制游戏客户端的抬头显示（HUD）
//
// 包括物品快捷栏、生命/氧气状态条、准星、方块选择框以及脚本添加的
// HUD 元素（图片、文本、状态条、物品栏）。本包只负责布局计算与绘制调用的排序，
// 实际绘制通过 Renderer 接口交给外部渲染后端完成。
//
// 本包不持有任何跨帧的布局状态：每一帧都根据屏幕尺寸和玩家状态重新计算。
package hud

import "image"

// Direction 物品/图标的堆叠方向
type Direction int

const (
	DirLeftRight Direction = iota // 从左到右（默认）
	DirRightLeft                  // 从右到左
	DirTopBottom                  // 从上到下
	DirBottomTop                  // 从下到上
)

// String 返回方向名称（用于日志和配置文件）
func (d Direction) String() string {
	switch d {
	case DirRightLeft:
		return "right_left"
	case DirTopBottom:
		return "top_bottom"
	case DirBottomTop:
		return "bottom_top"
	default:
		return "left_right"
	}
}

// Vertical 返回该方向是否沿 Y 轴堆叠
func (d Direction) Vertical() bool {
	return d == DirTopBottom || d == DirBottomTop
}

// Corner 状态条的锚点角
type Corner int

const (
	CornerUpper Corner = iota // 锚点为图标左上角
	CornerLower               // 锚点为图标左下角，状态条向上生长
)

// Flags HUD 可见性标志位
type Flags uint32

const (
	FlagHotbarVisible Flags = 1 << iota
	FlagHealthbarVisible
	FlagCrosshairVisible
	FlagWieldItemVisible
	FlagBreathbarVisible
)

// DefaultFlags 默认开启全部 HUD 组件
const DefaultFlags = FlagHotbarVisible | FlagHealthbarVisible | FlagCrosshairVisible |
	FlagWieldItemVisible | FlagBreathbarVisible

// Has 判断是否设置了指定标志
func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// Vec2f 浮点二维向量，用于脚本元素的归一化坐标、缩放和对齐
type Vec2f struct {
	X, Y float64
}

// Vec3 三维向量（世界坐标）
type Vec3 struct {
	X, Y, Z float64
}

// Box3 轴对齐三维包围盒
type Box3 struct {
	Min, Max Vec3
}

// ScreenGeometry 当前屏幕尺寸及其中心点
// 每次窗口尺寸变化时重新计算，所有相对坐标都基于它换算
type ScreenGeometry struct {
	Size   image.Point
	Center image.Point
}

// NewScreenGeometry 根据屏幕尺寸创建几何信息
func NewScreenGeometry(size image.Point) ScreenGeometry {
	return ScreenGeometry{
		Size:   size,
		Center: image.Pt(size.X/2, size.Y/2),
	}
}

// Relative 将归一化坐标 [0,1] 换算为屏幕像素坐标
func (g ScreenGeometry) Relative(pos Vec2f) image.Point {
	return image.Pt(int(pos.X*float64(g.Size.X)), int(pos.Y*float64(g.Size.Y)))
}

// HotbarImageSize 根据屏幕高度返回快捷栏图标尺寸
//
//   - 高度 <= 800: 32px
//   - 高度 <= 1280: 48px
//   - 其他: 64px
func HotbarImageSize(screenHeight int) int {
	switch {
	case screenHeight <= 800:
		return 32
	case screenHeight <= 1280:
		return 48
	default:
		return 64
	}
}

// slotPadding 物品格的内边距
func slotPadding(iconSize int) int {
	return iconSize / 12
}

// stepUnit 返回方向对应的单位步进向量
func stepUnit(dir Direction) image.Point {
	switch dir {
	case DirRightLeft:
		return image.Pt(-1, 0)
	case DirTopBottom:
		return image.Pt(0, 1)
	case DirBottomTop:
		return image.Pt(0, -1)
	default:
		return image.Pt(1, 0)
	}
}
