package hud

import (
	"image"
	"image/color"
	"math"
	"strconv"
)

var (
	wearLostColor  = color.NRGBA{A: 255}
	countShade     = color.NRGBA{A: 128}
	countTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// DrawItemStack 在 rect 内绘制一格物品：图标、工具磨损条、数量
//
// 不依赖 HUD 实例，物品栏界面等其他位置也可直接调用。
// font 为 nil 时不绘制数量。
func DrawItemStack(r Renderer, font Font, items ItemSystem, stack ItemStack, rect image.Rectangle, clip *image.Rectangle) {
	if stack.Empty() {
		return
	}

	def := items.Definition(stack.Name)
	if tex := items.InventoryTexture(def.Name); tex != nil {
		r.DrawTexturedRect(tex, rect, fullSource(tex), clip, whiteCorners, true)
	}

	if def.Type == ItemTool && stack.Wear != 0 {
		drawWearBar(r, stack.Wear, rect, clip)
	}

	if font != nil && stack.Count >= 2 {
		label := strconv.Itoa(stack.Count)
		size := font.MeasureText(label)
		box := image.Rectangle{Min: rect.Max.Sub(size), Max: rect.Max}
		r.DrawFilledRect(countShade, box, clip)
		font.DrawText(label, box, countTextColor, clip)
	}
}

// WearBarRect 返回磨损条的完整矩形
// 条高为格子高度的 1/16，左右与底部各留 1/16 的边距
func WearBarRect(rect image.Rectangle) image.Rectangle {
	barHeight := rect.Dy() / 16
	padX := rect.Dx() / 16
	padY := rect.Dy() / 16
	return image.Rect(
		rect.Min.X+padX,
		rect.Max.Y-padY-barHeight,
		rect.Max.X-padX,
		rect.Max.Y-padY,
	)
}

// WearSplit 返回磨损条剩余/损耗部分的分界 X 坐标
// wear=0 时位于右边缘，wear=MaxWear 时位于左边缘
func WearSplit(bar image.Rectangle, wear uint16) int {
	w := float64(wear) / MaxWear
	return int(w*float64(bar.Min.X) + (1-w)*float64(bar.Max.X))
}

// WearColor 返回剩余耐久部分的颜色：绿 → 黄 → 红
func WearColor(wear uint16) color.NRGBA {
	w := float64(wear) / MaxWear
	idx := min(int(math.Floor(w*600)), 511)
	idx = min(idx+10, 511)
	if idx <= 255 {
		return color.NRGBA{R: uint8(idx), G: 255, B: 0, A: 255}
	}
	return color.NRGBA{R: 255, G: uint8(511 - idx), B: 0, A: 255}
}

func drawWearBar(r Renderer, wear uint16, rect image.Rectangle, clip *image.Rectangle) {
	bar := WearBarRect(rect)
	mid := WearSplit(bar, wear)

	remaining := bar
	remaining.Max.X = mid
	r.DrawFilledRect(WearColor(wear), remaining, clip)

	lost := bar
	lost.Min.X = mid
	r.DrawFilledRect(wearLostColor, lost, clip)
}
