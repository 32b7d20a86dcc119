package hud

import (
	"image"
	"log"
)

// HotbarOrigin 返回快捷栏左上角位置
// 快捷栏水平居中于 centerLower，底边距锚点 iconSize + 3*padding
func HotbarOrigin(centerLower image.Point, iconSize, itemCount int) image.Point {
	padding := slotPadding(iconSize)
	width := itemCount * (iconSize + padding*2)
	return centerLower.Sub(image.Pt(width/2, iconSize+padding*3))
}

// DrawHotbar 绘制快捷栏、生命条和氧气条
//
// 参数：
//   - centerLower: 底部中心锚点
//   - halfHearts: 生命值（半颗心为单位）
//   - wieldIndex: 当前手持物品索引（从 0 开始）
//   - breath: 氧气值，大于 LowBreathThreshold 时不显示氧气条
//
// 缺少 "main" 物品列表属于状态不一致，记录错误并放弃整个快捷栏的绘制。
func (h *HUD) DrawHotbar(centerLower image.Point, halfHearts, wieldIndex, breath int) {
	mainList := h.items.List(MainListName)
	if mainList == nil {
		log.Printf("[HUD] Error: DrawHotbar: inventory list %q not found", MainListName)
		return
	}

	itemCount := h.player.HotbarItemCount()
	pos := HotbarOrigin(centerLower, h.hotbarImageSize, itemCount)
	flags := h.player.HudFlags()

	if flags.Has(FlagHotbarVisible) {
		h.DrawItemSlots(pos, h.hotbarImageSize, itemCount, mainList, wieldIndex+1, DirLeftRight)
	}
	if flags.Has(FlagHealthbarVisible) {
		h.DrawStatbar(pos.Sub(image.Pt(0, StatbarLift)), CornerLower, DirLeftRight,
			HeartTexture, halfHearts, image.Point{})
	}
	if flags.Has(FlagBreathbarVisible) && breath <= LowBreathThreshold {
		h.DrawStatbar(pos.Sub(image.Pt(-BreathbarOffsetX, StatbarLift)), CornerLower, DirLeftRight,
			BubbleTexture, breath*2, image.Point{})
	}
}
