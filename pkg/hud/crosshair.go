package hud

import (
	"image"
	"image/color"
)

// DrawCrosshair 在屏幕中心绘制准星
// 有准星图片时以配置颜色着色绘制图片，否则绘制两条 20px 的交叉线
func (h *HUD) DrawCrosshair() {
	if !h.player.HudFlags().Has(FlagCrosshairVisible) {
		return
	}

	center := h.geometry.Center
	if h.useCrosshairImage {
		tex := h.textures.Texture(CrosshairTexture)
		if tex == nil {
			return
		}
		size := tex.Size()
		dst := image.Rectangle{Max: size}.Add(center.Sub(image.Pt(size.X/2, size.Y/2)))
		c := h.crosshairColor
		h.renderer.DrawTexturedRect(tex, dst, fullSource(tex), nil, [4]color.Color{c, c, c, c}, true)
		return
	}

	h.renderer.DrawLine(center.Sub(image.Pt(CrosshairArm, 0)), center.Add(image.Pt(CrosshairArm, 0)), h.crosshairColor)
	h.renderer.DrawLine(center.Sub(image.Pt(0, CrosshairArm)), center.Add(image.Pt(0, CrosshairArm)), h.crosshairColor)
}

// DrawSelectionBoxes 为每个选择框绘制三维线框
func (h *HUD) DrawSelectionBoxes(boxes []Box3) {
	for _, box := range boxes {
		h.renderer.DrawWireBox(box, h.selectionBoxColor)
	}
}
