package hud

import "image"

// DrawStatbar 绘制由重复图标组成的状态条（生命、氧气等）
//
// count 以半个图标为单位：绘制 count/2 个完整图标，
// count 为奇数时再绘制一个只取纹理左半部分的半图标。
// 纹理不存在时静默返回。count 不做上限校验。
func (h *HUD) DrawStatbar(pos image.Point, corner Corner, dir Direction, texture string, count int, offset image.Point) {
	tex := h.textures.Texture(texture)
	if tex == nil {
		return
	}
	size := tex.Size()

	p := pos
	if corner == CornerLower {
		p.Y -= size.Y
	}
	p = p.Add(offset)

	unit := stepUnit(dir)
	step := image.Pt(unit.X*size.X, unit.Y*size.Y)

	full := image.Rectangle{Max: size}
	for i := 0; i < count/2; i++ {
		h.renderer.DrawTexturedRect(tex, full.Add(p), full, nil, whiteCorners, true)
		p = p.Add(step)
	}

	if count%2 == 1 {
		half := image.Rect(0, 0, size.X/2, size.Y)
		h.renderer.DrawTexturedRect(tex, half.Add(p), half, nil, whiteCorners, true)
	}
}
