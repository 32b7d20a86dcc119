package hud

import (
	"image"
	"image/color"
	"log"
)

// DrawElements 按列表顺序绘制玩家的全部脚本 HUD 元素
//
// nil 元素直接跳过；单个元素出错（纹理缺失、物品列表不存在、未知类型）
// 只记录日志并跳过该元素，不影响本帧其他元素。
func (h *HUD) DrawElements() {
	for id, e := range h.player.Elements() {
		if e == nil {
			continue
		}

		pos := h.geometry.Relative(e.Base().Pos)
		switch el := e.(type) {
		case *ImageElement:
			h.drawImageElement(id, el, pos)
		case *TextElement:
			h.drawTextElement(id, el, pos)
		case *StatbarElement:
			h.DrawStatbar(pos, CornerUpper, el.Dir, el.Texture, el.Number, offsetPoint(el.Offset))
		case *InventoryElement:
			list := h.items.List(el.List)
			if list == nil {
				log.Printf("[HUD] Ignoring HUD element %d: inventory list %q not found", id, el.List)
				continue
			}
			h.DrawItemSlots(pos, h.hotbarImageSize, el.Number, list, el.Item, el.Dir)
		case *UnknownElement:
			log.Printf("[HUD] Ignoring HUD element %d (%q): unrecognized type %q", id, el.Name, el.Type)
		default:
			log.Printf("[HUD] Ignoring HUD element %d: unrecognized type %T", id, e)
		}
	}
}

// ImageElementRect 计算图片元素的目标矩形
func ImageElementRect(e *ImageElement, pos image.Point, texSize, screenSize image.Point) image.Rectangle {
	dst := image.Pt(int(float64(texSize.X)*e.Scale.X), int(float64(texSize.Y)*e.Scale.Y))
	if e.Scale.X < 0 {
		dst.X = int(float64(screenSize.X) * (e.Scale.X * -0.01))
	}
	if e.Scale.Y < 0 {
		dst.Y = int(float64(screenSize.Y) * (e.Scale.Y * -0.01))
	}

	align := image.Pt(
		int((e.Align.X-1.0)*float64(dst.X)/2),
		int((e.Align.Y-1.0)*float64(dst.Y)/2),
	)
	return image.Rectangle{Max: dst}.Add(pos).Add(align).Add(offsetPoint(e.Offset))
}

// TextElementRect 计算文本元素的文本框
// 宽度直接取 Scale.X，高度为 Scale.Y 行；对齐按实际测量的文本尺寸计算
func TextElementRect(e *TextElement, pos image.Point, textSize image.Point, lineHeight int) image.Rectangle {
	box := image.Rect(0, 0, int(e.Scale.X), int(float64(lineHeight)*e.Scale.Y))
	align := image.Pt(
		int((e.Align.X-1.0)*float64(textSize.X/2)),
		int((e.Align.Y-1.0)*float64(textSize.Y/2)),
	)
	return box.Add(pos).Add(align).Add(offsetPoint(e.Offset))
}

// UnpackColor 将 0xRRGGBB 解包为不透明颜色
func UnpackColor(number uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(number >> 16),
		G: uint8(number >> 8),
		B: uint8(number),
		A: 255,
	}
}

func (h *HUD) drawImageElement(id int, e *ImageElement, pos image.Point) {
	tex := h.textures.Texture(e.Texture)
	if tex == nil {
		log.Printf("[HUD] Ignoring HUD element %d: texture %q not found", id, e.Texture)
		return
	}
	dst := ImageElementRect(e, pos, tex.Size(), h.geometry.Size)
	h.renderer.DrawTexturedRect(tex, dst, fullSource(tex), nil, whiteCorners, true)
}

func (h *HUD) drawTextElement(id int, e *TextElement, pos image.Point) {
	if h.font == nil {
		log.Printf("[HUD] Ignoring HUD element %d: no font available", id)
		return
	}
	rect := TextElementRect(e, pos, h.font.MeasureText(e.Text), h.font.LineHeight())
	h.font.DrawText(e.Text, rect, UnpackColor(e.Number), nil)
}

func offsetPoint(v Vec2f) image.Point {
	return image.Pt(int(v.X), int(v.Y))
}
