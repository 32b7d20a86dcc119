package hud

import "image"

// DrawItemSlots 绘制一排（或一列）物品格
//
// 参数：
//   - origin: 物品栏左上角
//   - iconSize: 图标尺寸（像素），内边距为 iconSize/12
//   - itemCount: 格子数
//   - list: 物品列表，调用方保证非 nil
//   - selected: 选中格（从 1 开始，0 表示无选中）
//   - dir: 堆叠方向
//
// 绘制顺序：主题背景条 → 每格（选中高亮 → 格子底色 → 物品）。
func (h *HUD) DrawItemSlots(origin image.Point, iconSize, itemCount int, list InventoryList, selected int, dir Direction) {
	padding := slotPadding(iconSize)
	pitch := iconSize + padding*2

	width := itemCount * pitch
	height := pitch
	if dir.Vertical() {
		width = pitch
		height = itemCount * pitch
	}

	useBarImage := h.hotbarImage.resolve(h.player.HotbarImage(), h.textures)
	useSelectedImage := h.hotbarSelectedImage.resolve(h.player.HotbarSelectedImage(), h.textures)

	if useBarImage {
		if tex := h.textures.Texture(h.hotbarImage.name); tex != nil {
			bar := image.Rect(-padding/2, -padding/2, width+padding/2, height+padding/2).Add(origin)
			h.renderer.DrawTexturedRect(tex, bar, fullSource(tex), nil, whiteCorners, true)
		}
	}

	icon := image.Rect(0, 0, iconSize, iconSize)
	for i := 0; i < itemCount; i++ {
		var stack ItemStack
		if i < list.Len() {
			stack = list.Item(i)
		}

		rect := icon.Add(origin).Add(slotStep(dir, i, padding, pitch))

		if selected == i+1 {
			if useSelectedImage {
				h.drawSelectedImage(image.Rect(-padding*2, -padding*2, height, height).Add(origin).Add(slotStep(dir, i, padding, pitch)))
			} else {
				h.drawSelectionFrame(rect, padding)
			}
		}

		if !useBarImage {
			h.renderer.DrawFilledRect(slotShade, rect, nil)
		}
		DrawItemStack(h.renderer, h.font, h.items, stack, rect, nil)
	}
}

// SlotOffset 返回第 i 格相对物品栏原点的偏移
func SlotOffset(dir Direction, i, iconSize int) image.Point {
	padding := slotPadding(iconSize)
	return slotStep(dir, i, padding, iconSize+padding*2)
}

func slotStep(dir Direction, i, padding, pitch int) image.Point {
	switch dir {
	case DirRightLeft:
		return image.Pt(-(padding + i*pitch), padding)
	case DirTopBottom:
		return image.Pt(padding, padding+i*pitch)
	case DirBottomTop:
		return image.Pt(padding, -(padding + i*pitch))
	default:
		return image.Pt(padding+i*pitch, padding)
	}
}

func (h *HUD) drawSelectedImage(dst image.Rectangle) {
	tex := h.textures.Texture(h.hotbarSelectedImage.name)
	if tex == nil {
		return
	}
	h.renderer.DrawTexturedRect(tex, dst, fullSource(tex), nil, whiteCorners, true)
}

// drawSelectionFrame 用四条 padding 宽的边框模拟选中高亮（上、下、左、右）
func (h *HUD) drawSelectionFrame(rect image.Rectangle, padding int) {
	x1, y1 := rect.Min.X, rect.Min.Y
	x2, y2 := rect.Max.X, rect.Max.Y

	h.renderer.DrawFilledRect(selectionEdge, image.Rect(x1-padding, y1-padding, x2+padding, y1), nil)
	h.renderer.DrawFilledRect(selectionEdge, image.Rect(x1-padding, y2, x2+padding, y2+padding), nil)
	h.renderer.DrawFilledRect(selectionEdge, image.Rect(x1-padding, y1, x1, y2), nil)
	h.renderer.DrawFilledRect(selectionEdge, image.Rect(x2, y1, x2+padding, y2), nil)
}
