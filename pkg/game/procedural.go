package game

import (
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"

	"github.com/gonewx/blockhud/pkg/hud"
	"golang.org/x/image/vector"
)

// 程序生成纹理的尺寸
const (
	StatbarIconSize = 24
	ItemIconSize    = 16
)

// 圆弧的三次贝塞尔近似系数
const arcKappa = 0.5523

var (
	heartRed    = color.NRGBA{R: 220, G: 30, B: 40, A: 255}
	bubbleBlue  = color.NRGBA{R: 120, G: 190, B: 255, A: 220}
	bubbleShine = color.NRGBA{R: 255, G: 255, B: 255, A: 230}
	unknownPink = color.NRGBA{R: 255, G: 0, B: 255, A: 255}
	toolHandle  = color.NRGBA{R: 120, G: 80, B: 40, A: 255}
)

// fill 用纯色填充光栅化路径
func fill(dst *image.NRGBA, z *vector.Rasterizer, c color.Color) {
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// addCircle 向光栅器添加一个圆
func addCircle(z *vector.Rasterizer, cx, cy, r float32) {
	k := r * arcKappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}

// GenerateHeart 生成红心图标（生命条）
func GenerateHeart(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	s := float32(size)
	z := vector.NewRasterizer(size, size)
	z.MoveTo(s*0.5, s*0.9)
	z.CubeTo(s*0.1, s*0.6, s*0.0, s*0.3, s*0.25, s*0.15)
	z.CubeTo(s*0.4, s*0.08, s*0.5, s*0.25, s*0.5, s*0.3)
	z.CubeTo(s*0.5, s*0.25, s*0.6, s*0.08, s*0.75, s*0.15)
	z.CubeTo(s*1.0, s*0.3, s*0.9, s*0.6, s*0.5, s*0.9)
	z.ClosePath()
	fill(img, z, heartRed)
	return img
}

// GenerateBubble 生成气泡图标（氧气条）
func GenerateBubble(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	s := float32(size)

	z := vector.NewRasterizer(size, size)
	addCircle(z, s*0.5, s*0.5, s*0.42)
	fill(img, z, bubbleBlue)

	z.Reset(size, size)
	addCircle(z, s*0.35, s*0.33, s*0.1)
	fill(img, z, bubbleShine)
	return img
}

// GenerateUnknownIcon 生成未知物品图标（品红/黑色棋盘格）
func GenerateUnknownIcon(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x < half) == (y < half) {
				img.SetNRGBA(x, y, unknownPink)
			} else {
				img.SetNRGBA(x, y, color.NRGBA{A: 255})
			}
		}
	}
	return img
}

// ItemColor 根据物品名生成稳定的主色
func ItemColor(name string) color.NRGBA {
	h := fnv.New32a()
	h.Write([]byte(name))
	v := h.Sum32()
	return color.NRGBA{
		R: 64 + uint8(v&0x7f),
		G: 64 + uint8((v>>8)&0x7f),
		B: 64 + uint8((v>>16)&0x7f),
		A: 255,
	}
}

// darken 将颜色变暗一半
func darken(c color.NRGBA) color.NRGBA {
	return color.NRGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}

// GenerateItemIcon 按物品类型生成图标
//   - 方块：带深色边框的方块
//   - 工具：斜放的手柄加彩色头部
//   - 其它：彩色菱形
func GenerateItemIcon(def hud.ItemDefinition, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	base := ItemColor(def.Name)
	s := float32(size)

	switch def.Type {
	case hud.ItemNode:
		draw.Draw(img, img.Bounds(), image.NewUniform(darken(base)), image.Point{}, draw.Src)
		inner := img.Bounds().Inset(size / 8)
		draw.Draw(img, inner, image.NewUniform(base), image.Point{}, draw.Src)

	case hud.ItemTool:
		z := vector.NewRasterizer(size, size)
		z.MoveTo(s*0.1, s*0.8)
		z.LineTo(s*0.2, s*0.9)
		z.LineTo(s*0.7, s*0.4)
		z.LineTo(s*0.6, s*0.3)
		z.ClosePath()
		fill(img, z, toolHandle)

		z.Reset(size, size)
		z.MoveTo(s*0.45, s*0.15)
		z.LineTo(s*0.85, s*0.05)
		z.LineTo(s*0.95, s*0.55)
		z.LineTo(s*0.8, s*0.5)
		z.LineTo(s*0.75, s*0.25)
		z.LineTo(s*0.5, s*0.3)
		z.ClosePath()
		fill(img, z, base)

	default:
		z := vector.NewRasterizer(size, size)
		z.MoveTo(s*0.5, s*0.1)
		z.LineTo(s*0.9, s*0.5)
		z.LineTo(s*0.5, s*0.9)
		z.LineTo(s*0.1, s*0.5)
		z.ClosePath()
		fill(img, z, base)
	}
	return img
}
