package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Font 基于 text/v2 的字体，实现 hud.Font
// 文本绘制到所绑定 Renderer 的当前目标上
type Font struct {
	renderer   *Renderer
	face       text.Face
	lineHeight int
}

// NewFont 用任意 text.Face 创建字体
func NewFont(r *Renderer, face text.Face) *Font {
	m := face.Metrics()
	lh := int(math.Ceil(m.HAscent + m.HDescent))
	if lh <= 0 {
		lh = 1
	}
	return &Font{renderer: r, face: face, lineHeight: lh}
}

// DefaultFont 返回内置 7x13 位图字体，不需要任何字体文件
func DefaultFont(r *Renderer) *Font {
	return NewFont(r, text.NewGoXFace(basicfont.Face7x13))
}

// Face 返回底层字体
func (f *Font) Face() text.Face { return f.face }

// LineHeight 单行高度
func (f *Font) LineHeight() int { return f.lineHeight }

// MeasureText 返回文本的像素尺寸（向上取整）
func (f *Font) MeasureText(s string) image.Point {
	if s == "" {
		return image.Point{}
	}
	w, h := text.Measure(s, f.face, float64(f.lineHeight))
	return image.Pt(int(math.Ceil(w)), int(math.Ceil(h)))
}

// DrawText 从 r 的左上角开始绘制文本
func (f *Font) DrawText(s string, r image.Rectangle, c color.Color, clip *image.Rectangle) {
	if f.renderer == nil || s == "" {
		return
	}
	dst := f.renderer.destination(clip)
	if dst == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = float64(f.lineHeight)
	text.Draw(dst, s, f.face, op)
}
