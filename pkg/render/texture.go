// Package render 提供基于 Ebitengine 的 HUD 绘制后端
//
// Renderer 实现 hud.Renderer，Font 实现 hud.Font，Texture 实现 hud.Texture。
// 选择框的三维线框通过 Camera 投影到屏幕后以线段绘制。
package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture wraps an Ebitengine image as a HUD texture handle
type Texture struct {
	name string
	img  *ebiten.Image
}

// NewTexture creates a texture; img must not be nil
func NewTexture(name string, img *ebiten.Image) *Texture {
	return &Texture{name: name, img: img}
}

// Name returns the texture file name
func (t *Texture) Name() string { return t.name }

// Image returns the underlying image
func (t *Texture) Image() *ebiten.Image { return t.img }

// Size returns the texture size in pixels
func (t *Texture) Size() image.Point { return t.img.Bounds().Size() }
