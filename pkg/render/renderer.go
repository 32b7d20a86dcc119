package render

import (
	"image"
	"image/color"

	"github.com/gonewx/blockhud/pkg/hud"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// boxEdges 包围盒 12 条棱对应的角点索引
// 角点编号：bit0 = X, bit1 = Y, bit2 = Z（0 取 Min，1 取 Max）
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // 平行 X 轴
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // 平行 Y 轴
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // 平行 Z 轴
}

// Renderer 将 HUD 绘制调用转换为 Ebitengine 绘制操作
//
// 每帧开始前调用 SetTarget 指定目标图像；目标为 nil 时所有调用都被忽略。
type Renderer struct {
	target *ebiten.Image
	camera *Camera
}

// NewRenderer 创建渲染器，camera 用于选择框投影，可以为 nil
func NewRenderer(camera *Camera) *Renderer {
	return &Renderer{camera: camera}
}

// SetTarget 设置本帧的绘制目标
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// Camera 返回选择框投影摄像机
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// destination 返回应用裁剪后的绘制目标，裁剪区域为空时返回 nil
func (r *Renderer) destination(clip *image.Rectangle) *ebiten.Image {
	if r.target == nil {
		return nil
	}
	if clip == nil {
		return r.target
	}
	area := clip.Intersect(r.target.Bounds())
	if area.Empty() {
		return nil
	}
	return r.target.SubImage(area).(*ebiten.Image)
}

// DrawFilledRect 绘制纯色矩形
func (r *Renderer) DrawFilledRect(c color.Color, rect image.Rectangle, clip *image.Rectangle) {
	if rect.Empty() {
		return
	}
	dst := r.destination(clip)
	if dst == nil {
		return
	}
	vector.DrawFilledRect(dst,
		float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Dx()), float32(rect.Dy()),
		c, false)
}

// DrawTexturedRect 将纹理的 src 区域拉伸到 dst
//
// 四角颜色取平均值后作为颜色缩放；useAlpha 为 false 时直接覆盖目标像素。
func (r *Renderer) DrawTexturedRect(tex hud.Texture, dst, src image.Rectangle, clip *image.Rectangle, colors [4]color.Color, useAlpha bool) {
	t, ok := tex.(*Texture)
	if !ok || t == nil || dst.Empty() {
		return
	}
	src = src.Intersect(t.img.Bounds())
	if src.Empty() {
		return
	}
	target := r.destination(clip)
	if target == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = TextureGeoM(dst, src)
	op.ColorScale.ScaleWithColor(CornerAverage(colors))
	if !useAlpha {
		op.Blend = ebiten.BlendCopy
	}
	target.DrawImage(t.img.SubImage(src).(*ebiten.Image), op)
}

// DrawLine 绘制 1 像素宽的线段
func (r *Renderer) DrawLine(from, to image.Point, c color.Color) {
	if r.target == nil {
		return
	}
	vector.StrokeLine(r.target,
		float32(from.X), float32(from.Y),
		float32(to.X), float32(to.Y),
		1, c, false)
}

// DrawWireBox 将世界坐标包围盒投影到屏幕并绘制 12 条棱
// 任一端点位于摄像机后方的棱会被跳过
func (r *Renderer) DrawWireBox(box hud.Box3, c color.Color) {
	if r.target == nil || r.camera == nil {
		return
	}
	size := r.target.Bounds().Size()
	r.camera.SetScreenSize(size.X, size.Y)

	for _, seg := range ProjectBoxEdges(r.camera, box) {
		r.DrawLine(seg[0], seg[1], c)
	}
}

// ProjectBoxEdges 返回包围盒可见棱的屏幕坐标
func ProjectBoxEdges(cam *Camera, box hud.Box3) [][2]image.Point {
	var pts [8]image.Point
	var visible [8]bool
	for i := range pts {
		corner := box.Min
		if i&1 != 0 {
			corner.X = box.Max.X
		}
		if i&2 != 0 {
			corner.Y = box.Max.Y
		}
		if i&4 != 0 {
			corner.Z = box.Max.Z
		}
		pts[i], visible[i] = cam.Project(FromHud(corner))
	}

	segments := make([][2]image.Point, 0, len(boxEdges))
	for _, e := range boxEdges {
		if !visible[e[0]] || !visible[e[1]] {
			continue
		}
		segments = append(segments, [2]image.Point{pts[e[0]], pts[e[1]]})
	}
	return segments
}

// TextureGeoM 计算把 src 区域映射到 dst 的变换
func TextureGeoM(dst, src image.Rectangle) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(float64(dst.Dx())/float64(src.Dx()), float64(dst.Dy())/float64(src.Dy()))
	g.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	return g
}

// CornerAverage 计算四角颜色的平均值，nil 视为白色
func CornerAverage(colors [4]color.Color) color.NRGBA {
	var r, g, b, a int
	for _, c := range colors {
		if c == nil {
			c = color.White
		}
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		r += int(n.R)
		g += int(n.G)
		b += int(n.B)
		a += int(n.A)
	}
	return color.NRGBA{R: uint8(r / 4), G: uint8(g / 4), B: uint8(b / 4), A: uint8(a / 4)}
}
