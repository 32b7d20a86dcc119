package render

import (
	"image"
	"math"
)

const (
	defaultNear = 0.1
	defaultFar  = 500
)

// Camera is a perspective camera used to project selection boxes onto the screen
type Camera struct {
	Eye, Target, Up Vec3
	FovY            float64 // vertical field of view in degrees

	ScreenW, ScreenH int

	viewProj Mat4
	dirty    bool
}

// NewCamera creates a camera looking from eye to target with +Y up
func NewCamera(eye, target Vec3, fovY float64) *Camera {
	return &Camera{
		Eye:    eye,
		Target: target,
		Up:     V3(0, 1, 0),
		FovY:   fovY,
		dirty:  true,
	}
}

// SetScreenSize updates the viewport used for projection
func (c *Camera) SetScreenSize(w, h int) {
	if w == c.ScreenW && h == c.ScreenH {
		return
	}
	c.ScreenW, c.ScreenH = w, h
	c.dirty = true
}

// LookAt moves the camera
func (c *Camera) LookAt(eye, target Vec3) {
	c.Eye, c.Target = eye, target
	c.dirty = true
}

func (c *Camera) update() {
	if !c.dirty {
		return
	}
	c.dirty = false

	aspect := 1.0
	if c.ScreenH > 0 {
		aspect = float64(c.ScreenW) / float64(c.ScreenH)
	}
	view := Mat4LookAt(c.Eye, c.Target, c.Up)
	proj := Mat4Perspective(c.FovY*math.Pi/180, aspect, defaultNear, defaultFar)
	c.viewProj = proj.Mul(view)
}

// ViewProj returns the combined view-projection matrix
func (c *Camera) ViewProj() Mat4 {
	c.update()
	return c.viewProj
}

// Project converts a world point to screen coordinates.
// ok is false for points at or behind the near plane.
func (c *Camera) Project(p Vec3) (pt image.Point, ok bool) {
	c.update()
	clip := c.viewProj.MulVec4(Vec4{p.X, p.Y, p.Z, 1})
	if clip.W < defaultNear {
		return image.Point{}, false
	}
	ndcX := clip.X / clip.W
	ndcY := clip.Y / clip.W
	sx := (ndcX*0.5 + 0.5) * float64(c.ScreenW)
	sy := (1 - (ndcY*0.5 + 0.5)) * float64(c.ScreenH)
	return image.Pt(int(math.Round(sx)), int(math.Round(sy))), true
}
