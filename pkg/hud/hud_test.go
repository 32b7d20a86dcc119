package hud

import (
	"image"
	"image/color"
	"testing"
)

// TestHotbarImageSize 验证快捷栏图标尺寸的分档边界
func TestHotbarImageSize(t *testing.T) {
	tests := []struct {
		name   string
		height int
		want   int
	}{
		{"极小屏幕", 100, 32},
		{"800 边界", 800, 32},
		{"801 进入第二档", 801, 48},
		{"1280 边界", 1280, 48},
		{"1281 进入第三档", 1281, 64},
		{"4K", 2160, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HotbarImageSize(tt.height); got != tt.want {
				t.Errorf("HotbarImageSize(%d): got %d, want %d", tt.height, got, tt.want)
			}
		})
	}
}

// TestResizeIdempotent 验证重复 Resize 结果一致
func TestResizeIdempotent(t *testing.T) {
	rig := newTestRig(nil)

	rig.hud.Resize(image.Pt(1920, 1080))
	first := rig.hud.Geometry()
	firstSize := rig.hud.HotbarImageSize()

	rig.hud.Resize(image.Pt(1920, 1080))
	if rig.hud.Geometry() != first {
		t.Errorf("Geometry changed after second Resize: got %+v, want %+v", rig.hud.Geometry(), first)
	}
	if rig.hud.HotbarImageSize() != firstSize {
		t.Errorf("HotbarImageSize changed: got %d, want %d", rig.hud.HotbarImageSize(), firstSize)
	}

	if first.Center != image.Pt(960, 540) {
		t.Errorf("Center: got %v, want (960,540)", first.Center)
	}
	if firstSize != 48 {
		t.Errorf("HotbarImageSize for 1080p: got %d, want 48", firstSize)
	}
}

// TestScreenGeometryRelative 验证归一化坐标换算
func TestScreenGeometryRelative(t *testing.T) {
	g := NewScreenGeometry(image.Pt(800, 600))

	tests := []struct {
		pos  Vec2f
		want image.Point
	}{
		{Vec2f{0, 0}, image.Pt(0, 0)},
		{Vec2f{0.5, 0.5}, image.Pt(400, 300)},
		{Vec2f{1, 1}, image.Pt(800, 600)},
		{Vec2f{0.333, 0.9}, image.Pt(266, 540)},
	}

	for _, tt := range tests {
		if got := g.Relative(tt.pos); got != tt.want {
			t.Errorf("Relative(%v): got %v, want %v", tt.pos, got, tt.want)
		}
	}
}

// TestTextureMemo 验证主题图片名称只在变化时重新查询
func TestTextureMemo(t *testing.T) {
	src := newFakeTextures()
	src.add("hotbar.png", 10, 10)

	var m textureMemo

	if m.resolve("", src) {
		t.Error("empty name should not be available")
	}
	if src.lookups != 0 {
		t.Errorf("empty name should not query the source, lookups=%d", src.lookups)
	}

	if !m.resolve("hotbar.png", src) {
		t.Error("hotbar.png should be available")
	}
	m.resolve("hotbar.png", src)
	m.resolve("hotbar.png", src)
	if src.lookups != 1 {
		t.Errorf("same name should be cached: lookups got %d, want 1", src.lookups)
	}

	if m.resolve("missing.png", src) {
		t.Error("missing.png should not be available")
	}
	if src.lookups != 2 {
		t.Errorf("changed name should re-query: lookups got %d, want 2", src.lookups)
	}

	if m.resolve("", src) {
		t.Error("clearing the name should disable the image")
	}
}

// TestSelectionBoxes 验证选择框逐个透传，颜色不透明
func TestSelectionBoxes(t *testing.T) {
	rig := newTestRig(nil)
	boxes := []Box3{
		{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}},
		{Min: Vec3{-0.5, 2, 3}, Max: Vec3{0.5, 3, 4}},
	}

	rig.hud.DrawSelectionBoxes(boxes)

	calls := rig.renderer.filter("box", "")
	if len(calls) != len(boxes) {
		t.Fatalf("wire boxes: got %d, want %d", len(calls), len(boxes))
	}
	want := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	for i, c := range calls {
		if c.box != boxes[i] {
			t.Errorf("box %d: got %+v, want %+v", i, c.box, boxes[i])
		}
		if c.color != want {
			t.Errorf("box %d color: got %v, want %v", i, c.color, want)
		}
	}

	rig.renderer.reset()
	rig.hud.DrawSelectionBoxes(nil)
	if len(rig.renderer.calls) != 0 {
		t.Errorf("no boxes should draw nothing, got %d calls", len(rig.renderer.calls))
	}
}

// TestCrosshairVector 验证无准星图片时绘制两条交叉线
func TestCrosshairVector(t *testing.T) {
	rig := newTestRig(nil)
	if rig.hud.UsesCrosshairImage() {
		t.Fatal("crosshair image should not be used without crosshair.png")
	}

	rig.hud.DrawCrosshair()

	lines := rig.renderer.filter("line", "")
	if len(lines) != 2 {
		t.Fatalf("lines: got %d, want 2", len(lines))
	}
	center := image.Pt(512, 384)
	if lines[0].from != center.Sub(image.Pt(10, 0)) || lines[0].to != center.Add(image.Pt(10, 0)) {
		t.Errorf("horizontal line: got %v-%v", lines[0].from, lines[0].to)
	}
	if lines[1].from != center.Sub(image.Pt(0, 10)) || lines[1].to != center.Add(image.Pt(0, 10)) {
		t.Errorf("vertical line: got %v-%v", lines[1].from, lines[1].to)
	}
	if lines[0].color != (color.NRGBA{R: 255, G: 255, B: 255, A: 200}) {
		t.Errorf("crosshair color: got %v", lines[0].color)
	}
}

// TestCrosshairImage 验证准星图片居中绘制并使用配置颜色着色
func TestCrosshairImage(t *testing.T) {
	rig := newTestRig(func(s *fakeTextures) {
		s.add(CrosshairTexture, 16, 16)
	})
	if !rig.hud.UsesCrosshairImage() {
		t.Fatal("crosshair image should be used when crosshair.png exists")
	}

	rig.hud.DrawCrosshair()

	calls := rig.renderer.filter("tex", CrosshairTexture)
	if len(calls) != 1 {
		t.Fatalf("crosshair draws: got %d, want 1", len(calls))
	}
	if want := image.Rect(504, 376, 520, 392); calls[0].dst != want {
		t.Errorf("crosshair rect: got %v, want %v", calls[0].dst, want)
	}
	for i, c := range calls[0].colors {
		if c != (color.NRGBA{R: 255, G: 255, B: 255, A: 200}) {
			t.Errorf("corner %d color: got %v", i, c)
		}
	}
	if rig.renderer.count("line", "") != 0 {
		t.Error("image crosshair should not draw lines")
	}
}

// TestCrosshairHidden 验证关闭准星标志时不绘制
func TestCrosshairHidden(t *testing.T) {
	rig := newTestRig(nil)
	rig.player.flags &^= FlagCrosshairVisible

	rig.hud.DrawCrosshair()

	if len(rig.renderer.calls) != 0 {
		t.Errorf("hidden crosshair: got %d calls, want 0", len(rig.renderer.calls))
	}
}
