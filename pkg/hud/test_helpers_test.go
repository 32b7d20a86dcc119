package hud

import (
	"image"
	"image/color"
)

// drawCall 记录一次绘制调用
type drawCall struct {
	kind    string // "rect" / "tex" / "line" / "box" / "text"
	tex     string
	dst     image.Rectangle
	src     image.Rectangle
	color   color.Color
	colors  [4]color.Color
	from    image.Point
	to      image.Point
	box     Box3
	text    string
	clipped bool
}

// recordingRenderer 记录所有绘制调用的假渲染器
type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawFilledRect(c color.Color, rect image.Rectangle, clip *image.Rectangle) {
	r.calls = append(r.calls, drawCall{kind: "rect", dst: rect, color: c, clipped: clip != nil})
}

func (r *recordingRenderer) DrawTexturedRect(tex Texture, dst, src image.Rectangle, clip *image.Rectangle, colors [4]color.Color, useAlpha bool) {
	r.calls = append(r.calls, drawCall{kind: "tex", tex: tex.(*fakeTexture).name, dst: dst, src: src, colors: colors, clipped: clip != nil})
}

func (r *recordingRenderer) DrawLine(from, to image.Point, c color.Color) {
	r.calls = append(r.calls, drawCall{kind: "line", from: from, to: to, color: c})
}

func (r *recordingRenderer) DrawWireBox(box Box3, c color.Color) {
	r.calls = append(r.calls, drawCall{kind: "box", box: box, color: c})
}

func (r *recordingRenderer) count(kind, tex string) int {
	n := 0
	for _, c := range r.calls {
		if c.kind == kind && (tex == "" || c.tex == tex) {
			n++
		}
	}
	return n
}

func (r *recordingRenderer) filter(kind, tex string) []drawCall {
	var out []drawCall
	for _, c := range r.calls {
		if c.kind == kind && (tex == "" || c.tex == tex) {
			out = append(out, c)
		}
	}
	return out
}

func (r *recordingRenderer) reset() {
	r.calls = nil
}

// fakeFont 等宽假字体：每个字符 7x13 像素
type fakeFont struct {
	r *recordingRenderer
}

func (f *fakeFont) MeasureText(s string) image.Point {
	return image.Pt(7*len(s), 13)
}

func (f *fakeFont) DrawText(s string, rect image.Rectangle, c color.Color, clip *image.Rectangle) {
	f.r.calls = append(f.r.calls, drawCall{kind: "text", text: s, dst: rect, color: c, clipped: clip != nil})
}

func (f *fakeFont) LineHeight() int { return 13 }

type fakeTexture struct {
	name string
	size image.Point
}

func (t *fakeTexture) Size() image.Point { return t.size }

// fakeTextures 按名称查找的假纹理源，同时统计 HasImage 调用次数
type fakeTextures struct {
	textures map[string]*fakeTexture
	lookups  int
}

func newFakeTextures() *fakeTextures {
	return &fakeTextures{textures: make(map[string]*fakeTexture)}
}

func (s *fakeTextures) add(name string, w, h int) {
	s.textures[name] = &fakeTexture{name: name, size: image.Pt(w, h)}
}

func (s *fakeTextures) HasImage(name string) bool {
	s.lookups++
	_, ok := s.textures[name]
	return ok
}

func (s *fakeTextures) Texture(name string) Texture {
	if t, ok := s.textures[name]; ok {
		return t
	}
	return nil
}

type fakeList []ItemStack

func (l fakeList) Len() int             { return len(l) }
func (l fakeList) Item(i int) ItemStack { return l[i] }

type fakeItems struct {
	lists    map[string]fakeList
	defs     map[string]ItemDefinition
	textures *fakeTextures
}

func (f *fakeItems) List(name string) InventoryList {
	if l, ok := f.lists[name]; ok {
		return l
	}
	return nil
}

func (f *fakeItems) Definition(name string) ItemDefinition {
	if d, ok := f.defs[name]; ok {
		return d
	}
	return ItemDefinition{Name: "unknown"}
}

func (f *fakeItems) InventoryTexture(name string) Texture {
	return f.textures.Texture(f.Definition(name).InventoryImage)
}

type fakePlayer struct {
	flags         Flags
	itemCount     int
	elements      []Element
	hotbarImage   string
	selectedImage string
}

func (p *fakePlayer) HudFlags() Flags             { return p.flags }
func (p *fakePlayer) HotbarItemCount() int        { return p.itemCount }
func (p *fakePlayer) Elements() []Element         { return p.elements }
func (p *fakePlayer) HotbarImage() string         { return p.hotbarImage }
func (p *fakePlayer) HotbarSelectedImage() string { return p.selectedImage }

// testRig 组装一套 HUD 及其假协作者
type testRig struct {
	hud      *HUD
	renderer *recordingRenderer
	textures *fakeTextures
	items    *fakeItems
	player   *fakePlayer
}

func newTestRig(setup func(*fakeTextures)) *testRig {
	r := &recordingRenderer{}
	textures := newFakeTextures()
	textures.add(HeartTexture, 24, 24)
	textures.add(BubbleTexture, 24, 24)
	textures.add("default_pick_steel.png", 16, 16)
	textures.add("default_dirt.png", 16, 16)
	if setup != nil {
		setup(textures)
	}

	items := &fakeItems{
		lists: map[string]fakeList{
			MainListName: {
				{Name: "default:pick_steel", Count: 1, Wear: 30000},
				{Name: "default:dirt", Count: 42},
			},
		},
		defs: map[string]ItemDefinition{
			"default:pick_steel": {Name: "default:pick_steel", Type: ItemTool, InventoryImage: "default_pick_steel.png"},
			"default:dirt":       {Name: "default:dirt", Type: ItemNode, InventoryImage: "default_dirt.png"},
		},
		textures: textures,
	}
	player := &fakePlayer{flags: DefaultFlags, itemCount: 8}

	h := NewHUD(r, &fakeFont{r: r}, textures, items, player, Config{
		CrosshairColor:    color.NRGBA{R: 255, G: 255, B: 255, A: 200},
		SelectionBoxColor: color.NRGBA{R: 10, G: 20, B: 30, A: 0},
	})
	h.Resize(image.Pt(1024, 768))

	return &testRig{hud: h, renderer: r, textures: textures, items: items, player: player}
}
