package app

import (
	"fmt"
	"image"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gonewx/blockhud/pkg/embedded"
	"github.com/gonewx/blockhud/pkg/hud"
	"github.com/hajimehoshi/ebiten/v2"
)

var testData = map[string]string{
	"data/hud.yaml": `
hud_flags: [hotbar, healthbar, crosshair, breathbar]
`,
	"data/items.yaml": `
items:
  - name: "default:pick_steel"
    type: tool
    inventory_image: default_tool_steelpick.png
  - name: "default:dirt"
    type: node
    inventory_image: default_dirt.png
`,
	"data/hud_elements.yaml": `
elements:
  - type: text
    name: hello
    pos: [0.5, 0.1]
    scale: [200, 1]
    text: hello
    number: 0xFFFFFF
  - ~
  - type: inventory
    name: missing_list
    text: nowhere
    number: 4
  - type: compass
`,
	"data/scene.yaml": `
player:
  hp: 9
  breath: 3
  wield_index: 2
inventory:
  main:
    size: 32
    items:
      - {slot: 0, name: "default:pick_steel", count: 1, wear: 30000}
      - {slot: 1, name: "default:dirt", count: 42}
selection_boxes:
  - {min: [-0.5, -0.5, -0.5], max: [0.5, 0.5, 0.5]}
`,
}

// initTestApp 初始化内存数据和临时 gdata 目录
func initTestApp(t *testing.T, overrides map[string]string) Config {
	t.Helper()
	data := fstest.MapFS{}
	for name, content := range testData {
		data[name] = &fstest.MapFile{Data: []byte(content)}
	}
	for name, content := range overrides {
		if content == "" {
			delete(data, name)
			continue
		}
		data[name] = &fstest.MapFile{Data: []byte(content)}
	}
	embedded.Init(nil, data)

	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	return Config{
		Verbose: true,
		AppName: fmt.Sprintf("blockhud_app_test_%d", time.Now().UnixNano()),
	}
}

// TestNewApp 测试从数据文件构建应用
func TestNewApp(t *testing.T) {
	a, err := NewApp(initTestApp(t, nil))
	if err != nil {
		t.Fatalf("NewApp error: %v", err)
	}

	p := a.Player()
	if p.HP() != 9 || p.Breath() != 3 || p.WieldIndex() != 2 {
		t.Errorf("player: hp=%d breath=%d wield=%d", p.HP(), p.Breath(), p.WieldIndex())
	}
	if p.HudFlags().Has(hud.FlagWieldItemVisible) {
		t.Error("wielditem flag should be off")
	}
	if !p.HudFlags().Has(hud.FlagBreathbarVisible) {
		t.Error("breathbar flag should be on")
	}
	if p.HotbarItemCount() != 8 {
		t.Errorf("hotbar item count: got %d, want 8", p.HotbarItemCount())
	}
	if len(p.Elements()) != 4 || p.Elements()[1] != nil {
		t.Errorf("elements: got %v", p.Elements())
	}

	main := a.Inventory().GetList(hud.MainListName)
	if main == nil || main.Len() != 32 {
		t.Fatal("main list should have 32 slots")
	}
	if main.Item(1).Count != 42 {
		t.Errorf("slot 1: got %+v", main.Item(1))
	}

	if a.HUD().UsesCrosshairImage() {
		t.Error("no crosshair image without a texture pack")
	}
	if a.WindowSize() != image.Pt(DefaultWindowWidth, DefaultWindowHeight) {
		t.Errorf("window size: got %v", a.WindowSize())
	}
	if !a.IsVerbose() || a.Settings() == nil {
		t.Error("verbose flag and settings should be set")
	}
}

// TestNewApp_Errors 测试数据文件缺失或损坏时返回错误
func TestNewApp_Errors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
	}{
		{"缺少 HUD 配置", map[string]string{"data/hud.yaml": ""}},
		{"未知 HUD 标志", map[string]string{"data/hud.yaml": "hud_flags: [minimap]\n"}},
		{"缺少物品定义", map[string]string{"data/items.yaml": ""}},
		{"元素方向错误", map[string]string{"data/hud_elements.yaml": "elements:\n  - {type: statbar, dir: sideways}\n"}},
		{"场景格子越界", map[string]string{"data/scene.yaml": "inventory:\n  main:\n    size: 2\n    items:\n      - {slot: 5, name: x, count: 1}\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewApp(initTestApp(t, tt.overrides)); err == nil {
				t.Error("NewApp should fail")
			}
		})
	}
}

// TestLayout 测试窗口尺寸变化时重新计算 HUD 几何
func TestLayout(t *testing.T) {
	a, err := NewApp(initTestApp(t, nil))
	if err != nil {
		t.Fatalf("NewApp error: %v", err)
	}

	tests := []struct {
		w, h     int
		wantIcon int
	}{
		{800, 600, 32},
		{1280, 1024, 48},
		{2560, 1440, 64},
		{0, 0, 32}, // 非法尺寸回退到窗口尺寸 1024x768
	}

	for _, tt := range tests {
		w, h := a.Layout(tt.w, tt.h)
		if tt.w > 0 && (w != tt.w || h != tt.h) {
			t.Errorf("Layout(%d,%d): got %dx%d", tt.w, tt.h, w, h)
		}
		if got := a.HUD().HotbarImageSize(); got != tt.wantIcon {
			t.Errorf("Layout(%d,%d): icon size got %d, want %d", tt.w, tt.h, got, tt.wantIcon)
		}
		if a.HUD().Geometry().Size != image.Pt(w, h) {
			t.Errorf("geometry: got %v", a.HUD().Geometry().Size)
		}
	}
}

// TestDraw 测试完整绘制一帧不会出错
func TestDraw(t *testing.T) {
	a, err := NewApp(initTestApp(t, nil))
	if err != nil {
		t.Fatalf("NewApp error: %v", err)
	}
	w, h := a.Layout(1024, 768)
	screen := ebiten.NewImage(w, h)
	a.Draw(screen)
	a.Draw(screen)
}
