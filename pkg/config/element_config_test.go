package config

import (
	"testing"

	"github.com/gonewx/blockhud/pkg/hud"
)

// TestLoadHudElements 测试脚本元素加载，包括空槽位和未知类型
func TestLoadHudElements(t *testing.T) {
	initTestData(t, map[string]string{
		"data/hud_elements.yaml": `
elements:
  - type: image
    name: logo
    pos: [0.5, 0.05]
    scale: [-20, 1]
    align: [1, 0]
    text: logo.png
  - ~
  - type: text
    name: coords
    pos: [0.01, 0.01]
    scale: [300, 1]
    align: [2, 2]
    text: "X: 12 Y: 4"
    number: 0xFFCC00
  - type: statbar
    name: armor
    pos: [0.5, 1]
    offset: [-265, -88]
    text: armor.png
    number: 7
    dir: right_left
  - type: inventory
    name: craft
    pos: [0.9, 0.2]
    text: craft
    number: 9
    item: 3
    dir: top_bottom
  - type: waypoint
    name: home
`,
		"data/bad_dir.yaml": `
elements:
  - type: statbar
    dir: diagonal
`,
	})

	elements, err := LoadHudElements("data/hud_elements.yaml")
	if err != nil {
		t.Fatalf("LoadHudElements error: %v", err)
	}
	if len(elements) != 6 {
		t.Fatalf("elements: got %d, want 6", len(elements))
	}

	img, ok := elements[0].(*hud.ImageElement)
	if !ok {
		t.Fatalf("element 0: got %T, want *hud.ImageElement", elements[0])
	}
	if img.Texture != "logo.png" || img.Scale != (hud.Vec2f{X: -20, Y: 1}) || img.Pos != (hud.Vec2f{X: 0.5, Y: 0.05}) {
		t.Errorf("image element: got %+v", img)
	}

	if elements[1] != nil {
		t.Errorf("element 1: got %T, want nil slot", elements[1])
	}

	text, ok := elements[2].(*hud.TextElement)
	if !ok {
		t.Fatalf("element 2: got %T, want *hud.TextElement", elements[2])
	}
	if text.Number != 0xFFCC00 || text.Text != "X: 12 Y: 4" {
		t.Errorf("text element: got %+v", text)
	}

	bar, ok := elements[3].(*hud.StatbarElement)
	if !ok {
		t.Fatalf("element 3: got %T, want *hud.StatbarElement", elements[3])
	}
	if bar.Dir != hud.DirRightLeft || bar.Number != 7 || bar.Offset != (hud.Vec2f{X: -265, Y: -88}) {
		t.Errorf("statbar element: got %+v", bar)
	}

	inv, ok := elements[4].(*hud.InventoryElement)
	if !ok {
		t.Fatalf("element 4: got %T, want *hud.InventoryElement", elements[4])
	}
	if inv.List != "craft" || inv.Number != 9 || inv.Item != 3 || inv.Dir != hud.DirTopBottom {
		t.Errorf("inventory element: got %+v", inv)
	}

	unknown, ok := elements[5].(*hud.UnknownElement)
	if !ok {
		t.Fatalf("element 5: got %T, want *hud.UnknownElement", elements[5])
	}
	if unknown.Type != "waypoint" || unknown.Name != "home" {
		t.Errorf("unknown element: got %+v", unknown)
	}

	if _, err := LoadHudElements("data/bad_dir.yaml"); err == nil {
		t.Error("unknown direction should fail")
	}
}

// TestParseDirection 测试方向解析
func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    hud.Direction
		wantErr bool
	}{
		{"", hud.DirLeftRight, false},
		{"left_right", hud.DirLeftRight, false},
		{"right_left", hud.DirRightLeft, false},
		{"top_bottom", hud.DirTopBottom, false},
		{"bottom_top", hud.DirBottomTop, false},
		{"up", hud.DirLeftRight, true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q): got %v, want %v", tt.input, got, tt.want)
		}
		if !tt.wantErr && tt.input != "" && got.String() != tt.input {
			t.Errorf("Direction.String(): got %q, want %q", got.String(), tt.input)
		}
	}
}
