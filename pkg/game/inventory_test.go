package game

import (
	"image"
	"testing"

	"github.com/gonewx/blockhud/pkg/hud"
)

// stubTextures 记录查询过的纹理名
type stubTextures struct {
	names     map[string]bool
	requested []string
}

type stubTexture struct{}

func (stubTexture) Size() image.Point { return image.Pt(16, 16) }

func (s *stubTextures) HasImage(name string) bool { return s.names[name] }

func (s *stubTextures) Texture(name string) hud.Texture {
	s.requested = append(s.requested, name)
	if s.names[name] {
		return stubTexture{}
	}
	return nil
}

func TestInventoryList(t *testing.T) {
	l := NewInventoryList("main", 4)
	if l.Len() != 4 || l.Name() != "main" {
		t.Fatalf("got len=%d name=%q", l.Len(), l.Name())
	}

	stack := hud.ItemStack{Name: "default:dirt", Count: 5}
	if err := l.SetItem(2, stack); err != nil {
		t.Fatalf("SetItem error: %v", err)
	}
	if l.Item(2) != stack {
		t.Errorf("Item(2): got %+v", l.Item(2))
	}
	if !l.Item(0).Empty() || !l.Item(10).Empty() || !l.Item(-1).Empty() {
		t.Error("empty and out-of-range slots should be empty stacks")
	}
	if err := l.SetItem(4, stack); err == nil {
		t.Error("SetItem out of range should fail")
	}

	if NewInventoryList("x", -1).Len() != 0 {
		t.Error("negative size should give empty list")
	}
}

func TestItemSystem(t *testing.T) {
	textures := &stubTextures{names: map[string]bool{"dirt.png": true, UnknownItemImage: true}}
	registry := NewItemRegistry(textures)
	registry.Register(hud.ItemDefinition{Name: "default:dirt", Type: hud.ItemNode, InventoryImage: "dirt.png"})
	registry.Register(hud.ItemDefinition{Name: "default:air"})

	inv := NewInventory()
	inv.AddList("main", 8)
	inv.AddList("craft", 9)
	items := NewItemSystem(inv, registry)

	// 编译期检查接口实现
	var _ hud.ItemSystem = items

	if items.List("main") == nil || items.List("main").Len() != 8 {
		t.Error("main list should exist")
	}
	if items.List("missing") != nil {
		t.Error("missing list must be a nil interface")
	}
	if got := inv.ListNames(); len(got) != 2 || got[0] != "craft" || got[1] != "main" {
		t.Errorf("ListNames: got %v", got)
	}

	if def := items.Definition("default:dirt"); def.Type != hud.ItemNode {
		t.Errorf("dirt definition: got %+v", def)
	}
	unknown := items.Definition("mod:nothing")
	if unknown.Name != UnknownItemName || unknown.InventoryImage != UnknownItemImage {
		t.Errorf("unknown definition: got %+v", unknown)
	}

	if items.InventoryTexture("default:dirt") == nil {
		t.Error("dirt texture should resolve")
	}
	if items.InventoryTexture(unknown.Name) == nil {
		t.Error("unknown item should use the unknown icon")
	}
	textures.requested = nil
	if items.InventoryTexture("default:air") != nil {
		t.Error("item without image should have no texture")
	}
	if len(textures.requested) != 0 {
		t.Errorf("empty image name should not be requested: %v", textures.requested)
	}

	if names := registry.Names(); len(names) != 2 || names[0] != "default:air" {
		t.Errorf("Names: got %v", names)
	}
}
