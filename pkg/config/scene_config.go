package config

import (
	"fmt"

	"github.com/gonewx/blockhud/pkg/embedded"
	"github.com/gonewx/blockhud/pkg/hud"
	"gopkg.in/yaml.v3"
)

// SceneConfig 预览场景（data/scene.yaml）
// 提供 HUD 预览所需的玩家状态、物品栏内容、选择框和摄像机
type SceneConfig struct {
	Player         PlayerConfig             `yaml:"player"`
	Inventory      map[string]InventoryList `yaml:"inventory"`
	SelectionBoxes []BoxConfig              `yaml:"selection_boxes"`
	Camera         CameraConfig             `yaml:"camera"`
}

// PlayerConfig 玩家状态
type PlayerConfig struct {
	HP         int `yaml:"hp"`          // 半颗心为单位
	Breath     int `yaml:"breath"`      // 0 ~ 11
	WieldIndex int `yaml:"wield_index"` // 从 0 开始
}

// InventoryList 物品列表配置
type InventoryList struct {
	Size  int           `yaml:"size"`
	Items []StackConfig `yaml:"items"`
}

// StackConfig 单格物品，slot 为格子索引
type StackConfig struct {
	Slot  int    `yaml:"slot"`
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
	Wear  uint16 `yaml:"wear"`
}

// BoxConfig 选择框
type BoxConfig struct {
	Min [3]float64 `yaml:"min"`
	Max [3]float64 `yaml:"max"`
}

// CameraConfig 透视摄像机
type CameraConfig struct {
	Eye    [3]float64 `yaml:"eye"`
	Target [3]float64 `yaml:"target"`
	FovY   float64    `yaml:"fov_y"` // 垂直视角（度）
}

// Box 转换为 HUD 使用的包围盒
func (b BoxConfig) Box() hud.Box3 {
	return hud.Box3{
		Min: hud.Vec3{X: b.Min[0], Y: b.Min[1], Z: b.Min[2]},
		Max: hud.Vec3{X: b.Max[0], Y: b.Max[1], Z: b.Max[2]},
	}
}

// Stack 转换为物品堆
func (s StackConfig) Stack() hud.ItemStack {
	return hud.ItemStack{Name: s.Name, Count: s.Count, Wear: s.Wear}
}

// DefaultSceneConfig 返回默认场景
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Player:    PlayerConfig{HP: 20, Breath: 11},
		Inventory: map[string]InventoryList{hud.MainListName: {Size: 32}},
		Camera: CameraConfig{
			Eye:    [3]float64{0, 1.6, 5},
			Target: [3]float64{0, 0.5, 0},
			FovY:   72,
		},
	}
}

// LoadSceneConfig 加载预览场景
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取场景文件 %s: %w", path, err)
	}

	cfg := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("无法解析场景文件 %s: %w", path, err)
	}

	for name, list := range cfg.Inventory {
		for _, item := range list.Items {
			if item.Slot < 0 || item.Slot >= list.Size {
				return nil, fmt.Errorf("场景文件 %s: 物品列表 %s 的格子 %d 超出范围 [0,%d)", path, name, item.Slot, list.Size)
			}
		}
	}
	return cfg, nil
}
