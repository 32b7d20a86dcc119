package config

import (
	"fmt"

	"github.com/gonewx/blockhud/pkg/embedded"
	"github.com/gonewx/blockhud/pkg/hud"
	"gopkg.in/yaml.v3"
)

// ElementConfig 脚本 HUD 元素的配置形式
//
// 字段含义随 type 而变：
//   - image:     text=纹理名
//   - text:      text=文本，number=0xRRGGBB 颜色
//   - statbar:   text=纹理名，number=半图标数量，dir=方向
//   - inventory: text=物品列表名，number=格子数，item=选中格，dir=方向
//
// 其他 type 会被保留为 hud.UnknownElement。
type ElementConfig struct {
	Type   string     `yaml:"type"`
	Name   string     `yaml:"name"`
	Pos    [2]float64 `yaml:"pos"`
	Scale  [2]float64 `yaml:"scale"`
	Align  [2]float64 `yaml:"align"`
	Offset [2]float64 `yaml:"offset"`
	Text   string     `yaml:"text"`
	Number int64      `yaml:"number"`
	Item   int        `yaml:"item"`
	Dir    string     `yaml:"dir"`
}

// ElementsFile data/hud_elements.yaml 的顶层结构
// elements 中的 ~ 表示空槽位
type ElementsFile struct {
	Elements []*ElementConfig `yaml:"elements"`
}

// ParseDirection 解析方向名，空字符串视为 left_right
func ParseDirection(s string) (hud.Direction, error) {
	switch s {
	case "", "left_right":
		return hud.DirLeftRight, nil
	case "right_left":
		return hud.DirRightLeft, nil
	case "top_bottom":
		return hud.DirTopBottom, nil
	case "bottom_top":
		return hud.DirBottomTop, nil
	}
	return hud.DirLeftRight, fmt.Errorf("未知的方向: %q", s)
}

func vec(v [2]float64) hud.Vec2f {
	return hud.Vec2f{X: v[0], Y: v[1]}
}

// Element 转换为 HUD 元素
func (c *ElementConfig) Element() (hud.Element, error) {
	base := hud.ElementBase{
		Name:   c.Name,
		Pos:    vec(c.Pos),
		Scale:  vec(c.Scale),
		Align:  vec(c.Align),
		Offset: vec(c.Offset),
	}

	switch c.Type {
	case "image":
		return &hud.ImageElement{ElementBase: base, Texture: c.Text}, nil
	case "text":
		return &hud.TextElement{ElementBase: base, Text: c.Text, Number: uint32(c.Number)}, nil
	case "statbar":
		dir, err := ParseDirection(c.Dir)
		if err != nil {
			return nil, err
		}
		return &hud.StatbarElement{ElementBase: base, Texture: c.Text, Number: int(c.Number), Dir: dir}, nil
	case "inventory":
		dir, err := ParseDirection(c.Dir)
		if err != nil {
			return nil, err
		}
		return &hud.InventoryElement{ElementBase: base, List: c.Text, Number: int(c.Number), Item: c.Item, Dir: dir}, nil
	}
	return &hud.UnknownElement{ElementBase: base, Type: c.Type}, nil
}

// LoadHudElements 加载脚本 HUD 元素列表
//
// 返回的切片与文件中的顺序一致，空槽位保留为 nil。
func LoadHudElements(path string) ([]hud.Element, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取 HUD 元素文件 %s: %w", path, err)
	}

	var file ElementsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("无法解析 HUD 元素文件 %s: %w", path, err)
	}

	elements := make([]hud.Element, len(file.Elements))
	for i, cfg := range file.Elements {
		if cfg == nil {
			continue
		}
		e, err := cfg.Element()
		if err != nil {
			return nil, fmt.Errorf("HUD 元素 #%d (%s): %w", i, cfg.Name, err)
		}
		elements[i] = e
	}
	return elements, nil
}
