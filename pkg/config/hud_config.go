package config

import (
	"fmt"
	"strings"

	"github.com/gonewx/blockhud/pkg/embedded"
	"github.com/gonewx/blockhud/pkg/hud"
	"gopkg.in/yaml.v3"
)

// HudConfig HUD 外观配置（data/hud.yaml）
type HudConfig struct {
	// Flags 默认开启的 HUD 组件：hotbar / healthbar / crosshair / wielditem / breathbar
	Flags []string `yaml:"hud_flags"`

	// 快捷栏主题图片，为空或图片不存在时使用纯色格子
	HotbarImage         string `yaml:"hotbar_image"`
	HotbarSelectedImage string `yaml:"hotbar_selected_image"`

	// TexturesDir 纹理所在目录（相对 assets/）
	TexturesDir string `yaml:"textures_dir"`
}

// DefaultHudConfig 返回默认配置（全部组件可见，无主题图片）
func DefaultHudConfig() *HudConfig {
	return &HudConfig{
		Flags:       []string{"hotbar", "healthbar", "crosshair", "wielditem", "breathbar"},
		TexturesDir: "assets/textures",
	}
}

var flagNames = map[string]hud.Flags{
	"hotbar":    hud.FlagHotbarVisible,
	"healthbar": hud.FlagHealthbarVisible,
	"crosshair": hud.FlagCrosshairVisible,
	"wielditem": hud.FlagWieldItemVisible,
	"breathbar": hud.FlagBreathbarVisible,
}

// ParseFlags 将标志名列表转换为位集
func ParseFlags(names []string) (hud.Flags, error) {
	var flags hud.Flags
	for _, name := range names {
		f, ok := flagNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("未知的 HUD 标志: %q", name)
		}
		flags |= f
	}
	return flags, nil
}

// HudFlags 返回配置中的 HUD 标志位集
func (c *HudConfig) HudFlags() (hud.Flags, error) {
	return ParseFlags(c.Flags)
}

// LoadHudConfig 从资源文件系统加载 HUD 配置
//
// 参数：
//   - path: 配置文件路径（如 "data/hud.yaml"）
//
// 返回：
//   - *HudConfig: 配置实例，未填写的字段使用默认值
//   - error: 读取、解析或校验错误
func LoadHudConfig(path string) (*HudConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取配置文件 %s: %w", path, err)
	}

	cfg := DefaultHudConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("无法解析配置文件 %s: %w", path, err)
	}

	if _, err := cfg.HudFlags(); err != nil {
		return nil, fmt.Errorf("配置文件 %s: %w", path, err)
	}
	return cfg, nil
}
