package game

import (
	"fmt"
	"log"

	"github.com/gonewx/blockhud/pkg/config"
	"github.com/gonewx/blockhud/pkg/hud"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// HudSettings 用户级 HUD 设置
// 颜色以 [r,g,b] 保存，加载后再限制到 0 ~ 255
type HudSettings struct {
	CrosshairColor    [3]float64 `yaml:"crosshairColor"`    // 准星颜色
	CrosshairAlpha    int        `yaml:"crosshairAlpha"`    // 准星透明度 0 ~ 255
	SelectionBoxColor [3]float64 `yaml:"selectionBoxColor"` // 选择框颜色，透明度固定为 255
	HotbarItemCount   int        `yaml:"hotbarItemCount"`   // 快捷栏格子数

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
}

// 快捷栏格子数范围
const (
	MinHotbarItemCount = 1
	MaxHotbarItemCount = 32
)

// DefaultSettings 返回默认设置
func DefaultSettings() *HudSettings {
	return &HudSettings{
		CrosshairColor:    [3]float64{255, 255, 255},
		CrosshairAlpha:    255,
		SelectionBoxColor: [3]float64{0, 0, 0},
		HotbarItemCount:   8,
		Fullscreen:        false,
	}
}

// SettingsManager 设置管理器
// 负责 HUD 设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *HudSettings   // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "hud"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方统一处理，加载失败不会返回错误
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置。
// 文件中缺失的字段保留默认值。
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.HotbarItemCount = clampItemCount(loaded.HotbarItemCount)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *HudSettings {
	return sm.settings
}

// HudConfig 生成 HUD 构造时读取的颜色配置
func (sm *SettingsManager) HudConfig() hud.Config {
	s := sm.settings
	return hud.Config{
		CrosshairColor:    config.ColorFromRGB(s.CrosshairColor, s.CrosshairAlpha),
		SelectionBoxColor: config.ColorFromRGB(s.SelectionBoxColor, 255),
	}
}

// SetCrosshairColor 设置准星颜色和透明度
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetCrosshairColor(rgb [3]float64, alpha int) {
	sm.settings.CrosshairColor = rgb
	sm.settings.CrosshairAlpha = alpha
}

// SetSelectionBoxColor 设置选择框颜色
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetSelectionBoxColor(rgb [3]float64) {
	sm.settings.SelectionBoxColor = rgb
}

// SetHotbarItemCount 设置快捷栏格子数，限制在 1 ~ 32
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetHotbarItemCount(n int) {
	sm.settings.HotbarItemCount = clampItemCount(n)
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// clampItemCount 将格子数限制在合法范围内
func clampItemCount(n int) int {
	if n < MinHotbarItemCount {
		return MinHotbarItemCount
	}
	if n > MaxHotbarItemCount {
		return MaxHotbarItemCount
	}
	return n
}
