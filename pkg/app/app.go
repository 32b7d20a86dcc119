// Package app 提供 HUD 预览应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/blockhud/pkg/config"
	"github.com/gonewx/blockhud/pkg/game"
	"github.com/gonewx/blockhud/pkg/hud"
	"github.com/gonewx/blockhud/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 数据文件路径
const (
	HudConfigPath   = "data/hud.yaml"
	ItemsPath       = "data/items.yaml"
	ElementsPath    = "data/hud_elements.yaml"
	ScenePath       = "data/scene.yaml"
	DefaultFontSize = 14
)

// 默认窗口尺寸
const (
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
)

// skyColor 预览背景色
var skyColor = color.RGBA{R: 140, G: 186, B: 250, A: 255}

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Width/Height 窗口尺寸，0 表示使用默认值
	Width, Height int
	// FontPath 可选的 TTF/OTF 字体（资源路径），为空时使用内置位图字体
	FontPath string
	// AppName gdata 存储使用的应用名，为空时为 "blockhud"
	AppName string
}

// App 是 HUD 预览应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	hud       *hud.HUD
	renderer  *render.Renderer
	player    *game.Player
	inventory *game.Inventory
	resources *game.ResourceManager
	settings  *game.SettingsManager

	selectionBoxes []hud.Box3
	screenSize     image.Point
	windowSize     image.Point

	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化资源文件系统。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	hudConfig, err := config.LoadHudConfig(HudConfigPath)
	if err != nil {
		return nil, fmt.Errorf("HUD 配置加载失败: %w", err)
	}
	flags, err := hudConfig.HudFlags()
	if err != nil {
		return nil, fmt.Errorf("HUD 配置加载失败: %w", err)
	}
	itemDefs, err := config.LoadItemDefinitions(ItemsPath)
	if err != nil {
		return nil, fmt.Errorf("物品定义加载失败: %w", err)
	}
	elements, err := config.LoadHudElements(ElementsPath)
	if err != nil {
		return nil, fmt.Errorf("HUD 元素加载失败: %w", err)
	}
	scene, err := config.LoadSceneConfig(ScenePath)
	if err != nil {
		return nil, fmt.Errorf("场景加载失败: %w", err)
	}
	log.Printf("[Config] Loaded %d item definitions, %d HUD elements", len(itemDefs), len(elements))

	settings, err := game.NewSettingsManager(openGdata(cfg.AppName))
	if err != nil {
		return nil, fmt.Errorf("设置加载失败: %w", err)
	}

	// 资源：纹理包优先，缺失的由程序生成
	resources := game.NewResourceManager(hudConfig.TexturesDir)
	resources.RegisterDefaultTextures(itemDefs)

	registry := game.NewItemRegistry(resources)
	for _, def := range itemDefs {
		registry.Register(def)
	}

	inventory, err := buildInventory(scene)
	if err != nil {
		return nil, fmt.Errorf("场景加载失败: %w", err)
	}

	player := game.NewPlayer()
	player.SetHudFlags(flags, hud.DefaultFlags)
	player.SetHotbarItemCount(settings.GetSettings().HotbarItemCount)
	player.SetHotbarImages(hudConfig.HotbarImage, hudConfig.HotbarSelectedImage)
	player.SetElements(elements)
	player.SetHP(scene.Player.HP)
	player.SetBreath(scene.Player.Breath)
	player.SetWieldIndex(scene.Player.WieldIndex)

	camera := render.NewCamera(
		render.V3(scene.Camera.Eye[0], scene.Camera.Eye[1], scene.Camera.Eye[2]),
		render.V3(scene.Camera.Target[0], scene.Camera.Target[1], scene.Camera.Target[2]),
		scene.Camera.FovY,
	)
	renderer := render.NewRenderer(camera)

	font := render.DefaultFont(renderer)
	if cfg.FontPath != "" {
		face, err := resources.LoadFont(cfg.FontPath, DefaultFontSize)
		if err != nil {
			log.Printf("[App] Warning: %v (using built-in font)", err)
		} else {
			font = render.NewFont(renderer, face)
		}
	}

	boxes := make([]hud.Box3, 0, len(scene.SelectionBoxes))
	for _, b := range scene.SelectionBoxes {
		boxes = append(boxes, b.Box())
	}

	items := game.NewItemSystem(inventory, registry)
	h := hud.NewHUD(renderer, font, resources, items, player, settings.HudConfig())

	windowSize := image.Pt(cfg.Width, cfg.Height)
	if windowSize.X <= 0 || windowSize.Y <= 0 {
		windowSize = image.Pt(DefaultWindowWidth, DefaultWindowHeight)
	}

	log.Printf("[App] HUD ready: flags=%b hotbar=%d crosshair image=%v",
		player.HudFlags(), player.HotbarItemCount(), h.UsesCrosshairImage())

	return &App{
		hud:            h,
		renderer:       renderer,
		player:         player,
		inventory:      inventory,
		resources:      resources,
		settings:       settings,
		selectionBoxes: boxes,
		windowSize:     windowSize,
		verbose:        cfg.Verbose,
	}, nil
}

// openGdata 打开跨平台存储，失败时返回 nil（降级模式）
func openGdata(appName string) *gdata.Manager {
	if appName == "" {
		appName = "blockhud"
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		return nil
	}
	return manager
}

// buildInventory 根据场景配置创建物品栏
func buildInventory(scene *config.SceneConfig) (*game.Inventory, error) {
	inventory := game.NewInventory()
	for name, list := range scene.Inventory {
		l := inventory.AddList(name, list.Size)
		for _, item := range list.Items {
			if err := l.SetItem(item.Slot, item.Stack()); err != nil {
				return nil, err
			}
		}
	}
	return inventory, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.windowSize.X, a.windowSize.Y)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.windowSize.X, a.windowSize.Y)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	return nil
}

// toggleFullscreen 切换全屏并保存到设置
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if !fullscreen {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制一帧
// 顺序：选择框、快捷栏与状态条、准星、脚本元素
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	a.renderer.SetTarget(screen)
	defer a.renderer.SetTarget(nil)

	a.hud.DrawSelectionBoxes(a.selectionBoxes)

	geom := a.hud.Geometry()
	a.hud.DrawHotbar(image.Pt(geom.Center.X, geom.Size.Y),
		a.player.HP(), a.player.WieldIndex(), a.player.Breath())
	a.hud.DrawCrosshair()
	a.hud.DrawElements()
}

// Layout 返回逻辑屏幕尺寸
// HUD 按实际像素布局，因此逻辑尺寸与窗口尺寸相同；尺寸变化时重新计算 HUD 几何
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := image.Pt(outsideWidth, outsideHeight)
	if size.X <= 0 || size.Y <= 0 {
		size = a.windowSize
	}
	if size != a.screenSize {
		a.screenSize = size
		a.hud.Resize(size)
		if cam := a.renderer.Camera(); cam != nil {
			cam.SetScreenSize(size.X, size.Y)
		}
		log.Printf("[App] Screen resized to %dx%d (hotbar icons %dpx)", size.X, size.Y, a.hud.HotbarImageSize())
	}
	return size.X, size.Y
}

// WindowSize 返回启动时的窗口尺寸
func (a *App) WindowSize() image.Point {
	return a.windowSize
}

// Settings 返回设置管理器
// 用于在启动时应用全屏设置、关闭时保存设置
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// Player 返回玩家状态
func (a *App) Player() *game.Player {
	return a.player
}

// Inventory 返回物品栏
func (a *App) Inventory() *game.Inventory {
	return a.inventory
}

// HUD 返回 HUD 渲染器
func (a *App) HUD() *hud.HUD {
	return a.hud
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
