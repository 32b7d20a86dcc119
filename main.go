package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/gonewx/blockhud/pkg/app"
	"github.com/gonewx/blockhud/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose  = flag.Bool("verbose", false, "显示详细调试信息")
	width    = flag.Int("width", app.DefaultWindowWidth, "窗口宽度")
	height   = flag.Int("height", app.DefaultWindowHeight, "窗口高度")
	assets   = flag.String("assets", ".", "资源根目录（包含 assets/textures 纹理包），不存在时使用程序生成的纹理")
	fontPath = flag.String("font", "", "TTF/OTF 字体路径（相对于资源根目录，如 assets/fonts/hud.ttf）")
)

// assetsFS 返回资源根目录的文件系统，目录不存在时返回 nil
func assetsFS(root string) fs.FS {
	info, err := os.Stat(filepath.Join(root, "assets"))
	if err != nil || !info.IsDir() {
		return nil
	}
	return os.DirFS(root)
}

func main() {
	flag.Parse()

	// 初始化资源文件系统
	// dataFS 在 embed.go 中声明
	embedded.Init(assetsFS(*assets), dataFS)

	hudApp, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		Width:    *width,
		Height:   *height,
		FontPath: *fontPath,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	size := hudApp.WindowSize()
	ebiten.SetWindowSize(size.X, size.Y)
	ebiten.SetWindowTitle("blockhud - HUD 预览")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(hudApp.Settings().GetSettings().Fullscreen)

	if err := ebiten.RunGame(hudApp); err != nil {
		log.Fatal(err)
	}

	if err := hudApp.Settings().Save(); err != nil {
		log.Printf("[Main] Warning: failed to save settings: %v", err)
	}
}
