package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"
	"path"

	"github.com/gonewx/blockhud/pkg/embedded"
	"github.com/gonewx/blockhud/pkg/hud"
	"github.com/gonewx/blockhud/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResourceManager is responsible for centralized management of HUD textures and fonts.
// It implements hud.TextureSource: textures are looked up by file name inside the
// configured textures directory, loaded once and cached.
//
// Images registered with RegisterImage take precedence over files on disk. This is how
// the built-in procedural textures (hearts, bubbles, item icons) are provided when no
// texture pack is available.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All access happens on the game loop goroutine.
//
// Usage:
//
//	rm := NewResourceManager("assets/textures")
//	rm.RegisterDefaultTextures(itemDefs)
//	tex := rm.Texture("heart.png")
type ResourceManager struct {
	texturesDir   string
	imageCache    map[string]*ebiten.Image    // Cache for loaded images: path -> Image
	textureCache  map[string]*render.Texture  // Cache for textures: name -> Texture
	registered    map[string]*render.Texture  // Images registered in memory: name -> Texture
	missing       map[string]bool             // Names that failed to load, reported once
	fontFaceCache map[string]*text.GoTextFace // Cache for Ebitengine v2 text faces
}

// NewResourceManager creates a ResourceManager that resolves texture names under texturesDir.
//
// Parameters:
//   - texturesDir: directory of the texture pack, e.g. "assets/textures".
func NewResourceManager(texturesDir string) *ResourceManager {
	return &ResourceManager{
		texturesDir:   texturesDir,
		imageCache:    make(map[string]*ebiten.Image),
		textureCache:  make(map[string]*render.Texture),
		registered:    make(map[string]*render.Texture),
		missing:       make(map[string]bool),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadImage loads an image file from the resource file system and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG and JPEG.
//
// Returns an error if the file cannot be opened or decoded. Does not panic.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// RegisterImage makes an in-memory image available under a texture name.
// A registered image shadows any file with the same name.
func (rm *ResourceManager) RegisterImage(name string, img image.Image) {
	var eimg *ebiten.Image
	if e, ok := img.(*ebiten.Image); ok {
		eimg = e
	} else {
		eimg = ebiten.NewImageFromImage(img)
	}
	rm.registered[name] = render.NewTexture(name, eimg)
	delete(rm.missing, name)
}

// texturePath returns the resource path of a texture name
func (rm *ResourceManager) texturePath(name string) string {
	return path.Join(rm.texturesDir, name)
}

// HasImage reports whether a source image exists, without loading it or logging.
func (rm *ResourceManager) HasImage(name string) bool {
	if name == "" {
		return false
	}
	if _, ok := rm.registered[name]; ok {
		return true
	}
	if _, ok := rm.textureCache[name]; ok {
		return true
	}
	return embedded.Exists(rm.texturePath(name))
}

// Texture returns the texture with the given name, or nil if it does not exist.
// Missing textures are reported once.
func (rm *ResourceManager) Texture(name string) hud.Texture {
	t := rm.texture(name)
	if t == nil {
		return nil
	}
	return t
}

func (rm *ResourceManager) texture(name string) *render.Texture {
	if name == "" {
		return nil
	}
	if t, ok := rm.registered[name]; ok {
		return t
	}
	if t, ok := rm.textureCache[name]; ok {
		return t
	}
	if rm.missing[name] {
		return nil
	}

	img, err := rm.LoadImage(rm.texturePath(name))
	if err != nil {
		rm.missing[name] = true
		log.Printf("[ResourceManager] Warning: texture %q not available: %v", name, err)
		return nil
	}
	t := render.NewTexture(name, img)
	rm.textureCache[name] = t
	return t
}

// LoadFont loads a TrueType/OpenType font and creates a text face with the given size.
// The font face is cached with a key combining path and size.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	fontData, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace
	return goTextFace, nil
}

// RegisterDefaultTextures registers procedural textures for every HUD texture and
// item icon that the texture pack does not provide.
//
// Returns the names that were generated.
func (rm *ResourceManager) RegisterDefaultTextures(items []hud.ItemDefinition) []string {
	var generated []string
	register := func(name string, gen func() image.Image) {
		if name == "" || rm.HasImage(name) {
			return
		}
		rm.RegisterImage(name, gen())
		generated = append(generated, name)
	}

	register(hud.HeartTexture, func() image.Image { return GenerateHeart(StatbarIconSize) })
	register(hud.BubbleTexture, func() image.Image { return GenerateBubble(StatbarIconSize) })
	register(UnknownItemImage, func() image.Image { return GenerateUnknownIcon(ItemIconSize) })
	for _, def := range items {
		register(def.InventoryImage, func() image.Image { return GenerateItemIcon(def, ItemIconSize) })
	}

	if len(generated) > 0 {
		log.Printf("[ResourceManager] Generated %d procedural textures", len(generated))
	}
	return generated
}
