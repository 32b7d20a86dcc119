package config

import (
	"image/color"
	"math"
)

// clampChannel 四舍五入并限制到 0 ~ 255
func clampChannel(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// ColorFromRGB 将 [r,g,b] 浮点配置转换为颜色，alpha 同样限制到 0 ~ 255
func ColorFromRGB(rgb [3]float64, alpha int) color.NRGBA {
	return color.NRGBA{
		R: clampChannel(rgb[0]),
		G: clampChannel(rgb[1]),
		B: clampChannel(rgb[2]),
		A: clampChannel(float64(alpha)),
	}
}
