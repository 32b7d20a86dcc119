//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 桌面端入口在项目根目录的 main.go；mobile.go 和 embed.go
// 只在 -tags mobile 时编译。
package mobile

// Dummy 保证包在桌面端构建时也能被引用
func Dummy() {}
