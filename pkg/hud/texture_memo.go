package hud

// textureMemo 记录最近一次查询的纹理名及其是否存在
//
// 玩家可以随时更换快捷栏主题图片，每次绘制时按值比较名称，
// 只有名称变化时才重新查询 TextureSource。
type textureMemo struct {
	name      string
	available bool
}

// resolve 返回 name 对应的图片是否可用
func (m *textureMemo) resolve(name string, src TextureSource) bool {
	if name == m.name {
		return m.available
	}
	m.name = name
	m.available = name != "" && src.HasImage(name)
	return m.available
}
