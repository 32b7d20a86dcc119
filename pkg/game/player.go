package game

import "github.com/gonewx/blockhud/pkg/hud"

// 状态上限
const (
	MaxHP     = 20 // 半颗心为单位
	MaxBreath = 11
)

// Player 本地玩家的 HUD 相关状态，实现 hud.PlayerState
//
// 脚本元素保存在按 ID 索引的切片中：删除后该槽位置为 nil，
// 新元素优先复用第一个空槽位，因此已分配的 ID 保持稳定。
type Player struct {
	hudFlags            hud.Flags
	hotbarItemCount     int
	hotbarImage         string
	hotbarSelectedImage string
	elements            []hud.Element

	hp         int
	breath     int
	wieldIndex int
}

// NewPlayer 创建玩家，默认开启全部 HUD 组件、快捷栏 8 格、满血满氧
func NewPlayer() *Player {
	return &Player{
		hudFlags:        hud.DefaultFlags,
		hotbarItemCount: 8,
		hp:              MaxHP,
		breath:          MaxBreath,
	}
}

// HudFlags 返回 HUD 可见性标志
func (p *Player) HudFlags() hud.Flags {
	return p.hudFlags
}

// SetHudFlags 只修改 mask 中的位
func (p *Player) SetHudFlags(flags, mask hud.Flags) {
	p.hudFlags = (flags & mask) | (p.hudFlags &^ mask)
}

// HotbarItemCount 快捷栏格子数
func (p *Player) HotbarItemCount() int {
	return p.hotbarItemCount
}

// SetHotbarItemCount 设置快捷栏格子数，限制在 1 ~ 32，并保证手持索引仍然有效
func (p *Player) SetHotbarItemCount(n int) {
	p.hotbarItemCount = clampItemCount(n)
	p.SetWieldIndex(p.wieldIndex)
}

func (p *Player) HotbarImage() string         { return p.hotbarImage }
func (p *Player) HotbarSelectedImage() string { return p.hotbarSelectedImage }

// SetHotbarImages 设置快捷栏主题图片，空字符串表示不使用
func (p *Player) SetHotbarImages(bar, selected string) {
	p.hotbarImage = bar
	p.hotbarSelectedImage = selected
}

// Elements 返回脚本元素列表（包含 nil 槽位）
func (p *Player) Elements() []hud.Element {
	return p.elements
}

// AddElement 添加脚本元素并返回其 ID
func (p *Player) AddElement(e hud.Element) int {
	for id, slot := range p.elements {
		if slot == nil {
			p.elements[id] = e
			return id
		}
	}
	p.elements = append(p.elements, e)
	return len(p.elements) - 1
}

// GetElement 按 ID 获取元素，不存在时返回 nil
func (p *Player) GetElement(id int) hud.Element {
	if id < 0 || id >= len(p.elements) {
		return nil
	}
	return p.elements[id]
}

// RemoveElement 删除元素并返回被删除的元素，槽位保留为 nil
func (p *Player) RemoveElement(id int) hud.Element {
	if id < 0 || id >= len(p.elements) {
		return nil
	}
	e := p.elements[id]
	p.elements[id] = nil
	return e
}

// ChangeElement 替换已存在的元素，返回是否成功
func (p *Player) ChangeElement(id int, e hud.Element) bool {
	if id < 0 || id >= len(p.elements) || p.elements[id] == nil {
		return false
	}
	p.elements[id] = e
	return true
}

// SetElements 整体替换元素列表（例如从配置文件加载）
func (p *Player) SetElements(elements []hud.Element) {
	p.elements = elements
}

// HP 当前生命值（半颗心为单位）
func (p *Player) HP() int { return p.hp }

// SetHP 设置生命值，限制在 0 ~ MaxHP
func (p *Player) SetHP(hp int) {
	p.hp = clamp(hp, 0, MaxHP)
}

// Breath 当前氧气值
func (p *Player) Breath() int { return p.breath }

// SetBreath 设置氧气值，限制在 0 ~ MaxBreath
func (p *Player) SetBreath(breath int) {
	p.breath = clamp(breath, 0, MaxBreath)
}

// WieldIndex 当前手持的快捷栏格子（从 0 开始）
func (p *Player) WieldIndex() int { return p.wieldIndex }

// SetWieldIndex 设置手持格子，限制在快捷栏范围内
func (p *Player) SetWieldIndex(i int) {
	p.wieldIndex = clamp(i, 0, p.hotbarItemCount-1)
}

// ScrollWield 滚动切换手持格子，超出范围时循环
func (p *Player) ScrollWield(delta int) {
	n := p.hotbarItemCount
	p.wieldIndex = ((p.wieldIndex+delta)%n + n) % n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
