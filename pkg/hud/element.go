package hud

// ElementBase 所有脚本 HUD 元素的公共字段
type ElementBase struct {
	Name   string
	Pos    Vec2f // 归一化坐标，[0,1] 对应整个屏幕
	Scale  Vec2f // 含义随元素类型而变
	Align  Vec2f // 0/1/2 分别对应左(上)/居中/右(下)对齐
	Offset Vec2f // 像素偏移
}

// Element 脚本 HUD 元素
//
// 具体类型为 *ImageElement、*TextElement、*StatbarElement、
// *InventoryElement 或 *UnknownElement。
type Element interface {
	Base() *ElementBase
}

// ImageElement 图片元素
//
// Scale 为图片原始尺寸的倍数；某一轴为负数时，该轴尺寸改为屏幕尺寸的 -Scale%。
type ImageElement struct {
	ElementBase
	Texture string
}

// TextElement 文本元素
//
// Scale.X 为文本框宽度（像素），Scale.Y 为文本框高度（行数）。
// Number 为打包的 0xRRGGBB 颜色。
type TextElement struct {
	ElementBase
	Text   string
	Number uint32
}

// StatbarElement 状态条元素，Number 为半图标数量
type StatbarElement struct {
	ElementBase
	Texture string
	Number  int
	Dir     Direction
}

// InventoryElement 物品栏元素
type InventoryElement struct {
	ElementBase
	List   string    // 物品列表名称
	Number int       // 显示的格子数
	Item   int       // 选中格（从 1 开始，0 表示无）
	Dir    Direction // 堆叠方向
}

// UnknownElement 无法识别的元素类型，绘制时记录日志并跳过
type UnknownElement struct {
	ElementBase
	Type string
}

func (e *ElementBase) Base() *ElementBase { return e }
