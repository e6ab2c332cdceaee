package modules

import (
	"image/color"

	"github.com/decker502/hollow/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 菜单布局
const (
	menuItemWidth   = 240.0
	menuItemHeight  = 36.0
	menuItemSpacing = 10.0
	// debugGlyphWidth/Height ebitenutil 调试字体的字形尺寸
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

var (
	menuItemColor     = color.RGBA{R: 40, G: 40, B: 48, A: 230}
	menuSelectedColor = color.RGBA{R: 120, G: 30, B: 30, A: 240}
)

// MenuItem 菜单项
type MenuItem struct {
	// Label 每次绘制时调用，便于显示当前设置值
	Label func() string
	// OnSelect 确认（回车 / 点击）时调用
	OnSelect func()
	// OnAdjust 左右键调整（可为 nil），参数为 -1 或 1
	OnAdjust func(dir int)
}

// StaticLabel 固定文本的 Label
func StaticLabel(text string) func() string {
	return func() string { return text }
}

// MenuInput 一帧的菜单输入
type MenuInput struct {
	Up, Down    bool
	Left, Right bool
	Confirm     bool
	Clicked     bool
	X, Y        int // 指针位置
}

// PollMenuInput 从 ebiten 读取菜单输入（触摸与鼠标点击等价）
func PollMenuInput() MenuInput {
	x, y := utils.GetPointerPosition()
	clicked, cx, cy := utils.IsJustTouchedOrClicked()
	if clicked {
		x, y = cx, cy
	}
	return MenuInput{
		Up:      inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW),
		Down:    inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS),
		Left:    inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA),
		Right:   inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Clicked: clicked,
		X:       x,
		Y:       y,
	}
}

// MenuList 竖直排列的文本菜单，支持键盘与鼠标
type MenuList struct {
	items    []MenuItem
	selected int
	centerX  float64
	top      float64

	// onActivate 任一菜单项被确认或调整时调用（播放按钮音效）
	onActivate func()
}

// NewMenuList 创建菜单，centerX/top 为菜单水平中心与顶部位置
func NewMenuList(items []MenuItem, centerX, top float64) *MenuList {
	return &MenuList{items: items, centerX: centerX, top: top}
}

// SetOnActivate 设置确认/调整时的回调
func (m *MenuList) SetOnActivate(fn func()) {
	m.onActivate = fn
}

// Selected 当前选中项索引
func (m *MenuList) Selected() int {
	return m.selected
}

// Len 菜单项数量
func (m *MenuList) Len() int {
	return len(m.items)
}

// ItemRect 第 i 项的矩形 (x, y, w, h)
func (m *MenuList) ItemRect(i int) (x, y, w, h float64) {
	x = m.centerX - menuItemWidth/2
	y = m.top + float64(i)*(menuItemHeight+menuItemSpacing)
	return x, y, menuItemWidth, menuItemHeight
}

// ItemAt 返回指针所在的菜单项
func (m *MenuList) ItemAt(px, py int) (int, bool) {
	for i := range m.items {
		x, y, w, h := m.ItemRect(i)
		if float64(px) >= x && float64(px) < x+w && float64(py) >= y && float64(py) < y+h {
			return i, true
		}
	}
	return -1, false
}

// Update 处理一帧输入
func (m *MenuList) Update(in MenuInput) {
	if len(m.items) == 0 {
		return
	}
	if i, ok := m.ItemAt(in.X, in.Y); ok {
		m.selected = i
		if in.Clicked {
			m.activate(i)
			return
		}
	}

	switch {
	case in.Up:
		m.selected = (m.selected - 1 + len(m.items)) % len(m.items)
	case in.Down:
		m.selected = (m.selected + 1) % len(m.items)
	case in.Left:
		m.adjust(-1)
	case in.Right:
		m.adjust(1)
	case in.Confirm:
		m.activate(m.selected)
	}
}

func (m *MenuList) activate(i int) {
	if m.onActivate != nil {
		m.onActivate()
	}
	if fn := m.items[i].OnSelect; fn != nil {
		fn()
	}
}

func (m *MenuList) adjust(dir int) {
	fn := m.items[m.selected].OnAdjust
	if fn == nil {
		return
	}
	if m.onActivate != nil {
		m.onActivate()
	}
	fn(dir)
}

// Draw 绘制菜单
func (m *MenuList) Draw(screen *ebiten.Image) {
	for i, item := range m.items {
		x, y, w, h := m.ItemRect(i)
		bg := menuItemColor
		if i == m.selected {
			bg = menuSelectedColor
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bg, false)

		label := item.Label()
		tx := int(m.centerX) - len(label)*debugGlyphWidth/2
		ty := int(y + (h-debugGlyphHeight)/2)
		ebitenutil.DebugPrintAt(screen, label, tx, ty)
	}
}

// DrawCenteredText 在水平中心绘制一行调试文本
func DrawCenteredText(screen *ebiten.Image, text string, centerX, y int) {
	ebitenutil.DebugPrintAt(screen, text, centerX-len(text)*debugGlyphWidth/2, y)
}
