package modules

import (
	"image/color"
	"log"

	"github.com/decker502/hollow/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// OverlayMode 游戏画面上方的覆盖层
type OverlayMode int

const (
	OverlayNone    OverlayMode = iota // 游戏进行中
	OverlayPaused                     // 暂停
	OverlayLost                       // 被僵尸抓住
	OverlayVictory                    // 到达出口
)

// overlayAlpha 遮罩透明度
const overlayAlpha = 160

// PauseMenuCallbacks 暂停菜单回调函数集合
type PauseMenuCallbacks struct {
	OnContinue func() // "继续"（仅暂停时可用）
	OnRestart  func() // "重新开始"
	OnMainMenu func() // "返回主菜单"
	OnClick    func() // 按钮音效（可选）
}

// PauseMenuModule 暂停 / 失败 / 通关覆盖层
//
// 暂停时：Esc 继续（由关卡处理），R 重新开始，M 返回主菜单。
// 失败或通关时没有"继续"，只有重新开始与返回主菜单。
type PauseMenuModule struct {
	callbacks PauseMenuCallbacks
	mode      OverlayMode
	menus     map[OverlayMode]*MenuList

	windowWidth  int
	windowHeight int
}

// NewPauseMenuModule 创建覆盖层模块
//
// 参数:
//   - windowWidth, windowHeight: 逻辑屏幕尺寸
//   - callbacks: 按钮回调
func NewPauseMenuModule(windowWidth, windowHeight int, callbacks PauseMenuCallbacks) *PauseMenuModule {
	m := &PauseMenuModule{
		callbacks:    callbacks,
		menus:        make(map[OverlayMode]*MenuList),
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}

	centerX := float64(windowWidth) / 2
	top := float64(windowHeight)/2 - 40
	restart := MenuItem{Label: StaticLabel("Restart (R)"), OnSelect: m.restart}
	mainMenu := MenuItem{Label: StaticLabel("Main Menu (M)"), OnSelect: m.mainMenu}

	m.menus[OverlayPaused] = NewMenuList([]MenuItem{
		{Label: StaticLabel("Continue (Esc)"), OnSelect: m.continueGame},
		restart,
		mainMenu,
	}, centerX, top)
	m.menus[OverlayLost] = NewMenuList([]MenuItem{restart, mainMenu}, centerX, top)
	m.menus[OverlayVictory] = NewMenuList([]MenuItem{
		{Label: StaticLabel("Play Again (R)"), OnSelect: m.restart},
		mainMenu,
	}, centerX, top)

	for _, menu := range m.menus {
		menu.SetOnActivate(callbacks.OnClick)
	}
	return m
}

// Mode 当前覆盖层
func (m *PauseMenuModule) Mode() OverlayMode {
	return m.mode
}

// IsActive 是否有覆盖层显示
func (m *PauseMenuModule) IsActive() bool {
	return m.mode != OverlayNone
}

// Update 同步覆盖层状态并处理快捷键与菜单输入
//
// 参数:
//   - mode: 由场景根据会话状态计算出的覆盖层
//   - input: 本帧游戏输入（R / M 快捷键）
//   - menuInput: 本帧菜单输入
func (m *PauseMenuModule) Update(mode OverlayMode, input types.InputSnapshot, menuInput MenuInput) {
	if mode != m.mode {
		log.Printf("[PauseMenuModule] Overlay %d -> %d", m.mode, mode)
		m.mode = mode
	}
	if m.mode == OverlayNone {
		return
	}

	switch {
	case input.RestartPressed:
		m.restart()
		return
	case input.MenuPressed:
		m.mainMenu()
		return
	}
	m.menus[m.mode].Update(menuInput)
}

func (m *PauseMenuModule) continueGame() {
	if m.mode == OverlayPaused && m.callbacks.OnContinue != nil {
		m.callbacks.OnContinue()
	}
}

func (m *PauseMenuModule) restart() {
	log.Printf("[PauseMenuModule] Restart requested")
	if m.callbacks.OnRestart != nil {
		m.callbacks.OnRestart()
	}
}

func (m *PauseMenuModule) mainMenu() {
	log.Printf("[PauseMenuModule] Main menu requested")
	if m.callbacks.OnMainMenu != nil {
		m.callbacks.OnMainMenu()
	}
}

// Title 覆盖层标题
func (m *PauseMenuModule) Title() string {
	switch m.mode {
	case OverlayPaused:
		return "PAUSED"
	case OverlayLost:
		return "YOU WERE CAUGHT"
	case OverlayVictory:
		return "YOU ESCAPED"
	default:
		return ""
	}
}

// Draw 绘制遮罩、标题与按钮
func (m *PauseMenuModule) Draw(screen *ebiten.Image) {
	if m.mode == OverlayNone {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(m.windowWidth), float32(m.windowHeight),
		color.RGBA{A: overlayAlpha}, false)
	DrawCenteredText(screen, m.Title(), m.windowWidth/2, m.windowHeight/2-100)
	m.menus[m.mode].Draw(screen)
}
