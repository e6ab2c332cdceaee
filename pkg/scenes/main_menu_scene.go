package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/game"
	"github.com/decker502/hollow/pkg/modules"
	"github.com/hajimehoshi/ebiten/v2"
)

var menuBackground = color.RGBA{R: 10, G: 10, B: 14, A: 255}

// MainMenuScene 主菜单：开始游戏、选项、退出
type MainMenuScene struct {
	state        *game.GameState
	sceneManager *game.SceneManager
	hooks        Hooks

	menu    *modules.MenuList
	options *modules.OptionsPanelModule

	menuInput    func() modules.MenuInput
	pendingScene string
}

// NewMainMenuScene 创建主菜单场景
func NewMainMenuScene(gs *game.GameState, sm *game.SceneManager, hooks Hooks) *MainMenuScene {
	m := &MainMenuScene{
		state:        gs,
		sceneManager: sm,
		hooks:        hooks,
		menuInput:    modules.PollMenuInput,
	}

	gs.Audio.PreloadGroup(game.CueGroupUI)
	click := func() { gs.Audio.PlayCue(clickCue) }

	m.menu = modules.NewMenuList([]modules.MenuItem{
		{Label: modules.StaticLabel("Start"), OnSelect: m.onStartClicked},
		{Label: modules.StaticLabel("Options"), OnSelect: m.onOptionsClicked},
		{Label: modules.StaticLabel("Quit"), OnSelect: m.onExitClicked},
	}, config.GameWindowWidth/2, config.GameWindowHeight/2-40)
	m.menu.SetOnActivate(click)

	m.options = modules.NewOptionsPanelModule(gs.Settings, config.GameWindowWidth, config.GameWindowHeight,
		m.applySettings, nil)
	m.options.SetOnClick(click)

	return m
}

// Update 处理菜单输入
func (m *MainMenuScene) Update(deltaTime float64) {
	in := m.menuInput()
	if m.options.IsVisible() {
		m.options.Update(in)
	} else {
		m.menu.Update(in)
	}

	if m.pendingScene != "" {
		name := m.pendingScene
		m.pendingScene = ""
		m.sceneManager.Load(name)
	}
}

func (m *MainMenuScene) onStartClicked() {
	log.Printf("[MainMenuScene] Start clicked")
	m.pendingScene = game.SceneGame
}

func (m *MainMenuScene) onOptionsClicked() {
	m.options.Show()
}

func (m *MainMenuScene) onExitClicked() {
	log.Printf("[MainMenuScene] Quit clicked")
	if m.hooks.Quit != nil {
		m.hooks.Quit()
	}
}

// applySettings 音量立即作用于音频管理器，其余交给应用层
func (m *MainMenuScene) applySettings(s *game.GameSettings) {
	m.state.Audio.SetVolume(s.Volume)
	if m.hooks.ApplySettings != nil {
		m.hooks.ApplySettings(s)
	}
}

// Draw 绘制标题与菜单
func (m *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackground)
	modules.DrawCenteredText(screen, config.GameTitle, config.GameWindowWidth/2, config.GameWindowHeight/2-140)
	m.menu.Draw(screen)
	m.options.Draw(screen)
}
