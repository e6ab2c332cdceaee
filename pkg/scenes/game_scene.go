package scenes

import (
	"log"

	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/game"
	"github.com/decker502/hollow/pkg/modules"
	"github.com/decker502/hollow/pkg/types"
	"github.com/decker502/hollow/pkg/utils"
	"github.com/decker502/hollow/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
)

// clickCue 菜单按钮音效
const clickCue = "SOUND_BUTTONCLICK"

// GameScene 游戏关卡场景
//
// 包装 world.World：每帧采样输入并推进关卡，
// 绘制俯视地图与 HUD，暂停 / 失败 / 通关时显示覆盖层。
type GameScene struct {
	state        *game.GameState
	sceneManager *game.SceneManager
	world        *world.World
	overlay      *modules.PauseMenuModule

	input     types.InputSource
	menuInput func() modules.MenuInput

	// setCursorMode 游戏进行中捕获光标，覆盖层显示时释放
	setCursorMode func(ebiten.CursorModeType)
	cursorMode    ebiten.CursorModeType

	// pendingScene 在本帧结束时切换的场景
	pendingScene string
}

// NewGameScene 创建并开始一个新关卡
func NewGameScene(gs *game.GameState, sm *game.SceneManager) *GameScene {
	s := &GameScene{
		state:         gs,
		sceneManager:  sm,
		input:         utils.NewKeyboardInput(utils.DefaultKeyBindings()),
		menuInput:     modules.PollMenuInput,
		setCursorMode: ebiten.SetCursorMode,
		cursorMode:    ebiten.CursorModeVisible,
	}

	gs.Audio.PreloadGroup(game.CueGroupPlayer)
	gs.Audio.PreloadGroup(game.CueGroupItems)

	s.world = world.New(world.Options{
		Player:         gs.PlayerConfig,
		Level:          gs.LevelConfig,
		Audio:          gs.Audio,
		OnPauseChanged: gs.Audio.OnPauseChanged,
		OnVictory: func() {
			log.Printf("[GameScene] Level %q cleared", gs.LevelConfig.Name)
		},
	})

	s.overlay = modules.NewPauseMenuModule(config.GameWindowWidth, config.GameWindowHeight, modules.PauseMenuCallbacks{
		OnContinue: s.world.Session().Resume,
		OnRestart:  func() { s.pendingScene = game.SceneGame },
		OnMainMenu: func() { s.pendingScene = game.SceneMainMenu },
		OnClick:    func() { gs.Audio.PlayCue(clickCue) },
	})

	s.world.Start()
	return s
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	in := s.input.Poll()
	s.world.Update(deltaTime, in)
	s.overlay.Update(s.overlayMode(), in, s.menuInput())
	s.updateCursor()

	if s.pendingScene != "" {
		name := s.pendingScene
		s.pendingScene = ""
		s.sceneManager.Load(name)
	}
}

// overlayMode 根据会话状态选择覆盖层，失败优先于暂停
func (s *GameScene) overlayMode() modules.OverlayMode {
	switch {
	case s.world.Session().IsLost():
		return modules.OverlayLost
	case s.world.Won():
		return modules.OverlayVictory
	case s.world.Session().IsPaused():
		return modules.OverlayPaused
	default:
		return modules.OverlayNone
	}
}

func (s *GameScene) updateCursor() {
	want := ebiten.CursorModeCaptured
	if s.overlay.IsActive() {
		want = ebiten.CursorModeVisible
	}
	if want != s.cursorMode {
		s.cursorMode = want
		s.setCursorMode(want)
	}
}

// OnLeave 离开场景时停止所有音效并释放光标
func (s *GameScene) OnLeave() {
	s.state.Audio.StopAll()
	if s.cursorMode != ebiten.CursorModeVisible {
		s.cursorMode = ebiten.CursorModeVisible
		s.setCursorMode(ebiten.CursorModeVisible)
	}
	log.Printf("[GameScene] Leaving level %q", s.world.Level().Name)
}

// World 当前关卡
func (s *GameScene) World() *world.World {
	return s.world
}

// Draw 绘制地图、HUD 与覆盖层
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawMap(screen)
	s.drawHUD(screen)
	s.overlay.Draw(screen)
}
