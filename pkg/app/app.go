// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载配置、创建共享服务、
// 注册场景工厂，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"path/filepath"

	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/game"
	"github.com/decker502/hollow/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// audioSampleRate 音频上下文采样率
const audioSampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SkipMenu 跳过主菜单，直接进入关卡
	SkipMenu bool
	// DataDir 配置目录（player.yaml / level.yaml / audio.yaml），为空时使用 "data"
	DataDir string
	// Gdata 设置持久化，可为 nil（仅内存设置）
	Gdata *gdata.Manager
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	state        *game.GameState
	verbose      bool
	quitting     bool

	// filter 最终画面缩放使用的滤波器（由画质决定）
	filter ebiten.Filter

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}

	state, err := game.NewGameState(game.GameStateOptions{
		Gdata:            cfg.Gdata,
		AudioContext:     audio.NewContext(audioSampleRate),
		PlayerConfigPath: filepath.Join(dataDir, "player.yaml"),
		LevelConfigPath:  filepath.Join(dataDir, "level.yaml"),
		AudioConfigPath:  filepath.Join(dataDir, "audio.yaml"),
	})
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	a := &App{
		sceneManager: game.NewSceneManager(),
		state:        state,
		verbose:      cfg.Verbose,
		filter:       ebiten.FilterLinear,
	}
	a.sceneManager.SetSceneFactory(scenes.NewSceneFactory(state, a.sceneManager, scenes.Hooks{
		ApplySettings: a.applySettings,
		Quit:          a.quit,
	}))

	a.applySettings(state.Settings.GetSettings())

	start := game.SceneMainMenu
	if cfg.SkipMenu {
		log.Printf("[App] SkipMenu enabled, starting level directly")
		start = game.SceneGame
	}
	if !a.sceneManager.Load(start) {
		return nil, fmt.Errorf("场景创建失败: %s", start)
	}

	return a, nil
}

// applySettings 把设置应用到运行环境：音量、全屏、画质
func (a *App) applySettings(s *game.GameSettings) {
	a.state.Audio.SetVolume(s.Volume)

	profile := QualityProfileFor(s.Quality)
	a.filter = profile.Filter
	ebiten.SetVsyncEnabled(profile.VSync)

	a.setFullscreen(s.Fullscreen)
	log.Printf("[App] Settings applied: volume=%.1f quality=%s fullscreen=%v",
		s.Volume, config.QualityNames[profile.Level], s.Fullscreen)
}

// setFullscreen 切换全屏；退出全屏后延迟几帧恢复窗口大小
func (a *App) setFullscreen(enabled bool) {
	if ebiten.IsFullscreen() == enabled {
		return
	}
	ebiten.SetFullscreen(enabled)
	if enabled {
		return
	}
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
	a.pendingWindowSizeReset = true
	a.windowSizeResetCountdown = 3
	log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
}

func (a *App) quit() {
	a.quitting = true
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.quitting {
		a.sceneManager.Close()
		return ebiten.Termination
	}

	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏并保存
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		settings := a.state.Settings
		settings.SetFullscreen(!settings.GetSettings().Fullscreen)
		if err := settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
		a.setFullscreen(settings.GetSettings().Fullscreen)
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = a.filter
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时通知当前场景
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
