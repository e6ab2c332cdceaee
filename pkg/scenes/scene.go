package scenes

import (
	"log"

	"github.com/decker502/hollow/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Hooks 场景向应用层回传的操作
type Hooks struct {
	// ApplySettings 设置变化后应用到运行环境（音量、全屏、画质）
	ApplySettings func(*game.GameSettings)
	// Quit 请求退出游戏
	Quit func()
}

// NewSceneFactory 返回按名称创建场景的工厂
//
// 参数:
//   - gs: 跨场景共享的服务
//   - sm: 场景管理器（场景内切换场景时使用）
//   - hooks: 应用层回调
func NewSceneFactory(gs *game.GameState, sm *game.SceneManager, hooks Hooks) game.SceneFactory {
	return func(name string) game.Scene {
		switch name {
		case game.SceneMainMenu:
			return NewMainMenuScene(gs, sm, hooks)
		case game.SceneGame:
			return NewGameScene(gs, sm)
		default:
			log.Printf("[Scenes] Unknown scene: %s", name)
			return nil
		}
	}
}
