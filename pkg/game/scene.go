package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., main menu, gameplay).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Leaver 是一个可选接口，场景被替换时调用 OnLeave()
//
// 实现此接口的场景在以下时机被调用：
//   - 切换到其他场景（含重新加载同名场景）
//   - 游戏窗口关闭
type Leaver interface {
	OnLeave()
}
