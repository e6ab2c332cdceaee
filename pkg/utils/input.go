// Package utils 提供通用工具函数
package utils

import (
	"github.com/decker502/hollow/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// KeyBindings 键位绑定，每个动作可绑定多个按键
type KeyBindings struct {
	Forward    []ebiten.Key
	Backward   []ebiten.Key
	Left       []ebiten.Key
	Right      []ebiten.Key
	Sprint     []ebiten.Key
	Jump       []ebiten.Key
	Flashlight []ebiten.Key
	Pause      []ebiten.Key
	Interact   []ebiten.Key
	Restart    []ebiten.Key
	Menu       []ebiten.Key
}

// DefaultKeyBindings 默认键位：WASD/方向键移动，Shift 冲刺，空格跳跃
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Forward:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Backward:   []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Left:       []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right:      []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Sprint:     []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
		Jump:       []ebiten.Key{ebiten.KeySpace},
		Flashlight: []ebiten.Key{ebiten.KeyF},
		Pause:      []ebiten.Key{ebiten.KeyEscape},
		Interact:   []ebiten.Key{ebiten.KeyE},
		Restart:    []ebiten.Key{ebiten.KeyR},
		Menu:       []ebiten.Key{ebiten.KeyM},
	}
}

// KeyboardInput 基于 ebiten 键盘与鼠标的输入源（实现 types.InputSource）
//
// 移动与冲刺读取按住状态，其余动作使用 inpututil 的边沿语义。
// 鼠标左键同样触发交互；光标被捕获时鼠标水平位移转为视角输入。
type KeyboardInput struct {
	bindings KeyBindings
	lastX    int
	hasLast  bool
}

// NewKeyboardInput 创建键盘输入源
func NewKeyboardInput(bindings KeyBindings) *KeyboardInput {
	return &KeyboardInput{bindings: bindings}
}

// Poll 采样本帧输入
func (k *KeyboardInput) Poll() types.InputSnapshot {
	b := k.bindings
	return types.InputSnapshot{
		MoveX:             Axis(anyPressed(b.Left), anyPressed(b.Right)),
		MoveY:             Axis(anyPressed(b.Backward), anyPressed(b.Forward)),
		LookX:             k.lookDelta(),
		Sprint:            anyPressed(b.Sprint),
		JumpPressed:       anyJustPressed(b.Jump),
		FlashlightPressed: anyJustPressed(b.Flashlight),
		PausePressed:      anyJustPressed(b.Pause),
		InteractPressed:   anyJustPressed(b.Interact) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		RestartPressed:    anyJustPressed(b.Restart),
		MenuPressed:       anyJustPressed(b.Menu),
	}
}

// lookDelta 光标捕获时返回鼠标水平位移，否则为 0
func (k *KeyboardInput) lookDelta() float64 {
	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		k.hasLast = false
		return 0
	}
	x, _ := ebiten.CursorPosition()
	if !k.hasLast {
		k.lastX, k.hasLast = x, true
		return 0
	}
	dx := x - k.lastX
	k.lastX = x
	return float64(dx)
}

// Axis 把一对方向键合成为 [-1, 1] 的轴向值，同时按下时抵消为 0
func Axis(negative, positive bool) float64 {
	v := 0.0
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
