package main

import (
	"unicode"

	"github.com/decker502/hollow/pkg/types"
	"github.com/decker502/hollow/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

type action int

const (
	actForward action = iota
	actBackward
	actLeft
	actRight
	actTurnLeft
	actTurnRight
	actSprint
	actionCount
)

// 终端只有按下事件（带自动重复），按键在 holdWindow 秒内视为仍被按住
const holdWindow = 0.25

// turnPixelsPerTick 转向键每帧等效的鼠标水平位移
const turnPixelsPerTick = 10

// termInput 把 tcell 按键事件转换为 types.InputSnapshot
type termInput struct {
	held  [actionCount]float64 // 剩余按住时间（秒）
	edges types.InputSnapshot  // 自上次 Poll 以来的边沿输入
	quit  bool
}

// HandleKey 处理一个按键事件
func (ti *termInput) HandleKey(ev *tcell.EventKey) {
	shift := ev.Modifiers()&tcell.ModShift != 0
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ti.quit = true
	case tcell.KeyEscape:
		ti.edges.PausePressed = true
	case tcell.KeyUp:
		ti.hold(actForward, shift)
	case tcell.KeyDown:
		ti.hold(actBackward, shift)
	case tcell.KeyLeft:
		ti.hold(actLeft, shift)
	case tcell.KeyRight:
		ti.hold(actRight, shift)
	case tcell.KeyRune:
		ti.handleRune(ev.Rune())
	}
}

// handleRune 大写的移动键表示按住 Shift 冲刺
func (ti *termInput) handleRune(r rune) {
	sprint := unicode.IsUpper(r)
	switch unicode.ToLower(r) {
	case 'w':
		ti.hold(actForward, sprint)
	case 's':
		ti.hold(actBackward, sprint)
	case 'a':
		ti.hold(actLeft, sprint)
	case 'd':
		ti.hold(actRight, sprint)
	case 'j':
		ti.hold(actTurnLeft, false)
	case 'l':
		ti.hold(actTurnRight, false)
	case ' ':
		ti.edges.JumpPressed = true
	case 'f':
		ti.edges.FlashlightPressed = true
	case 'e':
		ti.edges.InteractPressed = true
	case 'r':
		ti.edges.RestartPressed = true
	case 'q':
		ti.quit = true
	}
}

func (ti *termInput) hold(a action, sprint bool) {
	ti.held[a] = holdWindow
	if sprint {
		ti.held[actSprint] = holdWindow
	}
}

func (ti *termInput) active(a action) bool {
	return ti.held[a] > 0
}

// Advance 按住时间随帧流逝
func (ti *termInput) Advance(dt float64) {
	for i := range ti.held {
		ti.held[i] = max(0, ti.held[i]-dt)
	}
}

// Poll 采样本帧输入并清空边沿
func (ti *termInput) Poll() types.InputSnapshot {
	in := ti.edges
	ti.edges = types.InputSnapshot{}

	in.MoveX = utils.Axis(ti.active(actLeft), ti.active(actRight))
	in.MoveY = utils.Axis(ti.active(actBackward), ti.active(actForward))
	in.LookX = utils.Axis(ti.active(actTurnLeft), ti.active(actTurnRight)) * turnPixelsPerTick
	in.Sprint = ti.active(actSprint)
	return in
}
