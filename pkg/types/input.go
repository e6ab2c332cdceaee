package types

import "math"

// InputSnapshot 一帧的输入采样结果
//
// 轴向输入为持续状态，*Pressed 字段为边沿触发（仅按下的那一帧为 true）。
type InputSnapshot struct {
	MoveX float64 // 水平轴 [-1, 1]，正值向右
	MoveY float64 // 垂直轴 [-1, 1]，正值向前
	LookX float64 // 本帧视角水平偏移（鼠标 X 增量）

	Sprint bool // 冲刺修饰键（按住）

	JumpPressed       bool
	FlashlightPressed bool
	PausePressed      bool
	InteractPressed   bool
	RestartPressed    bool
	MenuPressed       bool
}

// MoveMagnitude 返回移动输入的模长
func (s InputSnapshot) MoveMagnitude() float64 {
	return math.Hypot(s.MoveX, s.MoveY)
}

// InputSource 输入源（每个 tick 轮询一次）
type InputSource interface {
	Poll() InputSnapshot
}

// InputFunc 函数适配器
type InputFunc func() InputSnapshot

// Poll 实现 InputSource
func (f InputFunc) Poll() InputSnapshot {
	return f()
}
