package components

// TimerComponent 通用计时器组件
// 用于处理需要周期触发的行为（如僵尸生成间隔）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "zombie_spawn"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// Advance 推进计时器，返回本次是否到期
// 到期后 CurrentTime 归零并重新计时
func (t *TimerComponent) Advance(deltaTime float64) bool {
	t.CurrentTime += deltaTime
	if t.CurrentTime >= t.TargetTime {
		t.CurrentTime = 0
		t.IsReady = true
		return true
	}
	t.IsReady = false
	return false
}
