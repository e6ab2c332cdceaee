package game

import "log"

// Session 关卡会话状态（暂停 / 失败）
//
// 不变量：IsLost 一旦为 true，IsPaused 被强制为 true，且 Resume 无法清除。
// 由场景根对象持有，以依赖注入的方式传给需要读取暂停状态的系统。
type Session struct {
	isPaused bool
	isLost   bool

	// onPauseChanged 暂停状态变化回调（如暂停/恢复背景音乐）
	onPauseChanged func(paused bool)
}

// NewSession 创建新的会话（未暂停、未失败）
func NewSession() *Session {
	return &Session{}
}

// SetOnPauseChanged 设置暂停状态变化回调
func (s *Session) SetOnPauseChanged(fn func(paused bool)) {
	s.onPauseChanged = fn
}

// IsPaused 返回是否暂停
func (s *Session) IsPaused() bool {
	return s.isPaused
}

// IsLost 返回是否已失败
func (s *Session) IsLost() bool {
	return s.isLost
}

// Pause 暂停游戏
// 失败状态下为空操作
func (s *Session) Pause() {
	if s.isLost {
		return
	}
	s.setPaused(true)
}

// Resume 恢复游戏
// 失败状态下为空操作（失败的冻结不可解除）
func (s *Session) Resume() {
	if s.isLost {
		return
	}
	s.setPaused(false)
}

// Toggle 切换暂停状态（绑定到暂停键，每帧最多调用一次）
func (s *Session) Toggle() {
	if s.isLost {
		return
	}
	if s.isPaused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// GameOver 进入失败状态
// 单向转换：无条件设置 isLost 与 isPaused，之后本会话内不可恢复
func (s *Session) GameOver() {
	if s.isLost {
		return
	}
	s.isLost = true
	s.setPaused(true)
	log.Printf("[Session] Game over")
}

func (s *Session) setPaused(paused bool) {
	if s.isPaused == paused {
		return
	}
	s.isPaused = paused
	log.Printf("[Session] Paused = %v", paused)
	if s.onPauseChanged != nil {
		s.onPauseChanged(paused)
	}
}
