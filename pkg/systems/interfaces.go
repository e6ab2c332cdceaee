package systems

import (
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/types"
)

// CueSink 音效播放请求（即发即忘）
type CueSink interface {
	PlayCue(cueID string) bool
}

// CueClock 查询音效时长，用于一次性效果的定时
type CueClock interface {
	CueDuration(cueID string) float64
}

// AudioSink 同时提供播放与时长查询（game.AudioManager 实现此接口）
type AudioSink interface {
	CueSink
	CueClock
}

// GroundProbe 地面探测
// 每个物理步调用一次，返回是否着地以及地面法线
type GroundProbe interface {
	Probe(pos types.Vec3) (grounded bool, normal types.Vec3)
}

// CharacterMover 角色移动（带碰撞），返回移动后是否着地
type CharacterMover interface {
	Move(id ecs.EntityID, delta types.Vec3) (grounded bool)
}

// PauseState 会话暂停状态（game.Session 实现此接口）
type PauseState interface {
	IsPaused() bool
}

// KeyCounter 已收集钥匙数的只读访问
type KeyCounter interface {
	KeysCollected() int
}

// BatteryListener 钥匙收集后通知手电筒重新计算耗电间隔
type BatteryListener interface {
	RecomputeDrainInterval()
}

// noCues 静默的 CueSink，用于未注入音频的场景（如测试或终端前端）
type noCues struct{}

func (noCues) PlayCue(string) bool { return false }
func (noCues) CueDuration(string) float64 { return 0 }

// NoAudio 返回不播放任何声音的 AudioSink
func NoAudio() AudioSink {
	return noCues{}
}

// LossSink 失败通知（game.Session 实现此接口）
type LossSink interface {
	GameOver()
}

// EnemyHitReceiver 被僵尸抓住时的体力惩罚（LocomotionSystem 实现此接口）
type EnemyHitReceiver interface {
	ApplyEnemyHit()
}
