package components

// LifetimeComponent 管理实体的生命周期
// 用于延迟销毁实体（如拾取后等待音效播放完毕的电池）
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}
