package components

import "github.com/decker502/hollow/pkg/types"

// ZombieComponent 追击玩家的僵尸
type ZombieComponent struct {
	RotationSpeed float64
	MoveSpeed     float64
	HasTarget     bool // 上一帧是否找到玩家（用于只在丢失目标时记录一次日志）
}

// ZombieSpawnerComponent 僵尸生成器
type ZombieSpawnerComponent struct {
	Origin     types.Vec3
	Radius     float64
	MaxCount   int
	SpawnCount int
	Active     bool
}
