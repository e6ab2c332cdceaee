package entities

import (
	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/types"
)

// ZombieSpawnTimerName 僵尸生成器计时器名称
const ZombieSpawnTimerName = "zombie_spawn"

// NewZombieEntity 创建追击玩家的僵尸
func NewZombieEntity(em *ecs.EntityManager, pos types.Vec3, zc config.ZombieConfig) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.TransformComponent{Position: pos})
	em.AddComponent(id, &components.ZombieComponent{
		RotationSpeed: zc.RotationSpeed,
		MoveSpeed:     zc.MoveSpeed,
	})

	return id
}

// NewZombieSpawnerEntity 创建僵尸生成器（初始不激活，由生成系统启动）
func NewZombieSpawnerEntity(em *ecs.EntityManager, zs config.ZombieSpawnerConfig) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.TransformComponent{Position: zs.Position})
	em.AddComponent(id, &components.ZombieSpawnerComponent{
		Origin:   zs.Position,
		Radius:   zs.Radius,
		MaxCount: zs.MaxCount,
	})
	em.AddComponent(id, &components.TimerComponent{
		Name:       ZombieSpawnTimerName,
		TargetTime: zs.Interval,
	})

	return id
}
