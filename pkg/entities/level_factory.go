package entities

import (
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
)

// LevelEntities 关卡初始实体
type LevelEntities struct {
	Player         ecs.EntityID
	Spawners       []ecs.EntityID // 与 level.Spawners 顺序一致
	ZombieSpawners []ecs.EntityID // 与 level.ZombieSpawners 顺序一致
	Batteries      []ecs.EntityID
	Props          []ecs.EntityID
}

// PopulateLevel 按关卡配置创建玩家、生成点、僵尸生成器、电池与道具
// 钥匙与传送门由目标系统按进度创建
func PopulateLevel(em *ecs.EntityManager, level *config.LevelConfig, player *config.PlayerConfig) LevelEntities {
	out := LevelEntities{
		Player: NewPlayerEntity(em, level.PlayerSpawn, level.PlayerYaw, player),
	}

	for i, sc := range level.Spawners {
		out.Spawners = append(out.Spawners, NewSpawnerEntity(em, i, sc))
	}
	for _, zs := range level.ZombieSpawners {
		out.ZombieSpawners = append(out.ZombieSpawners, NewZombieSpawnerEntity(em, zs))
	}
	for _, pos := range level.Batteries {
		out.Batteries = append(out.Batteries, NewBatteryEntity(em, pos))
	}
	for _, pc := range level.Props {
		out.Props = append(out.Props, NewPropEntity(em, pc))
	}

	return out
}
