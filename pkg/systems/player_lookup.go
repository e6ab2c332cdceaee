package systems

import (
	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/ecs"
)

// findPlayer 查找玩家实体（拥有 PlayerComponent 与 TransformComponent 的第一个实体）
func findPlayer(em *ecs.EntityManager) (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.TransformComponent](em)
	if len(ids) == 0 {
		return ecs.InvalidEntity, false
	}
	return ids[0], true
}
