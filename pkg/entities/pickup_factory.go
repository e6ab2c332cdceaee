package entities

import (
	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/types"
)

// NewBatteryEntity 创建电池拾取物
func NewBatteryEntity(em *ecs.EntityManager, pos types.Vec3) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.TransformComponent{Position: pos})
	em.AddComponent(id, &components.BatteryPickupComponent{})
	em.AddComponent(id, &components.InteractableComponent{Prompt: "Pick up battery"})

	return id
}

// NewPropEntity 创建可检视道具
func NewPropEntity(em *ecs.EntityManager, pc config.PropConfig) ecs.EntityID {
	id := em.CreateEntity()

	clips := make([]string, len(pc.Clips))
	copy(clips, pc.Clips)

	em.AddComponent(id, &components.TransformComponent{Position: pc.Position})
	em.AddComponent(id, &components.InspectableComponent{Name: pc.Name, Clips: clips})
	em.AddComponent(id, &components.InteractableComponent{Prompt: "Inspect " + pc.Name})

	return id
}
