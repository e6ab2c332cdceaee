package entities

import (
	"image/color"

	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/types"
)

// NewSpawnerEntity 创建钥匙生成点，灯光初始关闭
func NewSpawnerEntity(em *ecs.EntityManager, index int, sc config.SpawnerConfig) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.TransformComponent{Position: sc.Position})

	var anchor *types.Vec3
	if sc.Anchor != nil {
		a := *sc.Anchor
		anchor = &a
	}
	em.AddComponent(id, &components.SpawnerComponent{
		Index:  index,
		Name:   sc.Name,
		Anchor: anchor,
	})

	em.AddComponent(id, &components.LightComponent{})

	return id
}

// NewKeyEntity 在锚点处创建钥匙
func NewKeyEntity(em *ecs.EntityManager, pos types.Vec3, spawnerIndex int) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.TransformComponent{Position: pos})
	em.AddComponent(id, &components.KeyComponent{SpawnerIndex: spawnerIndex})
	em.AddComponent(id, &components.InteractableComponent{Prompt: "Pick up key"})

	return id
}

// NewPortalEntity 创建出口传送门
func NewPortalEntity(em *ecs.EntityManager, pos types.Vec3, spawnIndex int) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.TransformComponent{Position: pos})
	em.AddComponent(id, &components.PortalComponent{SpawnIndex: spawnIndex})

	light := &components.LightComponent{}
	light.Set(color.RGBA{R: 80, G: 255, B: 160, A: 255}, 3, 4, true)
	em.AddComponent(id, light)

	return id
}
