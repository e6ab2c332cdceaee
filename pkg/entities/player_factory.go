package entities

import (
	"image/color"

	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/types"
)

// 手电筒光照参数
const (
	FlashlightIntensity = 1.5
	FlashlightRange     = 12.0
)

// PlayerName 玩家实体名称
const PlayerName = "Player"

// NewPlayerEntity 创建玩家实体
//
// 参数:
//   - em: EntityManager 实例
//   - spawn: 出生点（脚底位置）
//   - yaw: 初始朝向（弧度）
//   - cfg: 玩家配置
//
// 返回: 创建的实体ID
func NewPlayerEntity(em *ecs.EntityManager, spawn types.Vec3, yaw float64, cfg *config.PlayerConfig) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.TransformComponent{
		Position: spawn,
		Yaw:      yaw,
	})

	em.AddComponent(id, &components.PlayerComponent{Name: PlayerName})

	// 出生时视为已着地，避免第一帧触发落地音效
	em.AddComponent(id, &components.LocomotionComponent{
		IsWalking:          true,
		IsGrounded:         true,
		PreviouslyGrounded: true,
		Stamina:            cfg.Stamina.Max,
		MaxStamina:         cfg.Stamina.Max,
	})

	em.AddComponent(id, &components.CameraComponent{
		FOV: cfg.FOVKick.BaseFOV,
	})

	em.AddComponent(id, &components.FlashlightComponent{
		Battery:       cfg.Flashlight.MaxBattery,
		MaxBattery:    cfg.Flashlight.MaxBattery,
		DrainInterval: cfg.Flashlight.BaseDrainInterval,
	})

	// 手电筒初始关闭
	light := &components.LightComponent{}
	light.Set(color.RGBA{R: 255, G: 244, B: 214, A: 255}, FlashlightIntensity, FlashlightRange, false)
	em.AddComponent(id, light)

	return id
}
