package systems

import (
	"log"
	"math"

	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/types"
	"github.com/decker502/hollow/pkg/utils"
)

// zombieStickForce 僵尸贴地速度
const zombieStickForce = 10.0

// ZombieChaseSystem 僵尸转向并追击玩家
//
// 每帧重新查找玩家；找不到时原地等待，找到后恢复追击。
type ZombieChaseSystem struct {
	em    *ecs.EntityManager
	mover CharacterMover
}

// NewZombieChaseSystem 创建追击系统
func NewZombieChaseSystem(em *ecs.EntityManager, mover CharacterMover) *ZombieChaseSystem {
	return &ZombieChaseSystem{em: em, mover: mover}
}

// Update 每帧更新所有僵尸
func (s *ZombieChaseSystem) Update(deltaTime float64) {
	playerID, found := findPlayer(s.em)
	var target types.Vec3
	if found {
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.em, playerID)
		target = tr.Position
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ZombieComponent, *components.TransformComponent](s.em) {
		zombie, _ := ecs.GetComponent[*components.ZombieComponent](s.em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.em, id)

		if !found {
			if zombie.HasTarget {
				log.Printf("[ZombieChaseSystem] Zombie %d lost the player", id)
			}
			zombie.HasTarget = false
			continue
		}
		zombie.HasTarget = true
		s.chase(id, zombie, tr, target, deltaTime)
	}
}

// chase 朝目标平滑转向，再沿当前朝向前进
func (s *ZombieChaseSystem) chase(id ecs.EntityID, zombie *components.ZombieComponent, tr *components.TransformComponent, target types.Vec3, deltaTime float64) {
	dir := target.Sub(tr.Position).Horizontal()
	if dir.LenSq() < 1e-9 {
		return
	}
	desired := math.Atan2(dir.X, dir.Z)
	tr.Yaw = utils.LerpAngle(tr.Yaw, desired, deltaTime*zombie.RotationSpeed)

	delta := types.Forward(tr.Yaw).Scale(zombie.MoveSpeed * deltaTime)
	delta.Y = -zombieStickForce * deltaTime
	if s.mover != nil {
		s.mover.Move(id, delta)
	} else {
		tr.Position = tr.Position.Add(delta.Horizontal())
	}
}
