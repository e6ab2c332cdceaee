package systems

import (
	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/types"
	"github.com/decker502/hollow/pkg/utils"
)

const (
	// defaultStepOffset 无需跳跃即可走上的台阶高度
	defaultStepOffset = 0.3
	// groundEpsilon 着地判定容差
	groundEpsilon = 1e-3
)

// PhysicsSystem 角色移动与地面探测
//
// 关卡被简化为高度场：平台覆盖范围内的地面高度为平台顶面高度（重叠时取最高），
// 其余位置高度为 0。高于当前脚底 stepOffset 的平台视为墙，阻挡水平移动。
type PhysicsSystem struct {
	em         *ecs.EntityManager
	level      *config.LevelConfig
	stepOffset float64
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器，Move 通过它读写 TransformComponent
//   - level: 关卡配置（平台与边界）
func NewPhysicsSystem(em *ecs.EntityManager, level *config.LevelConfig) *PhysicsSystem {
	return &PhysicsSystem{
		em:         em,
		level:      level,
		stepOffset: defaultStepOffset,
	}
}

// GroundHeight 返回 (x, z) 处的地面高度
func (ps *PhysicsSystem) GroundHeight(x, z float64) float64 {
	height := 0.0
	for _, p := range ps.level.Platforms {
		if x >= p.MinX && x <= p.MaxX && z >= p.MinZ && z <= p.MaxZ && p.Height > height {
			height = p.Height
		}
	}
	return height
}

// Probe 实现 GroundProbe：脚底不高于地面即为着地，高度场地面法线恒为竖直向上
func (ps *PhysicsSystem) Probe(pos types.Vec3) (bool, types.Vec3) {
	return pos.Y <= ps.GroundHeight(pos.X, pos.Z)+groundEpsilon, types.Up
}

// Move 实现 CharacterMover：按 delta 移动实体并处理碰撞
//
// 水平方向先限制在关卡边界内；目标位置被墙阻挡时尝试沿单轴滑动。
// 竖直方向落到地面以下时贴地。返回移动后是否着地。
func (ps *PhysicsSystem) Move(id ecs.EntityID, delta types.Vec3) bool {
	transform, ok := ecs.GetComponent[*components.TransformComponent](ps.em, id)
	if !ok {
		return false
	}

	pos := transform.Position
	b := ps.level.Bounds
	nx := utils.Clamp(pos.X+delta.X, b.MinX, b.MaxX)
	nz := utils.Clamp(pos.Z+delta.Z, b.MinZ, b.MaxZ)

	switch {
	case ps.canEnter(pos, nx, nz):
	case ps.canEnter(pos, nx, pos.Z):
		nz = pos.Z
	case ps.canEnter(pos, pos.X, nz):
		nx = pos.X
	default:
		nx, nz = pos.X, pos.Z
	}

	ny := pos.Y + delta.Y
	floor := ps.GroundHeight(nx, nz)
	if ny < floor {
		ny = floor
	}

	transform.Position = types.Vec3{X: nx, Y: ny, Z: nz}
	return ny <= floor+groundEpsilon
}

// canEnter 从 pos 出发能否进入 (x, z)
func (ps *PhysicsSystem) canEnter(pos types.Vec3, x, z float64) bool {
	return ps.GroundHeight(x, z) <= pos.Y+ps.stepOffset
}
