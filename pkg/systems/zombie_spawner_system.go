package systems

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/entities"
	"github.com/decker502/hollow/pkg/types"
)

// ZombieSpawnerSystem 周期性生成僵尸
//
// 生成器激活时立即生成一只，之后每经过 Interval 秒再生成一只，
// 直到累计数量达到 MaxCount。生成位置为生成器位置加上半径内的随机偏移（保持原高度）。
type ZombieSpawnerSystem struct {
	em     *ecs.EntityManager
	zombie config.ZombieConfig
	rng    *rand.Rand
}

// NewZombieSpawnerSystem 创建僵尸生成系统
func NewZombieSpawnerSystem(em *ecs.EntityManager, zombie config.ZombieConfig, rng *rand.Rand) *ZombieSpawnerSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ZombieSpawnerSystem{em: em, zombie: zombie, rng: rng}
}

// StartAll 激活所有配置了 SpawnOnStart 的生成器
func (s *ZombieSpawnerSystem) StartAll(cfgs []config.ZombieSpawnerConfig, ids []ecs.EntityID) {
	for i, id := range ids {
		if i < len(cfgs) && cfgs[i].SpawnOnStart {
			s.Start(id)
		}
	}
}

// Start 激活生成器并立即生成一只（未达上限时）
func (s *ZombieSpawnerSystem) Start(id ecs.EntityID) {
	spawner, ok := ecs.GetComponent[*components.ZombieSpawnerComponent](s.em, id)
	if !ok || spawner.Active {
		return
	}
	spawner.Active = true
	if timer, ok := ecs.GetComponent[*components.TimerComponent](s.em, id); ok {
		timer.CurrentTime = 0
		timer.IsReady = false
	}
	s.spawn(spawner)
}

// Stop 停止生成（已生成的僵尸保留）
func (s *ZombieSpawnerSystem) Stop(id ecs.EntityID) {
	if spawner, ok := ecs.GetComponent[*components.ZombieSpawnerComponent](s.em, id); ok {
		spawner.Active = false
	}
}

// Reset 停止并清零计数，之后可再次 Start
func (s *ZombieSpawnerSystem) Reset(id ecs.EntityID) {
	spawner, ok := ecs.GetComponent[*components.ZombieSpawnerComponent](s.em, id)
	if !ok {
		return
	}
	spawner.Active = false
	spawner.SpawnCount = 0
	if timer, ok := ecs.GetComponent[*components.TimerComponent](s.em, id); ok {
		timer.CurrentTime = 0
		timer.IsReady = false
	}
}

// Update 推进所有激活的生成器
func (s *ZombieSpawnerSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ZombieSpawnerComponent, *components.TimerComponent](s.em) {
		spawner, _ := ecs.GetComponent[*components.ZombieSpawnerComponent](s.em, id)
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.em, id)
		if !spawner.Active || spawner.SpawnCount >= spawner.MaxCount {
			continue
		}
		if timer.Advance(deltaTime) {
			s.spawn(spawner)
		}
	}
}

func (s *ZombieSpawnerSystem) spawn(spawner *components.ZombieSpawnerComponent) {
	if spawner.SpawnCount >= spawner.MaxCount {
		return
	}
	offset := insideUnitSphere(s.rng).Scale(spawner.Radius)
	pos := types.Vec3{
		X: spawner.Origin.X + offset.X,
		Y: spawner.Origin.Y,
		Z: spawner.Origin.Z + offset.Z,
	}
	entities.NewZombieEntity(s.em, pos, s.zombie)
	spawner.SpawnCount++
	log.Printf("[ZombieSpawnerSystem] Spawned zombie %d/%d at (%.1f, %.1f, %.1f)",
		spawner.SpawnCount, spawner.MaxCount, pos.X, pos.Y, pos.Z)
}

// insideUnitSphere 单位球内均匀分布的随机点
func insideUnitSphere(rng *rand.Rand) types.Vec3 {
	// 球面方向 × 半径立方根
	z := rng.Float64()*2 - 1
	theta := rng.Float64() * 2 * math.Pi
	r := math.Sqrt(1 - z*z)
	dir := types.Vec3{X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: z}
	return dir.Scale(math.Cbrt(rng.Float64()))
}
