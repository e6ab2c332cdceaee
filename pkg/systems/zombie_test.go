package systems

import (
	"math"
	"testing"

	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/entities"
	"github.com/decker502/hollow/pkg/types"
	"github.com/decker502/hollow/pkg/utils"
)

func TestZombieChasesPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	level := flatLevel(1)
	_, player, _ := newTestPlayer(t, em, config.DefaultPlayerConfig())
	player.Position = types.Vec3{X: 10}

	id := entities.NewZombieEntity(em, types.Vec3{}, level.Zombie)
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	sys := NewZombieChaseSystem(em, NewPhysicsSystem(em, level))

	start := tr.Position.Distance(player.Position)
	for range 60 {
		sys.Update(1.0 / 60)
	}

	if d := tr.Position.Distance(player.Position); d >= start {
		t.Errorf("distance: got %v, want < %v", d, start)
	}
	if math.Abs(utils.WrapAngle(tr.Yaw-math.Pi/2)) > 0.05 {
		t.Errorf("yaw: got %v, want ~π/2", tr.Yaw)
	}
	if tr.Position.Y != 0 {
		t.Errorf("y: got %v, want 0", tr.Position.Y)
	}
}

func TestZombieWaitsWithoutPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	level := flatLevel(1)
	id := entities.NewZombieEntity(em, types.Vec3{X: 3}, level.Zombie)
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	sys := NewZombieChaseSystem(em, nil)

	sys.Update(0.1)
	if tr.Position != (types.Vec3{X: 3}) {
		t.Errorf("position: got %+v, want unchanged", tr.Position)
	}

	// 玩家出现后恢复追击
	_, player, _ := newTestPlayer(t, em, config.DefaultPlayerConfig())
	player.Position = types.Vec3{X: 3, Z: 10}
	sys.Update(0.1)
	zombie, _ := ecs.GetComponent[*components.ZombieComponent](em, id)
	if !zombie.HasTarget || tr.Position.Z <= 0 {
		t.Errorf("after player appears: HasTarget=%v position=%+v", zombie.HasTarget, tr.Position)
	}
}

func zombieCount(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.ZombieComponent](em))
}

func TestZombieSpawnerLifecycle(t *testing.T) {
	em := ecs.NewEntityManager()
	level := flatLevel(1)
	zs := config.ZombieSpawnerConfig{
		Position: types.Vec3{X: 20, Y: 1, Z: 20}, Radius: 3, Interval: 5, MaxCount: 3,
	}
	spawner := entities.NewZombieSpawnerEntity(em, zs)
	sys := NewZombieSpawnerSystem(em, level.Zombie, testRand())

	sys.Update(100)
	if zombieCount(em) != 0 {
		t.Errorf("inactive spawner: got %d zombies, want 0", zombieCount(em))
	}

	sys.Start(spawner)
	if zombieCount(em) != 1 {
		t.Errorf("after Start: got %d zombies, want 1", zombieCount(em))
	}
	sys.Update(4.9)
	if zombieCount(em) != 1 {
		t.Errorf("before interval: got %d zombies, want 1", zombieCount(em))
	}
	sys.Update(0.2)
	if zombieCount(em) != 2 {
		t.Errorf("after interval: got %d zombies, want 2", zombieCount(em))
	}
	for range 10 {
		sys.Update(5)
	}
	if zombieCount(em) != 3 {
		t.Errorf("at max: got %d zombies, want 3", zombieCount(em))
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ZombieComponent](em) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		if tr.Position.Y != zs.Position.Y {
			t.Errorf("zombie y: got %v, want %v", tr.Position.Y, zs.Position.Y)
		}
		if tr.Position.Horizontal().Distance(zs.Position.Horizontal()) > zs.Radius {
			t.Errorf("zombie at %+v outside radius %v", tr.Position, zs.Radius)
		}
	}

	sys.Reset(spawner)
	sys.Update(10)
	if zombieCount(em) != 3 {
		t.Errorf("after Reset: got %d zombies, want 3", zombieCount(em))
	}
	sys.Start(spawner)
	if zombieCount(em) != 4 {
		t.Errorf("restart after Reset: got %d zombies, want 4", zombieCount(em))
	}

	sys.Stop(spawner)
	sys.Update(50)
	if zombieCount(em) != 4 {
		t.Errorf("after Stop: got %d zombies, want 4", zombieCount(em))
	}
}

func TestZombieSpawnerStartAll(t *testing.T) {
	em := ecs.NewEntityManager()
	level := flatLevel(1)
	cfgs := []config.ZombieSpawnerConfig{
		{Interval: 5, MaxCount: 2, SpawnOnStart: true},
		{Interval: 5, MaxCount: 2},
	}
	var ids []ecs.EntityID
	for _, zs := range cfgs {
		ids = append(ids, entities.NewZombieSpawnerEntity(em, zs))
	}

	sys := NewZombieSpawnerSystem(em, level.Zombie, testRand())
	sys.StartAll(cfgs, ids)
	if zombieCount(em) != 1 {
		t.Errorf("zombies: got %d, want 1", zombieCount(em))
	}
}

func TestInsideUnitSphere(t *testing.T) {
	rng := testRand()
	for range 1000 {
		if p := insideUnitSphere(rng); p.Len() > 1 {
			t.Fatalf("point %+v outside unit sphere", p)
		}
	}
}
