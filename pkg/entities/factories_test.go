package entities

import (
	"testing"

	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/types"
)

func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultPlayerConfig()

	id := NewPlayerEntity(em, types.Vec3{X: 1, Z: 2}, 0.5, cfg)

	tr, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		t.Fatal("player has no TransformComponent")
	}
	if tr.Position.X != 1 || tr.Position.Z != 2 || tr.Yaw != 0.5 {
		t.Errorf("transform: got %+v", tr)
	}

	loco, ok := ecs.GetComponent[*components.LocomotionComponent](em, id)
	if !ok {
		t.Fatal("player has no LocomotionComponent")
	}
	if loco.Stamina != cfg.Stamina.Max || loco.MaxStamina != cfg.Stamina.Max {
		t.Errorf("stamina: got %v/%v, want %v", loco.Stamina, loco.MaxStamina, cfg.Stamina.Max)
	}
	if !loco.IsWalking || !loco.IsGrounded || !loco.PreviouslyGrounded {
		t.Errorf("initial locomotion flags: got %+v", loco)
	}
	if loco.NextStep != 0 {
		t.Errorf("NextStep: got %v, want 0", loco.NextStep)
	}

	fl, ok := ecs.GetComponent[*components.FlashlightComponent](em, id)
	if !ok {
		t.Fatal("player has no FlashlightComponent")
	}
	if fl.On || fl.Battery != cfg.Flashlight.MaxBattery || fl.DrainInterval != cfg.Flashlight.BaseDrainInterval {
		t.Errorf("flashlight: got %+v", fl)
	}

	light, _ := ecs.GetComponent[*components.LightComponent](em, id)
	if light.Enabled || light.Intensity != 0 {
		t.Errorf("flashlight light should start off, got %+v", light)
	}
}

func TestNewSpawnerEntityCopiesAnchor(t *testing.T) {
	em := ecs.NewEntityManager()
	anchor := types.Vec3{X: 3, Y: 1, Z: 4}
	sc := config.SpawnerConfig{Name: "lobby", Anchor: &anchor}

	id := NewSpawnerEntity(em, 2, sc)
	anchor.X = 99

	sp, ok := ecs.GetComponent[*components.SpawnerComponent](em, id)
	if !ok {
		t.Fatal("spawner has no SpawnerComponent")
	}
	if sp.Index != 2 || sp.Name != "lobby" {
		t.Errorf("spawner: got %+v", sp)
	}
	if sp.Anchor == nil || sp.Anchor.X != 3 {
		t.Errorf("anchor should be copied, got %+v", sp.Anchor)
	}

	light, _ := ecs.GetComponent[*components.LightComponent](em, id)
	if light.Enabled {
		t.Error("spawner light should start disabled")
	}
}

func TestPopulateLevel(t *testing.T) {
	em := ecs.NewEntityManager()
	level := config.DefaultLevelConfig()
	level.Spawners = []config.SpawnerConfig{{Name: "a"}, {Name: "b"}}
	level.ZombieSpawners = []config.ZombieSpawnerConfig{{Interval: 5, MaxCount: 2, Radius: 1}}
	level.Batteries = []types.Vec3{{X: 1}}
	level.Props = []config.PropConfig{{Name: "shotgun", Clips: []string{"A", "B"}}}

	out := PopulateLevel(em, level, config.DefaultPlayerConfig())

	if len(out.Spawners) != 2 || len(out.ZombieSpawners) != 1 || len(out.Batteries) != 1 || len(out.Props) != 1 {
		t.Errorf("populated: got %+v", out)
	}

	timer, ok := ecs.GetComponent[*components.TimerComponent](em, out.ZombieSpawners[0])
	if !ok || timer.TargetTime != 5 || timer.Name != ZombieSpawnTimerName {
		t.Errorf("zombie spawner timer: got %+v", timer)
	}

	prop, _ := ecs.GetComponent[*components.InspectableComponent](em, out.Props[0])
	if len(prop.Clips) != 2 {
		t.Errorf("prop clips: got %v", prop.Clips)
	}
	if !ecs.HasComponent[*components.InteractableComponent](em, out.Batteries[0]) {
		t.Error("battery should be interactable")
	}

	if got := len(ecs.GetEntitiesWith1[*components.PlayerComponent](em)); got != 1 {
		t.Errorf("players: got %d, want 1", got)
	}
}
