package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/entities"
	"github.com/decker502/hollow/pkg/types"
)

// recordingAudio 记录播放请求的 AudioSink
type recordingAudio struct {
	played    []string
	durations map[string]float64
}

func newRecordingAudio() *recordingAudio {
	return &recordingAudio{durations: make(map[string]float64)}
}

func (a *recordingAudio) PlayCue(id string) bool {
	a.played = append(a.played, id)
	return true
}

func (a *recordingAudio) CueDuration(id string) float64 {
	return a.durations[id]
}

func (a *recordingAudio) count(id string) int {
	n := 0
	for _, p := range a.played {
		if p == id {
			n++
		}
	}
	return n
}

// fakePause 可控的暂停状态
type fakePause struct{ paused bool }

func (p *fakePause) IsPaused() bool { return p.paused }

// fakeLoss 记录 GameOver 调用
type fakeLoss struct{ calls int }

func (l *fakeLoss) GameOver() { l.calls++ }

// fixedKeys 固定的钥匙数
type fixedKeys int

func (k fixedKeys) KeysCollected() int { return int(k) }

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// flatLevel 无平台的测试关卡
func flatLevel(spawners int) *config.LevelConfig {
	level := config.DefaultLevelConfig()
	for i := range spawners {
		anchor := types.Vec3{X: float64(i) * 3, Y: 1, Z: 5}
		level.Spawners = append(level.Spawners, config.SpawnerConfig{
			Name:     "spawner",
			Position: anchor,
			Anchor:   &anchor,
		})
	}
	level.PortalPositions = []types.Vec3{{X: 10, Z: 10}, {X: -10, Z: 10}}
	return level
}

// newTestPlayer 在原点创建玩家，返回实体与其组件
func newTestPlayer(t *testing.T, em *ecs.EntityManager, cfg *config.PlayerConfig) (ecs.EntityID, *components.TransformComponent, *components.LocomotionComponent) {
	t.Helper()
	id := entities.NewPlayerEntity(em, types.Vec3{}, 0, cfg)
	tr, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		t.Fatal("player has no TransformComponent")
	}
	loco, ok := ecs.GetComponent[*components.LocomotionComponent](em, id)
	if !ok {
		t.Fatal("player has no LocomotionComponent")
	}
	return id, tr, loco
}
