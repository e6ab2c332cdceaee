package systems

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/types"
)

// interactFacingCos 可交互对象须位于玩家正前方 60° 以内
var interactFacingCos = math.Cos(60 * math.Pi / 180)

// ItemCollector 钥匙收集通知（ObjectiveSystem 实现此接口）
type ItemCollector interface {
	OnItemCollected()
}

// InteractionSystem 玩家交互（拾取钥匙、电池，检视道具）
type InteractionSystem struct {
	em        *ecs.EntityManager
	cfg       *config.PlayerConfig
	audio     AudioSink
	collector ItemCollector
	scheduler *TaskScheduler
	rng       *rand.Rand
}

// NewInteractionSystem 创建交互系统
func NewInteractionSystem(em *ecs.EntityManager, cfg *config.PlayerConfig, audio AudioSink, collector ItemCollector, scheduler *TaskScheduler, rng *rand.Rand) *InteractionSystem {
	if audio == nil {
		audio = NoAudio()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &InteractionSystem{
		em:        em,
		cfg:       cfg,
		audio:     audio,
		collector: collector,
		scheduler: scheduler,
		rng:       rng,
	}
}

// Update 交互键按下时与最近的可交互对象交互
func (s *InteractionSystem) Update(input types.InputSnapshot) {
	if !input.InteractPressed {
		return
	}
	target, ok := s.Target()
	if !ok {
		return
	}
	s.Interact(target)
}

// Target 返回玩家可及范围内、正前方最近的可交互对象
func (s *InteractionSystem) Target() (ecs.EntityID, bool) {
	playerID, ok := findPlayer(s.em)
	if !ok {
		return ecs.InvalidEntity, false
	}
	player, _ := ecs.GetComponent[*components.TransformComponent](s.em, playerID)
	forward := types.Forward(player.Yaw)

	best := ecs.InvalidEntity
	bestDist := math.Inf(1)
	for _, id := range ecs.GetEntitiesWith2[*components.InteractableComponent, *components.TransformComponent](s.em) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.em, id)
		dist := tr.Position.Distance(player.Position)
		if dist > s.cfg.InteractReach || dist >= bestDist {
			continue
		}
		dir := tr.Position.Sub(player.Position).Horizontal()
		if dir.LenSq() > 1e-6 && dir.Normalize().Dot(forward) < interactFacingCos {
			continue
		}
		best, bestDist = id, dist
	}
	return best, best != ecs.InvalidEntity
}

// Interact 与指定对象交互
func (s *InteractionSystem) Interact(id ecs.EntityID) {
	if key, ok := ecs.GetComponent[*components.KeyComponent](s.em, id); ok {
		s.collectKey(key)
		return
	}
	if battery, ok := ecs.GetComponent[*components.BatteryPickupComponent](s.em, id); ok {
		s.collectBattery(id, battery)
		return
	}
	if prop, ok := ecs.GetComponent[*components.InspectableComponent](s.em, id); ok {
		s.inspect(id, prop)
	}
}

func (s *InteractionSystem) collectKey(key *components.KeyComponent) {
	if key.Collected {
		return
	}
	key.Collected = true
	s.audio.PlayCue(s.cfg.Cues.KeyPickup)
	if s.collector != nil {
		s.collector.OnItemCollected()
	}
}

// collectBattery 播放拾取音效，音效结束后销毁电池
func (s *InteractionSystem) collectBattery(id ecs.EntityID, battery *components.BatteryPickupComponent) {
	if battery.Collected {
		return
	}
	battery.Collected = true
	s.audio.PlayCue(s.cfg.Cues.BatteryPickup)

	ecs.RemoveComponent[*components.InteractableComponent](s.em, id)
	s.em.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime: s.audio.CueDuration(s.cfg.Cues.BatteryPickup),
	})
}

// inspect 随机播放一段音频，播放结束前不响应再次检视
func (s *InteractionSystem) inspect(id ecs.EntityID, prop *components.InspectableComponent) {
	if prop.Playing || len(prop.Clips) == 0 {
		return
	}

	clip := prop.Clips[s.rng.IntN(len(prop.Clips))]
	slot := fmt.Sprintf("inspect:%d", id)
	if s.scheduler != nil && !s.scheduler.Schedule(slot, s.audio.CueDuration(clip), func() {
		prop.Playing = false
	}) {
		return
	}

	prop.Playing = s.scheduler != nil
	s.audio.PlayCue(clip)
	log.Printf("[InteractionSystem] Inspecting %s: %s", prop.Name, clip)
}
