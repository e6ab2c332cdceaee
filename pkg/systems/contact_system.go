package systems

import (
	"log"

	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
)

// ContactSystem 玩家与僵尸、出口传送门的接触判定
//
// 僵尸接触：扣除体力并进入失败状态。
// 传送门接触：触发一次通关回调。
type ContactSystem struct {
	em        *ecs.EntityManager
	level     *config.LevelConfig
	hit       EnemyHitReceiver
	loss      LossSink
	onVictory func()
	won       bool
}

// NewContactSystem 创建接触判定系统
func NewContactSystem(em *ecs.EntityManager, level *config.LevelConfig, hit EnemyHitReceiver, loss LossSink) *ContactSystem {
	return &ContactSystem{em: em, level: level, hit: hit, loss: loss}
}

// SetOnVictory 设置通关回调
func (s *ContactSystem) SetOnVictory(fn func()) {
	s.onVictory = fn
}

// Won 是否已通关
func (s *ContactSystem) Won() bool {
	return s.won
}

// Update 每帧检测接触
func (s *ContactSystem) Update() {
	playerID, ok := findPlayer(s.em)
	if !ok {
		return
	}
	player, _ := ecs.GetComponent[*components.TransformComponent](s.em, playerID)

	for _, id := range ecs.GetEntitiesWith2[*components.ZombieComponent, *components.TransformComponent](s.em) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.em, id)
		if tr.Position.Distance(player.Position) <= s.level.EnemyContactRadius {
			s.enemyContact()
			return
		}
	}

	if s.won {
		return
	}
	for _, id := range ecs.GetEntitiesWith2[*components.PortalComponent, *components.TransformComponent](s.em) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.em, id)
		if tr.Position.Distance(player.Position) <= s.level.PortalContactRadius {
			s.won = true
			log.Printf("[ContactSystem] Player reached the portal")
			if s.onVictory != nil {
				s.onVictory()
			}
			return
		}
	}
}

func (s *ContactSystem) enemyContact() {
	log.Printf("[ContactSystem] Player caught by zombie")
	if s.hit != nil {
		s.hit.ApplyEnemyHit()
	}
	if s.loss != nil {
		s.loss.GameOver()
	}
}
