package systems

import (
	"fmt"
	"log"
	"math/rand/v2"
	"slices"

	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/entities"
	"github.com/zyedidia/generic/mapset"
)

// ObjectiveState 目标进度状态
type ObjectiveState int

const (
	ObjectiveIdle         ObjectiveState = iota // 尚未开始
	ObjectiveSpawningNext                       // 等待玩家收集当前钥匙
	ObjectiveAllCollected                       // 全部收集，不再生成钥匙
)

func (s ObjectiveState) String() string {
	switch s {
	case ObjectiveIdle:
		return "Idle"
	case ObjectiveSpawningNext:
		return "SpawningNext"
	case ObjectiveAllCollected:
		return "AllCollected"
	default:
		return fmt.Sprintf("ObjectiveState(%d)", int(s))
	}
}

// ObjectiveSystem 钥匙收集目标
//
// 从未访问的生成点中随机选一个激活并放置钥匙；收集后该生成点灯光永久变暗，
// 继续下一个，直到收集满 TotalKeys 后生成一次出口传送门。
//
// 候选生成点在 Start 时洗牌成池，每次从池尾弹出，同一生成点不会被选中两次。
// 不变量：KeysCollected() == VisitedCount()（缺少锚点的生成点除外，见 spawnNext）。
type ObjectiveSystem struct {
	em      *ecs.EntityManager
	level   *config.LevelConfig
	hud     *components.HUDComponent
	rng     *rand.Rand
	battery BatteryListener

	state          ObjectiveState
	keysCollected  int
	pool           []int // 尚未访问的生成点索引
	visited        mapset.Set[int]
	spawners       map[int]ecs.EntityID
	currentSpawner int // -1 表示无
	currentKey     ecs.EntityID
	portal         ecs.EntityID
	portalSpawned  bool
}

// NewObjectiveSystem 创建目标系统
//
// 参数:
//   - em: 实体管理器（生成点实体须已创建）
//   - level: 关卡配置
//   - hud: 钥匙计数显示
//   - rng: 随机源，测试中使用固定种子
func NewObjectiveSystem(em *ecs.EntityManager, level *config.LevelConfig, hud *components.HUDComponent, rng *rand.Rand) *ObjectiveSystem {
	if hud == nil {
		hud = &components.HUDComponent{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ObjectiveSystem{
		em:             em,
		level:          level,
		hud:            hud,
		rng:            rng,
		visited:        mapset.New[int](),
		spawners:       make(map[int]ecs.EntityID),
		currentSpawner: -1,
		currentKey:     ecs.InvalidEntity,
		portal:         ecs.InvalidEntity,
	}
}

// SetBatteryListener 设置钥匙收集后的耗电间隔通知对象
func (s *ObjectiveSystem) SetBatteryListener(l BatteryListener) {
	s.battery = l
}

// Start Idle → SpawningNext：建立生成点池并放置第一把钥匙
func (s *ObjectiveSystem) Start() {
	if s.state != ObjectiveIdle {
		log.Printf("[ObjectiveSystem] Warning: Start called in state %s, ignored", s.state)
		return
	}

	for _, id := range ecs.GetEntitiesWith1[*components.SpawnerComponent](s.em) {
		sp, _ := ecs.GetComponent[*components.SpawnerComponent](s.em, id)
		s.spawners[sp.Index] = id
	}

	s.pool = make([]int, 0, len(s.spawners))
	for idx := range s.spawners {
		s.pool = append(s.pool, idx)
	}
	// map 遍历顺序不确定，先排序再洗牌，保证同一种子结果可复现
	slices.Sort(s.pool)
	s.rng.Shuffle(len(s.pool), func(i, j int) {
		s.pool[i], s.pool[j] = s.pool[j], s.pool[i]
	})

	if len(s.pool) < s.level.TotalKeys {
		log.Printf("[ObjectiveSystem] Warning: %d spawners for %d keys", len(s.pool), s.level.TotalKeys)
	}

	s.updateKeyText()
	s.state = ObjectiveSpawningNext
	s.spawnNext()
}

// OnItemCollected 当前钥匙被收集
func (s *ObjectiveSystem) OnItemCollected() {
	if s.state != ObjectiveSpawningNext || s.keysCollected >= s.level.TotalKeys {
		log.Printf("[ObjectiveSystem] Error: item collected in state %s with %d/%d keys, ignored",
			s.state, s.keysCollected, s.level.TotalKeys)
		return
	}

	s.keysCollected++
	s.updateKeyText()

	if s.currentSpawner != -1 {
		s.setSpawnerLight(s.currentSpawner, s.level.SpawnerLights.Visited)
	}

	if s.currentKey != ecs.InvalidEntity {
		s.em.DestroyEntity(s.currentKey)
		s.currentKey = ecs.InvalidEntity
	}

	if s.battery != nil {
		s.battery.RecomputeDrainInterval()
	}

	if s.keysCollected < s.level.TotalKeys {
		s.spawnNext()
		return
	}

	s.state = ObjectiveAllCollected
	log.Printf("[ObjectiveSystem] All %d keys collected", s.keysCollected)
	if !s.portalSpawned {
		s.spawnPortal()
	}
}

// spawnNext 弹出下一个生成点，激活灯光并放置钥匙
func (s *ObjectiveSystem) spawnNext() {
	if len(s.pool) == 0 {
		log.Printf("[ObjectiveSystem] Error: spawner pool exhausted with %d/%d keys", s.keysCollected, s.level.TotalKeys)
		s.currentSpawner = -1
		return
	}

	idx := s.pool[len(s.pool)-1]
	s.pool = s.pool[:len(s.pool)-1]
	s.visited.Put(idx)
	s.currentSpawner = idx

	s.setSpawnerLight(idx, s.level.SpawnerLights.Active)

	sp, ok := ecs.GetComponent[*components.SpawnerComponent](s.em, s.spawners[idx])
	if !ok {
		log.Printf("[ObjectiveSystem] Error: spawner %d has no SpawnerComponent", idx)
		return
	}
	sp.Visited = true
	if sp.Anchor == nil {
		log.Printf("[ObjectiveSystem] Warning: spawner %d (%s) is missing an anchor, no key placed", idx, sp.Name)
		return
	}

	s.currentKey = entities.NewKeyEntity(s.em, *sp.Anchor, idx)
	log.Printf("[ObjectiveSystem] Key %d/%d placed at spawner %d (%s)",
		s.keysCollected+1, s.level.TotalKeys, idx, sp.Name)
}

// spawnPortal 在随机候选位置生成出口传送门
func (s *ObjectiveSystem) spawnPortal() {
	positions := s.level.PortalPositions
	if len(positions) == 0 {
		log.Printf("[ObjectiveSystem] Error: no portal positions assigned")
		return
	}

	i := s.rng.IntN(len(positions))
	s.portal = entities.NewPortalEntity(s.em, positions[i], i)
	s.portalSpawned = true
	log.Printf("[ObjectiveSystem] Exit portal spawned at %+v", positions[i])
}

func (s *ObjectiveSystem) setSpawnerLight(idx int, lc config.LightConfig) {
	light, ok := ecs.GetComponent[*components.LightComponent](s.em, s.spawners[idx])
	if !ok {
		log.Printf("[ObjectiveSystem] Error: light not found in spawner %d", idx)
		return
	}
	light.Set(lc.Color.RGBA(), lc.Intensity, lc.Range, true)
}

func (s *ObjectiveSystem) updateKeyText() {
	s.hud.SetKeyText(fmt.Sprintf("%d/%d", s.keysCollected, s.level.TotalKeys))
}

// KeysCollected 已收集钥匙数（KeyCounter）
func (s *ObjectiveSystem) KeysCollected() int {
	return s.keysCollected
}

// TotalKeys 通关所需钥匙数
func (s *ObjectiveSystem) TotalKeys() int {
	return s.level.TotalKeys
}

// State 当前状态
func (s *ObjectiveSystem) State() ObjectiveState {
	return s.state
}

// PortalSpawned 传送门是否已生成
func (s *ObjectiveSystem) PortalSpawned() bool {
	return s.portalSpawned
}

// Portal 传送门实体（未生成时为 InvalidEntity）
func (s *ObjectiveSystem) Portal() ecs.EntityID {
	return s.portal
}

// VisitedCount 已访问生成点数
func (s *ObjectiveSystem) VisitedCount() int {
	return s.visited.Size()
}

// Visited 生成点是否已访问
func (s *ObjectiveSystem) Visited(idx int) bool {
	return s.visited.Has(idx)
}

// CurrentSpawner 当前激活的生成点索引
func (s *ObjectiveSystem) CurrentSpawner() (int, bool) {
	return s.currentSpawner, s.currentSpawner != -1
}

// CurrentKey 当前钥匙实体（无钥匙时为 InvalidEntity）
func (s *ObjectiveSystem) CurrentKey() ecs.EntityID {
	return s.currentKey
}
