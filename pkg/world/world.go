// Package world 组装一个关卡的全部系统，并以固定顺序推进它们
package world

import (
	"log"
	"math/rand/v2"

	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/entities"
	"github.com/decker502/hollow/pkg/game"
	"github.com/decker502/hollow/pkg/systems"
	"github.com/decker502/hollow/pkg/types"
)

// maxFixedSteps 单帧最多执行的物理步数，帧时间过长时丢弃多余的累积时间
const maxFixedSteps = 8

// Options 创建关卡的参数
type Options struct {
	Player *config.PlayerConfig
	Level  *config.LevelConfig

	// Audio 音效输出，nil 时静音
	Audio systems.AudioSink

	// Rand 随机源，nil 时使用随机种子
	Rand *rand.Rand

	// OnPauseChanged 暂停状态变化回调（如暂停背景音乐）
	OnPauseChanged func(paused bool)

	// OnVictory 到达出口传送门时回调一次
	OnVictory func()
}

// World 一个关卡的运行时
//
// 每帧调用顺序：
//  1. 暂停键切换会话暂停（失败后无效）
//  2. 暂停时直接返回
//  3. 帧系统：移动、手电筒、交互
//  4. 固定步长的物理步
//  5. 僵尸追击与生成、接触判定
//  6. 定时任务、生命周期、延迟销毁
type World struct {
	em        *ecs.EntityManager
	player    *config.PlayerConfig
	level     *config.LevelConfig
	session   *game.Session
	scheduler *systems.TaskScheduler
	hud       *components.HUDComponent
	entities  entities.LevelEntities

	physics       *systems.PhysicsSystem
	locomotion    *systems.LocomotionSystem
	objective     *systems.ObjectiveSystem
	flashlight    *systems.FlashlightSystem
	interaction   *systems.InteractionSystem
	contact       *systems.ContactSystem
	chase         *systems.ZombieChaseSystem
	zombieSpawner *systems.ZombieSpawnerSystem
	lifetime      *systems.LifetimeSystem

	accumulator float64
	started     bool
	won         bool
	onVictory   func()
}

// New 创建关卡并生成初始实体（玩家、生成点、僵尸生成器、拾取物）
// 调用 Start 后目标与僵尸生成才开始运行
func New(opts Options) *World {
	if opts.Player == nil {
		opts.Player = config.DefaultPlayerConfig()
	}
	if opts.Level == nil {
		opts.Level = config.DefaultLevelConfig()
	}
	if opts.Audio == nil {
		opts.Audio = systems.NoAudio()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	w := &World{
		em:        ecs.NewEntityManager(),
		player:    opts.Player,
		level:     opts.Level,
		session:   game.NewSession(),
		scheduler: systems.NewTaskScheduler(),
		hud:       &components.HUDComponent{},
		onVictory: opts.OnVictory,
	}
	w.session.SetOnPauseChanged(opts.OnPauseChanged)

	w.entities = entities.PopulateLevel(w.em, w.level, w.player)

	w.physics = systems.NewPhysicsSystem(w.em, w.level)
	w.locomotion = systems.NewLocomotionSystem(w.em, w.player, systems.LocomotionDeps{
		Pause: w.session,
		Probe: w.physics,
		Mover: w.physics,
		Cues:  opts.Audio,
		HUD:   w.hud,
		Rand:  opts.Rand,
	})
	w.objective = systems.NewObjectiveSystem(w.em, w.level, w.hud, opts.Rand)
	w.flashlight = systems.NewFlashlightSystem(w.em, w.player, opts.Audio, w.hud, w.objective)
	w.objective.SetBatteryListener(w.flashlight)
	w.interaction = systems.NewInteractionSystem(w.em, w.player, opts.Audio, w.objective, w.scheduler, opts.Rand)
	w.contact = systems.NewContactSystem(w.em, w.level, w.locomotion, w.session)
	w.contact.SetOnVictory(w.victory)
	w.chase = systems.NewZombieChaseSystem(w.em, w.physics)
	w.zombieSpawner = systems.NewZombieSpawnerSystem(w.em, w.level.Zombie, opts.Rand)
	w.lifetime = systems.NewLifetimeSystem(w.em)

	return w
}

// Start 开始关卡：放置第一把钥匙、初始化电量显示、启动僵尸生成器
func (w *World) Start() {
	if w.started {
		return
	}
	w.started = true
	w.objective.Start()
	w.flashlight.Start()
	w.zombieSpawner.StartAll(w.level.ZombieSpawners, w.entities.ZombieSpawners)
	log.Printf("[World] Level %q started with %d spawners", w.level.Name, len(w.entities.Spawners))
}

// Update 推进一帧
func (w *World) Update(deltaTime float64, input types.InputSnapshot) {
	if input.PausePressed && !w.session.IsLost() && !w.won {
		w.session.Toggle()
	}
	if w.session.IsPaused() || w.won {
		return
	}

	w.hud.Tick(deltaTime)
	w.locomotion.Update(deltaTime, input)
	w.flashlight.Update(deltaTime, input)
	w.interaction.Update(input)

	w.stepPhysics(deltaTime)

	w.chase.Update(deltaTime)
	w.zombieSpawner.Update(deltaTime)
	w.contact.Update()

	w.scheduler.Update(deltaTime)
	w.lifetime.Update(deltaTime)
	w.em.RemoveMarkedEntities()
}

// stepPhysics 按固定步长消耗累积的帧时间
func (w *World) stepPhysics(deltaTime float64) {
	step := w.player.FixedTimestep
	w.accumulator += deltaTime
	for i := 0; w.accumulator >= step; i++ {
		if i == maxFixedSteps {
			w.accumulator = 0
			break
		}
		w.locomotion.FixedUpdate(step)
		w.accumulator -= step
	}
}

func (w *World) victory() {
	w.won = true
	if w.onVictory != nil {
		w.onVictory()
	}
}

// Won 是否已到达出口
func (w *World) Won() bool {
	return w.won
}

// Session 会话状态（暂停 / 失败）
func (w *World) Session() *game.Session {
	return w.session
}

// HUD 界面显示状态
func (w *World) HUD() *components.HUDComponent {
	return w.hud
}

// EntityManager 实体管理器（供前端绘制）
func (w *World) EntityManager() *ecs.EntityManager {
	return w.em
}

// Level 关卡配置
func (w *World) Level() *config.LevelConfig {
	return w.level
}

// Battery 手电筒当前电量
func (w *World) Battery() float64 {
	return w.flashlight.Battery()
}

// Objective 钥匙目标系统
func (w *World) Objective() *systems.ObjectiveSystem {
	return w.objective
}

// Physics 物理系统（地面高度查询）
func (w *World) Physics() *systems.PhysicsSystem {
	return w.physics
}

// Player 玩家实体
func (w *World) Player() ecs.EntityID {
	return w.entities.Player
}

// PlayerTransform 玩家位置与朝向
func (w *World) PlayerTransform() (*components.TransformComponent, bool) {
	return ecs.GetComponent[*components.TransformComponent](w.em, w.entities.Player)
}

// InteractTarget 当前可交互对象的提示文本
func (w *World) InteractTarget() (string, bool) {
	id, ok := w.interaction.Target()
	if !ok {
		return "", false
	}
	in, ok := ecs.GetComponent[*components.InteractableComponent](w.em, id)
	if !ok {
		return "", false
	}
	return in.Prompt, true
}
