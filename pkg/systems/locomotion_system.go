package systems

import (
	"log"
	"math/rand/v2"

	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/types"
)

// LocomotionSystem 玩家移动与体力控制
//
// 两个入口：
//   - Update(dt, input): 每帧一次。视角、跳跃锁存、落地与坠落伤害、坠落开始、体力与体力条。
//   - FixedUpdate(dt): 每个物理步一次。速度选择与惩罚、移动向量、跳跃与重力、
//     移动、脚步节奏、镜头晃动、喘息音效。
//
// 会话暂停时两者都直接返回。
type LocomotionSystem struct {
	em     *ecs.EntityManager
	cfg    *config.PlayerConfig
	pause  PauseState
	probe  GroundProbe
	mover  CharacterMover
	cues   CueSink
	hud    *components.HUDComponent
	steps  *FootstepPicker
	bob    *HeadBob
	jump   *JumpBob
	fov    *FOVKick
	input  types.InputSnapshot
	clock  float64 // 物理时间（秒），暂停时不前进
	missed bool    // 上一次查找玩家失败（只记录一次日志）
}

// LocomotionDeps 移动系统依赖
type LocomotionDeps struct {
	Pause PauseState
	Probe GroundProbe
	Mover CharacterMover
	Cues  CueSink
	HUD   *components.HUDComponent
	Rand  *rand.Rand
}

// NewLocomotionSystem 创建移动系统
func NewLocomotionSystem(em *ecs.EntityManager, cfg *config.PlayerConfig, deps LocomotionDeps) *LocomotionSystem {
	if deps.Cues == nil {
		deps.Cues = NoAudio()
	}
	if deps.HUD == nil {
		deps.HUD = &components.HUDComponent{}
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &LocomotionSystem{
		em:    em,
		cfg:   cfg,
		pause: deps.Pause,
		probe: deps.Probe,
		mover: deps.Mover,
		cues:  deps.Cues,
		hud:   deps.HUD,
		steps: NewFootstepPicker(cfg.Cues.Footsteps, deps.Rand),
		bob:   NewHeadBob(cfg.HeadBob, cfg.Movement.StepInterval),
		jump:  NewJumpBob(cfg.HeadBob),
		fov:   NewFOVKick(cfg.FOVKick),
	}
}

func (s *LocomotionSystem) paused() bool {
	return s.pause != nil && s.pause.IsPaused()
}

// player 返回玩家实体及其组件
func (s *LocomotionSystem) player() (ecs.EntityID, *components.TransformComponent, *components.LocomotionComponent, bool) {
	id, ok := findPlayer(s.em)
	if ok {
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.em, id)
		loco, hasLoco := ecs.GetComponent[*components.LocomotionComponent](s.em, id)
		if hasLoco {
			s.missed = false
			return id, tr, loco, true
		}
	}
	if !s.missed {
		log.Printf("[LocomotionSystem] Warning: player not found, retrying next tick")
		s.missed = true
	}
	return ecs.InvalidEntity, nil, nil, false
}

// Update 每帧更新
func (s *LocomotionSystem) Update(deltaTime float64, input types.InputSnapshot) {
	if s.paused() {
		return
	}
	_, tr, loco, ok := s.player()
	if !ok {
		return
	}

	// 视角
	tr.Yaw += input.LookX * s.cfg.LookSensitivity

	// 跳跃锁存：按下后保持到物理步消费
	s.input = input
	if !loco.Jump {
		loco.Jump = input.JumpPressed
	}

	s.jump.Update(deltaTime)
	s.fov.Update(deltaTime)

	grounded := loco.IsGrounded
	if !loco.PreviouslyGrounded && grounded {
		s.land(tr, loco)
	}
	// 未跳跃而走下平台边缘
	if !grounded && !loco.Jumping && loco.PreviouslyGrounded {
		loco.MoveDir.Y = 0
	}
	loco.PreviouslyGrounded = grounded

	// 坠落开始
	if !grounded && !loco.IsFalling {
		loco.FallStartHeight = tr.Position.Y
		loco.IsFalling = true
	}

	s.handleStamina(loco, deltaTime)
}

// land 落地处理
func (s *LocomotionSystem) land(tr *components.TransformComponent, loco *components.LocomotionComponent) {
	s.jump.Start()
	s.cues.PlayCue(s.cfg.Cues.Land)
	loco.NextStep = loco.StepCycle + 0.5
	loco.MoveDir.Y = 0
	loco.Jumping = false

	if !loco.IsFalling {
		return
	}
	distance := loco.FallStartHeight - tr.Position.Y
	if distance > s.cfg.Fall.MinDistance {
		loss := FallStaminaLoss(distance, s.cfg.Fall)
		if loss > s.cfg.Fall.HeavyImpactThreshold {
			s.cues.PlayCue(s.cfg.Cues.HeavyHit)
		}
		loco.Stamina = max(0, loco.Stamina-loss)
		log.Printf("[LocomotionSystem] Fall of %.2f costs %.2f stamina", distance, loss)
	}
	loco.IsFalling = false
}

// handleStamina 体力消耗/恢复与体力条
func (s *LocomotionSystem) handleStamina(loco *components.LocomotionComponent, deltaTime float64) {
	s.hud.SetStaminaVisible(true)

	moving := loco.InputX != 0 || loco.InputY != 0
	loco.Stamina = ApplyStaminaTick(loco.Stamina, s.cfg.Stamina, loco.IsWalking, moving, deltaTime)

	percent := loco.StaminaPercent()
	band := ClassifyStamina(percent, s.cfg.Stamina.WarningPercent, s.cfg.Stamina.PantingPercent)
	switch band {
	case StaminaPanting:
		loco.IsPanting = true
	case StaminaNormal:
		loco.IsPanting = false
	}
	s.hud.SetStamina(percent, band.Color())
}

// FixedUpdate 物理步更新
func (s *LocomotionSystem) FixedUpdate(deltaTime float64) {
	if s.paused() {
		return
	}
	id, tr, loco, ok := s.player()
	if !ok {
		return
	}
	s.clock += deltaTime

	speed := s.readInput(loco)

	desired := types.Forward(tr.Yaw).Scale(loco.InputY).Add(types.Right(tr.Yaw).Scale(loco.InputX))
	normal := types.Up
	if s.probe != nil {
		_, normal = s.probe.Probe(tr.Position)
	}
	desired = desired.ProjectOnPlane(normal).Normalize()

	loco.MoveDir.X = desired.X * speed
	loco.MoveDir.Z = desired.Z * speed

	if loco.IsGrounded {
		loco.MoveDir.Y = -s.cfg.Movement.StickToGroundForce
		if loco.Jump {
			loco.MoveDir.Y = s.cfg.Movement.JumpSpeed
			s.cues.PlayCue(s.cfg.Cues.Jump)
			loco.Jump = false
			loco.Jumping = true
		}
	} else {
		loco.MoveDir.Y += s.cfg.Movement.Gravity * s.cfg.Movement.GravityMultiplier * deltaTime
	}

	before := tr.Position
	if s.mover != nil {
		loco.IsGrounded = s.mover.Move(id, loco.MoveDir.Scale(deltaTime))
	}
	if deltaTime > 0 {
		loco.Velocity = tr.Position.Sub(before).Scale(1 / deltaTime)
	}
	loco.Speed = speed

	s.progressStepCycle(loco, speed, deltaTime)
	s.updateCamera(id, loco, speed, deltaTime)
	s.handlePanting(loco)
}

// readInput 读取输入并计算本步速度
func (s *LocomotionSystem) readInput(loco *components.LocomotionComponent) float64 {
	wasWalking := loco.IsWalking
	loco.IsWalking = !s.input.Sprint

	speed := EffectiveSpeed(s.cfg, loco.IsWalking, loco.StaminaPercent(), s.input.MoveY < 0)

	in := types.Vec3{X: s.input.MoveX, Z: s.input.MoveY}
	if in.LenSq() > 1 {
		in = in.Normalize()
	}
	loco.InputX, loco.InputY = in.X, in.Z

	if loco.IsWalking != wasWalking && s.cfg.FOVKick.Enabled && loco.Velocity.LenSq() > 0 {
		if loco.IsWalking {
			s.fov.KickDown()
		} else {
			s.fov.KickUp()
		}
	}
	return speed
}

// stepFactor 步频系数：步行 1，冲刺 RunstepLengthen
func (s *LocomotionSystem) stepFactor(loco *components.LocomotionComponent) float64 {
	if loco.IsWalking {
		return 1
	}
	return s.cfg.Movement.RunstepLengthen
}

// progressStepCycle 推进脚步节奏，越过阈值时播放脚步声
func (s *LocomotionSystem) progressStepCycle(loco *components.LocomotionComponent, speed, deltaTime float64) {
	if loco.Velocity.LenSq() > 0 && (loco.InputX != 0 || loco.InputY != 0) {
		loco.StepCycle += (loco.Velocity.Len() + speed*s.stepFactor(loco)) * deltaTime
	}

	if !(loco.StepCycle > loco.NextStep) {
		return
	}
	loco.NextStep = loco.StepCycle + s.cfg.Movement.StepInterval

	if !loco.IsGrounded {
		return
	}
	if cue, ok := s.steps.Next(); ok {
		s.cues.PlayCue(cue)
	}
}

// updateCamera 镜头晃动与视野
func (s *LocomotionSystem) updateCamera(id ecs.EntityID, loco *components.LocomotionComponent, speed, deltaTime float64) {
	camera, ok := ecs.GetComponent[*components.CameraComponent](s.em, id)
	if !ok {
		return
	}
	camera.FOV = s.fov.FOV()

	if !s.cfg.HeadBob.Enabled {
		return
	}
	if loco.Velocity.Len() > 0 && loco.IsGrounded {
		offset := s.bob.Step(loco.Velocity.Len()+speed*s.stepFactor(loco), deltaTime)
		offset.Y -= s.jump.Offset()
		camera.BobOffset = offset
	} else {
		camera.BobOffset.Y = -s.jump.Offset()
	}
}

// handlePanting 喘息音效，冷却期内或坠落中不播放
func (s *LocomotionSystem) handlePanting(loco *components.LocomotionComponent) {
	if loco.IsPanting && s.clock >= loco.LastPantingTime+s.cfg.Panting.Interval && !loco.IsFalling {
		s.cues.PlayCue(s.cfg.Cues.Panting)
		loco.LastPantingTime = s.clock
	}
}

// ApplyEnemyHit 被僵尸抓住时扣除体力（不低于 0）
func (s *LocomotionSystem) ApplyEnemyHit() {
	_, _, loco, ok := s.player()
	if !ok {
		return
	}
	loco.Stamina = max(0, loco.Stamina-s.cfg.Stamina.EnemyHitLoss)
	log.Printf("[LocomotionSystem] Enemy hit, stamina now %.2f", loco.Stamina)
}

// FOV 当前视野
func (s *LocomotionSystem) FOV() float64 {
	return s.fov.FOV()
}
