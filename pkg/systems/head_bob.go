package systems

import (
	"math"

	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/types"
	"github.com/decker502/hollow/pkg/utils"
)

// bobCurveLength 晃动曲线周期（曲线取值 sin(π t)，t ∈ [0, 2)）
const bobCurveLength = 2.0

// bobVerticalRatio 竖直晃动相对水平晃动的频率倍数（每走一步上下晃动一次）
const bobVerticalRatio = 2.0

// HeadBob 由步行距离驱动的镜头晃动
type HeadBob struct {
	horizontalRange float64
	verticalRange   float64
	baseInterval    float64
	cycleX          float64
	cycleY          float64
}

// NewHeadBob 创建镜头晃动，baseInterval 通常取步长间隔
func NewHeadBob(cfg config.HeadBobConfig, baseInterval float64) *HeadBob {
	if baseInterval <= 0 {
		baseInterval = 1
	}
	return &HeadBob{
		horizontalRange: cfg.HorizontalRange,
		verticalRange:   cfg.VerticalRange,
		baseInterval:    baseInterval,
	}
}

// Step 返回当前偏移，然后按 speed*dt 推进晃动相位
func (h *HeadBob) Step(speed, deltaTime float64) types.Vec3 {
	offset := types.Vec3{
		X: bobCurve(h.cycleX) * h.horizontalRange,
		Y: bobCurve(h.cycleY) * h.verticalRange,
	}

	advance := speed * deltaTime / h.baseInterval
	h.cycleX = wrapCycle(h.cycleX + advance)
	h.cycleY = wrapCycle(h.cycleY + advance*bobVerticalRatio)
	return offset
}

func bobCurve(t float64) float64 {
	return math.Sin(math.Pi * t)
}

func wrapCycle(t float64) float64 {
	return math.Mod(t, bobCurveLength)
}

// JumpBob 落地时的镜头下沉：先在 duration 内下沉到 amount，再在 duration 内回到 0
type JumpBob struct {
	amount   float64
	duration float64
	elapsed  float64
	active   bool
}

// NewJumpBob 创建落地晃动
func NewJumpBob(cfg config.HeadBobConfig) *JumpBob {
	return &JumpBob{amount: cfg.JumpBobAmount, duration: cfg.JumpBobDuration}
}

// Start 开始（或重新开始）一次落地晃动
func (j *JumpBob) Start() {
	j.elapsed = 0
	j.active = j.duration > 0
}

// Update 推进落地晃动
func (j *JumpBob) Update(deltaTime float64) {
	if !j.active {
		return
	}
	j.elapsed += deltaTime
	if j.elapsed >= 2*j.duration {
		j.active = false
	}
}

// Offset 当前下沉量
func (j *JumpBob) Offset() float64 {
	if !j.active {
		return 0
	}
	if j.elapsed < j.duration {
		return utils.Lerp(0, j.amount, j.elapsed/j.duration)
	}
	return utils.Lerp(j.amount, 0, (j.elapsed-j.duration)/j.duration)
}

// FOVKick 冲刺时视野放大，恢复步行时缩回
type FOVKick struct {
	cfg       config.FOVKickConfig
	fov       float64
	direction int // 1 放大中，-1 缩回中，0 静止
}

// NewFOVKick 创建视野变化
func NewFOVKick(cfg config.FOVKickConfig) *FOVKick {
	return &FOVKick{cfg: cfg, fov: cfg.BaseFOV}
}

// KickUp 开始放大（取代正在进行的缩回）
func (f *FOVKick) KickUp() {
	f.direction = 1
}

// KickDown 开始缩回（取代正在进行的放大）
func (f *FOVKick) KickDown() {
	f.direction = -1
}

// Update 推进视野变化
func (f *FOVKick) Update(deltaTime float64) {
	if f.direction == 0 || f.cfg.Increase == 0 {
		return
	}

	// 从当前视野反推进度，中途换向时无跳变
	progress := utils.Clamp01((f.fov - f.cfg.BaseFOV) / f.cfg.Increase)
	if f.direction > 0 {
		if f.cfg.TimeToIncrease <= 0 {
			progress = 1
		} else {
			progress += deltaTime / f.cfg.TimeToIncrease
		}
		if progress >= 1 {
			progress = 1
			f.direction = 0
		}
	} else {
		if f.cfg.TimeToDecrease <= 0 {
			progress = 0
		} else {
			progress -= deltaTime / f.cfg.TimeToDecrease
		}
		if progress <= 0 {
			progress = 0
			f.direction = 0
		}
	}
	f.fov = f.cfg.BaseFOV + utils.EaseLinear(progress)*f.cfg.Increase
}

// FOV 当前视野
func (f *FOVKick) FOV() float64 {
	return f.fov
}
