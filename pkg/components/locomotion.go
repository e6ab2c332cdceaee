package components

import "github.com/decker502/hollow/pkg/types"

// LocomotionComponent 玩家移动与体力状态
//
// 不变量：
//   - 0 <= Stamina <= MaxStamina
//   - IsFalling 仅在离地期间为 true，每次落地恰好清除一次
type LocomotionComponent struct {
	// 输入（由每帧 Update 采样，物理步使用）
	InputX    float64
	InputY    float64
	IsWalking bool
	Jump      bool // 跳跃锁存，物理步消费后清除

	// 运动
	MoveDir  types.Vec3 // 期望位移方向 * 速度（含竖直分量）
	Velocity types.Vec3 // 上一物理步的实际速度
	Speed    float64    // 上一物理步计算出的水平速度

	// 地面与坠落
	IsGrounded         bool
	PreviouslyGrounded bool
	Jumping            bool
	IsFalling          bool
	FallStartHeight    float64

	// 体力
	Stamina    float64
	MaxStamina float64
	IsPanting  bool

	// 脚步节奏
	StepCycle float64
	NextStep  float64

	// 喘息音效计时（游戏时间，秒）
	LastPantingTime float64
}

// StaminaPercent 返回体力百分比 [0, 1]
func (l *LocomotionComponent) StaminaPercent() float64 {
	if l.MaxStamina <= 0 {
		return 0
	}
	p := l.Stamina / l.MaxStamina
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
