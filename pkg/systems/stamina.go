package systems

import (
	"image/color"
	"math"

	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/utils"
)

// StaminaBand 体力区间（决定体力条颜色与喘息状态）
type StaminaBand int

const (
	StaminaNormal  StaminaBand = iota // 白色
	StaminaWarning                    // 黄色警告，喘息状态保持不变
	StaminaPanting                    // 红色，进入喘息
)

// 体力条颜色
var (
	StaminaColorNormal  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	StaminaColorWarning = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	StaminaColorPanting = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Color 返回区间对应的体力条颜色
func (b StaminaBand) Color() color.RGBA {
	switch b {
	case StaminaWarning:
		return StaminaColorWarning
	case StaminaPanting:
		return StaminaColorPanting
	default:
		return StaminaColorNormal
	}
}

// ClassifyStamina 根据体力百分比划分区间
//
//	(panting, warning) 开区间 → 警告
//	< panting             → 喘息
//	其余（含两个边界值）    → 正常
func ClassifyStamina(percent, warningPercent, pantingPercent float64) StaminaBand {
	switch {
	case percent > pantingPercent && percent < warningPercent:
		return StaminaWarning
	case percent < pantingPercent:
		return StaminaPanting
	default:
		return StaminaNormal
	}
}

// SprintDrain 冲刺时单帧体力消耗 ln(dt + 1) * rate
func SprintDrain(deltaTime, rate float64) float64 {
	return math.Log(deltaTime+1) * rate
}

// ApplyStaminaTick 计算一帧后的体力值
//
// 优先级：
//  1. 冲刺（非步行）：按对数消耗，无恢复（站立时按住冲刺键同样消耗）
//  2. 步行且有移动输入：每帧固定消耗 walkDrainRate，同时按 regenRate*dt 恢复
//  3. 静止：按 regenRate*dt 恢复
//
// 返回值始终位于 [0, cfg.Max]。
func ApplyStaminaTick(stamina float64, cfg config.StaminaConfig, walking, moving bool, deltaTime float64) float64 {
	switch {
	case !walking:
		return utils.Clamp(stamina-SprintDrain(deltaTime, cfg.SprintDrainRate), 0, cfg.Max)
	case moving:
		return utils.Clamp(stamina-cfg.WalkDrainRate+cfg.RegenRate*deltaTime, 0, cfg.Max)
	default:
		return utils.Clamp(stamina+cfg.RegenRate*deltaTime, 0, cfg.Max)
	}
}

// SpeedPenaltyFactor 体力不足时的速度系数 clamp01(1 - lerp(0, maxPenalty, 1 - percent))
func SpeedPenaltyFactor(percent, maxPenalty float64) float64 {
	penalty := utils.Lerp(0, maxPenalty, 1-utils.Clamp01(percent))
	return utils.Clamp01(1 - penalty)
}

// EffectiveSpeed 计算物理步使用的水平速度
//
// 参数：
//   - walking: 步行（否则冲刺）
//   - percent: 体力百分比
//   - backward: 竖直输入为负（后退）
func EffectiveSpeed(cfg *config.PlayerConfig, walking bool, percent float64, backward bool) float64 {
	speed := cfg.Movement.RunSpeed
	if walking {
		speed = cfg.Movement.WalkSpeed
	}
	speed *= SpeedPenaltyFactor(percent, cfg.Stamina.MaxSpeedPenalty)
	if backward {
		speed *= cfg.Stamina.BackwardMultiplier
	}
	return speed
}

// FallStaminaLoss 根据坠落高度计算体力损失
// 不超过 MinDistance 时为 0；否则在 [MinDistance, MaxDistance] 内线性插值，超出部分按上限计
func FallStaminaLoss(distance float64, cfg config.FallConfig) float64 {
	if distance <= cfg.MinDistance {
		return 0
	}
	clamped := utils.Clamp(distance, cfg.MinDistance, cfg.MaxDistance)
	t := (clamped - cfg.MinDistance) / (cfg.MaxDistance - cfg.MinDistance)
	return utils.Lerp(cfg.MinStaminaLoss, cfg.MaxStaminaLoss, t)
}
