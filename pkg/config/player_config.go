package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PlayerConfig 玩家控制器配置
//
// 配置文件位置: data/player.yaml
// 文件中缺省的字段保留 DefaultPlayerConfig() 中的默认值。
type PlayerConfig struct {
	// FixedTimestep 物理步长（秒），移动积分以此固定步长执行
	FixedTimestep float64 `yaml:"fixedTimestep"`

	// LookSensitivity 视角灵敏度（弧度 / 鼠标像素）
	LookSensitivity float64 `yaml:"lookSensitivity"`

	// InteractReach 交互距离（世界单位）
	InteractReach float64 `yaml:"interactReach"`

	Movement   MovementConfig   `yaml:"movement"`
	Stamina    StaminaConfig    `yaml:"stamina"`
	Fall       FallConfig       `yaml:"fall"`
	Panting    PantingConfig    `yaml:"panting"`
	HeadBob    HeadBobConfig    `yaml:"headBob"`
	FOVKick    FOVKickConfig    `yaml:"fovKick"`
	Flashlight FlashlightConfig `yaml:"flashlight"`
	Cues       PlayerCues       `yaml:"cues"`
}

// MovementConfig 移动参数
type MovementConfig struct {
	WalkSpeed          float64 `yaml:"walkSpeed"`
	RunSpeed           float64 `yaml:"runSpeed"`
	RunstepLengthen    float64 `yaml:"runstepLengthen"` // 奔跑时步频系数 [0, 1]
	JumpSpeed          float64 `yaml:"jumpSpeed"`
	StickToGroundForce float64 `yaml:"stickToGroundForce"`
	Gravity            float64 `yaml:"gravity"` // 重力加速度（负值向下）
	GravityMultiplier  float64 `yaml:"gravityMultiplier"`
	StepInterval       float64 `yaml:"stepInterval"`
	Radius             float64 `yaml:"radius"`
}

// StaminaConfig 体力参数
type StaminaConfig struct {
	Max                float64 `yaml:"max"`
	RegenRate          float64 `yaml:"regenRate"`          // 每秒恢复
	SprintDrainRate    float64 `yaml:"sprintDrainRate"`    // 对数消耗系数
	WalkDrainRate      float64 `yaml:"walkDrainRate"`      // 每帧线性消耗
	MaxSpeedPenalty    float64 `yaml:"maxSpeedPenalty"`    // 体力为 0 时的速度惩罚
	BackwardMultiplier float64 `yaml:"backwardMultiplier"` // 后退速度系数
	WarningPercent     float64 `yaml:"warningPercent"`     // 低于此比例显示黄色警告
	PantingPercent     float64 `yaml:"pantingPercent"`     // 低于此比例进入喘息
	EnemyHitLoss       float64 `yaml:"enemyHitLoss"`       // 被僵尸抓住时扣除的体力
}

// FallConfig 坠落伤害参数
type FallConfig struct {
	MinDistance          float64 `yaml:"minDistance"`
	MaxDistance          float64 `yaml:"maxDistance"`
	MinStaminaLoss       float64 `yaml:"minStaminaLoss"`
	MaxStaminaLoss       float64 `yaml:"maxStaminaLoss"`
	HeavyImpactThreshold float64 `yaml:"heavyImpactThreshold"`
}

// PantingConfig 喘息音效参数
type PantingConfig struct {
	Interval float64 `yaml:"interval"` // 两次喘息音效的最小间隔（秒）
}

// HeadBobConfig 镜头晃动参数
type HeadBobConfig struct {
	Enabled         bool    `yaml:"enabled"`
	HorizontalRange float64 `yaml:"horizontalRange"`
	VerticalRange   float64 `yaml:"verticalRange"`
	JumpBobAmount   float64 `yaml:"jumpBobAmount"`
	JumpBobDuration float64 `yaml:"jumpBobDuration"`
}

// FOVKickConfig 冲刺视野变化参数
type FOVKickConfig struct {
	Enabled        bool    `yaml:"enabled"`
	BaseFOV        float64 `yaml:"baseFov"`
	Increase       float64 `yaml:"increase"`
	TimeToIncrease float64 `yaml:"timeToIncrease"`
	TimeToDecrease float64 `yaml:"timeToDecrease"`
}

// FlashlightConfig 手电筒电量参数
type FlashlightConfig struct {
	MaxBattery        float64     `yaml:"maxBattery"`
	DrainAmount       float64     `yaml:"drainAmount"`       // 每次消耗的电量（百分比）
	BaseDrainInterval float64     `yaml:"baseDrainInterval"` // 基础消耗间隔（秒）
	MinDrainInterval  float64     `yaml:"minDrainInterval"`  // 间隔下限
	DrainSchedule     []DrainStep `yaml:"drainSchedule"`
}

// DrainStep 钥匙数检查点：收集数恰好等于 Keys 时间隔再减去 Delta
type DrainStep struct {
	Keys  int     `yaml:"keys"`
	Delta float64 `yaml:"delta"`
}

// PlayerCues 玩家相关音效ID
type PlayerCues struct {
	Footsteps     []string `yaml:"footsteps"`
	Jump          string   `yaml:"jump"`
	Land          string   `yaml:"land"`
	Panting       string   `yaml:"panting"`
	HeavyHit      string   `yaml:"heavyHit"`
	FlashlightOn  string   `yaml:"flashlightOn"`
	FlashlightOff string   `yaml:"flashlightOff"`
	KeyPickup     string   `yaml:"keyPickup"`
	BatteryPickup string   `yaml:"batteryPickup"`
}

// DefaultPlayerConfig 返回默认玩家配置
func DefaultPlayerConfig() *PlayerConfig {
	return &PlayerConfig{
		FixedTimestep:   0.02,
		LookSensitivity: 0.004,
		InteractReach:   2.5,
		Movement: MovementConfig{
			WalkSpeed:          5,
			RunSpeed:           10,
			RunstepLengthen:    0.7,
			JumpSpeed:          10,
			StickToGroundForce: 10,
			Gravity:            -9.81,
			GravityMultiplier:  2,
			StepInterval:       5,
			Radius:             0.5,
		},
		Stamina: StaminaConfig{
			Max:                100,
			RegenRate:          1.5,
			SprintDrainRate:    10,
			WalkDrainRate:      0.25,
			MaxSpeedPenalty:    0.85,
			BackwardMultiplier: 0.55,
			WarningPercent:     0.50,
			PantingPercent:     0.33,
			EnemyHitLoss:       200,
		},
		Fall: FallConfig{
			MinDistance:          12,
			MaxDistance:          50,
			MinStaminaLoss:       10,
			MaxStaminaLoss:       75.5,
			HeavyImpactThreshold: 40,
		},
		Panting: PantingConfig{
			Interval: 15,
		},
		HeadBob: HeadBobConfig{
			Enabled:         true,
			HorizontalRange: 0.1,
			VerticalRange:   0.1,
			JumpBobAmount:   0.1,
			JumpBobDuration: 0.2,
		},
		FOVKick: FOVKickConfig{
			Enabled:        true,
			BaseFOV:        60,
			Increase:       3,
			TimeToIncrease: 1,
			TimeToDecrease: 1,
		},
		Flashlight: FlashlightConfig{
			MaxBattery:        100,
			DrainAmount:       1,
			BaseDrainInterval: 4,
			MinDrainInterval:  1,
			DrainSchedule: []DrainStep{
				{Keys: 2, Delta: 1},
				{Keys: 4, Delta: 0.5},
				{Keys: 7, Delta: 0.5},
				{Keys: 8, Delta: 1},
			},
		},
		Cues: PlayerCues{
			Footsteps:     []string{"SOUND_FOOTSTEP1", "SOUND_FOOTSTEP2", "SOUND_FOOTSTEP3", "SOUND_FOOTSTEP4"},
			Jump:          "SOUND_JUMP",
			Land:          "SOUND_LAND",
			Panting:       "SOUND_PANTING",
			HeavyHit:      "SOUND_HEAVY_HIT",
			FlashlightOn:  "SOUND_FLASHLIGHT_ON",
			FlashlightOff: "SOUND_FLASHLIGHT_OFF",
			KeyPickup:     "SOUND_KEY_PICKUP",
			BatteryPickup: "SOUND_BATTERY_PICKUP",
		},
	}
}

// LoadPlayerConfig 加载玩家配置
//
// 参数:
//   - path: 配置文件路径（如 "data/player.yaml"）
//
// 返回:
//   - *PlayerConfig: 合并默认值后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadPlayerConfig(path string) (*PlayerConfig, error) {
	data, err := ReadDataFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read player config: %w", err)
	}
	return ParsePlayerConfig(data)
}

// ParsePlayerConfig 从 YAML 数据解析玩家配置
func ParsePlayerConfig(data []byte) (*PlayerConfig, error) {
	cfg := DefaultPlayerConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse player config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid player config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *PlayerConfig) Validate() error {
	if c.FixedTimestep <= 0 {
		return fmt.Errorf("fixedTimestep must be positive, got %.3f", c.FixedTimestep)
	}
	if c.Movement.WalkSpeed < 0 || c.Movement.RunSpeed < 0 {
		return fmt.Errorf("speeds must not be negative (walk=%.2f, run=%.2f)",
			c.Movement.WalkSpeed, c.Movement.RunSpeed)
	}
	if c.Movement.RunstepLengthen < 0 || c.Movement.RunstepLengthen > 1 {
		return fmt.Errorf("runstepLengthen must be in [0, 1], got %.2f", c.Movement.RunstepLengthen)
	}
	if c.Movement.StepInterval <= 0 {
		return fmt.Errorf("stepInterval must be positive, got %.2f", c.Movement.StepInterval)
	}
	if c.Stamina.Max <= 0 {
		return fmt.Errorf("stamina max must be positive, got %.2f", c.Stamina.Max)
	}
	if c.Stamina.PantingPercent > c.Stamina.WarningPercent {
		return fmt.Errorf("pantingPercent(%.2f) > warningPercent(%.2f)",
			c.Stamina.PantingPercent, c.Stamina.WarningPercent)
	}
	if c.Fall.MaxDistance <= c.Fall.MinDistance {
		return fmt.Errorf("fall range invalid: min(%.1f) >= max(%.1f)",
			c.Fall.MinDistance, c.Fall.MaxDistance)
	}
	if c.Fall.MaxStaminaLoss < c.Fall.MinStaminaLoss {
		return fmt.Errorf("fall loss range invalid: min(%.1f) > max(%.1f)",
			c.Fall.MinStaminaLoss, c.Fall.MaxStaminaLoss)
	}
	if c.Flashlight.MaxBattery <= 0 {
		return fmt.Errorf("flashlight maxBattery must be positive, got %.1f", c.Flashlight.MaxBattery)
	}
	if c.Flashlight.MinDrainInterval <= 0 || c.Flashlight.BaseDrainInterval < c.Flashlight.MinDrainInterval {
		return fmt.Errorf("drain interval invalid: base(%.2f) min(%.2f)",
			c.Flashlight.BaseDrainInterval, c.Flashlight.MinDrainInterval)
	}
	return nil
}
