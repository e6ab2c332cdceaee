package config

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/hollow/pkg/types"
	"gopkg.in/yaml.v3"
)

// LevelConfig 关卡配置
//
// 配置文件位置: data/level.yaml
// 包含钥匙生成点、出口传送门候选位置、地形平台、僵尸生成器等。
type LevelConfig struct {
	// Name 关卡名称
	Name string `yaml:"name"`

	// TotalKeys 通关需要收集的钥匙数量
	TotalKeys int `yaml:"totalKeys"`

	// PlayerSpawn 玩家出生点
	PlayerSpawn types.Vec3 `yaml:"playerSpawn"`

	// PlayerYaw 玩家初始朝向（弧度）
	PlayerYaw float64 `yaml:"playerYaw"`

	// Bounds 可行走区域边界（XZ 平面）
	Bounds BoundsConfig `yaml:"bounds"`

	// Spawners 钥匙生成点（顺序即生成点索引）
	Spawners []SpawnerConfig `yaml:"spawners"`

	// SpawnerLights 生成点灯光的激活/已访问状态参数
	SpawnerLights SpawnerLightsConfig `yaml:"spawnerLights"`

	// PortalPositions 出口传送门候选位置
	PortalPositions []types.Vec3 `yaml:"portalPositions"`

	// Platforms 地形平台（高度场），平台之外的地面高度为 0
	Platforms []PlatformConfig `yaml:"platforms"`

	// Zombie 僵尸追击参数
	Zombie ZombieConfig `yaml:"zombie"`

	// ZombieSpawners 僵尸生成器
	ZombieSpawners []ZombieSpawnerConfig `yaml:"zombieSpawners"`

	// Batteries 电池拾取物位置
	Batteries []types.Vec3 `yaml:"batteries"`

	// Props 可检视道具
	Props []PropConfig `yaml:"props"`

	// EnemyContactRadius 僵尸接触判定半径
	EnemyContactRadius float64 `yaml:"enemyContactRadius"`

	// PortalContactRadius 传送门接触判定半径
	PortalContactRadius float64 `yaml:"portalContactRadius"`
}

// BoundsConfig XZ 平面矩形边界
type BoundsConfig struct {
	MinX float64 `yaml:"minX"`
	MaxX float64 `yaml:"maxX"`
	MinZ float64 `yaml:"minZ"`
	MaxZ float64 `yaml:"maxZ"`
}

// Contains 判断点是否在边界内
func (b BoundsConfig) Contains(x, z float64) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

// SpawnerConfig 钥匙生成点
type SpawnerConfig struct {
	Name     string     `yaml:"name"`
	Position types.Vec3 `yaml:"position"`
	// Anchor 钥匙放置锚点；缺失时该生成点无法放置钥匙（记录警告）
	Anchor *types.Vec3 `yaml:"anchor"`
}

// SpawnerLightsConfig 生成点灯光状态
type SpawnerLightsConfig struct {
	Active  LightConfig `yaml:"active"`
	Visited LightConfig `yaml:"visited"`
}

// LightConfig 灯光参数
type LightConfig struct {
	Color     ColorConfig `yaml:"color"`
	Intensity float64     `yaml:"intensity"`
	Range     float64     `yaml:"range"`
}

// ColorConfig RGB 颜色
type ColorConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// RGBA 转换为 color.RGBA（不透明）
func (c ColorConfig) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// PlatformConfig 矩形平台（顶面高度 Height）
type PlatformConfig struct {
	Name   string  `yaml:"name"`
	MinX   float64 `yaml:"minX"`
	MaxX   float64 `yaml:"maxX"`
	MinZ   float64 `yaml:"minZ"`
	MaxZ   float64 `yaml:"maxZ"`
	Height float64 `yaml:"height"`
}

// ZombieConfig 僵尸追击参数
type ZombieConfig struct {
	RotationSpeed float64 `yaml:"rotationSpeed"`
	MoveSpeed     float64 `yaml:"moveSpeed"`
}

// ZombieSpawnerConfig 僵尸生成器
type ZombieSpawnerConfig struct {
	Position     types.Vec3 `yaml:"position"`
	Radius       float64    `yaml:"radius"`
	Interval     float64    `yaml:"interval"`
	MaxCount     int        `yaml:"maxCount"`
	SpawnOnStart bool       `yaml:"spawnOnStart"`
}

// PropConfig 可检视道具（点击后随机播放其中一段音频）
type PropConfig struct {
	Name     string     `yaml:"name"`
	Position types.Vec3 `yaml:"position"`
	Clips    []string   `yaml:"clips"`
}

// DefaultLevelConfig 返回默认关卡参数（不含生成点等场景数据）
func DefaultLevelConfig() *LevelConfig {
	return &LevelConfig{
		Name:      "level",
		TotalKeys: 8,
		Bounds:    BoundsConfig{MinX: -50, MaxX: 50, MinZ: -50, MaxZ: 50},
		SpawnerLights: SpawnerLightsConfig{
			Active: LightConfig{
				Color:     ColorConfig{R: 255, G: 255, B: 255},
				Intensity: 5.55,
				Range:     2.25,
			},
			Visited: LightConfig{
				Color:     ColorConfig{R: 255, G: 0, B: 0},
				Intensity: 2.05,
				Range:     1.85,
			},
		},
		Zombie: ZombieConfig{
			RotationSpeed: 25,
			MoveSpeed:     3.5,
		},
		EnemyContactRadius:  1.0,
		PortalContactRadius: 1.5,
	}
}

// LoadLevelConfig 加载关卡配置
//
// 参数:
//   - path: 配置文件路径（如 "data/level.yaml"）
//
// 返回:
//   - *LevelConfig: 加载成功后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadLevelConfig(path string) (*LevelConfig, error) {
	data, err := ReadDataFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config: %w", err)
	}
	return ParseLevelConfig(data)
}

// ParseLevelConfig 从 YAML 数据解析关卡配置
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	cfg := DefaultLevelConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level config: %w", err)
	}

	for _, w := range cfg.Warnings() {
		log.Printf("[LevelConfig] Warning: %s", w)
	}

	return cfg, nil
}

// Validate 验证配置有效性（硬性错误）
func (c *LevelConfig) Validate() error {
	if c.TotalKeys <= 0 {
		return fmt.Errorf("totalKeys must be positive, got %d", c.TotalKeys)
	}
	if len(c.Spawners) == 0 {
		return fmt.Errorf("at least one spawner is required")
	}
	if c.Bounds.MinX >= c.Bounds.MaxX || c.Bounds.MinZ >= c.Bounds.MaxZ {
		return fmt.Errorf("bounds invalid: x[%.1f, %.1f] z[%.1f, %.1f]",
			c.Bounds.MinX, c.Bounds.MaxX, c.Bounds.MinZ, c.Bounds.MaxZ)
	}
	for i, p := range c.Platforms {
		if p.MinX >= p.MaxX || p.MinZ >= p.MaxZ {
			return fmt.Errorf("platform %d (%s) has an empty footprint", i, p.Name)
		}
	}
	for i, zs := range c.ZombieSpawners {
		if zs.Interval <= 0 {
			return fmt.Errorf("zombie spawner %d interval must be positive, got %.2f", i, zs.Interval)
		}
	}
	return nil
}

// Warnings 返回不阻止加载、但会让部分功能降级的配置问题
func (c *LevelConfig) Warnings() []string {
	var warnings []string
	if len(c.Spawners) < c.TotalKeys {
		warnings = append(warnings, fmt.Sprintf(
			"only %d spawners for %d keys, objective cannot be completed", len(c.Spawners), c.TotalKeys))
	}
	for i, s := range c.Spawners {
		if s.Anchor == nil {
			warnings = append(warnings, fmt.Sprintf("spawner %d (%s) has no anchor", i, s.Name))
		}
	}
	if len(c.PortalPositions) == 0 {
		warnings = append(warnings, "no portal positions configured")
	}
	return warnings
}
