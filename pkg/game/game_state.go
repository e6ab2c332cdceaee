package game

import (
	"log"

	"github.com/decker502/hollow/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"
)

// 默认配置文件路径
const (
	DefaultPlayerConfigPath = "data/player.yaml"
	DefaultLevelConfigPath  = "data/level.yaml"
	DefaultAudioConfigPath  = "data/audio.yaml"
)

// GameState 跨场景共享的服务集合
//
// 由 app 在启动时创建一次，并显式传递给各场景；
// 不是全局单例，测试可以自行构造。
type GameState struct {
	Gdata     *gdata.Manager   // 持久化存储，可为 nil（仅内存设置）
	Settings  *SettingsManager // 全局设置
	Resources *ResourceManager // 音频资源
	Audio     *AudioManager    // 音效播放

	PlayerConfig *config.PlayerConfig
	LevelConfig  *config.LevelConfig
}

// GameStateOptions 创建 GameState 的参数
type GameStateOptions struct {
	Gdata        *gdata.Manager
	AudioContext *audio.Context // 可为 nil（无声运行）

	PlayerConfigPath string
	LevelConfigPath  string
	AudioConfigPath  string
}

// NewGameState 加载配置并创建服务集合
//
// 玩家/关卡配置加载失败时返回错误；
// 音频配置缺失只记录警告（cue 静默）。
func NewGameState(opts GameStateOptions) (*GameState, error) {
	if opts.PlayerConfigPath == "" {
		opts.PlayerConfigPath = DefaultPlayerConfigPath
	}
	if opts.LevelConfigPath == "" {
		opts.LevelConfigPath = DefaultLevelConfigPath
	}
	if opts.AudioConfigPath == "" {
		opts.AudioConfigPath = DefaultAudioConfigPath
	}

	playerCfg, err := config.LoadPlayerConfig(opts.PlayerConfigPath)
	if err != nil {
		return nil, err
	}
	levelCfg, err := config.LoadLevelConfig(opts.LevelConfigPath)
	if err != nil {
		return nil, err
	}

	settings, err := NewSettingsManager(opts.Gdata)
	if err != nil {
		return nil, err
	}

	rm := NewResourceManager(opts.AudioContext)
	if err := rm.LoadResourceConfig(opts.AudioConfigPath); err != nil {
		log.Printf("[GameState] Warning: %v (cues will be silent)", err)
	}

	return &GameState{
		Gdata:        opts.Gdata,
		Settings:     settings,
		Resources:    rm,
		Audio:        NewAudioManager(rm, settings),
		PlayerConfig: playerCfg,
		LevelConfig:  levelCfg,
	}, nil
}
