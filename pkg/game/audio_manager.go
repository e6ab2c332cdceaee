package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/zyedidia/generic/mapset"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效（cue）的播放
//   - 实现主音量控制（从 SettingsManager 读取设置）
//   - 提供 cue 时长查询，用于一次性效果的定时
//   - 会话暂停时暂停正在播放的音效，恢复时继续
type AudioManager struct {
	resourceManager *ResourceManager          // 资源管理器（用于加载音频）
	settingsManager *SettingsManager          // 设置管理器（用于读取音量设置）
	players         map[string]*audio.Player  // 播放器缓存（cue ID -> 播放器）
	failed          mapset.Set[string]        // 加载失败的 cue，避免每帧重复解码
	pausedPlayers   mapset.Set[*audio.Player] // 因会话暂停而被暂停的播放器
	fallbackVolume  float64                   // 无 SettingsManager 时的音量
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于查找与加载音频）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		players:         make(map[string]*audio.Player),
		failed:          mapset.New[string](),
		pausedPlayers:   mapset.New[*audio.Player](),
		fallbackVolume:  1.0,
	}
}

// PlayCue 播放音效
//
// 参数：
//   - cueID: 音效资源ID（如 "SOUND_FOOTSTEP1", "SOUND_KEY_PICKUP"）
//
// 返回：
//   - bool: 是否成功播放（文件缺失或无音频设备时返回 false，不影响模拟）
func (am *AudioManager) PlayCue(cueID string) bool {
	player := am.getPlayer(cueID)
	if player == nil {
		return false
	}

	player.SetVolume(am.Volume())

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind cue %s: %v", cueID, err)
	}
	player.Play()
	return true
}

// CueDuration 返回 cue 的时长（秒），未知 cue 返回 0
func (am *AudioManager) CueDuration(cueID string) float64 {
	if sound, ok := am.resourceManager.LookupSound(cueID); ok {
		return sound.Duration
	}
	return 0
}

// PauseAll 暂停所有正在播放的音效（会话暂停时调用）
func (am *AudioManager) PauseAll() {
	for _, player := range am.players {
		if player.IsPlaying() {
			player.Pause()
			am.pausedPlayers.Put(player)
		}
	}
}

// ResumeAll 恢复被 PauseAll 暂停的音效
func (am *AudioManager) ResumeAll() {
	am.pausedPlayers.Each(func(player *audio.Player) {
		player.Play()
	})
	am.pausedPlayers = mapset.New[*audio.Player]()
}

// OnPauseChanged 会话暂停状态回调
func (am *AudioManager) OnPauseChanged(paused bool) {
	if paused {
		am.PauseAll()
	} else {
		am.ResumeAll()
	}
}

// StopAll 停止所有音效（场景切换时调用）
func (am *AudioManager) StopAll() {
	for _, player := range am.players {
		if player.IsPlaying() {
			player.Pause()
		}
	}
	am.pausedPlayers = mapset.New[*audio.Player]()
}

// SetVolume 设置主音量并立即应用到已缓存的播放器
//
// 参数：
//   - volume: 音量值 (0.0 ~ 1.0)
func (am *AudioManager) SetVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetVolume(volume)
	} else {
		am.fallbackVolume = clampVolume(volume)
	}

	v := am.Volume()
	for _, player := range am.players {
		player.SetVolume(v)
	}
}

// Volume 获取当前主音量
func (am *AudioManager) Volume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().Volume
	}
	return am.fallbackVolume
}

// 音效分组（对应 data/audio.yaml 的 groups）
const (
	CueGroupPlayer = "player"
	CueGroupItems  = "items"
	CueGroupUI     = "ui"
)

// PreloadGroup 预加载一组音效
// 在场景初始化时调用，避免首次播放时的延迟；返回成功加载的数量
func (am *AudioManager) PreloadGroup(groupName string) int {
	ids := am.resourceManager.SoundIDs(groupName)
	loaded := 0
	for _, id := range ids {
		if am.getPlayer(id) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d cues from group %s", loaded, len(ids), groupName)
	return loaded
}

// getPlayer 获取或加载 cue 播放器
func (am *AudioManager) getPlayer(cueID string) *audio.Player {
	if player, exists := am.players[cueID]; exists {
		return player
	}
	if am.failed.Has(cueID) {
		return nil
	}

	player, err := am.resourceManager.LoadSoundByID(cueID)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load cue %s: %v", cueID, err)
		am.failed.Put(cueID)
		return nil
	}
	am.players[cueID] = player
	return player
}
