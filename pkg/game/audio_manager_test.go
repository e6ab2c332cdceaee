package game

import (
	"testing"
)

const testAudioYAML = `
version: "1.0"
base_path: assets/audio
groups:
  player:
    sounds:
      - { id: SOUND_JUMP, path: player/jump, duration: 0.5 }
      - { id: SOUND_LAND, path: player/land.wav, duration: 0.25 }
  ambience:
    sounds:
      - { id: SOUND_WIND, path: ambience/wind.mp3, duration: 30, loop: true }
`

func newTestResourceManager(t *testing.T) *ResourceManager {
	t.Helper()
	rm := NewResourceManager(nil)
	if err := rm.ParseResourceConfig([]byte(testAudioYAML)); err != nil {
		t.Fatalf("ParseResourceConfig failed: %v", err)
	}
	return rm
}

// TestResourceMapPaths 测试 cue 路径解析（默认扩展名 .ogg）
func TestResourceMapPaths(t *testing.T) {
	rm := newTestResourceManager(t)

	tests := []struct {
		id   string
		path string
		loop bool
	}{
		{"SOUND_JUMP", "assets/audio/player/jump.ogg", false},
		{"SOUND_LAND", "assets/audio/player/land.wav", false},
		{"SOUND_WIND", "assets/audio/ambience/wind.mp3", true},
	}

	for _, tt := range tests {
		sound, ok := rm.LookupSound(tt.id)
		if !ok {
			t.Errorf("LookupSound(%s): not found", tt.id)
			continue
		}
		if sound.Path != tt.path {
			t.Errorf("LookupSound(%s).Path: got %q, want %q", tt.id, sound.Path, tt.path)
		}
		if sound.Loop != tt.loop {
			t.Errorf("LookupSound(%s).Loop: got %v, want %v", tt.id, sound.Loop, tt.loop)
		}
	}

	if _, ok := rm.LookupSound("SOUND_MISSING"); ok {
		t.Error("LookupSound(SOUND_MISSING): expected not found")
	}
}

// TestSoundIDs 测试按组列出 cue
func TestSoundIDs(t *testing.T) {
	rm := newTestResourceManager(t)

	if got := len(rm.SoundIDs("player")); got != 2 {
		t.Errorf("SoundIDs(player): got %d ids, want 2", got)
	}
	if got := rm.SoundIDs("nope"); got != nil {
		t.Errorf("SoundIDs(nope): got %v, want nil", got)
	}
}

// TestLoadResourceGroupErrors 测试资源组加载的错误路径
func TestLoadResourceGroupErrors(t *testing.T) {
	empty := NewResourceManager(nil)
	if err := empty.LoadResourceGroup("player"); err == nil {
		t.Error("LoadResourceGroup without config: expected error")
	}

	rm := newTestResourceManager(t)
	if err := rm.LoadResourceGroup("nope"); err == nil {
		t.Error("LoadResourceGroup(nope): expected error")
	}
	// 无音频上下文时加载失败，但不会 panic
	if err := rm.LoadResourceGroup("player"); err == nil {
		t.Error("LoadResourceGroup(player) with nil audio context: expected error")
	}
}

// TestCueDuration 测试 cue 时长查询
func TestCueDuration(t *testing.T) {
	am := NewAudioManager(newTestResourceManager(t), nil)

	if got := am.CueDuration("SOUND_JUMP"); got != 0.5 {
		t.Errorf("CueDuration(SOUND_JUMP): got %v, want 0.5", got)
	}
	if got := am.CueDuration("SOUND_MISSING"); got != 0 {
		t.Errorf("CueDuration(SOUND_MISSING): got %v, want 0", got)
	}
}

// TestPlayCueWithoutAudio 无音频设备时播放失败但不影响调用方
func TestPlayCueWithoutAudio(t *testing.T) {
	am := NewAudioManager(newTestResourceManager(t), nil)

	if am.PlayCue("SOUND_JUMP") {
		t.Error("PlayCue without audio context: got true, want false")
	}
	if !am.failed.Has("SOUND_JUMP") {
		t.Error("failed cue should be remembered")
	}
	// 第二次直接返回，不再尝试解码
	if am.PlayCue("SOUND_JUMP") {
		t.Error("PlayCue retry: got true, want false")
	}

	// 暂停/恢复在没有播放器时是空操作
	am.OnPauseChanged(true)
	am.OnPauseChanged(false)
	am.StopAll()
}

// TestAudioVolume 测试主音量读写
func TestAudioVolume(t *testing.T) {
	am := NewAudioManager(newTestResourceManager(t), nil)
	if am.Volume() != 1.0 {
		t.Errorf("Volume: got %v, want 1.0", am.Volume())
	}
	am.SetVolume(2)
	if am.Volume() != 1.0 {
		t.Errorf("Volume after SetVolume(2): got %v, want 1.0", am.Volume())
	}

	sm, _ := NewSettingsManager(nil)
	withSettings := NewAudioManager(newTestResourceManager(t), sm)
	withSettings.SetVolume(0.4)
	if sm.GetSettings().Volume != 0.4 {
		t.Errorf("settings Volume: got %v, want 0.4", sm.GetSettings().Volume)
	}
	if withSettings.Volume() != 0.4 {
		t.Errorf("Volume: got %v, want 0.4", withSettings.Volume())
	}
}

// TestPreloadGroup 测试按组预加载
func TestPreloadGroup(t *testing.T) {
	am := NewAudioManager(newTestResourceManager(t), nil)

	// 无音频上下文时全部加载失败，并记入失败集合
	if got := am.PreloadGroup("player"); got != 0 {
		t.Errorf("PreloadGroup(player) without audio context: got %d, want 0", got)
	}
	for _, id := range []string{"SOUND_JUMP", "SOUND_LAND"} {
		if !am.failed.Has(id) {
			t.Errorf("PreloadGroup(player): %s should be marked failed", id)
		}
	}
	if am.failed.Has("SOUND_WIND") {
		t.Error("PreloadGroup(player) should not touch other groups")
	}

	if got := am.PreloadGroup("nope"); got != 0 {
		t.Errorf("PreloadGroup(nope): got %d, want 0", got)
	}
}
