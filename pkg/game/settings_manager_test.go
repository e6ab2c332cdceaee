package game

import (
	"os"
	"testing"

	"github.com/decker502/hollow/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下创建 gdata manager
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}

	if settings.Volume != 1.0 {
		t.Errorf("Volume: got %v, want 1.0", settings.Volume)
	}

	if settings.Quality != DefaultQualityLevel() {
		t.Errorf("Quality: got %d, want %d", settings.Quality, DefaultQualityLevel())
	}

	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestDefaultQualityLevelDesktop 桌面端默认最高画质
func TestDefaultQualityLevelDesktop(t *testing.T) {
	t.Setenv("HOLLOW_MOBILE_EMULATE", "")
	want := len(config.QualityNames) - 1
	if got := DefaultQualityLevel(); got != want {
		t.Errorf("DefaultQualityLevel: got %d, want %d", got, want)
	}
}

// TestDefaultQualityLevelMobileEmulate 移动模拟模式下默认最低画质
func TestDefaultQualityLevelMobileEmulate(t *testing.T) {
	t.Setenv("HOLLOW_MOBILE_EMULATE", "1")
	if got := DefaultQualityLevel(); got != 0 {
		t.Errorf("DefaultQualityLevel: got %d, want 0", got)
	}
}

// TestSettingsSaveAndLoad 测试设置持久化往返
func TestSettingsSaveAndLoad(t *testing.T) {
	gdataManager := openTestGdata(t, "test_settings_roundtrip")

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}

	sm.SetVolume(0.35)
	sm.SetQuality(1)
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// 新实例应读取到已保存的值
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}
	got := sm2.GetSettings()
	if got.Volume != 0.35 {
		t.Errorf("Volume: got %v, want 0.35", got.Volume)
	}
	if got.Quality != 1 {
		t.Errorf("Quality: got %d, want 1", got.Quality)
	}
	if !got.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
}

// TestLoadPartialSettings 已保存数据缺失的字段保留默认值
func TestLoadPartialSettings(t *testing.T) {
	gdataManager := openTestGdata(t, "test_settings_partial")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: true\n")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}
	got := sm.GetSettings()
	if got.Volume != 1.0 {
		t.Errorf("Volume: got %v, want 1.0", got.Volume)
	}
	if got.Quality != DefaultQualityLevel() {
		t.Errorf("Quality: got %d, want %d", got.Quality, DefaultQualityLevel())
	}
	if !got.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
}

// TestLoadCorruptSettings 损坏数据回退默认值并返回错误
func TestLoadCorruptSettings(t *testing.T) {
	gdataManager := openTestGdata(t, "test_settings_corrupt")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("volume: [not a number")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	sm := &SettingsManager{gdataManager: gdataManager, settings: DefaultSettings()}
	if err := sm.Load(); err == nil {
		t.Error("Load: expected error for corrupt data")
	}
	if sm.GetSettings().Volume != 1.0 {
		t.Errorf("Volume after corrupt load: got %v, want 1.0", sm.GetSettings().Volume)
	}
}

// TestLoadOutOfRangeSettings 越界值在加载时被修正
func TestLoadOutOfRangeSettings(t *testing.T) {
	gdataManager := openTestGdata(t, "test_settings_range")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("volume: 3.5\nquality: 99\n")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	sm, _ := NewSettingsManager(gdataManager)
	if sm.GetSettings().Volume != 1.0 {
		t.Errorf("Volume: got %v, want 1.0", sm.GetSettings().Volume)
	}
	if want := len(config.QualityNames) - 1; sm.GetSettings().Quality != want {
		t.Errorf("Quality: got %d, want %d", sm.GetSettings().Quality, want)
	}
}

// TestSetVolumeClamp 测试音量限制
func TestSetVolumeClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input float64
		want  float64
	}{
		{-0.5, 0.0},
		{0.0, 0.0},
		{0.5, 0.5},
		{1.0, 1.0},
		{1.5, 1.0},
	}

	for _, tt := range tests {
		sm.SetVolume(tt.input)
		if got := sm.GetSettings().Volume; got != tt.want {
			t.Errorf("SetVolume(%v): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestSetQualityClamp 测试画质等级限制
func TestSetQualityClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	last := len(config.QualityNames) - 1

	tests := []struct {
		input int
		want  int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{last, last},
		{last + 5, last},
	}

	for _, tt := range tests {
		sm.SetQuality(tt.input)
		if got := sm.GetSettings().Quality; got != tt.want {
			t.Errorf("SetQuality(%d): got %d, want %d", tt.input, got, tt.want)
		}
	}

	sm.SetQuality(0)
	if sm.QualityName() != config.QualityNames[0] {
		t.Errorf("QualityName: got %q, want %q", sm.QualityName(), config.QualityNames[0])
	}
}

// TestSetFullscreen 测试全屏开关
func TestSetFullscreen(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetFullscreen(true)
	if !sm.GetSettings().Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
	sm.SetFullscreen(false)
	if sm.GetSettings().Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestSaveNilGdataManager 降级模式下保存不报错
func TestSaveNilGdataManager(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) failed: %v", err)
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save with nil gdata: got %v, want nil", err)
	}
}

// TestLoadNilGdataManager 降级模式下加载恢复默认值
func TestLoadNilGdataManager(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetVolume(0.1)

	if err := sm.Load(); err != nil {
		t.Errorf("Load with nil gdata: got %v, want nil", err)
	}
	if sm.GetSettings().Volume != 1.0 {
		t.Errorf("Volume after Load: got %v, want 1.0", sm.GetSettings().Volume)
	}
}
