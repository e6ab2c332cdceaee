package modules

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// volumeStep 音量每次调整的幅度
const volumeStep = 0.1

// OptionsPanelModule 选项面板：音量、画质、全屏
//
// 每次修改都会立即保存并通过 onApply 应用到运行环境。
type OptionsPanelModule struct {
	settings *game.SettingsManager
	onApply  func(*game.GameSettings)
	onBack   func()
	menu     *MenuList
	visible  bool

	windowWidth  int
	windowHeight int
}

// NewOptionsPanelModule 创建选项面板
//
// 参数:
//   - settings: 设置管理器（修改后保存）
//   - windowWidth, windowHeight: 逻辑屏幕尺寸
//   - onApply: 设置变化后调用（音量、全屏、画质生效）
//   - onBack: 点击"返回"时调用
func NewOptionsPanelModule(settings *game.SettingsManager, windowWidth, windowHeight int, onApply func(*game.GameSettings), onBack func()) *OptionsPanelModule {
	p := &OptionsPanelModule{
		settings:     settings,
		onApply:      onApply,
		onBack:       onBack,
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}
	p.menu = NewMenuList([]MenuItem{
		{Label: p.volumeLabel, OnSelect: func() { p.AdjustVolume(1) }, OnAdjust: p.AdjustVolume},
		{Label: p.qualityLabel, OnSelect: func() { p.CycleQuality(1) }, OnAdjust: p.CycleQuality},
		{Label: p.fullscreenLabel, OnSelect: p.ToggleFullscreen, OnAdjust: func(int) { p.ToggleFullscreen() }},
		{Label: StaticLabel("Back"), OnSelect: p.back},
	}, float64(windowWidth)/2, float64(windowHeight)/2-80)
	return p
}

// SetOnClick 设置按钮音效回调
func (p *OptionsPanelModule) SetOnClick(fn func()) {
	p.menu.SetOnActivate(fn)
}

// Show 显示面板
func (p *OptionsPanelModule) Show() {
	p.visible = true
}

// IsVisible 面板是否显示
func (p *OptionsPanelModule) IsVisible() bool {
	return p.visible
}

// Update 处理菜单输入
func (p *OptionsPanelModule) Update(in MenuInput) {
	if !p.visible {
		return
	}
	p.menu.Update(in)
}

func (p *OptionsPanelModule) volumeLabel() string {
	return fmt.Sprintf("Volume: < %d%% >", int(p.settings.GetSettings().Volume*100+0.5))
}

func (p *OptionsPanelModule) qualityLabel() string {
	return fmt.Sprintf("Quality: < %s >", p.settings.QualityName())
}

func (p *OptionsPanelModule) fullscreenLabel() string {
	if p.settings.GetSettings().Fullscreen {
		return "Fullscreen: On"
	}
	return "Fullscreen: Off"
}

// AdjustVolume 音量增减一档，超过 100% 时回到 0
func (p *OptionsPanelModule) AdjustVolume(dir int) {
	v := p.settings.GetSettings().Volume + float64(dir)*volumeStep
	if v > 1+1e-9 {
		v = 0
	}
	p.settings.SetVolume(v)
	p.commit()
}

// CycleQuality 画质循环切换
func (p *OptionsPanelModule) CycleQuality(dir int) {
	n := p.qualityCount()
	q := (p.settings.GetSettings().Quality + dir + n) % n
	p.settings.SetQuality(q)
	p.commit()
}

// ToggleFullscreen 切换全屏
func (p *OptionsPanelModule) ToggleFullscreen() {
	p.settings.SetFullscreen(!p.settings.GetSettings().Fullscreen)
	p.commit()
}

func (p *OptionsPanelModule) qualityCount() int {
	return len(config.QualityNames)
}

func (p *OptionsPanelModule) back() {
	p.visible = false
	if p.onBack != nil {
		p.onBack()
	}
}

// commit 保存并应用设置
func (p *OptionsPanelModule) commit() {
	if err := p.settings.Save(); err != nil {
		log.Printf("[OptionsPanelModule] Warning: failed to save settings: %v", err)
	}
	if p.onApply != nil {
		p.onApply(p.settings.GetSettings())
	}
}

// Draw 绘制面板
func (p *OptionsPanelModule) Draw(screen *ebiten.Image) {
	if !p.visible {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(p.windowWidth), float32(p.windowHeight),
		color.RGBA{A: 200}, false)
	DrawCenteredText(screen, "OPTIONS", p.windowWidth/2, p.windowHeight/2-140)
	p.menu.Draw(screen)
}
