package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/entities"
	"github.com/decker502/hollow/pkg/types"
	"github.com/decker502/hollow/pkg/utils"
)

const (
	batteryEmptyMessage = "Battery empty"
	messageDuration     = 2.0
)

// FlashlightSystem 手电筒开关与电量
//
// 开启期间每经过 DrainInterval 秒消耗 DrainAmount 电量，电量耗尽时自动关闭。
// 钥匙收集后由目标系统通知 RecomputeDrainInterval。
type FlashlightSystem struct {
	em   *ecs.EntityManager
	cfg  *config.PlayerConfig
	cues CueSink
	hud  *components.HUDComponent
	keys KeyCounter
}

// NewFlashlightSystem 创建手电筒系统
//
// 参数:
//   - keys: 已收集钥匙数的只读访问（通常是 ObjectiveSystem）
func NewFlashlightSystem(em *ecs.EntityManager, cfg *config.PlayerConfig, cues CueSink, hud *components.HUDComponent, keys KeyCounter) *FlashlightSystem {
	if cues == nil {
		cues = NoAudio()
	}
	if hud == nil {
		hud = &components.HUDComponent{}
	}
	return &FlashlightSystem{em: em, cfg: cfg, cues: cues, hud: hud, keys: keys}
}

func (s *FlashlightSystem) flashlight() (*components.FlashlightComponent, *components.LightComponent, bool) {
	id, ok := findPlayer(s.em)
	if !ok {
		return nil, nil, false
	}
	fl, ok := ecs.GetComponent[*components.FlashlightComponent](s.em, id)
	if !ok {
		return nil, nil, false
	}
	light, _ := ecs.GetComponent[*components.LightComponent](s.em, id)
	return fl, light, true
}

// Start 初始化电量显示
func (s *FlashlightSystem) Start() {
	if fl, _, ok := s.flashlight(); ok {
		s.updateBatteryText(fl)
	}
}

// Update 每帧更新：处理开关输入与耗电
func (s *FlashlightSystem) Update(deltaTime float64, input types.InputSnapshot) {
	fl, light, ok := s.flashlight()
	if !ok {
		return
	}

	if input.FlashlightPressed {
		s.toggle(fl, light)
	}

	if !fl.On {
		return
	}
	fl.SinceLastDrain += deltaTime
	if fl.SinceLastDrain >= fl.DrainInterval {
		s.drain(fl, light, s.cfg.Flashlight.DrainAmount)
		fl.SinceLastDrain = 0
	}
}

func (s *FlashlightSystem) toggle(fl *components.FlashlightComponent, light *components.LightComponent) {
	if fl.Battery <= 0 {
		log.Printf("[FlashlightSystem] Warning: battery is empty, cannot toggle flashlight")
		s.hud.ShowMessage(batteryEmptyMessage, messageDuration)
		return
	}
	s.setOn(fl, light, !fl.On)
	if fl.On {
		s.cues.PlayCue(s.cfg.Cues.FlashlightOn)
	} else {
		s.cues.PlayCue(s.cfg.Cues.FlashlightOff)
	}
}

func (s *FlashlightSystem) setOn(fl *components.FlashlightComponent, light *components.LightComponent, on bool) {
	fl.On = on
	if light != nil {
		light.Set(light.Color, entities.FlashlightIntensity, light.Range, on)
	}
}

func (s *FlashlightSystem) drain(fl *components.FlashlightComponent, light *components.LightComponent, amount float64) {
	if fl.Battery <= 0 {
		return
	}
	fl.Battery = utils.Clamp(fl.Battery-amount, 0, fl.MaxBattery)
	if fl.Battery == 0 {
		s.setOn(fl, light, false)
		s.cues.PlayCue(s.cfg.Cues.FlashlightOff)
		log.Printf("[FlashlightSystem] Battery depleted, flashlight off")
	}
	s.updateBatteryText(fl)
}

func (s *FlashlightSystem) updateBatteryText(fl *components.FlashlightComponent) {
	s.hud.SetBatteryText(fmt.Sprintf("%d%%", int(math.Ceil(fl.Battery))))
}

// RecomputeDrainInterval 按已收集钥匙数调整耗电间隔（BatteryListener）
//
// 收集数恰好等于某个检查点时，在当前间隔上减去该检查点的 Delta；
// 其余收集数把间隔重置为基础值。结果不低于 MinDrainInterval。
func (s *FlashlightSystem) RecomputeDrainInterval() {
	fl, _, ok := s.flashlight()
	if !ok || s.keys == nil {
		return
	}
	fl.DrainInterval = NextDrainInterval(fl.DrainInterval, s.keys.KeysCollected(), s.cfg.Flashlight)
	log.Printf("[FlashlightSystem] Drain interval now %.2fs", fl.DrainInterval)
}

// NextDrainInterval 计算钥匙数变化后的耗电间隔
func NextDrainInterval(current float64, keysCollected int, cfg config.FlashlightConfig) float64 {
	next := cfg.BaseDrainInterval
	for _, step := range cfg.DrainSchedule {
		if step.Keys == keysCollected {
			next = current - step.Delta
			break
		}
	}
	return max(next, cfg.MinDrainInterval)
}

// Battery 当前电量
func (s *FlashlightSystem) Battery() float64 {
	if fl, _, ok := s.flashlight(); ok {
		return fl.Battery
	}
	return 0
}
