package components

import "image/color"

// LightComponent 灯光状态
// 生成点灯、手电筒等都通过此组件表达，渲染端根据它绘制光照
type LightComponent struct {
	Color     color.RGBA
	Intensity float64
	Range     float64
	Enabled   bool
}

// Set 一次性设置灯光全部参数
// 关闭时强度置 0
func (l *LightComponent) Set(c color.RGBA, intensity, lightRange float64, enabled bool) {
	l.Color = c
	l.Range = lightRange
	l.Enabled = enabled
	if enabled {
		l.Intensity = intensity
	} else {
		l.Intensity = 0
	}
}
