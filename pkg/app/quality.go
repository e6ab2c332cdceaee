package app

import (
	"github.com/decker502/hollow/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// QualityProfile 画质等级对应的渲染参数
type QualityProfile struct {
	Level  int           // 修正后的画质等级
	Filter ebiten.Filter // 最终画面缩放滤波
	VSync  bool          // 垂直同步
}

// qualityProfiles 按 config.QualityNames 顺序排列
var qualityProfiles = []QualityProfile{
	{Level: 0, Filter: ebiten.FilterNearest, VSync: false},
	{Level: 1, Filter: ebiten.FilterLinear, VSync: false},
	{Level: 2, Filter: ebiten.FilterLinear, VSync: true},
}

// QualityProfileFor 返回画质等级的渲染参数，越界等级取最近的有效值
func QualityProfileFor(level int) QualityProfile {
	level = max(0, min(level, len(config.QualityNames)-1, len(qualityProfiles)-1))
	return qualityProfiles[level]
}
