package components

// FlashlightComponent 手电筒电量状态
type FlashlightComponent struct {
	On             bool
	Battery        float64
	MaxBattery     float64
	DrainInterval  float64 // 每消耗一次电量所需的开启时间（秒）
	SinceLastDrain float64
}
