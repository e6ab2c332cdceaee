package components

// KeyComponent 钥匙
type KeyComponent struct {
	SpawnerIndex int
	Collected    bool // 防止同一把钥匙被重复拾取
}

// BatteryPickupComponent 电池拾取物
type BatteryPickupComponent struct {
	Collected bool
}

// InspectableComponent 可检视道具
// 点击后随机播放一段音频，播放期间不响应再次点击
type InspectableComponent struct {
	Name    string
	Clips   []string
	Playing bool
}

// InteractableComponent 可交互标记（交互系统据此筛选候选实体）
type InteractableComponent struct {
	Prompt string
}
