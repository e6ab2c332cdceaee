package components

// PortalComponent 出口传送门
type PortalComponent struct {
	SpawnIndex int // 在候选位置列表中的索引
}
