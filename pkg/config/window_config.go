package config

// 窗口与调试地图的布局常量
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 960

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 640

	// MapPixelsPerUnit 俯视调试地图中每个世界单位对应的像素数
	MapPixelsPerUnit = 8.0

	// GameTitle 窗口标题
	GameTitle = "Hollow"
)

// QualityNames 画质档位名称（索引即持久化的画质等级）
var QualityNames = []string{"Low", "Medium", "High"}
