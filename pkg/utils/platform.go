package utils

import "os"

// IsMobile 检测当前是否以移动端模式运行
// 可以通过设置环境变量 HOLLOW_MOBILE_EMULATE=1 强制启用移动模式（低画质默认值，用于本地调试）
func IsMobile() bool {
	return os.Getenv("HOLLOW_MOBILE_EMULATE") == "1"
}
