package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/decker502/hollow/pkg/embedded"
)

// ReadDataFile 读取配置文件
//
// 优先读取磁盘上的文件（便于调试时直接修改 data/ 下的 YAML），
// 磁盘上不存在时回退到嵌入资源。
//
// 参数:
//   - path: 配置文件路径（如 "data/player.yaml"）
//
// 返回:
//   - []byte: 文件内容
//   - error: 两处都读取失败时返回错误
func ReadDataFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !embedded.IsInitialized() {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	data, embErr := embedded.ReadFile(filepath.ToSlash(path))
	if embErr != nil {
		return nil, fmt.Errorf("failed to read %s (disk and embedded): %w", path, embErr)
	}
	return data, nil
}
