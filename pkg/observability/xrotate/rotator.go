package xrotate

import "io"

// Rotator 日志轮转器接口，所有实现都必须是并发安全的。
type Rotator interface {
	io.WriteCloser

	// Rotate 手动触发轮转：关闭当前文件，重命名为备份，创建新文件。
	Rotate() error
}
