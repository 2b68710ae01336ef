package catalog

import "errors"

// 预定义错误
var (
	// ErrInvalidConfig 目录条目无效
	ErrInvalidConfig = errors.New("invalid agent entry")

	// ErrInvalidName name 格式错误
	ErrInvalidName = errors.New("invalid agent name")

	// ErrCatalogNotFound 目录文件不存在
	ErrCatalogNotFound = errors.New("agent catalog file not found")
)
