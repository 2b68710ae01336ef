package repository

import "errors"

// 预定义错误
var (
	// ErrAPIKeyNotFound API Key 不存在
	ErrAPIKeyNotFound = errors.New("api key not found")

	// ErrAPIKeyDuplicate API Key 名称重复
	ErrAPIKeyDuplicate = errors.New("api key name already exists")
)
