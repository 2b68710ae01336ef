package provider

import (
	"context"
	"strings"

	"github.com/fdareview/backend/config"
	"github.com/fdareview/backend/internal/pkg/catalog"
)

// 支持的提供商标识
const (
	ProviderGemini = "Gemini"
	ProviderGrok   = "Grok"
)

// Client 单个提供商的客户端句柄
// 每个变体负责自己的提示词格式与底层调用；新增提供商即新增一个
// 变体实现，而不是扩展分支链。
type Client interface {
	// Provider 返回所属提供商标识
	Provider() string

	// Analyze 用指定 Agent 分析文档节选，返回生成文本
	Analyze(ctx context.Context, agent *catalog.AgentDefinition, excerpt string) (string, error)
}

// IsSupported 检查提供商标识是否受支持
func IsSupported(providerID string) bool {
	switch providerID {
	case ProviderGemini, ProviderGrok:
		return true
	}
	return false
}

// KeyName 提供商对应的 API Key 查找名
// 长效密钥库与会话临时值共用同一名字。
func KeyName(providerID string) string {
	return strings.ToUpper(providerID) + "_API_KEY"
}

// newClient 按提供商构造客户端
// 未知提供商在上层已被拦截，这里兜底返回 nil。
func newClient(cfg *config.Config, providerID, apiKey string) (Client, error) {
	switch providerID {
	case ProviderGemini:
		return newGeminiClient(&cfg.Providers.Gemini, apiKey)
	case ProviderGrok:
		return newGrokClient(&cfg.Providers.Grok, apiKey)
	}
	return nil, nil
}
