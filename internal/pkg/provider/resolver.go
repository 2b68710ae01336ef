package provider

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/fdareview/backend/config"
	"github.com/fdareview/backend/internal/pkg/i18n"
)

// ResolutionState 凭证解析结果状态
type ResolutionState string

const (
	// StateConfigured 客户端已就绪
	StateConfigured ResolutionState = "configured"

	// StateNeedsKey 缺少密钥，等待用户输入后重新解析
	StateNeedsKey ResolutionState = "needs_key"

	// StateAuthError 客户端构造失败
	StateAuthError ResolutionState = "auth_error"

	// StateUnsupported 未识别的提供商，视为未配置
	StateUnsupported ResolutionState = "unsupported"
)

// Resolution 一次凭证解析的结果
// Configured 时携带客户端句柄；NeedsKey 时携带提供商相关的提示语；
// AuthError 时携带提供商名与底层错误信息。
type Resolution struct {
	Provider string          `json:"provider"`
	State    ResolutionState `json:"state"`
	Client   Client          `json:"-"`
	Prompt   string          `json:"prompt,omitempty"`
	Message  string          `json:"message,omitempty"`
}

// Configured 客户端是否就绪
func (r Resolution) Configured() bool {
	return r.State == StateConfigured && r.Client != nil
}

// SecretStore 长效密钥库（按名字查找）
type SecretStore interface {
	Get(ctx context.Context, name string) (string, bool)
}

// KeyLookup 会话内的临时密钥查找
type KeyLookup interface {
	Get(name string) (string, bool)
}

// Resolver 提供商凭证解析器
// 先查长效密钥库，再查会话临时值；每次解析都重新构造客户端，
// 缺密钥路径上无副作用、可重复调用。
type Resolver struct {
	cfg     *config.Config
	secrets SecretStore

	// factory 客户端构造入口（测试替换）
	factory func(cfg *config.Config, providerID, apiKey string) (Client, error)
}

// NewResolver 创建解析器
func NewResolver(cfg *config.Config, secrets SecretStore) *Resolver {
	return &Resolver{
		cfg:     cfg,
		secrets: secrets,
		factory: newClient,
	}
}

// Resolve 解析指定提供商的客户端
// lang 仅用于 NeedsKey 提示语的本地化。
func (r *Resolver) Resolve(ctx context.Context, providerID, lang string, transient KeyLookup) Resolution {
	if !IsSupported(providerID) {
		klog.V(6).Infof("resolver: provider %q is not supported, treating as not configured", providerID)
		return Resolution{Provider: providerID, State: StateUnsupported}
	}

	keyName := KeyName(providerID)

	apiKey, ok := r.secrets.Get(ctx, keyName)
	if !ok && transient != nil {
		apiKey, ok = transient.Get(keyName)
	}
	if !ok || apiKey == "" {
		klog.V(6).Infof("resolver: no key for %s, asking for input", providerID)
		return Resolution{
			Provider: providerID,
			State:    StateNeedsKey,
			Prompt:   keyPrompt(providerID, lang),
		}
	}

	client, err := r.factory(r.cfg, providerID, apiKey)
	if err != nil {
		klog.Errorf("resolver: %s client construction failed: %v", providerID, err)
		return Resolution{
			Provider: providerID,
			State:    StateAuthError,
			Message:  fmt.Sprintf("%s Authentication Error: %v", providerID, err),
		}
	}

	klog.V(6).Infof("resolver: %s client configured", providerID)
	return Resolution{
		Provider: providerID,
		State:    StateConfigured,
		Client:   client,
	}
}

// keyPrompt 按提供商取本地化的密钥输入提示
func keyPrompt(providerID, lang string) string {
	if providerID == ProviderGemini {
		return i18n.T(lang, "gemini_api_prompt")
	}
	return i18n.T(lang, "xai_api_prompt")
}
