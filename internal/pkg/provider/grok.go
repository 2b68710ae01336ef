package provider

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"k8s.io/klog/v2"

	"github.com/fdareview/backend/config"
	"github.com/fdareview/backend/internal/pkg/catalog"
)

// grokClient Grok 提供商客户端
// 走 x.ai 的 OpenAI 兼容端点，system + user 两条消息，
// 固定 3600 秒请求超时。
type grokClient struct {
	chatModel model.BaseChatModel
}

// newGrokClient 创建 Grok 客户端
func newGrokClient(cfg *config.GrokConfig, apiKey string) (Client, error) {
	klog.V(6).Infof("provider: creating Grok client: model=%s, baseURL=%s, timeout=%v", cfg.Model, cfg.BaseURL, cfg.Timeout)

	chatModel, err := openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  apiKey,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}

	return &grokClient{chatModel: chatModel}, nil
}

// Provider 返回所属提供商标识
func (c *grokClient) Provider() string {
	return ProviderGrok
}

// Analyze 开一轮对话：system 角色消息 + user 角色消息，取一条补全
func (c *grokClient) Analyze(ctx context.Context, agent *catalog.AgentDefinition, excerpt string) (string, error) {
	messages := grokMessages(agent, excerpt)
	klog.V(6).Infof("provider: Grok analyze: agent=%s, messages=%d", agent.Name, len(messages))

	resp, err := c.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", err
	}

	return resp.Content, nil
}

// grokMessages 组装 system + user 消息序列
func grokMessages(agent *catalog.AgentDefinition, excerpt string) []*schema.Message {
	return []*schema.Message{
		schema.SystemMessage(fmt.Sprintf("You are %s. %s", agent.Name, agent.SystemPrompt)),
		schema.UserMessage(fmt.Sprintf("Analyze this document excerpt:\n---\n%s", excerpt)),
	}
}
