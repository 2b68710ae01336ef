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

// geminiClient Gemini 提供商客户端
// 走 Gemini 的 OpenAI 兼容端点，单条组合提示词。
// 不设置显式超时，保留原系统的行为差异。
type geminiClient struct {
	chatModel model.BaseChatModel
}

// newGeminiClient 创建 Gemini 客户端
func newGeminiClient(cfg *config.GeminiConfig, apiKey string) (Client, error) {
	klog.V(6).Infof("provider: creating Gemini client: model=%s, baseURL=%s", cfg.Model, cfg.BaseURL)

	chatModel, err := openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  apiKey,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, err
	}

	return &geminiClient{chatModel: chatModel}, nil
}

// Provider 返回所属提供商标识
func (c *geminiClient) Provider() string {
	return ProviderGemini
}

// Analyze 发送组合提示词并提取纯文本响应
func (c *geminiClient) Analyze(ctx context.Context, agent *catalog.AgentDefinition, excerpt string) (string, error) {
	prompt := geminiPrompt(agent, excerpt)
	klog.V(6).Infof("provider: Gemini analyze: agent=%s, promptLength=%d", agent.Name, len(prompt))

	resp, err := c.chatModel.Generate(ctx, []*schema.Message{
		schema.UserMessage(prompt),
	})
	if err != nil {
		return "", err
	}

	return resp.Content, nil
}

// geminiPrompt 组合角色、任务与文档节选为单条提示词
func geminiPrompt(agent *catalog.AgentDefinition, excerpt string) string {
	return fmt.Sprintf(
		"**Role:** %s\n\n**Task:** Analyze the following document excerpt.\n\n**Document:**\n---\n%s",
		agent.Prompt(), excerpt,
	)
}
