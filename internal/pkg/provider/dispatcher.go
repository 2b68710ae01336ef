package provider

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/fdareview/backend/internal/pkg/catalog"
)

// MaxDocumentChars 分派时送入模型的文档上限（硬截断，所有提供商一致）
const MaxDocumentChars = 12000

// Dispatcher Agent 分派器
// 单次阻塞调用，单一结果；不重试，不流式。任何失败都收敛为
// status=error 的 AnalysisResult，不向上抛错。
type Dispatcher struct{}

// NewDispatcher 创建分派器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Run 执行一次分析分派
// client 为空时立即返回错误结果，不触网。
func (d *Dispatcher) Run(ctx context.Context, providerID string, client Client, agent *catalog.AgentDefinition, documentText string) *AnalysisResult {
	if client == nil {
		klog.Warningf("dispatcher: %s client not initialized, agent=%s", providerID, agent.Name)
		return errorResult(agent.Name, fmt.Sprintf("%s client not initialized", providerID))
	}

	excerpt := Truncate(documentText)
	klog.V(6).Infof("dispatcher: run: provider=%s, agent=%s, excerptLength=%d", providerID, agent.Name, len(excerpt))

	switch providerID {
	case ProviderGemini, ProviderGrok:
		text, err := client.Analyze(ctx, agent, excerpt)
		if err != nil {
			klog.Errorf("dispatcher: %s call failed: %v", providerID, err)
			return errorResult(agent.Name, err.Error())
		}
		return successResult(agent.Name, text)
	}

	klog.Errorf("dispatcher: unsupported model provider: %s", providerID)
	return errorResult(agent.Name, "unsupported model provider")
}

// Truncate 截断文档到提供商输入上限
// 上限按字符数计，多字节文本不会切在字符中间；
// 存储保留全文，截断只发生在分派时。
func Truncate(documentText string) string {
	runes := []rune(documentText)
	if len(runes) <= MaxDocumentChars {
		return documentText
	}
	return string(runes[:MaxDocumentChars])
}
