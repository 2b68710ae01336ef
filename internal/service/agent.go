package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/fdareview/backend/internal/pkg/catalog"
	"github.com/fdareview/backend/internal/session"
)

// AgentService Agent 目录与自定义 Agent 的合并视图
// 目录加载与自定义存储是两个独立来源，在这里（调用方）合并，
// 目录组件本身不感知自定义条目。
type AgentService struct {
	catalog *catalog.Catalog
}

// NewAgentService 创建 Agent 服务
func NewAgentService(cat *catalog.Catalog) *AgentService {
	return &AgentService{catalog: cat}
}

// Catalog 返回底层目录
func (s *AgentService) Catalog() *catalog.Catalog {
	return s.catalog
}

// Merged 目录分类 + 会话自定义分类的合并视图
func (s *AgentService) Merged(state *session.State) map[string][]*catalog.AgentDefinition {
	categories := s.catalog.Load()

	merged := make(map[string][]*catalog.AgentDefinition, len(categories)+1)
	for category, agents := range categories {
		merged[category] = agents
	}

	if custom := state.CustomAgents(); len(custom) > 0 {
		merged[catalog.CategoryCustom] = custom
	}

	return merged
}

// Find 在目录与会话自定义中查找 Agent（按 template_id 或 name）
func (s *AgentService) Find(state *session.State, key string) (*catalog.AgentDefinition, bool) {
	if agent, ok := s.catalog.Find(key); ok {
		return agent, true
	}
	for _, agent := range state.CustomAgents() {
		if agent.TemplateID == key || agent.Name == key {
			return agent, true
		}
	}
	return nil, false
}

// CreateCustom 创建自定义 Agent 并存入会话
// 固定归入 Custom Agents 分类；不回写目录文件，进程重启即丢失。
func (s *AgentService) CreateCustom(state *session.State, name, description, systemPrompt string) (*catalog.AgentDefinition, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("agent name is required")
	}

	agent := &catalog.AgentDefinition{
		Name:         name,
		Description:  description,
		SystemPrompt: systemPrompt,
		Category:     catalog.CategoryCustom,
		TemplateID:   "custom-" + uuid.NewString(),
	}
	state.AddCustomAgent(agent)

	klog.V(6).Infof("agent: created custom agent %q for session %s", name, state.ID)
	return agent, nil
}
