package catalog

import (
	"strings"
)

// 固定分类
const (
	// CategoryUncategorized 未声明分类的 Agent 归入此桶
	CategoryUncategorized = "Uncategorized"

	// CategoryCustom 用户自建 Agent 的固定分类
	CategoryCustom = "Custom Agents"
)

// AgentDefinition Agent 定义
// 来自 agents.yaml 的静态条目，或会话内用户创建的自定义条目。
// 创建后不再修改。
type AgentDefinition struct {
	Name         string `yaml:"name" json:"name"`
	Description  string `yaml:"description" json:"description"`
	SystemPrompt string `yaml:"system_prompt" json:"system_prompt"`
	Category     string `yaml:"category" json:"category"`
	TemplateID   string `yaml:"template_id" json:"template_id"`
}

// Prompt 返回 system prompt，缺失时回退为 name
func (a *AgentDefinition) Prompt() string {
	if a.SystemPrompt == "" {
		return a.Name
	}
	return a.SystemPrompt
}

// defaultTemplateID 由 name 生成默认 template_id
func defaultTemplateID(name string) string {
	id := strings.ToLower(strings.TrimSpace(name))
	id = strings.ReplaceAll(id, " ", "-")
	return id
}
