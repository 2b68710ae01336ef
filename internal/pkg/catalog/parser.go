package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser 目录文件解析器
type Parser struct {
	maxNameLen int
}

// NewParser 创建解析器
func NewParser() *Parser {
	return &Parser{
		maxNameLen: 64,
	}
}

// document agents.yaml 的顶层结构
type document struct {
	Agents []*AgentDefinition `yaml:"agents"`
}

// Parse 解析目录文件内容
// 逐条校验并补全默认值；任何一条无效即整体失败，目录降级为空。
func (p *Parser) Parse(content []byte) ([]*AgentDefinition, error) {
	var doc document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	agents := make([]*AgentDefinition, 0, len(doc.Agents))
	for i, agent := range doc.Agents {
		if agent == nil {
			return nil, fmt.Errorf("%w: entry %d is empty", ErrInvalidConfig, i)
		}
		if err := p.Validate(agent); err != nil {
			return nil, err
		}
		p.applyDefaults(agent)
		agents = append(agents, agent)
	}

	return agents, nil
}

// Validate 校验单条 Agent 定义
func (p *Parser) Validate(agent *AgentDefinition) error {
	if strings.TrimSpace(agent.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if len(agent.Name) > p.maxNameLen {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, p.maxNameLen)
	}
	return nil
}

// applyDefaults 补全缺省字段
// system_prompt 缺失时回退为 name（Prompt() 已处理），这里只补
// category 与 template_id。
func (p *Parser) applyDefaults(agent *AgentDefinition) {
	if agent.Category == "" {
		agent.Category = CategoryUncategorized
	}
	if agent.TemplateID == "" {
		agent.TemplateID = defaultTemplateID(agent.Name)
	}
}
