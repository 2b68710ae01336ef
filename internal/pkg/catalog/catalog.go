package catalog

import (
	"fmt"
	"os"
	"sync"

	"k8s.io/klog/v2"
)

// Source 读取目录文件内容
// 抽出来便于测试缓存行为（二次读取不应发生）。
type Source func() ([]byte, error)

// FileSource 基于文件路径的 Source
func FileSource(path string) Source {
	return func() ([]byte, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, path)
			}
			return nil, fmt.Errorf("failed to read agent catalog: %w", err)
		}
		return content, nil
	}
}

// Catalog Agent 目录
// 进程生命周期内只读取一次目录文件，之后返回缓存结果；
// 缓存仅随进程重启失效。加载失败不向外抛错，降级为空目录。
type Catalog struct {
	source Source
	parser *Parser

	once       sync.Once
	byCategory map[string][]*AgentDefinition
	agents     []*AgentDefinition
	loadErr    error
}

// New 创建基于文件的目录
func New(path string) *Catalog {
	return NewWithSource(FileSource(path))
}

// NewWithSource 创建目录（自定义 Source）
func NewWithSource(source Source) *Catalog {
	return &Catalog{
		source: source,
		parser: NewParser(),
	}
}

// Load 返回按分类分组的 Agent 列表
// 每个分类内保持文件中的声明顺序。重复调用返回同一份缓存映射。
func (c *Catalog) Load() map[string][]*AgentDefinition {
	c.once.Do(c.load)
	return c.byCategory
}

// List 返回全部 Agent（文件声明顺序）
func (c *Catalog) List() []*AgentDefinition {
	c.once.Do(c.load)
	return c.agents
}

// Count 返回目录内 Agent 总数
func (c *Catalog) Count() int {
	c.once.Do(c.load)
	return len(c.agents)
}

// LoadError 返回加载错误（成功时为 nil）
func (c *Catalog) LoadError() error {
	c.once.Do(c.load)
	return c.loadErr
}

// Find 按 template_id 或 name 查找
func (c *Catalog) Find(key string) (*AgentDefinition, bool) {
	c.once.Do(c.load)
	for _, agent := range c.agents {
		if agent.TemplateID == key || agent.Name == key {
			return agent, true
		}
	}
	return nil, false
}

// load 实际加载（仅执行一次）
func (c *Catalog) load() {
	c.byCategory = make(map[string][]*AgentDefinition)

	content, err := c.source()
	if err != nil {
		klog.Errorf("catalog: failed to read agent source: %v", err)
		c.loadErr = err
		return
	}

	agents, err := c.parser.Parse(content)
	if err != nil {
		klog.Errorf("catalog: failed to parse agent source: %v", err)
		c.loadErr = err
		return
	}

	c.agents = agents
	for _, agent := range agents {
		c.byCategory[agent.Category] = append(c.byCategory[agent.Category], agent)
	}

	klog.V(6).Infof("catalog: loaded %d agents in %d categories", len(c.agents), len(c.byCategory))
}
