package session

import (
	"fmt"
	"sync"

	"github.com/fdareview/backend/internal/model"
	"github.com/fdareview/backend/internal/pkg/catalog"
	"github.com/fdareview/backend/internal/pkg/i18n"
	"github.com/fdareview/backend/internal/pkg/provider"
)

// ChecklistItems 合规清单的固定条目
var ChecklistItems = []string{
	"Device Description",
	"Indications for Use",
	"Predicate Comparison",
	"Performance Testing",
	"Biocompatibility",
	"Sterilization",
	"Labeling",
	"Risk Analysis",
}

// State 单个会话的全部可变状态
// 每个浏览器会话一份，互不共享；进程结束即丢弃。
type State struct {
	ID string

	mu               sync.RWMutex
	language         string
	selectedAgent    *catalog.AgentDefinition
	selectedProvider string
	documents        map[string]string
	results          map[string]*provider.AnalysisResult
	apiKeys          map[string]string
	customAgents     []*catalog.AgentDefinition
	submissions      []*model.SubmissionRecord
	checklist        map[string]bool
}

// newState 创建初始状态
func newState(id string) *State {
	checklist := make(map[string]bool, len(ChecklistItems))
	for _, item := range ChecklistItems {
		checklist[item] = false
	}
	return &State{
		ID:               id,
		language:         i18n.LangEN,
		selectedProvider: provider.ProviderGemini,
		documents:        make(map[string]string),
		results:          make(map[string]*provider.AnalysisResult),
		apiKeys:          make(map[string]string),
		checklist:        checklist,
	}
}

// Language 返回当前语言
func (s *State) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetLanguage 切换语言
func (s *State) SetLanguage(lang string) error {
	if !i18n.IsSupported(lang) {
		return fmt.Errorf("unsupported language: %s", lang)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
	return nil
}

// SelectedProvider 返回当前选中的提供商
func (s *State) SelectedProvider() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedProvider
}

// SetProvider 切换提供商
func (s *State) SetProvider(providerID string) error {
	if !provider.IsSupported(providerID) {
		return fmt.Errorf("unsupported provider: %s", providerID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedProvider = providerID
	return nil
}

// SelectedAgent 返回当前激活的 Agent（可能为 nil）
func (s *State) SelectedAgent() *catalog.AgentDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedAgent
}

// SelectAgent 激活 Agent
func (s *State) SelectAgent(agent *catalog.AgentDefinition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedAgent = agent
}

// AddDocument 存入上传文档
// 同名文档首次上传生效，之后不再覆盖；返回是否新建。
func (s *State) AddDocument(name, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.documents[name]; exists {
		return false
	}
	s.documents[name] = text
	return true
}

// Document 取文档全文
func (s *State) Document(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.documents[name]
	return text, ok
}

// DocumentNames 已上传文档名列表
func (s *State) DocumentNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.documents))
	for name := range s.documents {
		names = append(names, name)
	}
	return names
}

// SetResult 写入分析结果（同名文档的新结果覆盖旧结果）
func (s *State) SetResult(docName string, result *provider.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[docName] = result
}

// Result 取文档的分析结果
func (s *State) Result(docName string) (*provider.AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[docName]
	return result, ok
}

// SetAPIKey 存入会话级临时密钥
func (s *State) SetAPIKey(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKeys[name] = value
}

// Get 实现 provider.KeyLookup
func (s *State) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.apiKeys[name]
	return value, ok
}

// AddCustomAgent 追加自定义 Agent
func (s *State) AddCustomAgent(agent *catalog.AgentDefinition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customAgents = append(s.customAgents, agent)
}

// CustomAgents 自定义 Agent 列表
func (s *State) CustomAgents() []*catalog.AgentDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*catalog.AgentDefinition, len(s.customAgents))
	copy(out, s.customAgents)
	return out
}

// AddSubmission 追加模拟提交记录
func (s *State) AddSubmission(record *model.SubmissionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(s.submissions, record)
}

// Submissions 模拟提交记录列表
func (s *State) Submissions() []*model.SubmissionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.SubmissionRecord, len(s.submissions))
	copy(out, s.submissions)
	return out
}
