package session

import (
	"sync"

	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// Manager 会话管理器
// 按会话 ID 隔离状态；任何 ClientHandle、文档、结果都不跨会话共享。
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

// NewManager 创建会话管理器
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*State),
	}
}

// Create 创建新会话
func (m *Manager) Create() *State {
	state := newState(uuid.NewString())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[state.ID] = state

	klog.V(6).Infof("session: created %s", state.ID)
	return state
}

// Get 按 ID 取会话
func (m *Manager) Get(id string) (*State, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.sessions[id]
	return state, ok
}

// GetOrCreate 取会话，不存在时新建
func (m *Manager) GetOrCreate(id string) *State {
	if id != "" {
		if state, ok := m.Get(id); ok {
			return state
		}
	}
	return m.Create()
}

// Count 活跃会话数
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
