package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/fdareview/backend/internal/pkg/i18n"
	"github.com/fdareview/backend/internal/pkg/provider"
	"github.com/fdareview/backend/internal/service"
	"github.com/fdareview/backend/internal/session"
)

// SessionHandler 会话状态处理器
type SessionHandler struct {
	agents *service.AgentService
}

// NewSessionHandler 创建会话处理器
func NewSessionHandler(agents *service.AgentService) *SessionHandler {
	return &SessionHandler{agents: agents}
}

// RegisterRoutes 注册路由
func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/session", h.Get)
	router.PUT("/session/language", h.SetLanguage)
	router.PUT("/session/provider", h.SetProvider)
	router.PUT("/session/agent", h.SelectAgent)
}

// SetLanguageRequest 切换语言请求
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// SetProviderRequest 切换提供商请求
type SetProviderRequest struct {
	Provider string `json:"provider" binding:"required"`
}

// SelectAgentRequest 选择审评专家请求
type SelectAgentRequest struct {
	Agent string `json:"agent" binding:"required"`
}

// Get 获取当前会话状态
func (h *SessionHandler) Get(c *gin.Context) {
	state := session.FromContext(c)

	var selectedAgent string
	if agent := state.SelectedAgent(); agent != nil {
		selectedAgent = agent.TemplateID
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             state.ID,
		"language":       state.Language(),
		"provider":       state.SelectedProvider(),
		"selected_agent": selectedAgent,
		"documents":      state.DocumentNames(),
		"title":          i18n.T(state.Language(), "title"),
	})
}

// SetLanguage 切换界面语言
func (h *SessionHandler) SetLanguage(c *gin.Context) {
	state := session.FromContext(c)

	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		klog.V(6).Infof("SetLanguage: invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := state.SetLanguage(req.Language); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"language": state.Language()})
}

// SetProvider 切换模型提供商
func (h *SessionHandler) SetProvider(c *gin.Context) {
	state := session.FromContext(c)

	var req SetProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		klog.V(6).Infof("SetProvider: invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !provider.IsSupported(req.Provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported model provider"})
		return
	}
	if err := state.SetProvider(req.Provider); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"provider": state.SelectedProvider()})
}

// SelectAgent 选择当前审评专家
func (h *SessionHandler) SelectAgent(c *gin.Context) {
	state := session.FromContext(c)

	var req SelectAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		klog.V(6).Infof("SelectAgent: invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agent, ok := h.agents.Find(state, req.Agent)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "agent not found"})
		return
	}
	state.SelectAgent(agent)

	c.JSON(http.StatusOK, gin.H{
		"agent":       agent.TemplateID,
		"name":        agent.Name,
		"description": agent.Description,
	})
}
