package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/fdareview/backend/internal/pkg/i18n"
	"github.com/fdareview/backend/internal/service"
	"github.com/fdareview/backend/internal/session"
)

// AgentHandler 审评专家目录处理器
type AgentHandler struct {
	agents *service.AgentService
}

// NewAgentHandler 创建专家目录处理器
func NewAgentHandler(agents *service.AgentService) *AgentHandler {
	return &AgentHandler{agents: agents}
}

// RegisterRoutes 注册路由
func (h *AgentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/agents", h.List)
	router.POST("/agents", h.CreateCustom)
}

// CreateAgentRequest 创建自定义专家请求
type CreateAgentRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	SystemPrompt string `json:"system_prompt"`
}

// List 按类别返回全部专家（目录 + 本会话自定义）
// 目录加载失败时返回空目录并附带提示语，不报 5xx。
func (h *AgentHandler) List(c *gin.Context) {
	state := session.FromContext(c)

	merged := h.agents.Merged(state)

	resp := gin.H{
		"categories": merged,
		"total":      h.agents.Catalog().Count() + len(state.CustomAgents()),
	}
	if err := h.agents.Catalog().LoadError(); err != nil {
		resp["warning"] = i18n.T(state.Language(), "agents_load_error")
	}

	c.JSON(http.StatusOK, resp)
}

// CreateCustom 创建本会话的自定义专家
func (h *AgentHandler) CreateCustom(c *gin.Context) {
	state := session.FromContext(c)

	var req CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		klog.V(6).Infof("CreateCustom: invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agent, err := h.agents.CreateCustom(state, req.Name, req.Description, req.SystemPrompt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, agent)
}
