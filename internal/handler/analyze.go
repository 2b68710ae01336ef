package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/fdareview/backend/internal/pkg/catalog"
	"github.com/fdareview/backend/internal/pkg/provider"
	"github.com/fdareview/backend/internal/service"
	"github.com/fdareview/backend/internal/session"
)

// Dispatcher 分析执行入口
type Dispatcher interface {
	Run(ctx context.Context, providerID string, client provider.Client, agent *catalog.AgentDefinition, documentText string) *provider.AnalysisResult
}

// AnalysisHandler 文档分析处理器
type AnalysisHandler struct {
	agents     *service.AgentService
	resolver   Resolver
	dispatcher Dispatcher
}

// NewAnalysisHandler 创建分析处理器
func NewAnalysisHandler(agents *service.AgentService, resolver Resolver, dispatcher Dispatcher) *AnalysisHandler {
	return &AnalysisHandler{
		agents:     agents,
		resolver:   resolver,
		dispatcher: dispatcher,
	}
}

// RegisterRoutes 注册路由
func (h *AnalysisHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/documents/:name/analyze", h.Analyze)
	router.GET("/documents/:name/result", h.Result)
}

// AnalyzeRequest 分析请求，agent 缺省时用会话当前选中的专家
type AnalyzeRequest struct {
	Agent string `json:"agent"`
}

// Analyze 用选中的专家分析文档
// 凭证未就绪时返回解析状态而不是执行；执行失败以 error 状态的结果落盘，
// 不报 5xx。
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	state := session.FromContext(c)
	name := c.Param("name")

	text, ok := state.Document(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}

	var req AnalyzeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			klog.V(6).Infof("Analyze: invalid request: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	agent := state.SelectedAgent()
	if req.Agent != "" {
		found, ok := h.agents.Find(state, req.Agent)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "agent not found"})
			return
		}
		agent = found
	}
	if agent == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no agent selected"})
		return
	}

	providerID := state.SelectedProvider()
	res := h.resolver.Resolve(c.Request.Context(), providerID, state.Language(), state)
	if !res.Configured() {
		c.JSON(http.StatusConflict, gin.H{"resolution": res})
		return
	}

	klog.V(6).Infof("Analyze: document=%s agent=%s provider=%s", name, agent.Name, providerID)
	result := h.dispatcher.Run(c.Request.Context(), providerID, res.Client, agent, text)
	state.SetResult(name, result)

	c.JSON(http.StatusOK, result)
}

// Result 获取文档最近一次的分析结果
func (h *AnalysisHandler) Result(c *gin.Context) {
	state := session.FromContext(c)
	name := c.Param("name")

	if _, ok := state.Document(name); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}

	result, ok := state.Result(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no analysis result"})
		return
	}

	c.JSON(http.StatusOK, result)
}
