package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/fdareview/backend/internal/pkg/i18n"
	"github.com/fdareview/backend/internal/pkg/provider"
	"github.com/fdareview/backend/internal/session"
)

// Resolver 凭证解析入口
type Resolver interface {
	Resolve(ctx context.Context, providerID, lang string, transient provider.KeyLookup) provider.Resolution
}

// ProviderHandler 模型提供商处理器
type ProviderHandler struct {
	resolver Resolver
}

// NewProviderHandler 创建提供商处理器
func NewProviderHandler(resolver Resolver) *ProviderHandler {
	return &ProviderHandler{resolver: resolver}
}

// RegisterRoutes 注册路由
func (h *ProviderHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/providers", h.List)
	router.GET("/providers/:provider/resolve", h.Resolve)
	router.PUT("/providers/:provider/key", h.SetKey)
}

// SetKeyRequest 会话内密钥录入请求
type SetKeyRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}

// List 列出支持的提供商
func (h *ProviderHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"providers": []string{provider.ProviderGemini, provider.ProviderGrok},
	})
}

// Resolve 解析指定提供商的凭证状态
// 只返回状态与提示语，客户端句柄不出网。
func (h *ProviderHandler) Resolve(c *gin.Context) {
	state := session.FromContext(c)
	providerID := c.Param("provider")

	res := h.resolver.Resolve(c.Request.Context(), providerID, state.Language(), state)
	if res.State == provider.StateAuthError {
		klog.Errorf("Resolve: %s: %s", providerID, res.Message)
	}

	c.JSON(http.StatusOK, res)
}

// SetKey 在会话内录入提供商密钥
// 密钥只写入本会话，进程结束即丢弃。
func (h *ProviderHandler) SetKey(c *gin.Context) {
	state := session.FromContext(c)
	providerID := c.Param("provider")

	if !provider.IsSupported(providerID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported model provider"})
		return
	}

	var req SetKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		klog.V(6).Infof("SetKey: invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state.SetAPIKey(provider.KeyName(providerID), req.APIKey)

	c.JSON(http.StatusOK, gin.H{
		"message": i18n.T(state.Language(), "api_success"),
	})
}
