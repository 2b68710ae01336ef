package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/fdareview/backend/internal/model"
	"github.com/fdareview/backend/internal/pkg/provider"
	"github.com/fdareview/backend/internal/repository"
	"github.com/fdareview/backend/internal/service"
)

// APIKeyHandler API Key 处理器
type APIKeyHandler struct {
	service service.APIKeyService
}

// NewAPIKeyHandler 创建 API Key 处理器
func NewAPIKeyHandler(service service.APIKeyService) *APIKeyHandler {
	return &APIKeyHandler{service: service}
}

// RegisterRoutes 注册路由
func (h *APIKeyHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api-keys", h.ListAPIKeys)
	router.POST("/api-keys", h.CreateAPIKey)
	router.DELETE("/api-keys/:id", h.DeleteAPIKey)
	router.PATCH("/api-keys/:id/status", h.UpdateStatus)
}

// CreateAPIKeyRequest 创建 API Key 请求
// name 缺省时按提供商推导查找名（如 GEMINI_API_KEY）。
type CreateAPIKeyRequest struct {
	Name     string `json:"name"`
	Provider string `json:"provider" binding:"required"`
	APIKey   string `json:"api_key" binding:"required"`
}

// UpdateStatusRequest 更新状态请求
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"` // enabled/disabled
}

// APIKeyResponse API Key 响应（脱敏）
type APIKeyResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Provider  string    `json:"provider"`
	APIKey    string    `json:"api_key"` // 脱敏后
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateAPIKey 创建 API Key 配置
func (h *APIKeyHandler) CreateAPIKey(c *gin.Context) {
	var req CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		klog.V(6).Infof("CreateAPIKey: invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !provider.IsSupported(req.Provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported model provider"})
		return
	}
	if req.Name == "" {
		req.Name = provider.KeyName(req.Provider)
	}

	apiKey, err := h.service.CreateAPIKey(c.Request.Context(), &service.CreateAPIKeyRequest{
		Name:     req.Name,
		Provider: req.Provider,
		APIKey:   req.APIKey,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAPIKeyDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		klog.Errorf("CreateAPIKey: failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, h.toResponse(apiKey))
}

// ListAPIKeys 列出所有 API Key 配置
func (h *APIKeyHandler) ListAPIKeys(c *gin.Context) {
	apiKeys, err := h.service.ListAPIKeys(c.Request.Context())
	if err != nil {
		klog.Errorf("ListAPIKeys: failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]*APIKeyResponse, 0, len(apiKeys))
	for _, apiKey := range apiKeys {
		responses = append(responses, h.toResponse(apiKey))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  responses,
		"total": len(responses),
	})
}

// DeleteAPIKey 删除 API Key 配置
func (h *APIKeyHandler) DeleteAPIKey(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.DeleteAPIKey(c.Request.Context(), uint(id)); err != nil {
		klog.Errorf("DeleteAPIKey: failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted successfully"})
}

// UpdateStatus 更新状态
func (h *APIKeyHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		klog.V(6).Infof("UpdateStatus: invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateAPIKeyStatus(c.Request.Context(), uint(id), req.Status); err != nil {
		klog.Errorf("UpdateStatus: failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated successfully"})
}

// toResponse 转换为响应对象（脱敏 API Key）
func (h *APIKeyHandler) toResponse(apiKey *model.APIKey) *APIKeyResponse {
	return &APIKeyResponse{
		ID:        apiKey.ID,
		Name:      apiKey.Name,
		Provider:  apiKey.Provider,
		APIKey:    apiKey.MaskAPIKey(),
		Status:    apiKey.Status,
		CreatedAt: apiKey.CreatedAt,
		UpdatedAt: apiKey.UpdatedAt,
	}
}
