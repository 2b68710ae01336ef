package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/fdareview/backend/internal/session"
)

// ChecklistHandler 合规清单处理器
type ChecklistHandler struct{}

// NewChecklistHandler 创建清单处理器
func NewChecklistHandler() *ChecklistHandler {
	return &ChecklistHandler{}
}

// RegisterRoutes 注册路由
func (h *ChecklistHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/checklist", h.Get)
	router.PUT("/checklist", h.SetItem)
}

// SetChecklistItemRequest 勾选或取消勾选清单条目
type SetChecklistItemRequest struct {
	Label   string `json:"label" binding:"required"`
	Checked *bool  `json:"checked" binding:"required"`
}

// Get 获取清单状态与完成度
func (h *ChecklistHandler) Get(c *gin.Context) {
	state := session.FromContext(c)

	c.JSON(http.StatusOK, gin.H{
		"items":      state.ChecklistSnapshot(),
		"progress":   state.ChecklistProgress(),
		"completion": state.CompletionLabel(),
	})
}

// SetItem 更新单个清单条目
func (h *ChecklistHandler) SetItem(c *gin.Context) {
	state := session.FromContext(c)

	var req SetChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		klog.V(6).Infof("SetItem: invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := state.SetChecklistItem(req.Label, *req.Checked); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      state.ChecklistSnapshot(),
		"progress":   state.ChecklistProgress(),
		"completion": state.CompletionLabel(),
	})
}
