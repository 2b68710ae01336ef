package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/fdareview/backend/internal/service"
	"github.com/fdareview/backend/internal/session"
)

// SubmissionHandler 模拟提交处理器
type SubmissionHandler struct {
	submissions *service.SubmissionService
}

// NewSubmissionHandler 创建提交处理器
func NewSubmissionHandler(submissions *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

// RegisterRoutes 注册路由
func (h *SubmissionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/submissions", h.List)
	router.POST("/submissions", h.Generate)
}

// GenerateSubmissionRequest 生成模拟提交请求
type GenerateSubmissionRequest struct {
	DeviceType string `json:"device_type"`
}

// List 列出本会话生成的模拟提交
func (h *SubmissionHandler) List(c *gin.Context) {
	state := session.FromContext(c)

	records := state.Submissions()
	c.JSON(http.StatusOK, gin.H{
		"submissions": records,
		"total":       len(records),
	})
}

// Generate 生成一条模拟提交记录
func (h *SubmissionHandler) Generate(c *gin.Context) {
	state := session.FromContext(c)

	var req GenerateSubmissionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			klog.V(6).Infof("Generate: invalid request: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	record := h.submissions.Generate(req.DeviceType)
	state.AddSubmission(record)

	c.JSON(http.StatusCreated, record)
}
