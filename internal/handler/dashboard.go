package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fdareview/backend/internal/service"
	"github.com/fdareview/backend/internal/session"
)

// DashboardHandler 仪表板处理器
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler 创建仪表板处理器
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// RegisterRoutes 注册路由
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.Get)
}

// Get 获取仪表板快照
func (h *DashboardHandler) Get(c *gin.Context) {
	state := session.FromContext(c)
	c.JSON(http.StatusOK, h.dashboard.Snapshot(state))
}
