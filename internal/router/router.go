package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/fdareview/backend/config"
	"github.com/fdareview/backend/internal/handler"
	"github.com/fdareview/backend/internal/session"
)

// Handlers 路由挂载的全部处理器
type Handlers struct {
	Session    *handler.SessionHandler
	Agent      *handler.AgentHandler
	Provider   *handler.ProviderHandler
	Document   *handler.DocumentHandler
	Analysis   *handler.AnalysisHandler
	Checklist  *handler.ChecklistHandler
	Dashboard  *handler.DashboardHandler
	Submission *handler.SubmissionHandler
	APIKey     *handler.APIKeyHandler
	Config     *handler.ConfigHandler
}

// Setup 构建 gin 引擎并挂载路由
// /api 组整体走会话中间件，保证每个请求绑定一份会话状态。
func Setup(cfg *config.Config, sessions *session.Manager, h *Handlers) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	api := r.Group("/api")
	api.Use(session.Middleware(sessions))
	{
		h.Session.RegisterRoutes(api)
		h.Agent.RegisterRoutes(api)
		h.Provider.RegisterRoutes(api)
		h.Document.RegisterRoutes(api)
		h.Analysis.RegisterRoutes(api)
		h.Checklist.RegisterRoutes(api)
		h.Dashboard.RegisterRoutes(api)
		h.Submission.RegisterRoutes(api)
		h.APIKey.RegisterRoutes(api)
		h.Config.RegisterRoutes(api)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
