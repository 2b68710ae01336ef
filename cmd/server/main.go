package main

import (
	"context"
	"flag"
	"log"
	"os"

	"k8s.io/klog/v2"

	"github.com/fdareview/backend/config"
	"github.com/fdareview/backend/internal/handler"
	"github.com/fdareview/backend/internal/pkg/catalog"
	"github.com/fdareview/backend/internal/pkg/database"
	"github.com/fdareview/backend/internal/pkg/provider"
	"github.com/fdareview/backend/internal/repository"
	"github.com/fdareview/backend/internal/router"
	"github.com/fdareview/backend/internal/service"
	"github.com/fdareview/backend/internal/session"
)

func main() {
	// 初始化 klog
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("服务启动中...")

	cfg := config.GetConfig()

	if err := os.MkdirAll(cfg.Data.Dir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// 初始化数据库
	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 初始化 Repository
	apiKeyRepo := repository.NewAPIKeyRepository(db)

	// 初始化 Service
	apiKeyService := service.NewAPIKeyService(apiKeyRepo)
	agentCatalog := catalog.New(cfg.Catalog.Path)
	agentService := service.NewAgentService(agentCatalog)
	submissionService := service.NewSubmissionService()

	// 会话管理与凭证解析
	sessions := session.NewManager()
	resolver := provider.NewResolver(cfg, apiKeyService)
	dispatcher := provider.NewDispatcher()
	dashboardService := service.NewDashboardService(agentCatalog, sessions)

	// 启动时从环境变量灌入长效密钥库
	seedAPIKeys(apiKeyService)

	// 初始化 Handler
	handlers := &router.Handlers{
		Session:    handler.NewSessionHandler(agentService),
		Agent:      handler.NewAgentHandler(agentService),
		Provider:   handler.NewProviderHandler(resolver),
		Document:   handler.NewDocumentHandler(),
		Analysis:   handler.NewAnalysisHandler(agentService, resolver, dispatcher),
		Checklist:  handler.NewChecklistHandler(),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Submission: handler.NewSubmissionHandler(submissionService),
		APIKey:     handler.NewAPIKeyHandler(apiKeyService),
		Config:     handler.NewConfigHandler(cfg),
	}

	// 设置路由
	r := router.Setup(cfg, sessions, handlers)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedAPIKeys 把环境变量里的提供商密钥写入长效密钥库（已存在则跳过）
func seedAPIKeys(apiKeys service.APIKeyService) {
	ctx := context.Background()
	for _, providerID := range []string{provider.ProviderGemini, provider.ProviderGrok} {
		name := provider.KeyName(providerID)
		if err := apiKeys.Seed(ctx, name, providerID, os.Getenv(name)); err != nil {
			klog.Errorf("seedAPIKeys: %s: %v", name, err)
		}
	}
}
