package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/fdareview/backend/config"
)

// ConfigHandler 运行配置处理器
type ConfigHandler struct {
	cfg *config.Config
}

// NewConfigHandler 创建配置处理器
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// RegisterRoutes 注册路由
func (h *ConfigHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/config", h.Get)
	router.PUT("/config", h.Update)
}

// ConfigResponse 运行配置响应
// 只暴露提供商端点与目录路径；密钥走 api-keys 接口，不在这里出现。
type ConfigResponse struct {
	Server    ServerConfigResponse   `json:"server"`
	Catalog   CatalogConfigResponse  `json:"catalog"`
	Providers ProviderConfigResponse `json:"providers"`
}

// ServerConfigResponse 服务配置
type ServerConfigResponse struct {
	Port string `json:"port"`
	Mode string `json:"mode"`
}

// CatalogConfigResponse 目录配置
type CatalogConfigResponse struct {
	Path string `json:"path"`
}

// ProviderConfigResponse 提供商端点配置
type ProviderConfigResponse struct {
	Gemini ProviderEndpointResponse `json:"gemini"`
	Grok   ProviderEndpointResponse `json:"grok"`
}

// ProviderEndpointResponse 单个提供商的端点
type ProviderEndpointResponse struct {
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
	Timeout string `json:"timeout,omitempty"`
}

// UpdateConfigRequest 更新运行配置请求（字段缺省表示不变）
type UpdateConfigRequest struct {
	Catalog *CatalogConfigRequest  `json:"catalog,omitempty"`
	Gemini  *ProviderConfigRequest `json:"gemini,omitempty"`
	Grok    *ProviderConfigRequest `json:"grok,omitempty"`
}

// CatalogConfigRequest 目录配置更新
type CatalogConfigRequest struct {
	Path string `json:"path,omitempty"`
}

// ProviderConfigRequest 提供商端点更新
type ProviderConfigRequest struct {
	BaseURL string `json:"base_url,omitempty"`
	Model   string `json:"model,omitempty"`
}

// Get 获取当前运行配置
func (h *ConfigHandler) Get(c *gin.Context) {
	resp := ConfigResponse{
		Server: ServerConfigResponse{
			Port: h.cfg.Server.Port,
			Mode: h.cfg.Server.Mode,
		},
		Catalog: CatalogConfigResponse{
			Path: h.cfg.Catalog.Path,
		},
		Providers: ProviderConfigResponse{
			Gemini: ProviderEndpointResponse{
				BaseURL: h.cfg.Providers.Gemini.BaseURL,
				Model:   h.cfg.Providers.Gemini.Model,
			},
			Grok: ProviderEndpointResponse{
				BaseURL: h.cfg.Providers.Grok.BaseURL,
				Model:   h.cfg.Providers.Grok.Model,
				Timeout: h.cfg.Providers.Grok.Timeout.String(),
			},
		},
	}

	c.JSON(http.StatusOK, resp)
}

// Update 更新运行配置并持久化
// 目录路径改动在下次进程启动后生效（目录在进程内只加载一次）。
func (h *ConfigHandler) Update(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		klog.V(6).Infof("UpdateConfig: invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Catalog != nil && req.Catalog.Path != "" {
		h.cfg.Catalog.Path = req.Catalog.Path
	}
	if req.Gemini != nil {
		if req.Gemini.BaseURL != "" {
			h.cfg.Providers.Gemini.BaseURL = req.Gemini.BaseURL
		}
		if req.Gemini.Model != "" {
			h.cfg.Providers.Gemini.Model = req.Gemini.Model
		}
	}
	if req.Grok != nil {
		if req.Grok.BaseURL != "" {
			h.cfg.Providers.Grok.BaseURL = req.Grok.BaseURL
		}
		if req.Grok.Model != "" {
			h.cfg.Providers.Grok.Model = req.Grok.Model
		}
	}

	config.UpdateConfig(h.cfg)

	if err := h.cfg.Save(configPath()); err != nil {
		klog.Errorf("UpdateConfig: save failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save config"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "config updated"})
}

// configPath 持久化路径，与启动加载一致
func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "config.yaml"
}
