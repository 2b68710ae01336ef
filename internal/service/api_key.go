package service

import (
	"context"

	"k8s.io/klog/v2"

	"github.com/fdareview/backend/internal/model"
	"github.com/fdareview/backend/internal/repository"
)

// APIKeyService API Key 服务接口
// 同时充当解析器的长效密钥库（provider.SecretStore）。
type APIKeyService interface {
	// CreateAPIKey 创建 API Key 配置
	CreateAPIKey(ctx context.Context, req *CreateAPIKeyRequest) (*model.APIKey, error)

	// DeleteAPIKey 删除 API Key 配置
	DeleteAPIKey(ctx context.Context, id uint) error

	// ListAPIKeys 列出所有 API Key 配置
	ListAPIKeys(ctx context.Context) ([]*model.APIKey, error)

	// UpdateAPIKeyStatus 更新状态
	UpdateAPIKeyStatus(ctx context.Context, id uint, status string) error

	// Get 按查找名取密钥值（实现 provider.SecretStore）
	Get(ctx context.Context, name string) (string, bool)

	// Seed 按查找名写入密钥，已存在则跳过（启动时从环境变量灌入）
	Seed(ctx context.Context, name, providerID, value string) error
}

// CreateAPIKeyRequest 创建 API Key 请求
type CreateAPIKeyRequest struct {
	Name     string `json:"name"`
	Provider string `json:"provider" binding:"required"`
	APIKey   string `json:"api_key" binding:"required"`
}

// apiKeyService API Key 服务实现
type apiKeyService struct {
	repo repository.APIKeyRepository
}

// NewAPIKeyService 创建 API Key 服务
func NewAPIKeyService(repo repository.APIKeyRepository) APIKeyService {
	return &apiKeyService{repo: repo}
}

// CreateAPIKey 创建 API Key 配置
func (s *apiKeyService) CreateAPIKey(ctx context.Context, req *CreateAPIKeyRequest) (*model.APIKey, error) {
	klog.V(6).Infof("CreateAPIKey: creating API Key with name=%s", req.Name)

	// 校验名称唯一性
	existing, err := s.repo.GetByName(ctx, req.Name)
	if err == nil && existing != nil {
		klog.Warningf("CreateAPIKey: API Key name %s already exists", req.Name)
		return nil, repository.ErrAPIKeyDuplicate
	}

	apiKey := &model.APIKey{
		Name:     req.Name,
		Provider: req.Provider,
		APIKey:   req.APIKey,
		Status:   "enabled",
	}

	if err := s.repo.Create(ctx, apiKey); err != nil {
		klog.Errorf("CreateAPIKey: failed to create API Key: %v", err)
		return nil, err
	}

	klog.V(6).Infof("CreateAPIKey: successfully created API Key with id=%d", apiKey.ID)
	return apiKey, nil
}

// DeleteAPIKey 删除 API Key 配置
func (s *apiKeyService) DeleteAPIKey(ctx context.Context, id uint) error {
	klog.V(6).Infof("DeleteAPIKey: deleting API Key with id=%d", id)
	return s.repo.Delete(ctx, id)
}

// ListAPIKeys 列出所有 API Key 配置
func (s *apiKeyService) ListAPIKeys(ctx context.Context) ([]*model.APIKey, error) {
	return s.repo.List(ctx)
}

// UpdateAPIKeyStatus 更新状态
func (s *apiKeyService) UpdateAPIKeyStatus(ctx context.Context, id uint, status string) error {
	klog.V(6).Infof("UpdateAPIKeyStatus: updating status to %s for API Key with id=%d", status, id)
	return s.repo.UpdateStatus(ctx, id, status)
}

// Get 按查找名取密钥值
// 只返回启用状态的密钥；读路径无副作用。
func (s *apiKeyService) Get(ctx context.Context, name string) (string, bool) {
	apiKey, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return "", false
	}
	if !apiKey.IsAvailable() {
		klog.V(6).Infof("Get: API Key %s exists but is %s", name, apiKey.Status)
		return "", false
	}
	return apiKey.APIKey, true
}

// Seed 按查找名写入密钥，已存在则跳过
func (s *apiKeyService) Seed(ctx context.Context, name, providerID, value string) error {
	if value == "" {
		return nil
	}
	if existing, err := s.repo.GetByName(ctx, name); err == nil && existing != nil {
		klog.V(6).Infof("Seed: API Key %s already present, skipping", name)
		return nil
	}

	_, err := s.CreateAPIKey(ctx, &CreateAPIKeyRequest{
		Name:     name,
		Provider: providerID,
		APIKey:   value,
	})
	return err
}
