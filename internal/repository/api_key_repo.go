package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fdareview/backend/internal/model"
)

// APIKeyRepository API Key 仓储接口
type APIKeyRepository interface {
	// Create 创建 API Key 配置
	Create(ctx context.Context, apiKey *model.APIKey) error

	// Update 更新 API Key 配置
	Update(ctx context.Context, apiKey *model.APIKey) error

	// Delete 软删除 API Key 配置
	Delete(ctx context.Context, id uint) error

	// GetByID 根据 ID 获取
	GetByID(ctx context.Context, id uint) (*model.APIKey, error)

	// GetByName 根据名称获取
	GetByName(ctx context.Context, name string) (*model.APIKey, error)

	// List 列出所有配置
	List(ctx context.Context) ([]*model.APIKey, error)

	// ListByProvider 按提供商列出配置
	ListByProvider(ctx context.Context, provider string) ([]*model.APIKey, error)

	// UpdateStatus 更新状态
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// apiKeyRepository API Key 仓储实现
type apiKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository 创建 API Key 仓储
func NewAPIKeyRepository(db *gorm.DB) APIKeyRepository {
	return &apiKeyRepository{db: db}
}

// Create 创建 API Key 配置
func (r *apiKeyRepository) Create(ctx context.Context, apiKey *model.APIKey) error {
	return r.db.WithContext(ctx).Create(apiKey).Error
}

// Update 更新 API Key 配置
func (r *apiKeyRepository) Update(ctx context.Context, apiKey *model.APIKey) error {
	return r.db.WithContext(ctx).Save(apiKey).Error
}

// Delete 软删除 API Key 配置
func (r *apiKeyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.APIKey{}, id).Error
}

// GetByID 根据 ID 获取
func (r *apiKeyRepository) GetByID(ctx context.Context, id uint) (*model.APIKey, error) {
	var apiKey model.APIKey
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&apiKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAPIKeyNotFound
		}
		return nil, err
	}
	return &apiKey, nil
}

// GetByName 根据名称获取
func (r *apiKeyRepository) GetByName(ctx context.Context, name string) (*model.APIKey, error) {
	var apiKey model.APIKey
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&apiKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAPIKeyNotFound
		}
		return nil, err
	}
	return &apiKey, nil
}

// List 列出所有配置
func (r *apiKeyRepository) List(ctx context.Context) ([]*model.APIKey, error) {
	var apiKeys []*model.APIKey
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&apiKeys).Error
	return apiKeys, err
}

// ListByProvider 按提供商列出配置
func (r *apiKeyRepository) ListByProvider(ctx context.Context, provider string) ([]*model.APIKey, error) {
	var apiKeys []*model.APIKey
	err := r.db.WithContext(ctx).Where("provider = ?", provider).Find(&apiKeys).Error
	return apiKeys, err
}

// UpdateStatus 更新状态
func (r *apiKeyRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).Model(&model.APIKey{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAPIKeyNotFound
	}
	return nil
}
