package model

import (
	"time"

	"gorm.io/gorm"
)

// APIKey 长效密钥库条目
// Name 即解析器查找名（"{PROVIDER}_API_KEY"），每个提供商一条。
// 删除为软删除，默认查询自动排除已删除行。
type APIKey struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:255;uniqueIndex;not null"`
	Provider  string         `json:"provider" gorm:"size:50;index:idx_api_keys_provider;not null"`
	APIKey    string         `json:"api_key" gorm:"type:text;not null"`
	Status    string         `json:"status" gorm:"size:20;default:'enabled';index:idx_api_keys_status"` // enabled/disabled
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index:idx_api_keys_deleted_at"`
}

// TableName 指定表名
func (APIKey) TableName() string {
	return "api_keys"
}

// MaskAPIKey 脱敏 API Key（只显示前3位和后4位）
func (a *APIKey) MaskAPIKey() string {
	if len(a.APIKey) <= 7 {
		return "***"
	}
	return a.APIKey[:3] + "***" + a.APIKey[len(a.APIKey)-4:]
}

// IsAvailable 检查是否可用
func (a *APIKey) IsAvailable() bool {
	return a.Status == "enabled"
}

// BeforeUpdate GORM 钩子：更新前自动设置 UpdatedAt
func (a *APIKey) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return nil
}
