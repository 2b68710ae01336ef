package service

import (
	"fmt"
	"time"

	"github.com/fdareview/backend/internal/model"
)

// DefaultDeviceType 未指定设备类型时的默认值
const DefaultDeviceType = "Orthopedic Implant"

// Now 返回当前时间（用于测试）
var Now = func() time.Time {
	return time.Now()
}

// SubmissionService 模拟提交生成器
type SubmissionService struct{}

// NewSubmissionService 创建模拟提交生成器
func NewSubmissionService() *SubmissionService {
	return &SubmissionService{}
}

// Generate 生成一条模拟 510(k) 提交记录
// 除设备名与日期嵌入当前时间外完全确定；状态固定为初始值。
func (s *SubmissionService) Generate(deviceType string) *model.SubmissionRecord {
	if deviceType == "" {
		deviceType = DefaultDeviceType
	}
	now := Now()
	return &model.SubmissionRecord{
		DeviceName:     fmt.Sprintf("Mock %s %s", deviceType, now.Format("20060102")),
		SubmissionDate: now.Format("2006-01-02"),
		Status:         "Pending Review",
		Reviewer:       "Dr. Evelyn Reed",
	}
}
