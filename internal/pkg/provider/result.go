package provider

import (
	"fmt"
	"time"
)

// ResultStatus 分析结果状态
type ResultStatus string

const (
	StatusSuccess ResultStatus = "success"
	StatusError   ResultStatus = "error"
)

// AnalysisResult 一次分派的归一化结果
// result 与 error 严格二选一，与 status 对应；
// agent_name 与 ISO-8601 时间戳恒有值。
type AnalysisResult struct {
	AgentName string       `json:"agent_name"`
	Status    ResultStatus `json:"status"`
	Result    string       `json:"result,omitempty"`
	Error     string       `json:"error,omitempty"`
	Timestamp string       `json:"timestamp"`
}

// Validate 校验 result/error 与 status 的互斥关系
func (r *AnalysisResult) Validate() error {
	switch r.Status {
	case StatusSuccess:
		if r.Result == "" || r.Error != "" {
			return fmt.Errorf("success result must carry result text only")
		}
	case StatusError:
		if r.Error == "" || r.Result != "" {
			return fmt.Errorf("error result must carry error message only")
		}
	default:
		return fmt.Errorf("unknown status: %s", r.Status)
	}
	if r.Timestamp == "" {
		return fmt.Errorf("timestamp is required")
	}
	return nil
}

// Now 返回当前时间（用于测试）
var Now = func() time.Time {
	return time.Now()
}

// successResult 构造成功结果
func successResult(agentName, text string) *AnalysisResult {
	return &AnalysisResult{
		AgentName: agentName,
		Status:    StatusSuccess,
		Result:    text,
		Timestamp: Now().Format(time.RFC3339),
	}
}

// errorResult 构造失败结果
func errorResult(agentName, message string) *AnalysisResult {
	return &AnalysisResult{
		AgentName: agentName,
		Status:    StatusError,
		Error:     message,
		Timestamp: Now().Format(time.RFC3339),
	}
}
