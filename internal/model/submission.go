package model

// SubmissionRecord 模拟 510(k) 提交记录
// 仅用于演示数据，状态固定为初始值，无状态机。
type SubmissionRecord struct {
	DeviceName     string `json:"device_name"`
	SubmissionDate string `json:"submission_date"`
	Status         string `json:"status"`
	Reviewer       string `json:"reviewer"`
}
