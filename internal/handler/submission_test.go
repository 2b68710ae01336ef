package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fdareview/backend/internal/model"
	"github.com/fdareview/backend/internal/service"
)

func newSubmissionEnv() *testEnv {
	handler := NewSubmissionHandler(service.NewSubmissionService())
	return newTestEnv(func(api *gin.RouterGroup) {
		handler.RegisterRoutes(api)
	})
}

// TestSubmissionHandlerGenerate 生成模拟提交并入会话
func TestSubmissionHandlerGenerate(t *testing.T) {
	fixed := time.Date(2025, 10, 22, 9, 30, 0, 0, time.UTC)
	original := service.Now
	service.Now = func() time.Time { return fixed }
	defer func() { service.Now = original }()

	env := newSubmissionEnv()

	body := []byte(`{"device_type":"Cardiac Monitor"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/submissions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := env.do(req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var record model.SubmissionRecord
	if err := json.Unmarshal(w.Body.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if record.DeviceName != "Mock Cardiac Monitor 20251022" {
		t.Errorf("unexpected device name %q", record.DeviceName)
	}
	if record.Status != "Pending Review" {
		t.Errorf("unexpected status %q", record.Status)
	}
	if record.Reviewer != "Dr. Evelyn Reed" {
		t.Errorf("unexpected reviewer %q", record.Reviewer)
	}

	if got := len(env.state.Submissions()); got != 1 {
		t.Errorf("expected 1 submission in session, got %d", got)
	}
}

// TestSubmissionHandlerGenerateDefaultType 空请求体用默认设备类型
func TestSubmissionHandlerGenerateDefaultType(t *testing.T) {
	env := newSubmissionEnv()

	w := env.do(httptest.NewRequest(http.MethodPost, "/api/submissions", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var record model.SubmissionRecord
	if err := json.Unmarshal(w.Body.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if record.DeviceName == "" {
		t.Fatalf("expected device name")
	}
	want := "Mock " + service.DefaultDeviceType
	if len(record.DeviceName) < len(want) || record.DeviceName[:len(want)] != want {
		t.Errorf("expected default device type prefix %q, got %q", want, record.DeviceName)
	}
}

// TestSubmissionHandlerList 列表返回本会话的全部记录
func TestSubmissionHandlerList(t *testing.T) {
	env := newSubmissionEnv()

	env.do(httptest.NewRequest(http.MethodPost, "/api/submissions", nil))
	env.do(httptest.NewRequest(http.MethodPost, "/api/submissions", nil))

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/submissions", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("expected 2 submissions, got %d", resp.Total)
	}
}
