package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fdareview/backend/internal/pkg/catalog"
	"github.com/fdareview/backend/internal/pkg/provider"
)

// stubResolver 固定返回预设的解析结果
type stubResolver struct {
	resolution provider.Resolution
}

func (s *stubResolver) Resolve(ctx context.Context, providerID, lang string, transient provider.KeyLookup) provider.Resolution {
	return s.resolution
}

// stubClient 替代真实 LLM 调用
type stubClient struct {
	providerID string
	reply      string
	err        error
}

func (s *stubClient) Provider() string {
	return s.providerID
}

func (s *stubClient) Analyze(ctx context.Context, agent *catalog.AgentDefinition, excerpt string) (string, error) {
	return s.reply, s.err
}

func newAnalyzeEnv(resolver Resolver) *testEnv {
	agents := newTestAgentService()
	handler := NewAnalysisHandler(agents, resolver, provider.NewDispatcher())
	return newTestEnv(func(api *gin.RouterGroup) {
		handler.RegisterRoutes(api)
	})
}

func analyzeRequest(agent string) *http.Request {
	var body bytes.Buffer
	if agent != "" {
		body.WriteString(`{"agent":"` + agent + `"}`)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/documents/sub.txt/analyze", &body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// TestAnalyzeRunsConfiguredClient 凭证就绪时执行并落盘结果
func TestAnalyzeRunsConfiguredClient(t *testing.T) {
	resolver := &stubResolver{resolution: provider.Resolution{
		Provider: provider.ProviderGemini,
		State:    provider.StateConfigured,
		Client:   &stubClient{providerID: provider.ProviderGemini, reply: "analysis text"},
	}}
	env := newAnalyzeEnv(resolver)
	env.state.AddDocument("sub.txt", "device description")

	w := env.do(analyzeRequest("predicate-device-matcher"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result provider.AnalysisResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Status != provider.StatusSuccess {
		t.Errorf("expected success status, got %s", result.Status)
	}
	if result.Result != "analysis text" {
		t.Errorf("unexpected result %q", result.Result)
	}
	if result.AgentName != "Predicate Device Matcher" {
		t.Errorf("unexpected agent name %q", result.AgentName)
	}

	stored, ok := env.state.Result("sub.txt")
	if !ok || stored.Result != "analysis text" {
		t.Errorf("expected result stored in session")
	}
}

// TestAnalyzeReportsProviderFailureAsResult 调用失败以 error 状态结果返回
func TestAnalyzeReportsProviderFailureAsResult(t *testing.T) {
	resolver := &stubResolver{resolution: provider.Resolution{
		Provider: provider.ProviderGemini,
		State:    provider.StateConfigured,
		Client:   &stubClient{providerID: provider.ProviderGemini, err: errors.New("quota exceeded")},
	}}
	env := newAnalyzeEnv(resolver)
	env.state.AddDocument("sub.txt", "device description")

	w := env.do(analyzeRequest("predicate-device-matcher"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var result provider.AnalysisResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Status != provider.StatusError {
		t.Errorf("expected error status, got %s", result.Status)
	}
	if result.Error != "quota exceeded" {
		t.Errorf("unexpected error %q", result.Error)
	}
}

// TestAnalyzeReturnsResolutionWhenNotConfigured 缺密钥时返回解析状态不执行
func TestAnalyzeReturnsResolutionWhenNotConfigured(t *testing.T) {
	resolver := &stubResolver{resolution: provider.Resolution{
		Provider: provider.ProviderGemini,
		State:    provider.StateNeedsKey,
		Prompt:   "Enter your Gemini API Key:",
	}}
	env := newAnalyzeEnv(resolver)
	env.state.AddDocument("sub.txt", "device description")

	w := env.do(analyzeRequest("predicate-device-matcher"))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}
	if _, ok := env.state.Result("sub.txt"); ok {
		t.Errorf("expected no result stored")
	}
}

// TestAnalyzeRequiresDocumentAndAgent 缺文档 404，缺选中专家 400
func TestAnalyzeRequiresDocumentAndAgent(t *testing.T) {
	resolver := &stubResolver{resolution: provider.Resolution{
		Provider: provider.ProviderGemini,
		State:    provider.StateConfigured,
		Client:   &stubClient{providerID: provider.ProviderGemini, reply: "ok"},
	}}
	env := newAnalyzeEnv(resolver)

	if w := env.do(analyzeRequest("")); w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for missing document, got %d", w.Code)
	}

	env.state.AddDocument("sub.txt", "device description")
	if w := env.do(analyzeRequest("")); w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for missing agent, got %d", w.Code)
	}
}

// TestAnalyzeResult 结果查询
func TestAnalyzeResult(t *testing.T) {
	resolver := &stubResolver{resolution: provider.Resolution{
		Provider: provider.ProviderGemini,
		State:    provider.StateConfigured,
		Client:   &stubClient{providerID: provider.ProviderGemini, reply: "analysis text"},
	}}
	env := newAnalyzeEnv(resolver)
	env.state.AddDocument("sub.txt", "device description")

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/documents/sub.txt/result", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 before analysis, got %d", w.Code)
	}

	env.do(analyzeRequest("predicate-device-matcher"))

	w = env.do(httptest.NewRequest(http.MethodGet, "/api/documents/sub.txt/result", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}
