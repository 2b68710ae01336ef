package provider

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/fdareview/backend/internal/pkg/catalog"
)

// stubClient 回显收到的提示词，或返回预设错误
type stubClient struct {
	provider string
	err      error
	excerpt  string
	called   bool
}

func (s *stubClient) Provider() string {
	return s.provider
}

func (s *stubClient) Analyze(ctx context.Context, agent *catalog.AgentDefinition, excerpt string) (string, error) {
	s.called = true
	s.excerpt = excerpt
	if s.err != nil {
		return "", s.err
	}
	return geminiPrompt(agent, excerpt), nil
}

func TestDispatcherNilClient(t *testing.T) {
	d := NewDispatcher()
	agent := &catalog.AgentDefinition{Name: "Predicate Device Matcher"}

	for _, providerID := range []string{ProviderGemini, ProviderGrok} {
		result := d.Run(context.Background(), providerID, nil, agent, "some document")

		if result.Status != StatusError {
			t.Errorf("%s: expected error status, got %s", providerID, result.Status)
		}
		if !strings.Contains(result.Error, "not initialized") {
			t.Errorf("%s: expected 'not initialized' in error, got %q", providerID, result.Error)
		}
		if result.AgentName != agent.Name {
			t.Errorf("%s: expected agent name %q, got %q", providerID, agent.Name, result.AgentName)
		}
	}
}

func TestDispatcherTruncatesDocument(t *testing.T) {
	d := NewDispatcher()
	agent := &catalog.AgentDefinition{Name: "Software Validation Expert"}
	long := strings.Repeat("a", MaxDocumentChars) + "TAIL"

	stub := &stubClient{provider: ProviderGemini}
	d.Run(context.Background(), ProviderGemini, stub, agent, long)

	if len(stub.excerpt) != MaxDocumentChars {
		t.Errorf("expected excerpt of exactly %d characters, got %d", MaxDocumentChars, len(stub.excerpt))
	}
	if strings.Contains(stub.excerpt, "TAIL") {
		t.Errorf("expected truncation to drop the tail")
	}
	if stub.excerpt != long[:MaxDocumentChars] {
		t.Errorf("expected excerpt to be the exact document prefix")
	}
}

// TestDispatcherTruncatesByCharacters 上限按字符计，多字节文本不受字节数影响
func TestDispatcherTruncatesByCharacters(t *testing.T) {
	d := NewDispatcher()
	agent := &catalog.AgentDefinition{Name: "Multi-Language Translator"}

	// 每个字符 3 字节：字节数早已超限，字符数恰好等于上限，不应截断
	exact := strings.Repeat("審", MaxDocumentChars)
	stub := &stubClient{provider: ProviderGemini}
	d.Run(context.Background(), ProviderGemini, stub, agent, exact)

	if got := utf8.RuneCountInString(stub.excerpt); got != MaxDocumentChars {
		t.Errorf("expected %d characters untouched, got %d", MaxDocumentChars, got)
	}

	// 超限一个字符时截掉尾部，且不能切在字符中间
	over := exact + "查尾"
	stub = &stubClient{provider: ProviderGrok}
	d.Run(context.Background(), ProviderGrok, stub, agent, over)

	if got := utf8.RuneCountInString(stub.excerpt); got != MaxDocumentChars {
		t.Errorf("expected excerpt of exactly %d characters, got %d", MaxDocumentChars, got)
	}
	if !utf8.ValidString(stub.excerpt) {
		t.Errorf("expected excerpt to remain valid UTF-8")
	}
	if strings.Contains(stub.excerpt, "尾") {
		t.Errorf("expected truncation to drop the tail")
	}
}

func TestDispatcherShortDocumentUntouched(t *testing.T) {
	d := NewDispatcher()
	agent := &catalog.AgentDefinition{Name: "Clinical Data Synthesizer"}

	stub := &stubClient{provider: ProviderGrok}
	d.Run(context.Background(), ProviderGrok, stub, agent, "hello world")

	if stub.excerpt != "hello world" {
		t.Errorf("expected short document untouched, got %q", stub.excerpt)
	}
}

func TestDispatcherEchoEndToEnd(t *testing.T) {
	d := NewDispatcher()
	agent := &catalog.AgentDefinition{
		Name:         "Summarizer",
		SystemPrompt: "Summarize",
	}

	stub := &stubClient{provider: ProviderGemini}
	result := d.Run(context.Background(), ProviderGemini, stub, agent, "hello world")

	if result.Status != StatusSuccess {
		t.Fatalf("expected success, got %s (%s)", result.Status, result.Error)
	}
	if !strings.Contains(result.Result, "Summarize") {
		t.Errorf("expected echoed prompt to contain the system prompt, got %q", result.Result)
	}
	if !strings.Contains(result.Result, "hello world") {
		t.Errorf("expected echoed prompt to contain the document, got %q", result.Result)
	}
	if result.AgentName != "Summarizer" {
		t.Errorf("expected agent name in result, got %q", result.AgentName)
	}
	if _, err := time.Parse(time.RFC3339, result.Timestamp); err != nil {
		t.Errorf("expected well-formed timestamp, got %q: %v", result.Timestamp, err)
	}
	if err := result.Validate(); err != nil {
		t.Errorf("expected valid result: %v", err)
	}
}

func TestDispatcherProviderFailure(t *testing.T) {
	d := NewDispatcher()
	agent := &catalog.AgentDefinition{Name: "Adverse Event Analyzer"}

	stub := &stubClient{provider: ProviderGrok, err: errors.New("429 rate limit")}
	result := d.Run(context.Background(), ProviderGrok, stub, agent, "doc")

	if result.Status != StatusError {
		t.Fatalf("expected error status, got %s", result.Status)
	}
	if result.Error != "429 rate limit" {
		t.Errorf("expected verbatim failure text, got %q", result.Error)
	}
	if err := result.Validate(); err != nil {
		t.Errorf("expected valid error result: %v", err)
	}
}

func TestDispatcherUnsupportedProvider(t *testing.T) {
	d := NewDispatcher()
	agent := &catalog.AgentDefinition{Name: "Gap Analysis Wizard"}

	stub := &stubClient{provider: "Claude"}
	result := d.Run(context.Background(), "Claude", stub, agent, "doc")

	if result.Status != StatusError {
		t.Fatalf("expected error status, got %s", result.Status)
	}
	if !strings.Contains(result.Error, "unsupported") {
		t.Errorf("expected unsupported-provider error, got %q", result.Error)
	}
	if stub.called {
		t.Errorf("expected no client call for unsupported provider")
	}
}
