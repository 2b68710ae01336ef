package service

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/fdareview/backend/internal/model"
	"github.com/fdareview/backend/internal/repository"
)

func setupAPIKeyService(t *testing.T) APIKeyService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&model.APIKey{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewAPIKeyService(repository.NewAPIKeyRepository(db))
}

func TestAPIKeyServiceGet(t *testing.T) {
	svc := setupAPIKeyService(t)
	ctx := context.Background()

	if _, ok := svc.Get(ctx, "GEMINI_API_KEY"); ok {
		t.Errorf("expected miss for absent key")
	}

	created, err := svc.CreateAPIKey(ctx, &CreateAPIKeyRequest{
		Name:     "GEMINI_API_KEY",
		Provider: "Gemini",
		APIKey:   "AIza-store",
	})
	if err != nil {
		t.Fatalf("CreateAPIKey failed: %v", err)
	}

	value, ok := svc.Get(ctx, "GEMINI_API_KEY")
	if !ok || value != "AIza-store" {
		t.Errorf("expected stored value, got %q", value)
	}

	// 禁用后不再对解析器可见
	if err := svc.UpdateAPIKeyStatus(ctx, created.ID, "disabled"); err != nil {
		t.Fatalf("UpdateAPIKeyStatus failed: %v", err)
	}
	if _, ok := svc.Get(ctx, "GEMINI_API_KEY"); ok {
		t.Errorf("expected disabled key to be invisible")
	}
}

func TestAPIKeyServiceRejectsDuplicateName(t *testing.T) {
	svc := setupAPIKeyService(t)
	ctx := context.Background()

	req := &CreateAPIKeyRequest{Name: "GROK_API_KEY", Provider: "Grok", APIKey: "xai-1"}
	if _, err := svc.CreateAPIKey(ctx, req); err != nil {
		t.Fatalf("CreateAPIKey failed: %v", err)
	}
	if _, err := svc.CreateAPIKey(ctx, req); !errors.Is(err, repository.ErrAPIKeyDuplicate) {
		t.Errorf("expected ErrAPIKeyDuplicate, got %v", err)
	}
}

func TestAPIKeyServiceSeed(t *testing.T) {
	svc := setupAPIKeyService(t)
	ctx := context.Background()

	// 空值不写入
	if err := svc.Seed(ctx, "GEMINI_API_KEY", "Gemini", ""); err != nil {
		t.Fatalf("Seed with empty value failed: %v", err)
	}
	if _, ok := svc.Get(ctx, "GEMINI_API_KEY"); ok {
		t.Errorf("expected empty seed to be skipped")
	}

	if err := svc.Seed(ctx, "GEMINI_API_KEY", "Gemini", "AIza-env"); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	value, ok := svc.Get(ctx, "GEMINI_API_KEY")
	if !ok || value != "AIza-env" {
		t.Errorf("expected seeded value, got %q", value)
	}

	// 已存在则跳过，不覆盖
	if err := svc.Seed(ctx, "GEMINI_API_KEY", "Gemini", "AIza-other"); err != nil {
		t.Fatalf("repeat Seed failed: %v", err)
	}
	value, _ = svc.Get(ctx, "GEMINI_API_KEY")
	if value != "AIza-env" {
		t.Errorf("expected existing value preserved, got %q", value)
	}
}
