package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/TypoMastr/bazarteuco/internal/adapters/repo/memory"
	"github.com/TypoMastr/bazarteuco/internal/domain"
)

func TestCategoryCRUD(t *testing.T) {
	uc := &CategoryUC{Categories: memory.NewCategoryRepo(nil)}
	ctx := context.Background()

	c := &domain.Category{Name: "Livraria", Color: "#3b82f6"}
	if err := uc.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID == 0 {
		t.Fatalf("id not assigned")
	}

	c.Name = "Livros"
	if err := uc.Update(ctx, c.ID, c); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := uc.Get(ctx, c.ID)
	if err != nil || got.Name != "Livros" {
		t.Fatalf("get after update: %+v, %v", got, err)
	}

	if err := uc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.Get(ctx, c.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("get after delete: %v", err)
	}
}

func TestCategoryNameRequired(t *testing.T) {
	uc := &CategoryUC{Categories: memory.NewCategoryRepo(nil)}
	if err := uc.Create(context.Background(), &domain.Category{Color: "#fff"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
	if err := uc.Update(context.Background(), 1, &domain.Category{}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("update: got %v, want validation error", err)
	}
}
