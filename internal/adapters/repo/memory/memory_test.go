package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/TypoMastr/bazarteuco/internal/domain"
)

func TestProductRepoCRUD(t *testing.T) {
	r := NewProductRepo(nil)
	ctx := context.Background()

	p := &domain.Product{Name: "Caneca", SellValue: 25}
	if err := r.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("id not assigned")
	}

	got, err := r.Get(ctx, p.ID)
	if err != nil || got.Name != "Caneca" {
		t.Fatalf("get: %+v, %v", got, err)
	}

	got.Name = "Copo"
	if err := r.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, _ := r.Get(ctx, p.ID)
	if again.Name != "Copo" {
		t.Fatalf("update not applied: %+v", again)
	}

	if err := r.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.Get(ctx, p.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("get after delete: %v", err)
	}
	// delete is idempotent
	if err := r.Delete(ctx, p.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestProductRepoHandsOutCopies(t *testing.T) {
	seed := domain.Product{ID: 1, Name: "Camiseta", Variants: []domain.Variant{{ID: "v1", Name: "P"}}}
	r := NewProductRepo([]domain.Product{seed})
	ctx := context.Background()

	list, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	list[0].Name = "hacked"
	list[0].Variants[0].Name = "hacked"

	got, _ := r.Get(ctx, 1)
	if got.Name != "Camiseta" || got.Variants[0].Name != "P" {
		t.Fatalf("store state leaked: %+v", got)
	}
}

func TestProductRepoUpdateMissing(t *testing.T) {
	r := NewProductRepo(nil)
	err := r.Update(context.Background(), &domain.Product{ID: 9, Name: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestProductRepoSeedIDsRespected(t *testing.T) {
	r := NewProductRepo([]domain.Product{{ID: 101, Name: "a"}, {ID: 106, Name: "b"}})
	p := &domain.Product{Name: "c"}
	if err := r.Create(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID <= 106 {
		t.Fatalf("new id collides with seed: %d", p.ID)
	}
}

func TestCategoryRepoListOrder(t *testing.T) {
	r := NewCategoryRepo(nil)
	ctx := context.Background()
	for _, name := range []string{"um", "dois", "três"} {
		if err := r.Create(ctx, &domain.Category{Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	list, _ := r.List(ctx)
	if len(list) != 3 || list[0].Name != "um" || list[2].Name != "três" {
		t.Fatalf("order: %+v", list)
	}
}

func TestSaleRepoCopies(t *testing.T) {
	sales := []domain.Sale{{
		ID:           "s1",
		CreationDate: "2024-01-01T10:00:00Z",
		Items:        []domain.SaleItem{{Quantity: 1, NetItem: 10}},
	}}
	r := NewSaleRepo(sales)

	list, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	list[0].Items[0].Quantity = 99

	again, _ := r.List(context.Background())
	if again[0].Items[0].Quantity != 1 {
		t.Fatalf("sale items leaked: %+v", again[0].Items)
	}
}

func TestReposHonorContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewProductRepo(nil).List(ctx); err == nil {
		t.Fatalf("expected context error")
	}
	if _, err := NewSaleRepo(nil).List(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}
