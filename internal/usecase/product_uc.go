package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/TypoMastr/bazarteuco/internal/domain"
)

type ProductUC struct {
	Products   domain.ProductRepo
	Categories domain.CategoryRepo
}

func (uc *ProductUC) List(ctx context.Context) ([]domain.Product, error) {
	return uc.Products.List(ctx)
}

func (uc *ProductUC) Get(ctx context.Context, id uint) (*domain.Product, error) {
	if id == 0 {
		return nil, domain.ErrNotFound
	}
	return uc.Products.Get(ctx, id)
}

func (uc *ProductUC) Create(ctx context.Context, p *domain.Product) error {
	if err := uc.normalize(ctx, p); err != nil {
		return err
	}
	p.ID = 0
	return uc.Products.Create(ctx, p)
}

func (uc *ProductUC) Update(ctx context.Context, id uint, p *domain.Product) error {
	if id == 0 {
		return domain.ErrNotFound
	}
	if err := uc.normalize(ctx, p); err != nil {
		return err
	}
	p.ID = id
	return uc.Products.Update(ctx, p)
}

func (uc *ProductUC) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return domain.ErrNotFound
	}
	return uc.Products.Delete(ctx, id)
}

// normalize enforces the form-layer invariants before the gateway sees the
// product: required name, non-negative price, HasVariant kept in lockstep
// with the variant list, ids for new variants, and the denormalized
// category description filled in from the category id.
func (uc *ProductUC) normalize(ctx context.Context, p *domain.Product) error {
	if p == nil || p.Name == "" {
		return domain.Validationf("product name is required")
	}
	if p.SellValue < 0 {
		return domain.Validationf("sell value must not be negative")
	}
	for i := range p.Variants {
		if p.Variants[i].Name == "" {
			return domain.Validationf("variant name is required")
		}
		if p.Variants[i].ID == "" {
			p.Variants[i].ID = uuid.NewString()
		}
	}
	p.HasVariant = len(p.Variants) > 0

	if p.Category == nil && p.CategoryID != 0 {
		cat, err := uc.Categories.Get(ctx, p.CategoryID)
		switch {
		case err == nil:
			p.Category = &domain.CategoryRef{ID: cat.ID, Description: cat.Name}
		case errors.Is(err, domain.ErrNotFound):
			p.Category = &domain.CategoryRef{ID: p.CategoryID}
		default:
			return err
		}
	}
	if p.Category != nil && p.CategoryID == 0 {
		p.CategoryID = p.Category.ID
	}
	return nil
}
