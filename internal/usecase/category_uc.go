package usecase

import (
	"context"

	"github.com/TypoMastr/bazarteuco/internal/domain"
)

type CategoryUC struct {
	Categories domain.CategoryRepo
}

func (uc *CategoryUC) List(ctx context.Context) ([]domain.Category, error) {
	return uc.Categories.List(ctx)
}

func (uc *CategoryUC) Get(ctx context.Context, id uint) (*domain.Category, error) {
	if id == 0 {
		return nil, domain.ErrNotFound
	}
	return uc.Categories.Get(ctx, id)
}

func (uc *CategoryUC) Create(ctx context.Context, c *domain.Category) error {
	if c == nil || c.Name == "" {
		return domain.Validationf("category name is required")
	}
	c.ID = 0
	return uc.Categories.Create(ctx, c)
}

func (uc *CategoryUC) Update(ctx context.Context, id uint, c *domain.Category) error {
	if id == 0 {
		return domain.ErrNotFound
	}
	if c == nil || c.Name == "" {
		return domain.Validationf("category name is required")
	}
	c.ID = id
	return uc.Categories.Update(ctx, c)
}

func (uc *CategoryUC) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return domain.ErrNotFound
	}
	return uc.Categories.Delete(ctx, id)
}
