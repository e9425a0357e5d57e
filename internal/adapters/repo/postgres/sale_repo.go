package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/TypoMastr/bazarteuco/internal/domain"
)

// SaleRepo only reads: sales land in the table from the POS side.
type SaleRepo struct{ db *gorm.DB }

func NewSaleRepo(db *gorm.DB) *SaleRepo { return &SaleRepo{db: db} }

func (r *SaleRepo) List(ctx context.Context) ([]domain.Sale, error) {
	var list []domain.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("creation_date desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
