package domain

import "context"

// ProductRepo is the catalog side of the gateway. Create assigns the id;
// Get and Update fail with ErrNotFound when the id is absent. Delete is
// idempotent, matching the backing API.
type ProductRepo interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint) error
}

type CategoryRepo interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id uint) (*Category, error)
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uint) error
}

// SaleRepo is read-only: sales are created by the POS outside this system.
type SaleRepo interface {
	List(ctx context.Context) ([]Sale, error)
}

// KeyValue is the injected persisted key-value capability backing the
// placeholder credential store. Get reports absence via the second result.
type KeyValue interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
