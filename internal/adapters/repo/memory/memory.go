// Package memory is the mocked backend: an in-memory rendition of the
// inventory/sales API the console talks to. Reads hand out copies so no two
// screens ever share a slice.
package memory

import (
	"context"
	"sync"

	"github.com/TypoMastr/bazarteuco/internal/domain"
)

type ProductRepo struct {
	mu     sync.RWMutex
	items  map[uint]domain.Product
	order  []uint
	nextID uint
}

func NewProductRepo(initial []domain.Product) *ProductRepo {
	r := &ProductRepo{items: make(map[uint]domain.Product), nextID: 1}
	for _, p := range initial {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.items[p.ID] = copyProduct(p)
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, copyProduct(r.items[id]))
	}
	return out, nil
}

func (r *ProductRepo) Get(ctx context.Context, id uint) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := copyProduct(p)
	return &cp, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	r.items[p.ID] = copyProduct(*p)
	r.order = append(r.order, p.ID)
	return nil
}

func (r *ProductRepo) Update(ctx context.Context, p *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[p.ID] = copyProduct(*p)
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id uint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return nil
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func copyProduct(p domain.Product) domain.Product {
	if p.Category != nil {
		ref := *p.Category
		p.Category = &ref
	}
	if p.Variants != nil {
		vs := make([]domain.Variant, len(p.Variants))
		copy(vs, p.Variants)
		p.Variants = vs
	}
	return p
}

type CategoryRepo struct {
	mu     sync.RWMutex
	items  map[uint]domain.Category
	order  []uint
	nextID uint
}

func NewCategoryRepo(initial []domain.Category) *CategoryRepo {
	r := &CategoryRepo{items: make(map[uint]domain.Category), nextID: 1}
	for _, c := range initial {
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
		r.items[c.ID] = c
		r.order = append(r.order, c.ID)
	}
	return r
}

func (r *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Category, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *CategoryRepo) Get(ctx context.Context, id uint) (*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	r.items[c.ID] = *c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *domain.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[c.ID] = *c
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id uint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return nil
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// SaleRepo serves a fixed sale history, newest first as given.
type SaleRepo struct {
	mu    sync.RWMutex
	sales []domain.Sale
}

func NewSaleRepo(sales []domain.Sale) *SaleRepo {
	return &SaleRepo{sales: sales}
}

func (r *SaleRepo) List(ctx context.Context) ([]domain.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Sale, len(r.sales))
	for i, s := range r.sales {
		if s.Customer != nil {
			c := *s.Customer
			s.Customer = &c
		}
		if s.Items != nil {
			items := make([]domain.SaleItem, len(s.Items))
			copy(items, s.Items)
			s.Items = items
		}
		out[i] = s
	}
	return out, nil
}
