package usecase_test

import (
	"context"
	"strings"

	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
	"github.com/jhoicas/ElectroStock-api/internal/domain/repository"
)

// fakeCategoryRepo repositorio de categorías en memoria, con orden de
// inserción estable (el listado plano conserva el orden de creación).
type fakeCategoryRepo struct {
	order      []string
	categories map[string]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
	for _, c := range categories {
		r.order = append(r.order, c.ID)
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.order = append(r.order, c.ID)
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.order))
	for _, id := range r.order {
		if c, ok := r.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) CountByParent(_ context.Context, parentID string) (int, error) {
	n := 0
	for _, c := range r.categories {
		if c.ParentID == parentID {
			n++
		}
	}
	return n, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

// fakeProductRepo repositorio de productos en memoria.
type fakeProductRepo struct {
	order    []string
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.order = append(r.order, p.ID)
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.order = append(r.order, p.ID)
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetActiveBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, id := range r.order {
		p := r.products[id]
		if p.Active && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(_ context.Context, id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, id string, stockLevel int, status string) error {
	p := r.products[id]
	p.Stock = stockLevel
	p.Status = status
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, int, error) {
	var matched []*entity.Product
	for _, id := range r.order {
		p := r.products[id]
		if !p.Active {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.SKU), needle) {
				continue
			}
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		matched = append(matched, p)
	}
	total := len(matched)
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *fakeProductRepo) CountActiveByCategory(_ context.Context, categoryID string) (int, error) {
	n := 0
	for _, p := range r.products {
		if p.Active && p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if p, ok := r.products[id]; ok {
		p.Active = false
	}
	return nil
}

// fakeCategoryCache cache en memoria para verificar invalidaciones.
type fakeCategoryCache struct {
	list        []*entity.Category
	has         bool
	invalidated int
}

func (c *fakeCategoryCache) GetList(_ context.Context) ([]*entity.Category, bool) {
	return c.list, c.has
}

func (c *fakeCategoryCache) SetList(_ context.Context, categories []*entity.Category) {
	c.list = categories
	c.has = true
}

func (c *fakeCategoryCache) Invalidate(_ context.Context) {
	c.list = nil
	c.has = false
	c.invalidated++
}
