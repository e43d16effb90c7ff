package repository

import (
	"context"

	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
)

// ProductFilter filtros del listado de productos. Los presentes combinan
// con AND; Search empareja substring insensible a mayúsculas contra name o
// sku. Page es 1-indexado.
type ProductFilter struct {
	Search     string
	Status     string
	CategoryID string
	Page       int
	Limit      int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar los
// movimientos de stock concurrentes sobre el mismo producto; solo tiene
// sentido dentro de una transacción (TxRunner).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetActiveBySKU busca por SKU solo entre productos activos (unicidad).
	GetActiveBySKU(ctx context.Context, sku string) (*entity.Product, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateStock actualiza únicamente stock y status (motor de stock).
	UpdateStock(ctx context.Context, id string, stock int, status string) error
	// List devuelve la página filtrada y el total post-filtro, pre-paginación.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int, error)
	CountActiveByCategory(ctx context.Context, categoryID string) (int, error)
	Delete(ctx context.Context, id string) error
}
