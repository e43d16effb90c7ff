package repository

import (
	"context"

	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// List devuelve el listado plano; el árbol se reconstruye en cada lectura
// con catalog.BuildTree.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context) ([]*entity.Category, error)
	CountByParent(ctx context.Context, parentID string) (int, error)
	Delete(ctx context.Context, id string) error
}
