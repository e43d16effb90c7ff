package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ElectroStock-api/internal/domain"
	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
	"github.com/jhoicas/ElectroStock-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL
// (usable con pool o tx). Las especificaciones viven como jsonb en la misma
// fila: el esquema de una categoría se lee y escribe siempre completo.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	specs, err := marshalSpecs(category.Specifications)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO categories (id, name, parent_id, specifications, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)`
	_, err = r.q.Exec(ctx, query,
		category.ID, category.Name, category.ParentID, specs,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `
		SELECT id, name, COALESCE(parent_id, ''), specifications, created_at, updated_at
		FROM categories WHERE id = $1`
	category, err := scanCategory(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

// Update actualiza nombre, padre y esquema de specs.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	specs, err := marshalSpecs(category.Specifications)
	if err != nil {
		return err
	}
	query := `
		UPDATE categories SET name = $2, parent_id = NULLIF($3, ''), specifications = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		category.ID, category.Name, category.ParentID, specs, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve el listado plano en orden de creación estable.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	query := `
		SELECT id, name, COALESCE(parent_id, ''), specifications, created_at, updated_at
		FROM categories ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, category)
	}
	return out, rows.Err()
}

// CountByParent cuenta las hijas directas de una categoría.
func (r *CategoryRepo) CountByParent(ctx context.Context, parentID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE parent_id = $1`, parentID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count children: %w", err)
	}
	return n, nil
}

// Delete elimina la fila. Las guardas (hijas, productos activos) se verifican
// en el caso de uso; aquí solo se borra.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func marshalSpecs(specs []entity.SpecDefinition) ([]byte, error) {
	if specs == nil {
		specs = []entity.SpecDefinition{}
	}
	data, err := json.Marshal(specs)
	if err != nil {
		return nil, fmt.Errorf("marshal specifications: %w", err)
	}
	return data, nil
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	var specs []byte
	if err := row.Scan(&c.ID, &c.Name, &c.ParentID, &specs, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(specs, &c.Specifications); err != nil {
		return nil, fmt.Errorf("unmarshal specifications: %w", err)
	}
	if c.Specifications == nil {
		c.Specifications = []entity.SpecDefinition{}
	}
	return &c, nil
}
