package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ElectroStock-api/internal/domain"
	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
	"github.com/jhoicas/ElectroStock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `
	p.id, p.sku, p.name, p.category_id, COALESCE(c.name, ''), p.price,
	p.stock, p.min_stock, p.unit, p.status, p.active, p.specifications,
	p.created_at, p.updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Los atributos viven como jsonb plano specID → valor.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	attrs, err := marshalAttributes(product.Specifications)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO products (id, sku, name, category_id, price, stock, min_stock, unit, status, active, specifications, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(ctx, query,
		product.ID, product.SKU, product.Name, product.CategoryID, product.Price,
		product.Stock, product.MinStock, product.Unit, product.Status, product.Active,
		attrs, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (activo o no). Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	product, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// GetActiveBySKU busca el producto ACTIVO con ese sku; los dados de baja no
// cuentan (su sku queda libre).
func (r *ProductRepo) GetActiveBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.sku = $1 AND p.active`
	product, err := scanProduct(r.q.QueryRow(ctx, query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return product, nil
}

// GetForUpdate lee el producto bloqueando la fila (SELECT FOR UPDATE). Solo
// tiene sentido dentro de una transacción: serializa movimientos de stock
// concurrentes sobre el mismo producto.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT p.id, p.sku, p.name, p.category_id, '', p.price,
			p.stock, p.min_stock, p.unit, p.status, p.active, p.specifications,
			p.created_at, p.updated_at
		FROM products p WHERE p.id = $1 FOR UPDATE`
	product, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return product, nil
}

// Update actualiza un producto. Stock y status también: el guardado directo
// puede fijar stock (el libro registra solo movimientos explícitos).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	attrs, err := marshalAttributes(product.Specifications)
	if err != nil {
		return err
	}
	query := `
		UPDATE products SET sku = $2, name = $3, category_id = $4, price = $5,
			stock = $6, min_stock = $7, unit = $8, status = $9, specifications = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.SKU, product.Name, product.CategoryID, product.Price,
		product.Stock, product.MinStock, product.Unit, product.Status, attrs, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija stock y estado derivado (camino caliente de los movimientos).
func (r *ProductRepo) UpdateStock(ctx context.Context, id string, stock int, status string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock = $2, status = $3, updated_at = NOW() WHERE id = $1`,
		id, stock, status,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve la página filtrada de productos activos y el total
// post-filtro. El filtro de texto busca en nombre y sku sin distinguir
// mayúsculas.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int, error) {
	where := []string{"p.active"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Search != "" {
		ph := arg("%" + filter.Search + "%")
		where = append(where, fmt.Sprintf("(p.name ILIKE %s OR p.sku ILIKE %s)", ph, ph))
	}
	if filter.Status != "" {
		where = append(where, "p.status = "+arg(filter.Status))
	}
	if filter.CategoryID != "" {
		where = append(where, "p.category_id = "+arg(filter.CategoryID))
	}
	condition := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM products p WHERE ` + condition
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE ` + condition + `
		ORDER BY p.name, p.id
		LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg(offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, product)
	}
	return out, total, rows.Err()
}

// CountActiveByCategory cuenta productos activos que referencian la categoría.
func (r *ProductRepo) CountActiveByCategory(ctx context.Context, categoryID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE category_id = $1 AND active`, categoryID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return n, nil
}

// Delete da de baja lógica: active=false, la fila y su historial permanecen.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active`, id,
	)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func marshalAttributes(attrs entity.AttributeMap) ([]byte, error) {
	if attrs == nil {
		attrs = entity.AttributeMap{}
	}
	data, err := json.Marshal(attrs)
	if err != nil {
		return nil, fmt.Errorf("marshal attributes: %w", err)
	}
	return data, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var attrs []byte
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.CategoryID, &p.CategoryName, &p.Price,
		&p.Stock, &p.MinStock, &p.Unit, &p.Status, &p.Active, &attrs,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(attrs, &p.Specifications); err != nil {
		return nil, fmt.Errorf("unmarshal attributes: %w", err)
	}
	if p.Specifications == nil {
		p.Specifications = entity.AttributeMap{}
	}
	return &p, nil
}
