package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
	"github.com/jhoicas/ElectroStock-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo implementación del puerto StockTransactionRepository
// sobre PostgreSQL (usable con pool o tx). El libro es solo-inserción: no hay
// Update ni Delete.
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador del libro de movimientos.
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

// Create inserta un asiento.
func (r *StockTransactionRepo) Create(ctx context.Context, t *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (id, product_id, type, quantity, date, notes, user_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.ProductID, t.Type, t.Quantity, t.Date, t.Notes, t.UserName, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

// ListByProduct devuelve los movimientos de un producto, más recientes primero.
func (r *StockTransactionRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockTransaction, error) {
	query := `
		SELECT t.id, t.product_id, p.name, t.type, t.quantity, t.date, t.notes, t.user_name, t.created_at
		FROM stock_transactions t JOIN products p ON p.id = t.product_id
		WHERE t.product_id = $1
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		if err := rows.Scan(&t.ID, &t.ProductID, &t.ProductName, &t.Type, &t.Quantity, &t.Date, &t.Notes, &t.UserName, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// ListRecent devuelve los últimos movimientos de todo el catálogo (tablero).
func (r *StockTransactionRepo) ListRecent(ctx context.Context, limit int) ([]*entity.StockTransaction, error) {
	query := `
		SELECT t.id, t.product_id, p.name, t.type, t.quantity, t.date, t.notes, t.user_name, t.created_at
		FROM stock_transactions t JOIN products p ON p.id = t.product_id
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent transactions: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		if err := rows.Scan(&t.ID, &t.ProductID, &t.ProductName, &t.Type, &t.Quantity, &t.Date, &t.Notes, &t.UserName, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
