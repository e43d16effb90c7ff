package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
	"github.com/jhoicas/ElectroStock-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes y tablero. Las
// referencias rotas a categorías salen como nombre vacío (LEFT JOIN +
// COALESCE), nunca rompen la lectura.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// LowStock productos activos con stock por debajo del mínimo (incluye los
// agotados y los negativos).
func (r *ReportRepo) LowStock(ctx context.Context) ([]repository.LowStockRow, error) {
	query := `
		SELECT p.id, p.sku, p.name, COALESCE(c.name, ''), p.stock, p.min_stock, p.status
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.active AND p.stock < p.min_stock
		ORDER BY p.stock - p.min_stock, p.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("low stock report: %w", err)
	}
	defer rows.Close()

	var out []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.Name, &row.Category, &row.Stock, &row.MinStock, &row.Status); err != nil {
			return nil, fmt.Errorf("scan low stock row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// InventoryValuation valorización por producto activo: stock × precio.
func (r *ReportRepo) InventoryValuation(ctx context.Context) ([]repository.InventoryRow, error) {
	query := `
		SELECT p.id, p.sku, p.name, COALESCE(c.name, ''), p.stock, p.unit, p.price,
			p.price * GREATEST(p.stock, 0)
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.active
		ORDER BY p.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("inventory report: %w", err)
	}
	defer rows.Close()

	var out []repository.InventoryRow
	for rows.Next() {
		var row repository.InventoryRow
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.Name, &row.Category, &row.Stock, &row.Unit, &row.Price, &row.Value); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// MovementSummary agrupa movimientos por tipo en la ventana [from, to].
func (r *ReportRepo) MovementSummary(ctx context.Context, from, to time.Time) ([]repository.MovementRow, error) {
	query := `
		SELECT type, COUNT(*), COALESCE(SUM(quantity), 0)
		FROM stock_transactions
		WHERE date >= $1 AND date <= $2
		GROUP BY type
		ORDER BY type`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("movement report: %w", err)
	}
	defer rows.Close()

	var out []repository.MovementRow
	for rows.Next() {
		var row repository.MovementRow
		if err := rows.Scan(&row.Type, &row.Count, &row.TotalUnits); err != nil {
			return nil, fmt.Errorf("scan movement row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// DashboardStats agregados del tablero en una sola consulta.
func (r *ReportRepo) DashboardStats(ctx context.Context) (*repository.DashboardStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status IN ($1, $2)),
			COALESCE(SUM(price * GREATEST(stock, 0)), 0)
		FROM products WHERE active`
	var stats repository.DashboardStats
	err := r.q.QueryRow(ctx, query, entity.StatusLowStock, entity.StatusOutOfStock).
		Scan(&stats.TotalProducts, &stats.LowStockCount, &stats.StockValue)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}
