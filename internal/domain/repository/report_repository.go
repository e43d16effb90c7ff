package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockRow producto activo por debajo de su stock mínimo.
type LowStockRow struct {
	ProductID string
	SKU       string
	Name      string
	Category  string
	Stock     int
	MinStock  int
	Status    string
}

// InventoryRow fila de valorización: stock actual × precio.
type InventoryRow struct {
	ProductID string
	SKU       string
	Name      string
	Category  string
	Stock     int
	Unit      string
	Price     decimal.Decimal
	Value     decimal.Decimal
}

// MovementRow resumen de movimientos por tipo en una ventana.
type MovementRow struct {
	Type       string
	Count      int
	TotalUnits int
}

// DashboardStats agregados para el tablero.
type DashboardStats struct {
	TotalProducts int
	LowStockCount int
	StockValue    decimal.Decimal
}

// ReportRepository consultas de solo lectura para reportes y tablero.
// Proyecciones: no mutan estado y toleran referencias rotas (categoría
// inexistente sale como nombre vacío, nunca rompe la lectura).
type ReportRepository interface {
	LowStock(ctx context.Context) ([]LowStockRow, error)
	InventoryValuation(ctx context.Context) ([]InventoryRow, error)
	MovementSummary(ctx context.Context, from, to time.Time) ([]MovementRow, error)
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}
