package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/ElectroStock-api/internal/application/dto"
	"github.com/jhoicas/ElectroStock-api/internal/domain"
	"github.com/jhoicas/ElectroStock-api/internal/domain/repository"
)

// ReportUseCase reportes de solo lectura y tablero.
type ReportUseCase struct {
	reports      repository.ReportRepository
	transactions repository.StockTransactionRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reports repository.ReportRepository, transactions repository.StockTransactionRepository) *ReportUseCase {
	return &ReportUseCase{reports: reports, transactions: transactions}
}

// LowStock productos activos con stock por debajo del mínimo.
func (uc *ReportUseCase) LowStock(ctx context.Context) ([]dto.LowStockRowDTO, error) {
	rows, err := uc.reports.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LowStockRowDTO{
			ProductID: r.ProductID,
			SKU:       r.SKU,
			Name:      r.Name,
			Category:  r.Category,
			Stock:     r.Stock,
			MinStock:  r.MinStock,
			Status:    r.Status,
		})
	}
	return out, nil
}

// Inventory valorización del inventario activo (stock × precio).
func (uc *ReportUseCase) Inventory(ctx context.Context) ([]dto.InventoryRowDTO, error) {
	rows, err := uc.reports.InventoryValuation(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InventoryRowDTO{
			ProductID: r.ProductID,
			SKU:       r.SKU,
			Name:      r.Name,
			Category:  r.Category,
			Stock:     r.Stock,
			Unit:      r.Unit,
			Price:     r.Price,
			Value:     r.Value,
		})
	}
	return out, nil
}

// Movement resumen de movimientos por tipo en la ventana [from, to].
// Si la ventana viene vacía se usan los últimos 30 días.
func (uc *ReportUseCase) Movement(ctx context.Context, from, to time.Time) ([]dto.MovementRowDTO, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	if from.After(to) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.reports.MovementSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MovementRowDTO{Type: r.Type, Count: r.Count, TotalUnits: r.TotalUnits})
	}
	return out, nil
}

// Dashboard agregados del tablero más las transacciones recientes.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := uc.reports.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.transactions.ListRecent(ctx, 10)
	if err != nil {
		return nil, err
	}
	transactions := make([]dto.StockTransactionResponse, 0, len(recent))
	for _, t := range recent {
		transactions = append(transactions, dto.StockTransactionResponse{
			ID:          t.ID,
			ProductID:   t.ProductID,
			ProductName: t.ProductName,
			Type:        t.Type,
			Quantity:    t.Quantity,
			Date:        t.Date,
			Notes:       t.Notes,
			UserName:    t.UserName,
		})
	}
	return &dto.DashboardResponse{
		TotalProducts:      stats.TotalProducts,
		LowStockCount:      stats.LowStockCount,
		StockValue:         stats.StockValue,
		RecentTransactions: transactions,
	}, nil
}
