package repository

import (
	"context"

	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
)

// StockTransactionRepository define el puerto del libro de transacciones.
// Solo Create y lecturas: los asientos son append-only e inmutables.
type StockTransactionRepository interface {
	Create(ctx context.Context, trx *entity.StockTransaction) error
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockTransaction, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.StockTransaction, error)
}
