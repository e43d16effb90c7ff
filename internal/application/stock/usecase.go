package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/ElectroStock-api/internal/domain"
	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
	"github.com/jhoicas/ElectroStock-api/internal/domain/repository"
)

// TransactionInput movimiento a aplicar. Para STOCK_IN/STOCK_OUT Quantity es
// el delta (> 0); para ADJUSTMENT es el valor objetivo absoluto (>= 0).
type TransactionInput struct {
	ProductID string
	Type      string
	Quantity  int
	Notes     string
	UserName  string
}

// Result producto actualizado más el asiento creado.
type Result struct {
	Product     *entity.Product
	Transaction *entity.StockTransaction
}

// ProcessTransactionUseCase aplica movimientos de stock de forma atómica.
// Cada apply exitoso deja exactamente un asiento en el libro; el stock del
// producto es siempre el resultado de reproducir sus movimientos en orden.
type ProcessTransactionUseCase struct {
	tx           TxRunner
	transactions repository.StockTransactionRepository
}

// NewProcessTransactionUseCase construye el caso de uso. transactions es el
// repositorio fuera de transacción, solo para lecturas de historial.
func NewProcessTransactionUseCase(tx TxRunner, transactions repository.StockTransactionRepository) *ProcessTransactionUseCase {
	return &ProcessTransactionUseCase{tx: tx, transactions: transactions}
}

// Process valida y aplica un movimiento. La validación ocurre antes de tocar
// nada: un movimiento rechazado no deja asiento ni cambia el stock.
func (uc *ProcessTransactionUseCase) Process(ctx context.Context, in TransactionInput) (*Result, error) {
	switch in.Type {
	case entity.TransactionTypeIn, entity.TransactionTypeOut:
		if in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	case entity.TransactionTypeAdjustment:
		// cero es legal: "ajustar a 0" vacía el stock
		if in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	var result *Result
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, transactions repository.StockTransactionRepository) error {
		product, err := products.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil || !product.Active {
			return domain.ErrNotFound
		}

		newStock := product.Stock
		switch in.Type {
		case entity.TransactionTypeIn:
			newStock += in.Quantity
		case entity.TransactionTypeOut:
			newStock -= in.Quantity
		case entity.TransactionTypeAdjustment:
			newStock = in.Quantity
		}
		if newStock < 0 {
			// permitido: el faltante queda visible como OUT_OF_STOCK
			log.Warn().
				Str("productId", product.ID).
				Int("stock", newStock).
				Msg("stock negativo tras el movimiento")
		}

		product.Stock = newStock
		product.Status = entity.DeriveStockStatus(newStock, product.MinStock)
		product.UpdatedAt = time.Now()
		if err := products.UpdateStock(ctx, product.ID, product.Stock, product.Status); err != nil {
			return err
		}

		transaction := &entity.StockTransaction{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Type:        in.Type,
			Quantity:    in.Quantity,
			Date:        time.Now(),
			Notes:       in.Notes,
			UserName:    in.UserName,
			CreatedAt:   time.Now(),
		}
		if err := transactions.Create(ctx, transaction); err != nil {
			return err
		}

		result = &Result{Product: product, Transaction: transaction}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// History devuelve los movimientos de un producto, más recientes primero.
func (uc *ProcessTransactionUseCase) History(ctx context.Context, productID string, limit, offset int) ([]*entity.StockTransaction, error) {
	if limit <= 0 {
		limit = 50
	}
	return uc.transactions.ListByProduct(ctx, productID, limit, offset)
}

// Recent devuelve los últimos movimientos de todo el catálogo.
func (uc *ProcessTransactionUseCase) Recent(ctx context.Context, limit int) ([]*entity.StockTransaction, error) {
	if limit <= 0 {
		limit = 50
	}
	return uc.transactions.ListRecent(ctx, limit)
}
