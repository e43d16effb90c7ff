package stock

import (
	"context"

	"github.com/jhoicas/ElectroStock-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de base de datos, entregando
// repositorios ligados a esa transacción. Si fn devuelve error se hace
// rollback completo: o persisten producto y asiento juntos, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(products repository.ProductRepository, transactions repository.StockTransactionRepository) error) error
}
