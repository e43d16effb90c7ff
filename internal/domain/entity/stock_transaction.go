package entity

import "time"

// Tipos de transacción de stock.
const (
	TransactionTypeIn         = "STOCK_IN"   // entrada: suma al stock
	TransactionTypeOut        = "STOCK_OUT"  // salida: resta del stock
	TransactionTypeAdjustment = "ADJUSTMENT" // ajuste: fija el stock en un valor absoluto
)

// StockTransaction es el registro de auditoría de un movimiento de stock.
// Append-only: nunca se modifica después de creado. Para STOCK_IN/STOCK_OUT
// Quantity es un delta positivo; para ADJUSTMENT es el valor objetivo (no
// aditivo) — no confundir con la aritmética de STOCK_IN.
type StockTransaction struct {
	ID          string
	ProductID   string
	ProductName string // proyección de lectura para el historial
	Type        string
	Quantity    int
	Date        time.Time
	Notes       string
	UserName    string // usuario que ejecutó el movimiento (explícito, nunca estado global)
	CreatedAt   time.Time
}
