package dto

import "time"

// ProcessStockRequest payload de un movimiento de stock. Para
// STOCK_IN/STOCK_OUT Quantity es el delta (> 0); para ADJUSTMENT es el valor
// objetivo absoluto (>= 0, cero es legal).
type ProcessStockRequest struct {
	ProductID string `json:"productId"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

// StockTransactionResponse asiento del libro para el historial.
type StockTransactionResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes"`
	UserName    string    `json:"userName"`
}

// ProcessStockResponse resultado del movimiento: el producto actualizado y
// el asiento creado (exactamente uno por apply exitoso).
type ProcessStockResponse struct {
	Product     ProductResponse          `json:"product"`
	Transaction StockTransactionResponse `json:"transaction"`
}
