package dto

import "github.com/shopspring/decimal"

// Tipos de reporte soportados por getReports.
const (
	ReportLowStock  = "LOW_STOCK"
	ReportInventory = "INVENTORY"
	ReportMovement  = "MOVEMENT"
)

// LowStockRowDTO fila del reporte de stock bajo.
type LowStockRowDTO struct {
	ProductID string `json:"productId"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Stock     int    `json:"stock"`
	MinStock  int    `json:"minStock"`
	Status    string `json:"status"`
}

// InventoryRowDTO fila de valorización de inventario.
type InventoryRowDTO struct {
	ProductID string          `json:"productId"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Stock     int             `json:"stock"`
	Unit      string          `json:"unit"`
	Price     decimal.Decimal `json:"price"`
	Value     decimal.Decimal `json:"value"`
}

// MovementRowDTO resumen de movimientos por tipo.
type MovementRowDTO struct {
	Type       string `json:"type"`
	Count      int    `json:"count"`
	TotalUnits int    `json:"totalUnits"`
}

// DashboardResponse agregados del tablero más transacciones recientes.
type DashboardResponse struct {
	TotalProducts      int                        `json:"totalProducts"`
	LowStockCount      int                        `json:"lowStockCount"`
	StockValue         decimal.Decimal            `json:"stockValue"`
	RecentTransactions []StockTransactionResponse `json:"recentTransactions"`
}
