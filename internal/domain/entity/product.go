package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock derivados. Status nunca se acepta como input externo:
// se recalcula desde (stock, minStock) en cada escritura que toque alguno.
const (
	StatusInStock    = "IN_STOCK"
	StatusLowStock   = "LOW_STOCK"
	StatusOutOfStock = "OUT_OF_STOCK"
)

// Product representa un producto del catálogo. Stock es el acumulado
// desnormalizado de su historial de transacciones (se actualiza en la misma
// transacción de BD que el asiento, no se recalcula por replay).
// Specifications es el mapa plano specID → valor validado contra el esquema
// de su categoría actual.
type Product struct {
	ID             string
	SKU            string // único entre productos activos
	Name           string
	CategoryID     string
	CategoryName   string // proyección de lectura; vacío si la categoría ya no existe
	Price          decimal.Decimal
	Stock          int
	MinStock       int
	Unit           string
	Status         string
	Active         bool
	Specifications AttributeMap
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DeriveStockStatus es la proyección pura del estado de stock:
//
//	stock <= 0            → OUT_OF_STOCK
//	0 < stock < minStock  → LOW_STOCK
//	stock >= minStock     → IN_STOCK
func DeriveStockStatus(stock, minStock int) string {
	switch {
	case stock <= 0:
		return StatusOutOfStock
	case stock < minStock:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
