package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
)

// SaveProductRequest payload de creación/edición. Specifications llega como
// mapa plano specID → string crudo; se valida y tipa contra el esquema de la
// categoría al guardar. Status no se acepta: siempre se deriva.
type SaveProductRequest struct {
	ID             string            `json:"id"`
	SKU            string            `json:"sku"`
	Name           string            `json:"name"`
	CategoryID     string            `json:"categoryId"`
	Price          decimal.Decimal   `json:"price"`
	Stock          int               `json:"stock"`
	MinStock       int               `json:"minStock"`
	Unit           string            `json:"unit"`
	Specifications map[string]string `json:"specifications"`
}

// ProductResponse producto en respuestas. Specifications siempre es un mapa
// plano specID → valor (string o número), nunca anidado.
type ProductResponse struct {
	ID             string              `json:"id"`
	SKU            string              `json:"sku"`
	Name           string              `json:"name"`
	CategoryID     string              `json:"categoryId"`
	CategoryName   string              `json:"categoryName"`
	Price          decimal.Decimal     `json:"price"`
	Stock          int                 `json:"stock"`
	MinStock       int                 `json:"minStock"`
	Unit           string              `json:"unit"`
	Status         string              `json:"status"`
	Active         bool                `json:"active"`
	Specifications entity.AttributeMap `json:"specifications"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// SaveProductResponse resultado del guardado. Warnings lista las claves de
// especificación obsoletas que se descartaron al revalidar contra el esquema
// actual de la categoría.
type SaveProductResponse struct {
	Product  ProductResponse `json:"product"`
	Warnings []string        `json:"warnings,omitempty"`
}

// ListProductsRequest parámetros del listado (query). Page es 1-indexado.
type ListProductsRequest struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	Search   string `query:"search"`
	Status   string `query:"status"`
	Category string `query:"category"`
}

// DefaultPage aplica valores por defecto y topes.
func (r *ListProductsRequest) DefaultPage() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Limit <= 0 {
		r.Limit = 20
	}
	if r.Limit > 1000 {
		r.Limit = 1000
	}
}

// ProductListResponse página del listado. Total es el conteo post-filtro,
// pre-paginación: la UI calcula totalPages = ceil(total / limit).
type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int               `json:"total"`
}
