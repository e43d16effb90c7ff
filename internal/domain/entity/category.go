package entity

import "time"

// Category representa una categoría del catálogo (árbol multinivel).
// Specifications siempre es un array (nunca nil al persistir/responder).
// Children se deriva del listado plano en cada lectura; no se persiste.
type Category struct {
	ID             string
	Name           string
	ParentID       string // vacío si es raíz
	Specifications []SpecDefinition
	Children       []*Category
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
