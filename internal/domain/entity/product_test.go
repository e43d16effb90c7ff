package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
)

// Tabla de la proyección de estado: stock <= 0 manda sobre todo lo demás,
// el límite inferior de LOW_STOCK es estricto (stock == minStock ya es
// IN_STOCK) y el cero es OUT_OF_STOCK aunque minStock sea positivo.
func TestDeriveStockStatus(t *testing.T) {
	cases := []struct {
		name     string
		stock    int
		minStock int
		want     string
	}{
		{"stock negativo", -3, 10, entity.StatusOutOfStock},
		{"stock cero", 0, 10, entity.StatusOutOfStock},
		{"cero con minStock cero", 0, 0, entity.StatusOutOfStock},
		{"bajo el mínimo", 5, 10, entity.StatusLowStock},
		{"uno bajo el mínimo", 9, 10, entity.StatusLowStock},
		{"exactamente el mínimo", 10, 10, entity.StatusInStock},
		{"sobre el mínimo", 15, 10, entity.StatusInStock},
		{"sin mínimo definido", 1, 0, entity.StatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.DeriveStockStatus(tc.stock, tc.minStock))
		})
	}
}
