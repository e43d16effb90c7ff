package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ElectroStock-api/internal/application/dto"
	"github.com/jhoicas/ElectroStock-api/internal/application/usecase"
	"github.com/jhoicas/ElectroStock-api/internal/domain"
	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
)

func categoryWithSpecs(id, name string, specs ...entity.SpecDefinition) *entity.Category {
	c := category(id, name, "")
	c.Specifications = specs
	return c
}

func activeProduct(id, sku, categoryID string) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:         id,
		SKU:        sku,
		Name:       "Interruptor doble",
		CategoryID: categoryID,
		Price:      decimal.NewFromInt(10),
		Stock:      5,
		MinStock:   2,
		Status:     entity.StatusInStock,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Alta completa: los atributos crudos se validan y tipan contra el esquema de
// la categoría y el estado se deriva del stock, nunca del payload.
func TestSaveProduct_AltaValidaYTipaAtributos(t *testing.T) {
	categories := newFakeCategoryRepo(categoryWithSpecs("c1", "Cables",
		entity.SpecDefinition{ID: "s1", Name: "Color", Type: entity.SpecTypeDropdown, Options: []string{"Rojo", "Azul"}},
		entity.SpecDefinition{ID: "s2", Name: "Largo", Type: entity.SpecTypeNumber},
	))
	uc := usecase.NewProductUseCase(newFakeProductRepo(), categories)

	out, err := uc.Save(context.Background(), dto.SaveProductRequest{
		SKU:        "CAB-001",
		Name:       "Cable THW 12",
		CategoryID: "c1",
		Price:      decimal.NewFromFloat(2.5),
		Stock:      100,
		MinStock:   20,
		Unit:       "m",
		Specifications: map[string]string{
			"s1": "Azul",
			"s2": "100",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusInStock, out.Product.Status)
	assert.Equal(t, "Azul", out.Product.Specifications["s1"].String())
	assert.Equal(t, entity.SpecValueNumber, out.Product.Specifications["s2"].Kind)
	assert.Empty(t, out.Warnings)
}

// Validación acumulativa: todos los problemas del payload se reportan juntos,
// no solo el primero.
func TestSaveProduct_AcumulaTodosLosErrores(t *testing.T) {
	categories := newFakeCategoryRepo(categoryWithSpecs("c1", "Cables",
		entity.SpecDefinition{ID: "s1", Name: "Color", Type: entity.SpecTypeDropdown, Options: []string{"Rojo", "Azul"}},
		entity.SpecDefinition{ID: "s2", Name: "Largo", Type: entity.SpecTypeNumber},
	))
	uc := usecase.NewProductUseCase(newFakeProductRepo(), categories)

	_, err := uc.Save(context.Background(), dto.SaveProductRequest{
		SKU:        "CAB-001",
		CategoryID: "c1",
		Specifications: map[string]string{
			"s1": "Verde", // fuera de las opciones
			"s2": "mucho", // no numérico
		},
	})

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make(map[string]bool)
	for _, fe := range verrs {
		fields[fe.Field] = true
	}
	assert.True(t, fields["name"], "falta el nombre")
	assert.True(t, fields["s1"], "opción fuera del dropdown")
	assert.True(t, fields["s2"], "número inválido")
}

// Claves obsoletas: atributos que ya no existen en el esquema se descartan y
// se reportan como warnings, nunca como error.
func TestSaveProduct_ClavesObsoletasComoWarnings(t *testing.T) {
	categories := newFakeCategoryRepo(categoryWithSpecs("c1", "Cables",
		entity.SpecDefinition{ID: "s1", Name: "Color", Type: entity.SpecTypeText},
	))
	uc := usecase.NewProductUseCase(newFakeProductRepo(), categories)

	out, err := uc.Save(context.Background(), dto.SaveProductRequest{
		SKU:        "CAB-001",
		Name:       "Cable THW",
		CategoryID: "c1",
		Specifications: map[string]string{
			"s1":       "Rojo",
			"borrada":  "valor viejo",
			"borrada2": "otro",
		},
	})

	require.NoError(t, err)
	assert.Len(t, out.Warnings, 2)
	assert.NotContains(t, out.Product.Specifications, "borrada")
}

// Unicidad de sku entre activos: un sku en uso por otro producto activo se
// rechaza, pero el propio producto puede conservar el suyo al editar.
func TestSaveProduct_SkuDuplicadoEntreActivos(t *testing.T) {
	categories := newFakeCategoryRepo(categoryWithSpecs("c1", "Cables"))
	products := newFakeProductRepo(activeProduct("p1", "CAB-001", "c1"))
	uc := usecase.NewProductUseCase(products, categories)

	_, err := uc.Save(context.Background(), dto.SaveProductRequest{
		SKU:        "CAB-001",
		Name:       "Otro cable",
		CategoryID: "c1",
	})

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "sku", verrs[0].Field)
}

func TestSaveProduct_EdicionConservaSuPropioSku(t *testing.T) {
	categories := newFakeCategoryRepo(categoryWithSpecs("c1", "Cables"))
	products := newFakeProductRepo(activeProduct("p1", "CAB-001", "c1"))
	uc := usecase.NewProductUseCase(products, categories)

	out, err := uc.Save(context.Background(), dto.SaveProductRequest{
		ID:         "p1",
		SKU:        "CAB-001",
		Name:       "Cable renombrado",
		CategoryID: "c1",
	})

	require.NoError(t, err)
	assert.Equal(t, "Cable renombrado", out.Product.Name)
}

// La baja lógica libera el sku para un producto nuevo.
func TestSaveProduct_SkuLiberadoTrasBaja(t *testing.T) {
	categories := newFakeCategoryRepo(categoryWithSpecs("c1", "Cables"))
	products := newFakeProductRepo(activeProduct("p1", "CAB-001", "c1"))
	uc := usecase.NewProductUseCase(products, categories)

	require.NoError(t, uc.Delete(context.Background(), "p1"))

	_, err := uc.Save(context.Background(), dto.SaveProductRequest{
		SKU:        "CAB-001",
		Name:       "Cable nuevo",
		CategoryID: "c1",
	})
	require.NoError(t, err)
}

func TestSaveProduct_CategoriaInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeCategoryRepo())

	_, err := uc.Save(context.Background(), dto.SaveProductRequest{
		SKU:        "CAB-001",
		Name:       "Cable",
		CategoryID: "fantasma",
	})

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

// Baja lógica: el producto deja de listarse pero conserva su historial;
// borrar dos veces es ErrNotFound la segunda.
func TestDeleteProduct_BajaLogica(t *testing.T) {
	categories := newFakeCategoryRepo(categoryWithSpecs("c1", "Cables"))
	products := newFakeProductRepo(activeProduct("p1", "CAB-001", "c1"))
	uc := usecase.NewProductUseCase(products, categories)

	require.NoError(t, uc.Delete(context.Background(), "p1"))

	_, err := uc.Get(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Listado filtrado y paginado: el total es post-filtro, pre-paginación.
func TestListProducts_FiltroYPaginacion(t *testing.T) {
	categories := newFakeCategoryRepo(categoryWithSpecs("c1", "Cables"))
	products := newFakeProductRepo()
	for _, p := range []*entity.Product{
		activeProduct("p1", "CAB-001", "c1"),
		activeProduct("p2", "CAB-002", "c1"),
		activeProduct("p3", "LAM-001", "c2"),
	} {
		require.NoError(t, products.Create(context.Background(), p))
	}
	uc := usecase.NewProductUseCase(products, categories)

	out, err := uc.List(context.Background(), dto.ListProductsRequest{
		Search: "cab",
		Page:   1,
		Limit:  1,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Total, "total post-filtro, pre-paginación")
	require.Len(t, out.Data, 1)
	assert.Equal(t, "CAB-001", out.Data[0].SKU)
}

func TestListProducts_PaginaFueraDeRango(t *testing.T) {
	categories := newFakeCategoryRepo(categoryWithSpecs("c1", "Cables"))
	products := newFakeProductRepo(activeProduct("p1", "CAB-001", "c1"))
	uc := usecase.NewProductUseCase(products, categories)

	out, err := uc.List(context.Background(), dto.ListProductsRequest{Page: 99, Limit: 10})

	require.NoError(t, err)
	assert.Empty(t, out.Data, "página vacía, nunca error")
	assert.Equal(t, 1, out.Total)
}
