package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ElectroStock-api/internal/application/dto"
	"github.com/jhoicas/ElectroStock-api/internal/application/usecase"
	"github.com/jhoicas/ElectroStock-api/internal/domain"
	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
)

func category(id, name, parentID string) *entity.Category {
	now := time.Now()
	return &entity.Category{ID: id, Name: name, ParentID: parentID, CreatedAt: now, UpdatedAt: now}
}

// Crear una categoría con un DROPDOWN: el string crudo de opciones se
// normaliza (trim, vacíos fuera, duplicados colapsados conservando la primera
// aparición) y la respuesta ya trae el array limpio.
func TestSaveCategory_NormalizaOpcionesDropdown(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo(), nil)

	out, err := uc.Save(context.Background(), dto.SaveCategoryRequest{
		Name: "Cables",
		Specifications: []dto.SaveSpecPayload{
			{Name: "Color", Type: entity.SpecTypeDropdown, Options: " Rojo, Azul ,, Azul , Verde"},
		},
	})

	require.NoError(t, err)
	require.Len(t, out.Specifications, 1)
	assert.Equal(t, []string{"Rojo", "Azul", "Verde"}, out.Specifications[0].Options)
	assert.NotEmpty(t, out.Specifications[0].ID, "las specs nuevas reciben id propio")
}

// Un DROPDOWN cuyas opciones quedan vacías tras normalizar se rechaza.
func TestSaveCategory_DropdownSinOpcionesRechazado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo(), nil)

	_, err := uc.Save(context.Background(), dto.SaveCategoryRequest{
		Name: "Cables",
		Specifications: []dto.SaveSpecPayload{
			{Name: "Color", Type: entity.SpecTypeDropdown, Options: " , ,"},
		},
	})

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.NotEmpty(t, verrs)
}

func TestSaveCategory_NombreRequerido(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo(), nil)

	_, err := uc.Save(context.Background(), dto.SaveCategoryRequest{Name: "   "})

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "name", verrs[0].Field)
}

func TestSaveCategory_PadreInexistenteRechazado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo(), nil)

	_, err := uc.Save(context.Background(), dto.SaveCategoryRequest{Name: "Lámparas", ParentID: "fantasma"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Mover una categoría bajo uno de sus descendientes crearía un ciclo.
func TestSaveCategory_MoverBajoDescendienteRechazado(t *testing.T) {
	repo := newFakeCategoryRepo(
		category("a", "Iluminación", ""),
		category("b", "LED", "a"),
	)
	uc := usecase.NewCategoryUseCase(repo, newFakeProductRepo(), nil)

	_, err := uc.Save(context.Background(), dto.SaveCategoryRequest{ID: "a", Name: "Iluminación", ParentID: "b"})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Editar specs conserva el id de las existentes: los productos referencian
// specs por id, así que la identidad debe ser estable entre ediciones.
func TestSaveCategory_EdicionConservaIDDeSpecs(t *testing.T) {
	existing := category("c1", "Cables", "")
	existing.Specifications = []entity.SpecDefinition{{ID: "s1", Name: "Calibre", Type: entity.SpecTypeText}}
	repo := newFakeCategoryRepo(existing)
	uc := usecase.NewCategoryUseCase(repo, newFakeProductRepo(), nil)

	out, err := uc.Save(context.Background(), dto.SaveCategoryRequest{
		ID:   "c1",
		Name: "Cables eléctricos",
		Specifications: []dto.SaveSpecPayload{
			{ID: "s1", Name: "Calibre AWG", Type: entity.SpecTypeText},
			{Name: "Material", Type: entity.SpecTypeText},
		},
	})

	require.NoError(t, err)
	require.Len(t, out.Specifications, 2)
	assert.Equal(t, "s1", out.Specifications[0].ID)
	assert.NotEmpty(t, out.Specifications[1].ID)
	assert.NotEqual(t, "s1", out.Specifications[1].ID)
}

// El árbol se reconstruye del listado plano; los huérfanos suben a raíz.
func TestTree_HuerfanoPromovidoARaiz(t *testing.T) {
	repo := newFakeCategoryRepo(
		category("a", "Iluminación", ""),
		category("b", "LED", "a"),
		category("c", "Huérfana", "desaparecida"),
	)
	uc := usecase.NewCategoryUseCase(repo, newFakeProductRepo(), nil)

	tree, err := uc.Tree(context.Background())

	require.NoError(t, err)
	require.Len(t, tree, 2, "raíz real más la huérfana promovida")
	assert.Equal(t, "a", tree[0].ID)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "b", tree[0].Children[0].ID)
	assert.Equal(t, "c", tree[1].ID)
	assert.Empty(t, tree[1].Children)
}

// El listado plano siempre serializa Specifications como array.
func TestList_SpecificationsNuncaNil(t *testing.T) {
	repo := newFakeCategoryRepo(category("a", "Iluminación", ""))
	uc := usecase.NewCategoryUseCase(repo, newFakeProductRepo(), nil)

	list, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotNil(t, list[0].Specifications)
}

// Borrado con guardas: hijas o productos activos bloquean la eliminación.
func TestDeleteCategory_ConHijasRechazado(t *testing.T) {
	repo := newFakeCategoryRepo(
		category("a", "Iluminación", ""),
		category("b", "LED", "a"),
	)
	uc := usecase.NewCategoryUseCase(repo, newFakeProductRepo(), nil)

	err := uc.Delete(context.Background(), "a")

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDeleteCategory_ConProductosActivosRechazado(t *testing.T) {
	repo := newFakeCategoryRepo(category("a", "Iluminación", ""))
	products := newFakeProductRepo(&entity.Product{ID: "p1", CategoryID: "a", Active: true})
	uc := usecase.NewCategoryUseCase(repo, products, nil)

	err := uc.Delete(context.Background(), "a")

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDeleteCategory_SinReferencias(t *testing.T) {
	repo := newFakeCategoryRepo(category("a", "Iluminación", ""))
	uc := usecase.NewCategoryUseCase(repo, newFakeProductRepo(), nil)

	err := uc.Delete(context.Background(), "a")

	require.NoError(t, err)
	got, _ := repo.GetByID(context.Background(), "a")
	assert.Nil(t, got)
}

// La cache sirve lecturas repetidas y toda escritura la invalida.
func TestCategoryCache_EscrituraInvalida(t *testing.T) {
	repo := newFakeCategoryRepo(category("a", "Iluminación", ""))
	cache := &fakeCategoryCache{}
	uc := usecase.NewCategoryUseCase(repo, newFakeProductRepo(), cache)

	_, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.True(t, cache.has, "la primera lectura puebla la cache")

	_, err = uc.Save(context.Background(), dto.SaveCategoryRequest{Name: "Cables"})
	require.NoError(t, err)
	assert.False(t, cache.has, "guardar invalida la cache")
	assert.Equal(t, 1, cache.invalidated)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2, "la relectura ve la categoría nueva")
}
