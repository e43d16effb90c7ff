package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ElectroStock-api/internal/application/dto"
	"github.com/jhoicas/ElectroStock-api/internal/domain"
	"github.com/jhoicas/ElectroStock-api/internal/domain/catalog"
	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
	"github.com/jhoicas/ElectroStock-api/internal/domain/repository"
)

// CategoryListCache cachea el listado plano de categorías entre lecturas.
// Toda escritura de categorías lo invalida. Puede ser nil (sin cache).
type CategoryListCache interface {
	GetList(ctx context.Context) ([]*entity.Category, bool)
	SetList(ctx context.Context, categories []*entity.Category)
	Invalidate(ctx context.Context)
}

// CategoryUseCase gestión de categorías y sus especificaciones.
// Las ediciones de especificaciones son por categoría: nunca cascan a
// descendientes (no hay herencia de specs en el árbol).
type CategoryUseCase struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
	cache       CategoryListCache
}

// NewCategoryUseCase construye el caso de uso. cache puede ser nil.
func NewCategoryUseCase(repo repository.CategoryRepository, productRepo repository.ProductRepository, cache CategoryListCache) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, productRepo: productRepo, cache: cache}
}

// List devuelve el listado plano (el caller arma el árbol si lo necesita).
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	flat, err := uc.loadFlat(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(flat))
	for _, c := range flat {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Tree devuelve el bosque con hijos poblados, reconstruido del listado
// plano en cada lectura (las referencias huérfanas se promueven a raíz).
func (uc *CategoryUseCase) Tree(ctx context.Context) ([]dto.CategoryTreeResponse, error) {
	flat, err := uc.loadFlat(ctx)
	if err != nil {
		return nil, err
	}
	return toTreeResponse(catalog.BuildTree(flat)), nil
}

// Save crea o edita una categoría. Las opciones de cada DROPDOWN llegan como
// string separado por comas y se normalizan aquí, una sola vez; las specs
// nuevas reciben un id fresco y las existentes conservan el suyo (identidad
// estable para los mapas de atributos históricos).
func (uc *CategoryUseCase) Save(ctx context.Context, in dto.SaveCategoryRequest) (*dto.CategoryResponse, error) {
	var errs domain.ValidationErrors

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = errs.Add("name", "el nombre es requerido")
	}

	specs := make([]entity.SpecDefinition, 0, len(in.Specifications))
	for _, p := range in.Specifications {
		spec := entity.SpecDefinition{
			ID:   p.ID,
			Name: strings.TrimSpace(p.Name),
			Type: p.Type,
		}
		if spec.ID == "" {
			spec.ID = uuid.New().String()
		}
		if spec.Type == entity.SpecTypeDropdown {
			spec.Options = catalog.NormalizeOptions(p.Options)
		}
		specs = append(specs, spec)
	}
	errs = append(errs, catalog.ValidateDefinitions(specs)...)
	if len(errs) > 0 {
		return nil, errs
	}

	if in.ParentID != "" {
		if in.ParentID == in.ID {
			return nil, domain.ErrInvalidInput
		}
		parent, err := uc.repo.GetByID(ctx, in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()

	// alta
	if in.ID == "" {
		category := &entity.Category{
			ID:             uuid.New().String(),
			Name:           name,
			ParentID:       in.ParentID,
			Specifications: specs,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := uc.repo.Create(ctx, category); err != nil {
			return nil, err
		}
		uc.invalidate(ctx)
		out := toCategoryResponse(category)
		return &out, nil
	}

	// edición: el id se conserva y mover de padre no puede crear ciclos
	category, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.ParentID != "" && in.ParentID != category.ParentID {
		flat, err := uc.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		if catalog.WouldCreateCycle(catalog.IndexByID(flat), category.ID, in.ParentID) {
			return nil, domain.ErrConflict
		}
	}
	category.Name = name
	category.ParentID = in.ParentID
	category.Specifications = specs
	category.UpdatedAt = now
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	out := toCategoryResponse(category)
	return &out, nil
}

// Delete elimina una categoría. Guardas explícitas: no hay cascada, así que
// una categoría con hijas o con productos activos que la referencian no se
// puede borrar.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	children, err := uc.repo.CountByParent(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return domain.ErrConflict
	}
	products, err := uc.productRepo.CountActiveByCategory(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return domain.ErrConflict
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *CategoryUseCase) loadFlat(ctx context.Context) ([]*entity.Category, error) {
	if uc.cache != nil {
		if cached, ok := uc.cache.GetList(ctx); ok {
			return cached, nil
		}
	}
	flat, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		uc.cache.SetList(ctx, flat)
	}
	return flat, nil
}

func (uc *CategoryUseCase) invalidate(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	specs := make([]dto.SpecResponse, 0, len(c.Specifications))
	for _, s := range c.Specifications {
		specs = append(specs, dto.SpecResponse{ID: s.ID, Name: s.Name, Type: s.Type, Options: s.Options})
	}
	return dto.CategoryResponse{
		ID:             c.ID,
		Name:           c.Name,
		ParentID:       c.ParentID,
		Specifications: specs, // siempre array, aunque vacío
	}
}

func toTreeResponse(forest []*entity.Category) []dto.CategoryTreeResponse {
	out := make([]dto.CategoryTreeResponse, 0, len(forest))
	for _, node := range forest {
		out = append(out, dto.CategoryTreeResponse{
			CategoryResponse: toCategoryResponse(node),
			Children:         toTreeResponse(node.Children),
		})
	}
	return out
}
