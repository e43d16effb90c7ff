package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/ElectroStock-api/internal/application/dto"
	"github.com/jhoicas/ElectroStock-api/internal/domain"
	"github.com/jhoicas/ElectroStock-api/internal/domain/catalog"
	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
	"github.com/jhoicas/ElectroStock-api/internal/domain/repository"
)

// ProductUseCase catálogo de productos: alta, edición, listado filtrado y
// baja lógica.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// List devuelve la página filtrada y el total post-filtro.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ListProductsRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()
	filter := repository.ProductFilter{
		Search:     strings.TrimSpace(in.Search),
		Status:     in.Status,
		CategoryID: in.Category,
		Page:       in.Page,
		Limit:      in.Limit,
	}
	products, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		data = append(data, toProductResponse(p))
	}
	return &dto.ProductListResponse{Data: data, Total: total}, nil
}

// Get devuelve un producto por id.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(product)
	return &out, nil
}

// Save crea o edita un producto. Los atributos llegan crudos y se validan
// contra el esquema vigente de la categoría acumulando todos los errores; las
// claves que ya no existen en el esquema se descartan y se reportan como
// warnings, nunca como error. El estado jamás se acepta del cliente.
func (uc *ProductUseCase) Save(ctx context.Context, in dto.SaveProductRequest) (*dto.SaveProductResponse, error) {
	var errs domain.ValidationErrors

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = errs.Add("name", "el nombre es requerido")
	}
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		errs = errs.Add("sku", "el sku es requerido")
	}
	if in.Price.IsNegative() {
		errs = errs.Add("price", "el precio no puede ser negativo")
	}
	if in.MinStock < 0 {
		errs = errs.Add("minStock", "el stock mínimo no puede ser negativo")
	}

	var category *entity.Category
	if in.CategoryID == "" {
		errs = errs.Add("categoryId", "la categoría es requerida")
	} else {
		var err error
		category, err = uc.categoryRepo.GetByID(ctx, in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			errs = errs.Add("categoryId", "la categoría no existe")
		}
	}

	var (
		attrs    entity.AttributeMap
		warnings []string
	)
	if category != nil {
		var stale []string
		var attrErrs domain.ValidationErrors
		attrs, stale, attrErrs = catalog.ValidateAttributes(category.Specifications, in.Specifications)
		errs = append(errs, attrErrs...)
		for _, key := range stale {
			warnings = append(warnings, fmt.Sprintf("especificación obsoleta descartada: %s", key))
		}
	}

	// unicidad de sku entre productos activos (la baja lógica libera el sku)
	if sku != "" {
		existing, err := uc.repo.GetActiveBySKU(ctx, sku)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != in.ID {
			errs = errs.Add("sku", "el sku ya está en uso")
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	now := time.Now()

	if in.ID == "" {
		product := &entity.Product{
			ID:             uuid.New().String(),
			SKU:            sku,
			Name:           name,
			CategoryID:     in.CategoryID,
			Price:          in.Price,
			Stock:          in.Stock,
			MinStock:       in.MinStock,
			Unit:           strings.TrimSpace(in.Unit),
			Status:         entity.DeriveStockStatus(in.Stock, in.MinStock),
			Active:         true,
			Specifications: attrs,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := uc.repo.Create(ctx, product); err != nil {
			return nil, err
		}
		product.CategoryName = category.Name
		uc.logWarnings(product.ID, warnings)
		return &dto.SaveProductResponse{Product: toProductResponse(product), Warnings: warnings}, nil
	}

	product, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, domain.ErrNotFound
	}
	product.SKU = sku
	product.Name = name
	product.CategoryID = in.CategoryID
	product.Price = in.Price
	product.Stock = in.Stock
	product.MinStock = in.MinStock
	product.Unit = strings.TrimSpace(in.Unit)
	product.Status = entity.DeriveStockStatus(in.Stock, in.MinStock)
	product.Specifications = attrs
	product.UpdatedAt = now
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	product.CategoryName = category.Name
	uc.logWarnings(product.ID, warnings)
	return &dto.SaveProductResponse{Product: toProductResponse(product), Warnings: warnings}, nil
}

// Delete da de baja lógica (active=false); el producto conserva su historial
// de movimientos y su sku queda libre para reutilizarse.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil || !product.Active {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) logWarnings(productID string, warnings []string) {
	for _, w := range warnings {
		log.Warn().Str("productId", productID).Msg(w)
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	specs := p.Specifications
	if specs == nil {
		specs = entity.AttributeMap{}
	}
	return dto.ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		CategoryID:     p.CategoryID,
		CategoryName:   p.CategoryName,
		Price:          p.Price,
		Stock:          p.Stock,
		MinStock:       p.MinStock,
		Unit:           p.Unit,
		Status:         p.Status,
		Active:         p.Active,
		Specifications: specs,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
