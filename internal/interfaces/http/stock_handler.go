package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ElectroStock-api/internal/application/dto"
	"github.com/jhoicas/ElectroStock-api/internal/application/stock"
	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
)

// StockHandler maneja los movimientos de stock y su historial (protegido).
type StockHandler struct {
	uc *stock.ProcessTransactionUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.ProcessTransactionUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Process godoc
// @Summary      Procesar movimiento de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessStockRequest  true  "Movimiento"
// @Success      200   {object}  dto.ProcessStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/transactions [post]
func (h *StockHandler) Process(c *fiber.Ctx) error {
	var in dto.ProcessStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.Process(c.Context(), stock.TransactionInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Notes:     in.Notes,
		UserName:  GetUserName(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ProcessStockResponse{
		Product:     toProductResponse(result.Product),
		Transaction: toTransactionResponse(result.Transaction),
	})
}

// History godoc
// @Summary      Historial de movimientos de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        limit   query  int     false  "Límite"  default(50)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.StockTransactionResponse
// @Router       /api/products/{id}/transactions [get]
func (h *StockHandler) History(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	entries, err := h.uc.History(c.Context(), id, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockTransactionResponse, 0, len(entries))
	for _, t := range entries {
		out = append(out, toTransactionResponse(t))
	}
	return c.JSON(out)
}

// Recent godoc
// @Summary      Últimos movimientos de todo el catálogo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(50)
// @Success      200    {array}  dto.StockTransactionResponse
// @Router       /api/stock/transactions [get]
func (h *StockHandler) Recent(c *fiber.Ctx) error {
	entries, err := h.uc.Recent(c.Context(), c.QueryInt("limit", 50))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockTransactionResponse, 0, len(entries))
	for _, t := range entries {
		out = append(out, toTransactionResponse(t))
	}
	return c.JSON(out)
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

func toTransactionResponse(t *entity.StockTransaction) dto.StockTransactionResponse {
	return dto.StockTransactionResponse{
		ID:          t.ID,
		ProductID:   t.ProductID,
		ProductName: t.ProductName,
		Type:        t.Type,
		Quantity:    t.Quantity,
		Date:        t.Date,
		Notes:       t.Notes,
		UserName:    t.UserName,
	}
}
