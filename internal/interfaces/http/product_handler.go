package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-ledger/internal/application/dto"
	"github.com/tu-usuario/almacen-ledger/internal/application/ledger"
	"github.com/tu-usuario/almacen-ledger/internal/domain"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
	"github.com/tu-usuario/almacen-ledger/internal/infrastructure/excel"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos,
// incluida la importación/exportación por hoja de cálculo.
type ProductHandler struct {
	ledger *ledger.Ledger
}

// NewProductHandler construye el handler.
func NewProductHandler(l *ledger.Ledger) *ProductHandler {
	return &ProductHandler{ledger: l}
}

// Create agrega un producto al catálogo.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	p, err := h.ledger.AddProduct(ledger.ProductInput{
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Model:       in.Model,
		Brand:       in.Brand,
		Material:    in.Material,
		Color:       in.Color,
		Family:      in.Family,
		Value:       in.Value,
		Currency:    in.Currency,
		Unit:        in.Unit,
		Location:    in.Location,
		Stock:       in.Stock,
		Warehouse:   in.Warehouse,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCode) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_CODE", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bodega no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de producto inválidos"})
		}
		return persistenceOrInternal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(p))
}

// List devuelve el catálogo completo o el de una bodega (?warehouse=).
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list := h.ledger.Products(c.Query("warehouse"))
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return c.JSON(dto.ProductListResponse{Items: items, Total: len(items)})
}

// Update edita los campos descriptivos del producto con ese código.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	p, err := h.ledger.UpdateProduct(c.Params("code"), ledger.ProductUpdate{
		Name:        in.Name,
		Description: in.Description,
		Model:       in.Model,
		Brand:       in.Brand,
		Material:    in.Material,
		Color:       in.Color,
		Family:      in.Family,
		Value:       in.Value,
		Currency:    in.Currency,
		Unit:        in.Unit,
		Location:    in.Location,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de producto inválidos"})
		}
		return persistenceOrInternal(c, err)
	}
	return c.JSON(toProductResponse(p))
}

// Delete elimina el producto con ese código de su bodega y del índice global.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.ledger.DeleteProduct(c.Params("code")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return persistenceOrInternal(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import recibe un xlsx (multipart, campo "file") y lo aplica como lote
// todo-o-nada de altas de producto.
func (h *ProductHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el archivo en el campo file"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer file.Close()

	rows, err := excel.ParseWorkbook(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	products, err := h.ledger.ImportProducts(rows)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return persistenceOrInternal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"imported": len(products)})
}

// Export genera un xlsx con el catálogo (o el de una bodega, ?warehouse=).
func (h *ProductHandler) Export(c *fiber.Ctx) error {
	table := h.ledger.ExportTable(c.Query("warehouse"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="productos.xlsx"`)
	if err := excel.WriteTable(c.Response().BodyWriter(), table); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Model:       p.Model,
		Brand:       p.Brand,
		Material:    p.Material,
		Color:       p.Color,
		Family:      p.Family,
		Value:       p.Value,
		Currency:    p.Currency,
		Unit:        p.Unit,
		Location:    p.Location,
		Stock:       p.Stock,
		Warehouse:   p.Warehouse,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
