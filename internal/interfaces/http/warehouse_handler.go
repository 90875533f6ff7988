package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-ledger/internal/application/dto"
	"github.com/tu-usuario/almacen-ledger/internal/application/ledger"
	"github.com/tu-usuario/almacen-ledger/internal/domain"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
)

// WarehouseHandler maneja las peticiones HTTP de bodegas.
type WarehouseHandler struct {
	ledger *ledger.Ledger
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(l *ledger.Ledger) *WarehouseHandler {
	return &WarehouseHandler{ledger: l}
}

// Create da de alta una bodega.
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	w, err := h.ledger.AddWarehouse(in.Name)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la bodega ya existe"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre de bodega inválido"})
		}
		return persistenceOrInternal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toWarehouseResponse(w))
}

// List devuelve las bodegas en orden de creación.
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	list := h.ledger.Warehouses()
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, toWarehouseResponse(w))
	}
	return c.JSON(dto.WarehouseListResponse{Items: items, Total: len(items)})
}

func toWarehouseResponse(w *entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{ID: w.ID, Name: w.Name, CreatedAt: w.CreatedAt}
}

// persistenceOrInternal mapea fallas de escritura del store a 503 (reintentable)
// y cualquier otro error a 500.
func persistenceOrInternal(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrPersistence) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: "no se pudo guardar; reintente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
