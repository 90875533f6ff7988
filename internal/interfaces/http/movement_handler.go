package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-ledger/internal/application/dto"
	"github.com/tu-usuario/almacen-ledger/internal/application/ledger"
	"github.com/tu-usuario/almacen-ledger/internal/domain"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
	"github.com/tu-usuario/almacen-ledger/internal/infrastructure/pdf"
)

// MovementHandler maneja las peticiones HTTP de movimientos de inventario.
type MovementHandler struct {
	ledger *ledger.Ledger
	report *pdf.MarotoReportGenerator
}

// NewMovementHandler construye el handler.
func NewMovementHandler(l *ledger.Ledger, report *pdf.MarotoReportGenerator) *MovementHandler {
	return &MovementHandler{ledger: l, report: report}
}

// RecordInbound registra un lote de ingreso.
func (h *MovementHandler) RecordInbound(c *fiber.Ctx) error {
	var in dto.RecordInboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	res, err := h.ledger.RecordInbound(ledger.InboundInput{
		Warehouse: in.Warehouse,
		Detail:    in.Detail,
		Lines:     toLines(in.Lines),
		User:      GetUserName(c),
	})
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InboundResponse{
		Seq:     res.Seq,
		Applied: toItemResponses(res.Applied),
		Skipped: res.Skipped,
	})
}

// RecordOutbound registra un lote de salida. Las líneas con stock insuficiente
// vuelven rechazadas en la respuesta; las demás proceden.
func (h *MovementHandler) RecordOutbound(c *fiber.Ctx) error {
	var in dto.RecordOutboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	res, err := h.ledger.RecordOutbound(ledger.OutboundInput{
		Warehouse: in.Warehouse,
		DocType:   in.DocType,
		DocNumber: in.DocNumber,
		Reason:    in.Reason,
		Lines:     toLines(in.Lines),
		User:      GetUserName(c),
	})
	if err != nil {
		return movementError(c, err)
	}
	out := dto.OutboundResponse{
		Seq:      res.Seq,
		Accepted: toItemResponses(res.Accepted),
	}
	for _, r := range res.Rejected {
		out.Rejected = append(out.Rejected, dto.RejectedLineResponse{Code: r.Code, Reason: r.Reason.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Transfer registra un traslado todo-o-nada entre dos bodegas.
func (h *MovementHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	res, err := h.ledger.TransferStock(ledger.TransferInput{
		From:  in.From,
		To:    in.To,
		Lines: toLines(in.Lines),
		User:  GetUserName(c),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransfer) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TRANSFER", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		}
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransferResponse{
		Seq:   res.Seq,
		Items: toItemResponses(res.Items),
	})
}

// List devuelve los movimientos filtrados por texto libre (?q=) y visibilidad
// por tipo (?inbound=1&outbound=1&transfer=1; sin toggles se muestran todos).
func (h *MovementHandler) List(c *fiber.Ctx) error {
	list := h.ledger.Movements(filterFromQuery(c))
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{Items: items, Total: len(items)})
}

// Report genera el PDF del kárdex con el mismo filtro que List.
func (h *MovementHandler) Report(c *fiber.Ctx) error {
	list := h.ledger.Movements(filterFromQuery(c))
	doc, err := h.report.GenerateMovementReport(list, "Kárdex de movimientos")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="movimientos.pdf"`)
	return c.Send(doc)
}

func filterFromQuery(c *fiber.Ctx) ledger.MovementFilter {
	return ledger.MovementFilter{
		Text:     c.Query("q"),
		Inbound:  c.QueryBool("inbound"),
		Outbound: c.QueryBool("outbound"),
		Transfer: c.QueryBool("transfer"),
	}
}

func movementError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return persistenceOrInternal(c, err)
}

func toLines(in []dto.MovementLineRequest) []ledger.Line {
	out := make([]ledger.Line, 0, len(in))
	for _, l := range in {
		out = append(out, ledger.Line{Code: l.Code, Quantity: l.Quantity})
	}
	return out
}

func toItemResponses(items []entity.MovementItem) []dto.MovementItemResponse {
	out := make([]dto.MovementItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.MovementItemResponse{
			Code:        it.Code,
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
		})
	}
	return out
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	res := dto.MovementResponse{
		ID:     m.ID,
		Kind:   m.Kind,
		Seq:    m.Seq,
		Date:   m.Date,
		Detail: m.Detail,
		Items:  toItemResponses(m.Items),
		User:   m.User,
	}
	if m.Document != nil {
		res.DocType = m.Document.Type
		res.DocNum = m.Document.Number
	}
	if m.Route != nil {
		res.From = m.Route.From
		res.To = m.Route.To
	}
	return res
}
