package dto

import "time"

// MovementLineRequest línea de un movimiento (código + cantidad).
type MovementLineRequest struct {
	Code     string `json:"code" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

// RecordInboundRequest body para POST /api/movements/inbound.
type RecordInboundRequest struct {
	Warehouse string                `json:"warehouse" validate:"required"`
	Detail    string                `json:"detail"`
	Lines     []MovementLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// RecordOutboundRequest body para POST /api/movements/outbound.
type RecordOutboundRequest struct {
	Warehouse string                `json:"warehouse" validate:"required"`
	DocType   string                `json:"doc_type"`
	DocNumber string                `json:"doc_number"`
	Reason    string                `json:"reason"`
	Lines     []MovementLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// TransferRequest body para POST /api/movements/transfers.
// En una línea, quantity 0 traslada todo el stock actual del producto.
type TransferRequest struct {
	From  string                `json:"from" validate:"required"`
	To    string                `json:"to" validate:"required"`
	Lines []MovementLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// MovementItemResponse línea de un movimiento registrado.
type MovementItemResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// MovementResponse entrada del log de movimientos.
type MovementResponse struct {
	ID       string                 `json:"id"`
	Kind     string                 `json:"kind"`
	Seq      int64                  `json:"seq"`
	Date     time.Time              `json:"date"`
	Detail   string                 `json:"detail"`
	Items    []MovementItemResponse `json:"items"`
	User     string                 `json:"user"`
	DocType  string                 `json:"doc_type,omitempty"`
	DocNum   string                 `json:"doc_number,omitempty"`
	From     string                 `json:"from,omitempty"`
	To       string                 `json:"to,omitempty"`
}

// MovementListResponse listado filtrado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// RejectedLineResponse línea de salida rechazada.
type RejectedLineResponse struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// OutboundResponse resultado de una salida: líneas aceptadas y rechazadas.
type OutboundResponse struct {
	Seq      int64                  `json:"seq"`
	Accepted []MovementItemResponse `json:"accepted"`
	Rejected []RejectedLineResponse `json:"rejected"`
}

// InboundResponse resultado de un ingreso.
type InboundResponse struct {
	Seq     int64                  `json:"seq"`
	Applied []MovementItemResponse `json:"applied"`
	Skipped []string               `json:"skipped,omitempty"`
}

// TransferResponse resultado de un traslado.
type TransferResponse struct {
	Seq   int64                  `json:"seq"`
	Items []MovementItemResponse `json:"items"`
}
