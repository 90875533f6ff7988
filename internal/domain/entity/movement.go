package entity

import "time"

// Kinds de movimiento del ledger.
const (
	MovementKindInbound  = "INGRESO"  // entrada de stock
	MovementKindOutbound = "SALIDA"   // salida de stock
	MovementKindTransfer = "TRASLADO" // traslado entre bodegas
)

// MovementItem es una línea de un movimiento: identifica el producto afectado
// y la cantidad movida.
type MovementItem struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// DocumentRef referencia el documento externo de una salida (factura, guía, etc.).
type DocumentRef struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// TransferRoute nombra las bodegas origen y destino de un traslado.
type TransferRoute struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Movement es una entrada inmutable del log de movimientos: una vez agregada
// nunca se modifica ni se elimina. Es una unión etiquetada por Kind: Document
// solo existe en salidas y Route solo en traslados. Construir siempre con
// NewInbound, NewOutbound o NewTransfer para no producir variantes inválidas.
//
// Seq es el correlativo monotónico por tipo: los ingresos llevan su propio
// contador; salidas y traslados comparten el de salidas.
type Movement struct {
	ID        string         `json:"id"`
	Kind      string         `json:"kind"`
	Seq       int64          `json:"seq"`
	Date      time.Time      `json:"date"`
	Detail    string         `json:"detail"`
	Items     []MovementItem `json:"items"`
	User      string         `json:"user"` // nombre visible del usuario que operó
	Document  *DocumentRef   `json:"document,omitempty"`
	Route     *TransferRoute `json:"route,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewInbound construye un movimiento de ingreso con todas las líneas del lote.
func NewInbound(id string, seq int64, date time.Time, detail string, items []MovementItem, user string) *Movement {
	return &Movement{
		ID:        id,
		Kind:      MovementKindInbound,
		Seq:       seq,
		Date:      date,
		Detail:    detail,
		Items:     items,
		User:      user,
		CreatedAt: date,
	}
}

// NewOutbound construye un movimiento de salida para una línea aceptada,
// con la referencia al documento externo compartido por el lote.
func NewOutbound(id string, seq int64, date time.Time, doc DocumentRef, reason string, item MovementItem, user string) *Movement {
	return &Movement{
		ID:        id,
		Kind:      MovementKindOutbound,
		Seq:       seq,
		Date:      date,
		Detail:    reason,
		Items:     []MovementItem{item},
		User:      user,
		Document:  &doc,
		CreatedAt: date,
	}
}

// NewTransfer construye un movimiento de traslado con todas las líneas movidas
// entre las dos bodegas de la ruta.
func NewTransfer(id string, seq int64, date time.Time, route TransferRoute, items []MovementItem, user string) *Movement {
	return &Movement{
		ID:        id,
		Kind:      MovementKindTransfer,
		Seq:       seq,
		Date:      date,
		Detail:    "traslado " + route.From + " → " + route.To,
		Items:     items,
		User:      user,
		Route:     &route,
		CreatedAt: date,
	}
}
