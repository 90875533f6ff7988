package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo, siempre adscrito a una bodega.
// Code se guarda normalizado (trim + mayúsculas) y es único dentro de su bodega.
// Stock nunca es negativo; solo lo mutan las operaciones del ledger.
type Product struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Model       string          `json:"model"`
	Brand       string          `json:"brand"`
	Material    string          `json:"material"`
	Color       string          `json:"color"`
	Family      string          `json:"family"`
	Value       decimal.Decimal `json:"value"`    // valor monetario unitario, >= 0
	Currency    string          `json:"currency"` // código ISO-4217 (COP, USD, ...)
	Unit        string          `json:"unit"`     // unidad de medida
	Location    string          `json:"location"` // etiqueta de ubicación física
	Stock       int             `json:"stock"`
	Warehouse   string          `json:"warehouse"` // nombre normalizado de la bodega
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Clone devuelve una copia del producto con los campos descriptivos intactos,
// lista para re-adscribir a otra bodega con otro stock (traslados).
func (p *Product) Clone() *Product {
	c := *p
	return &c
}
