package catalog

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-ledger/internal/domain"
)

// DefaultCurrency se asume cuando un producto llega sin código de moneda.
const DefaultCurrency = "COP"

// ValidCurrency informa si code es un código ISO-4217 conocido.
func ValidCurrency(code string) bool {
	return money.GetCurrency(NormalizeCode(code)) != nil
}

// ValidateProduct comprueba los invariantes de producto previos a cualquier alta:
// código no vacío, valor >= 0, stock >= 0 y moneda ISO-4217 válida.
func ValidateProduct(code string, value decimal.Decimal, currency string, stock int) error {
	if NormalizeCode(code) == "" {
		return domain.ErrInvalidInput
	}
	if value.IsNegative() {
		return domain.ErrInvalidInput
	}
	if stock < 0 {
		return domain.ErrInvalidInput
	}
	if currency != "" && !ValidCurrency(currency) {
		return domain.ErrInvalidInput
	}
	return nil
}
