package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-ledger/internal/domain/catalog"
)

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "A1", catalog.NormalizeCode("  a1 "))
	assert.Equal(t, "ABC-99", catalog.NormalizeCode("abc-99"))
	assert.Equal(t, "", catalog.NormalizeCode("   "))
}

func TestNormalizeWarehouse(t *testing.T) {
	assert.Equal(t, "BODEGA PRINCIPAL", catalog.NormalizeWarehouse("bodega  principal"))
	assert.Equal(t, "BODEGA PRINCIPAL", catalog.NormalizeWarehouse(" Bodega Principal "))
	assert.Equal(t, "", catalog.NormalizeWarehouse("\t \n"))
}

func TestValidCurrency(t *testing.T) {
	assert.True(t, catalog.ValidCurrency("COP"))
	assert.True(t, catalog.ValidCurrency(" usd "), "se normaliza antes de consultar")
	assert.False(t, catalog.ValidCurrency("PESOS"))
	assert.False(t, catalog.ValidCurrency(""))
}

func TestValidateProduct(t *testing.T) {
	uno := decimal.NewFromInt(1)

	assert.NoError(t, catalog.ValidateProduct("A1", uno, "COP", 0))
	assert.NoError(t, catalog.ValidateProduct("A1", uno, "", 10), "moneda vacía se permite: se asume la de defecto")

	assert.Error(t, catalog.ValidateProduct("", uno, "COP", 0), "código vacío")
	assert.Error(t, catalog.ValidateProduct("A1", decimal.NewFromInt(-1), "COP", 0), "valor negativo")
	assert.Error(t, catalog.ValidateProduct("A1", uno, "COP", -1), "stock negativo")
	assert.Error(t, catalog.ValidateProduct("A1", uno, "PESOS", 0), "moneda desconocida")
}
