package ledger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-ledger/internal/application/ledger"
	"github.com/tu-usuario/almacen-ledger/internal/domain"
	"github.com/tu-usuario/almacen-ledger/internal/infrastructure/localstore"
)

// row arma una fila de importación con las 14 columnas posicionales.
func row(code, name, value, currency, stock, warehouse string) []string {
	return []string{code, name, "", "", "", "", "", "", value, currency, "und", "", stock, warehouse}
}

func TestImportProducts_LoteValido(t *testing.T) {
	l, _ := newTestLedger(t)

	imported, err := l.ImportProducts([][]string{
		ledger.ImportColumns(),
		row("a1", "Casco", "45000", "COP", "10", "main"),
		row("A2", "Guantes", "12000.50", "", "40.0", "MAIN"),
	})
	require.NoError(t, err)
	require.Len(t, imported, 2)

	assert.Equal(t, "A1", imported[0].Code, "código normalizado")
	assert.Equal(t, "COP", imported[1].Currency, "moneda por defecto")
	assert.Equal(t, 40, imported[1].Stock, "stock entero aunque la hoja entregue 40.0")
	assert.Len(t, l.Products("MAIN"), 2)
}

// Todo-o-nada: una fila inválida en medio del lote anula el lote completo y
// el error referencia esa fila (numerada desde 1 sobre las filas de datos).
func TestImportProducts_TodoONada(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.ImportProducts([][]string{
		ledger.ImportColumns(),
		row("A1", "Casco", "45000", "COP", "10", "MAIN"),
		row("A2", "Guantes", "12000", "COP", "-5", "MAIN"), // stock negativo
		row("A3", "Cinta", "8000", "COP", "25", "MAIN"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 2, verr.Row)
	assert.Equal(t, "stock", verr.Field)

	assert.Empty(t, l.Products(""), "ninguna fila del lote se aplicó")
}

func TestImportProducts_FilasRechazadas(t *testing.T) {
	l, _ := newTestLedger(t)
	addProduct(t, l, "A1", 5, "MAIN")

	cases := []struct {
		name  string
		row   []string
		field string
	}{
		{"fila incompleta", []string{"A9", "Corto"}, ""},
		{"valor no numérico", row("A9", "X", "abc", "COP", "1", "MAIN"), "valor"},
		{"valor negativo", row("A9", "X", "-1", "COP", "1", "MAIN"), "valor"},
		{"moneda desconocida", row("A9", "X", "1", "ZZZ", "1", "MAIN"), "moneda"},
		{"stock no entero", row("A9", "X", "1", "COP", "1.5", "MAIN"), "stock"},
		{"bodega desconocida", row("A9", "X", "1", "COP", "1", "NO-EXISTE"), "bodega"},
		{"duplicado contra catálogo", row("a1", "X", "1", "COP", "1", "MAIN"), "codigo"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := l.ImportProducts([][]string{ledger.ImportColumns(), tc.row})
			require.Error(t, err)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, 1, verr.Row)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestImportProducts_DuplicadoDentroDelLote(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.ImportProducts([][]string{
		ledger.ImportColumns(),
		row("A1", "Casco", "1", "COP", "1", "MAIN"),
		row(" a1 ", "Casco bis", "1", "COP", "1", "MAIN"),
	})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 2, verr.Row)
	assert.Empty(t, l.Products(""))
}

func TestImportProducts_SinFilasDeDatos(t *testing.T) {
	l, _ := newTestLedger(t)
	_, err := l.ImportProducts([][]string{ledger.ImportColumns()})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La exportación produce el mismo orden de columnas que acepta la importación,
// de modo que un archivo exportado se reimporta sin retoques.
func TestExportTable_RoundtripConImportacion(t *testing.T) {
	l, _ := newTestLedger(t)
	addProduct(t, l, "A1", 10, "MAIN")
	addProduct(t, l, "A2", 3, "MAIN")

	table := l.ExportTable("MAIN")
	assert.Equal(t, ledger.ImportColumns(), table.Headers)
	require.Len(t, table.Records, 2)
	assert.Equal(t, "A1", table.Records[0]["codigo"])
	assert.Equal(t, "10", table.Records[0]["stock"])

	// Reimportar en un ledger limpio reproduce el catálogo.
	dest, err := ledger.New(localstore.NewMemory(), zerolog.Nop())
	require.NoError(t, err)
	_, err = dest.AddWarehouse("MAIN")
	require.NoError(t, err)

	rows := [][]string{table.Headers}
	for _, rec := range table.Records {
		line := make([]string, 0, len(table.Headers))
		for _, h := range table.Headers {
			line = append(line, rec[h])
		}
		rows = append(rows, line)
	}
	imported, err := dest.ImportProducts(rows)
	require.NoError(t, err)
	assert.Len(t, imported, 2)
	assert.Equal(t, 10, stockOf(t, dest, "MAIN", "A1"))
}
