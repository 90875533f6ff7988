package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-ledger/internal/domain"
	"github.com/tu-usuario/almacen-ledger/internal/domain/catalog"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
)

// importColumns es el orden posicional fijo de las 14 columnas de la
// importación masiva.
var importColumns = []string{
	"codigo", "nombre", "descripcion", "modelo", "marca", "material",
	"color", "familia", "valor", "moneda", "unidad", "ubicacion",
	"stock", "bodega",
}

// ImportColumns devuelve el encabezado esperado por la importación masiva
// (y producido por la exportación).
func ImportColumns() []string {
	out := make([]string, len(importColumns))
	copy(out, importColumns)
	return out
}

// ImportProducts acepta las celdas crudas de una hoja (fila de encabezado más
// filas de datos) y las incorpora al catálogo como lote todo-o-nada: si
// cualquier fila falla la validación, ninguna se aplica y el error referencia
// la fila ofensora (numerada desde 1 sobre las filas de datos).
//
// Rechazos: fila con menos de 14 columnas, valor o stock no numérico o
// negativo, moneda desconocida, bodega inexistente, código duplicado contra
// el catálogo o dentro del propio lote.
func (l *Ledger) ImportProducts(rows [][]string) ([]*entity.Product, error) {
	if len(rows) < 2 {
		return nil, domain.ErrInvalidInput // encabezado más al menos una fila de datos
	}
	data := rows[1:]

	type batchKey struct{ warehouse, code string }
	inBatch := make(map[batchKey]bool, len(data))
	now := time.Now()
	products := make([]*entity.Product, 0, len(data))

	for i, row := range data {
		rowNum := i + 1
		if len(row) < len(importColumns) {
			return nil, &domain.ValidationError{Row: rowNum, Reason: "fila incompleta: se esperan 14 columnas"}
		}
		code := catalog.NormalizeCode(row[0])
		if code == "" {
			return nil, &domain.ValidationError{Row: rowNum, Field: "codigo", Reason: "código vacío"}
		}
		value, err := decimal.NewFromString(row[8])
		if err != nil {
			return nil, &domain.ValidationError{Row: rowNum, Field: "valor", Reason: "no es un número"}
		}
		if value.IsNegative() {
			return nil, &domain.ValidationError{Row: rowNum, Field: "valor", Reason: "valor negativo"}
		}
		currency := catalog.NormalizeCode(row[9])
		if currency == "" {
			currency = catalog.DefaultCurrency
		}
		if !catalog.ValidCurrency(currency) {
			return nil, &domain.ValidationError{Row: rowNum, Field: "moneda", Reason: "código de moneda desconocido"}
		}
		stock, err := parseStock(row[12])
		if err != nil {
			return nil, &domain.ValidationError{Row: rowNum, Field: "stock", Reason: "no es un entero"}
		}
		if stock < 0 {
			return nil, &domain.ValidationError{Row: rowNum, Field: "stock", Reason: "stock negativo"}
		}
		wh := catalog.NormalizeWarehouse(row[13])
		if l.findWarehouse(wh) == nil {
			return nil, &domain.ValidationError{Row: rowNum, Field: "bodega", Reason: "bodega desconocida: " + wh}
		}
		if l.findProduct(wh, code) != nil {
			return nil, &domain.ValidationError{Row: rowNum, Field: "codigo", Reason: "código ya existe en la bodega: " + code}
		}
		key := batchKey{warehouse: wh, code: code}
		if inBatch[key] {
			return nil, &domain.ValidationError{Row: rowNum, Field: "codigo", Reason: "código repetido en el lote: " + code}
		}
		inBatch[key] = true

		products = append(products, &entity.Product{
			ID:          uuid.New().String(),
			Code:        code,
			Name:        row[1],
			Description: row[2],
			Model:       row[3],
			Brand:       row[4],
			Material:    row[5],
			Color:       row[6],
			Family:      row[7],
			Value:       value,
			Currency:    currency,
			Unit:        row[10],
			Location:    row[11],
			Stock:       stock,
			Warehouse:   wh,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	// Lote validado completo: recién ahora se toca el estado.
	l.products = append(l.products, products...)
	if err := l.save(keyProducts, l.products); err != nil {
		return nil, err
	}
	l.log.Info().Int("filas", len(products)).Msg("importación masiva aplicada")
	return products, nil
}

func parseStock(s string) (int, error) {
	// Las hojas de cálculo suelen entregar enteros como "10" o "10.0".
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, domain.ErrInvalidInput
	}
	return int(d.IntPart()), nil
}
