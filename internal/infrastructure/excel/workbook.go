// Package excel adapta el colaborador de importación/exportación de hojas de
// cálculo: convierte archivos xlsx en la matriz de celdas crudas que consume
// la importación masiva del ledger, y materializa tablas planas como xlsx.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/almacen-ledger/internal/application/ledger"
)

// ParseWorkbook lee la primera hoja del archivo y devuelve todas sus filas
// como celdas de texto (fila de encabezado incluida).
func ParseWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir hoja de cálculo: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("el archivo no contiene hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer filas: %w", err)
	}
	return rows, nil
}

// WriteTable escribe la tabla (encabezados + registros clave/valor) como un
// libro xlsx de una hoja.
func WriteTable(w io.Writer, table ledger.Table) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for col, h := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("celda de encabezado: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("escribir encabezado: %w", err)
		}
	}
	for i, rec := range table.Records {
		for col, h := range table.Headers {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("celda de datos: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, rec[h]); err != nil {
				return fmt.Errorf("escribir celda: %w", err)
			}
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("generar xlsx: %w", err)
	}
	return nil
}
