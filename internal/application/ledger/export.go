package ledger

import (
	"strconv"

	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
)

// Table es la forma plana que consume el colaborador de exportación:
// lista ordenada de encabezados más registros clave/valor.
type Table struct {
	Headers []string
	Records []map[string]string
}

// ExportTable materializa el catálogo completo (o el de una bodega) en el
// mismo orden de columnas que acepta la importación, de modo que un archivo
// exportado se puede volver a importar sin retoques.
func (l *Ledger) ExportTable(warehouse string) Table {
	products := l.Products(warehouse)
	records := make([]map[string]string, 0, len(products))
	for _, p := range products {
		records = append(records, productRecord(p))
	}
	return Table{Headers: ImportColumns(), Records: records}
}

func productRecord(p *entity.Product) map[string]string {
	return map[string]string{
		"codigo":      p.Code,
		"nombre":      p.Name,
		"descripcion": p.Description,
		"modelo":      p.Model,
		"marca":       p.Brand,
		"material":    p.Material,
		"color":       p.Color,
		"familia":     p.Family,
		"valor":       p.Value.String(),
		"moneda":      p.Currency,
		"unidad":      p.Unit,
		"ubicacion":   p.Location,
		"stock":       strconv.Itoa(p.Stock),
		"bodega":      p.Warehouse,
	}
}
