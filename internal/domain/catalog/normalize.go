// Package catalog reúne los servicios de dominio del catálogo: normalización
// de códigos y nombres de bodega, y validación de atributos de producto.
package catalog

import "strings"

// NormalizeCode normaliza un código de producto: trim + mayúsculas.
// La unicidad por bodega se comprueba siempre sobre el código normalizado.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeWarehouse normaliza un nombre de bodega: trim, espacios internos
// colapsados y mayúsculas. "bodega  principal" y "Bodega Principal" son la misma.
func NormalizeWarehouse(name string) string {
	fields := strings.Fields(name)
	return strings.ToUpper(strings.Join(fields, " "))
}
