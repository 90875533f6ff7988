package entity

import "time"

// Warehouse representa una bodega: partición nombrada del catálogo con su propio stock.
// Name es único tras normalizar (trim + mayúsculas). Las bodegas no se eliminan;
// se crean por alta explícita o al resolver el destino de un traslado.
type Warehouse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"` // nombre normalizado
	CreatedAt time.Time `json:"created_at"`
}
