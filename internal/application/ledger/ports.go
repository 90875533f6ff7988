package ledger

// KV es el puerto de persistencia clave/valor del ledger. Los valores son
// snapshots JSON de colecciones completas: Set reemplaza todo el valor anterior
// de la clave y Get devuelve lo último escrito (ok=false en el primer uso).
// Las escrituras son síncronas; al retornar, el snapshot está persistido.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}

// Claves de almacenamiento del ledger. Cada una guarda una colección completa.
const (
	keyProducts    = "productos"
	keyWarehouses  = "bodegas"
	keyMovements   = "movimientos"
	keySeqInbound  = "correlativo_ingresos"
	keySeqOutbound = "correlativo_salidas"
)
