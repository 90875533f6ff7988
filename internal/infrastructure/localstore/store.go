// Package localstore implementa el puerto clave/valor del ledger: snapshots
// JSON por clave, con escritura síncrona de documento completo (el análogo
// del almacenamiento local del navegador en el diseño original).
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tu-usuario/almacen-ledger/internal/application/ledger"
)

var _ ledger.KV = (*Memory)(nil)
var _ ledger.KV = (*File)(nil)

// Memory es el store en memoria para tests y usos efímeros.
type Memory struct {
	data map[string][]byte
}

// NewMemory construye un store vacío.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get devuelve el último valor escrito para la clave.
func (m *Memory) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

// Set reemplaza por completo el valor de la clave.
func (m *Memory) Set(key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

// File persiste todas las claves en un único documento JSON que se reescribe
// completo en cada Set (escritura a archivo temporal + rename, con sync).
// Un solo proceso es dueño del archivo; no hay acceso concurrente.
type File struct {
	path string
	data map[string]json.RawMessage
}

// OpenFile abre (o inicializa) el documento en path.
func OpenFile(path string) (*File, error) {
	f := &File{path: path, data: make(map[string]json.RawMessage)}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("abrir store %s: %w", path, err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &f.data); err != nil {
			return nil, fmt.Errorf("decodificar store %s: %w", path, err)
		}
	}
	return f, nil
}

// Get devuelve el último valor persistido para la clave.
func (f *File) Get(key string) ([]byte, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

// Set reemplaza el valor de la clave y reescribe el documento completo.
// Si la escritura falla, el mapa en memoria conserva el valor nuevo y un
// Set posterior reintenta el volcado completo.
func (f *File) Set(key string, value []byte) error {
	cp := make(json.RawMessage, len(value))
	copy(cp, value)
	f.data[key] = cp
	return f.flush()
}

func (f *File) flush() error {
	doc, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar store: %w", err)
	}
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return fmt.Errorf("escribir store: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sincronizar store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar store: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("reemplazar store: %w", err)
	}
	return nil
}
