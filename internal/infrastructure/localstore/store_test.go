package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-ledger/internal/infrastructure/localstore"
)

func TestMemory_GetSet(t *testing.T) {
	m := localstore.NewMemory()

	_, ok, err := m.Get("productos")
	require.NoError(t, err)
	assert.False(t, ok, "clave ausente en el primer uso")

	require.NoError(t, m.Set("productos", []byte(`[1,2]`)))
	got, ok, err := m.Get("productos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[1,2]`), got)

	// Set reemplaza por completo, no acumula.
	require.NoError(t, m.Set("productos", []byte(`[]`)))
	got, _, _ = m.Get("productos")
	assert.Equal(t, []byte(`[]`), got)
}

func TestMemory_CopiaDefensiva(t *testing.T) {
	m := localstore.NewMemory()
	buf := []byte(`original`)
	require.NoError(t, m.Set("k", buf))
	buf[0] = 'X'

	got, _, _ := m.Get("k")
	assert.Equal(t, []byte(`original`), got, "mutar el slice del llamador no afecta al store")
}

func TestFile_PersisteEntreAperturas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "almacen.json")

	f, err := localstore.OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Set("bodegas", []byte(`[{"name":"MAIN"}]`)))
	require.NoError(t, f.Set("correlativo_ingresos", []byte(`7`)))

	// Reapertura: un proceso nuevo ve el último snapshot de cada clave.
	reopened, err := localstore.OpenFile(path)
	require.NoError(t, err)

	got, ok, err := reopened.Get("bodegas")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"name":"MAIN"}]`, string(got))

	got, ok, _ = reopened.Get("correlativo_ingresos")
	assert.True(t, ok)
	assert.Equal(t, []byte(`7`), got)
}

func TestFile_ArchivoAusenteEsEstadoVacio(t *testing.T) {
	f, err := localstore.OpenFile(filepath.Join(t.TempDir(), "no-existe.json"))
	require.NoError(t, err)

	_, ok, err := f.Get("productos")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFile_DocumentoCorruptoFallaAlAbrir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roto.json")
	require.NoError(t, os.WriteFile(path, []byte(`{trunc`), 0o644))

	_, err := localstore.OpenFile(path)
	assert.Error(t, err)
}

func TestFile_SetReescribeElDocumentoCompleto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "almacen.json")
	f, err := localstore.OpenFile(path)
	require.NoError(t, err)

	require.NoError(t, f.Set("a", []byte(`1`)))
	require.NoError(t, f.Set("b", []byte(`2`)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"a"`)
	assert.Contains(t, string(raw), `"b"`, "cada Set vuelca todas las claves, no solo la escrita")
}
