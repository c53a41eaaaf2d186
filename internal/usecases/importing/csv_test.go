package importing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestReadDataset(t *testing.T) {
	path := writeDataset(t, "id_pdv_unique,pv_pcia\nPDV001, Buenos Aires \nPDV002,Córdoba\n")

	rows, err := ReadDataset(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	id, err := rows[0].Get("id_pdv_unique")
	require.NoError(t, err)
	assert.Equal(t, "PDV001", id)

	// Los valores se devuelven recortados
	provincia, err := rows[0].Get("pv_pcia")
	require.NoError(t, err)
	assert.Equal(t, "Buenos Aires", provincia)
}

func TestReadDatasetArchivoInexistente(t *testing.T) {
	_, err := ReadDataset(filepath.Join(t.TempDir(), "no-existe.csv"))
	assert.Error(t, err)
}

func TestRowGetColumnaInexistente(t *testing.T) {
	path := writeDataset(t, "id_pdv_unique\nPDV001\n")

	rows, err := ReadDataset(path)
	require.NoError(t, err)

	_, err = rows[0].Get("columna_fantasma")
	assert.Error(t, err)
}

func TestRowGetFilaCorta(t *testing.T) {
	// Una fila con menos celdas que el encabezado no es un error: la
	// columna faltante cuenta como vacía
	row := Row{
		header: map[string]int{"a": 0, "b": 1},
		cells:  []string{"valor"},
	}

	value, err := row.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}
