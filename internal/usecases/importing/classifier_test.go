package importing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRow(values map[string]string) Row {
	header := make(map[string]int, len(values))
	cells := make([]string, 0, len(values))

	for column, value := range values {
		header[column] = len(cells)
		cells = append(cells, value)
	}

	return Row{header: header, cells: cells}
}

func TestClassifyIDNamePair(t *testing.T) {
	tests := []struct {
		name         string
		row          Row
		ids          map[string]struct{}
		expectedNew  bool
		expectedID   string
		expectedName string
	}{
		{
			name:        "Id no visto produce entidad nueva",
			row:         newRow(map[string]string{"id_col": "A1", "name_col": "Canal Uno"}),
			ids:         map[string]struct{}{},
			expectedNew: true, expectedID: "A1", expectedName: "Canal Uno",
		},
		{
			name:        "Id ya visto no produce entidad",
			row:         newRow(map[string]string{"id_col": "A1", "name_col": "Canal Uno"}),
			ids:         map[string]struct{}{"A1": {}},
			expectedNew: false, expectedID: "A1", expectedName: "Canal Uno",
		},
		{
			name:        "Id nulo siempre produce entidad",
			row:         newRow(map[string]string{"id_col": "", "name_col": "Canal Uno"}),
			ids:         map[string]struct{}{"": {}},
			expectedNew: true, expectedID: "", expectedName: "Canal Uno",
		},
		{
			name:        "Nombre nulo produce entidad aunque el id esté visto",
			row:         newRow(map[string]string{"id_col": "A1", "name_col": " "}),
			ids:         map[string]struct{}{"A1": {}},
			expectedNew: true, expectedID: "A1", expectedName: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, name, isNew, err := classifyIDNamePair(tt.row, "id_col", "name_col", tt.ids)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedNew, isNew)
			assert.Equal(t, tt.expectedID, id)
			assert.Equal(t, tt.expectedName, name)
		})
	}
}

func TestClassifyIDNamePairSinNombre(t *testing.T) {
	// Los kinds sin columna de nombre usan el centinela literal
	row := newRow(map[string]string{"id_col": "CAT9"})

	id, name, isNew, err := classifyIDNamePair(row, "id_col", SinNombre, map[string]struct{}{})
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, "CAT9", id)
	assert.Equal(t, SinNombre, name)
}

func TestClassifyIDNamePairColumnaInexistente(t *testing.T) {
	row := newRow(map[string]string{"otra": "x"})

	_, _, _, err := classifyIDNamePair(row, "id_col", "name_col", map[string]struct{}{})
	assert.Error(t, err)
}

func TestClassifyName(t *testing.T) {
	tests := []struct {
		name        string
		row         Row
		names       map[string]struct{}
		expectedNew bool
	}{
		{
			name:        "Nombre no visto produce entidad nueva",
			row:         newRow(map[string]string{"pv_pcia": "Mendoza"}),
			names:       map[string]struct{}{},
			expectedNew: true,
		},
		{
			name:        "Nombre ya visto no produce entidad",
			row:         newRow(map[string]string{"pv_pcia": "Mendoza"}),
			names:       map[string]struct{}{"Mendoza": {}},
			expectedNew: false,
		},
		{
			name:        "Nombre nulo siempre produce entidad",
			row:         newRow(map[string]string{"pv_pcia": ""}),
			names:       map[string]struct{}{"": {}},
			expectedNew: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, isNew, err := classifyName(tt.row, "pv_pcia", tt.names)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedNew, isNew)
		})
	}
}
