package importing

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/lugezz/marketminds-api/infrastructure/repository"
	"github.com/lugezz/marketminds-api/infrastructure/repository/mocks"
	"github.com/lugezz/marketminds-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// datasetColumns arma el encabezado completo del dataset: columnas
// clave, pares id/nombre de cada kind y la tabla de campos del PDV.
func datasetColumns() []string {
	columns := []string{colPDVID, colClientID, colClientName, colProvincia, colDepartamento}
	seen := map[string]struct{}{
		colPDVID: {}, colClientID: {}, colClientName: {}, colProvincia: {}, colDepartamento: {},
	}

	add := func(column string) {
		if column == SinNombre {
			return
		}
		if _, ok := seen[column]; ok {
			return
		}
		seen[column] = struct{}{}
		columns = append(columns, column)
	}

	for _, kind := range domain.AttributeKinds() {
		add(pairColumns[kind].idKey)
		add(pairColumns[kind].nameKey)
	}

	for _, field := range pdvFields {
		add(field.column)
	}

	return columns
}

// writeRows escribe un dataset de prueba: encabezado, una fila artefacto
// que la importación siempre saltea y después las filas de datos.
func writeRows(t *testing.T, rows []map[string]string) string {
	t.Helper()

	columns := datasetColumns()
	path := filepath.Join(t.TempDir(), "dataset.csv")

	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	writer := csv.NewWriter(file)
	require.NoError(t, writer.Write(columns))

	artifact := make([]string, len(columns))
	for i := range artifact {
		artifact[i] = "artefacto"
	}
	require.NoError(t, writer.Write(artifact))

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, column := range columns {
			cells[i] = row[column]
		}
		require.NoError(t, writer.Write(cells))
	}

	writer.Flush()
	require.NoError(t, writer.Error())

	return path
}

// dataRow arma una fila con todos los pares id/nombre completos para que
// la regla del nulo no dispare creaciones no buscadas
func dataRow(overrides map[string]string) map[string]string {
	row := map[string]string{
		colPDVID:        "PDV001",
		colClientID:     "C1",
		colClientName:   "Kiosco Central",
		colProvincia:    "Buenos Aires",
		colDepartamento: "La Plata",

		"id_cli_canal_dist":         "K1",
		"desc_cli_canal_dist":       "Tradicional",
		"id_cli_categoria_dist":     "CAT1",
		"id_cli_gte_nacional":       "GN1",
		"desc_cli_gte_nacional":     "Ana",
		"id_cli_gte_regional":       "GR1",
		"desc_cli_gte_regional":     "Luis",
		"id_cli_subcanal_adic_dist": "S1",
		"desc_cli_subcanal_dist":    "Subcanal A",
		"id_cli_vendedor":           "V1",
		"desc_cli_vendedor":         "María",

		"id_cod_pdv":                   "COD-001",
		"id_tie_fecha_alta":            "2006-10-19T00:00:00.000Z",
		"pv_y":                         "-34.6037",
		"pv_x":                         "-58.3816",
		"indicar_cantidad_de_bandejas": "4",
		"se_puede_ingresar_al_interior_del_local": "Si",
		"ofrece_bebidas_alcoholicas":              "No",
		"donde_se_encuentra_ubicado":              "Esquina",
		"tiene_freezer_cual_es":                   "Exhibidor vertical",
	}

	for column, value := range overrides {
		row[column] = value
	}

	return row
}

func emptySets(store *mocks.MockEntityStore) {
	store.EXPECT().ClientsMap().Return(map[string]*domain.Client{}, nil)
	store.EXPECT().
		AttributeIDs(gomock.Any()).
		Times(len(domain.AttributeKinds())).
		DoAndReturn(func(domain.AttributeKind) (map[string]struct{}, error) {
			return map[string]struct{}{}, nil
		})
	store.EXPECT().ProvinciasMap().Return(map[string]*domain.Provincia{}, nil)
	store.EXPECT().DepartamentoKeys().Return(map[string]struct{}{}, nil)
	store.EXPECT().PDVIDs().Return(map[string]struct{}{}, nil)
}

func TestImportDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockEntityStore(ctrl)
	emptySets(store)

	// Las provincias se comprometen en el momento, simulando el id
	// autonumérico que genera la base
	nextProvinciaID := 0
	store.EXPECT().
		InsertProvincia(gomock.Any()).
		Times(2).
		DoAndReturn(func(provincia *domain.Provincia) error {
			nextProvinciaID++
			provincia.ID = nextProvinciaID
			return nil
		})

	var saved *repository.Batch
	store.EXPECT().
		SaveBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch *repository.Batch) error {
			saved = batch
			return nil
		})

	path := writeRows(t, []map[string]string{
		dataRow(nil),
		// Mismo cliente y departamento, PDV nuevo
		dataRow(map[string]string{colPDVID: "PDV002"}),
		// Cliente y provincia nuevos, PDV repetido (se saltea entero),
		// vendedor nuevo
		dataRow(map[string]string{
			colPDVID:            "PDV001",
			colClientID:         "C2",
			colClientName:       "Almacén Sur",
			colProvincia:        "Córdoba",
			colDepartamento:     "Capital",
			"id_cli_vendedor":   "V2",
			"desc_cli_vendedor": "Pedro",
		}),
	})

	service := NewService(store, path)

	result, err := service.ImportDataset(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 200, result.Status)
	assert.Equal(t, "Importación de dataset exitosa", result.Message)

	assert.Equal(t, map[string]int{
		"client":             2,
		"provincia":          2,
		"departamento":       2,
		"pdv":                2,
		"canal_distribucion": 1,
		"categoria":          1,
		"gerente_nacional":   1,
		"gerente_regional":   1,
		"sucursal":           2,
		"subcanal_adicional": 1,
		"vendedor":           2,
	}, result.RegistrosAdded)

	require.NotNil(t, saved)
	require.Len(t, saved.Clients, 2)
	assert.Equal(t, "C1", saved.Clients[0].ID)
	assert.Equal(t, "Kiosco Central", saved.Clients[0].Name)

	require.Len(t, saved.Departamentos, 2)
	assert.Equal(t, "La Plata", saved.Departamentos[0].Name)
	assert.Equal(t, 1, saved.Departamentos[0].ProvinciaID)
	assert.Equal(t, "Capital", saved.Departamentos[1].Name)
	assert.Equal(t, 2, saved.Departamentos[1].ProvinciaID)

	require.Len(t, saved.PDVs, 2)
	pdv := saved.PDVs[0]
	assert.Equal(t, "PDV001", pdv.ID)
	assert.Equal(t, "COD-001", pdv.CodPDV)
	assert.Equal(t, "C1", pdv.ClientID)
	assert.Equal(t, -34.6037, pdv.Lat)
	assert.Equal(t, -58.3816, pdv.Lon)
	assert.Equal(t, 4, pdv.Bandejas)
	require.NotNil(t, pdv.FechaAlta)
	require.NotNil(t, pdv.TieneIngreso)
	assert.True(t, *pdv.TieneIngreso)
	require.NotNil(t, pdv.BebidasAlcoholicas)
	assert.False(t, *pdv.BebidasAlcoholicas)
	// Celda vacía en un booleano queda indeterminada
	assert.Nil(t, pdv.Abierto24h)
	assert.Equal(t, "Exhibidor vertical", pdv.Freezer)
}

func TestImportDatasetDepartamentosPorProvincia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockEntityStore(ctrl)
	emptySets(store)

	nextProvinciaID := 0
	store.EXPECT().
		InsertProvincia(gomock.Any()).
		Times(2).
		DoAndReturn(func(provincia *domain.Provincia) error {
			nextProvinciaID++
			provincia.ID = nextProvinciaID
			return nil
		})

	var saved *repository.Batch
	store.EXPECT().
		SaveBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch *repository.Batch) error {
			saved = batch
			return nil
		})

	// El mismo nombre de departamento puede repetirse entre provincias:
	// "Capital" existe en Buenos Aires y en Córdoba como registros
	// distintos, pero el par repetido no vuelve a crearse
	path := writeRows(t, []map[string]string{
		dataRow(map[string]string{colPDVID: "PDV001", colProvincia: "Buenos Aires", colDepartamento: "Capital"}),
		dataRow(map[string]string{colPDVID: "PDV002", colProvincia: "Buenos Aires", colDepartamento: "La Plata"}),
		dataRow(map[string]string{colPDVID: "PDV003", colProvincia: "Córdoba", colDepartamento: "Capital"}),
		dataRow(map[string]string{colPDVID: "PDV004", colProvincia: "Córdoba", colDepartamento: "Capital"}),
	})

	service := NewService(store, path)

	result, err := service.ImportDataset(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 2, result.RegistrosAdded["provincia"])
	assert.Equal(t, 3, result.RegistrosAdded["departamento"])

	require.NotNil(t, saved)
	require.Len(t, saved.Departamentos, 3)
	assert.Equal(t, "Capital", saved.Departamentos[0].Name)
	assert.Equal(t, 1, saved.Departamentos[0].ProvinciaID)
	assert.Equal(t, "La Plata", saved.Departamentos[1].Name)
	assert.Equal(t, 1, saved.Departamentos[1].ProvinciaID)
	assert.Equal(t, "Capital", saved.Departamentos[2].Name)
	assert.Equal(t, 2, saved.Departamentos[2].ProvinciaID)
}

func TestImportDatasetCategoriaSinNombre(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockEntityStore(ctrl)
	emptySets(store)
	store.EXPECT().
		InsertProvincia(gomock.Any()).
		DoAndReturn(func(provincia *domain.Provincia) error {
			provincia.ID = 1
			return nil
		})

	var saved *repository.Batch
	store.EXPECT().
		SaveBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch *repository.Batch) error {
			saved = batch
			return nil
		})

	path := writeRows(t, []map[string]string{dataRow(nil)})

	service := NewService(store, path)

	_, err := service.ImportDataset(context.Background())
	require.NoError(t, err)
	require.NotNil(t, saved)

	var categoria *domain.ClientAttribute
	for _, attribute := range saved.Attributes {
		if attribute.Kind == domain.KindCategoria {
			categoria = attribute
		}
	}

	require.NotNil(t, categoria)
	assert.Equal(t, "CAT1", categoria.ID)
	assert.Equal(t, SinNombre, categoria.Name)
}

func TestImportDatasetDatasetInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockEntityStore(ctrl)
	service := NewService(store, filepath.Join(t.TempDir(), "no-existe.csv"))

	_, err := service.ImportDataset(context.Background())
	assert.Error(t, err)
}

func TestImportDatasetCorridaEnCurso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockEntityStore(ctrl)
	service := NewService(store, "no-importa.csv")

	service.runMutex.Lock()
	service.running = true
	service.runMutex.Unlock()

	_, err := service.ImportDataset(context.Background())
	assert.ErrorIs(t, err, ErrImportRunning)
}
