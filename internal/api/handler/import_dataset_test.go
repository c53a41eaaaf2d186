package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lugezz/marketminds-api/internal/domain"
	"github.com/lugezz/marketminds-api/internal/usecases/importing"
	importingmocks "github.com/lugezz/marketminds-api/internal/usecases/importing/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestImportDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := importingmocks.NewMockImporter(ctrl)
	service.EXPECT().
		ImportDataset(gomock.Any()).
		Return(&domain.ImportResult{
			Status:  200,
			Message: "Importación de dataset exitosa",
			RegistrosAdded: map[string]int{
				"client": 2,
				"pdv":    5,
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/marketminds/import-dataset/", nil)
	rec := httptest.NewRecorder()

	ImportDataset(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Importación de dataset exitosa", result.Message)
	assert.Equal(t, 5, result.RegistrosAdded["pdv"])
}

func TestImportDatasetCorridaEnCurso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := importingmocks.NewMockImporter(ctrl)
	service.EXPECT().
		ImportDataset(gomock.Any()).
		Return(nil, importing.ErrImportRunning)

	req := httptest.NewRequest(http.MethodGet, "/api/marketminds/import-dataset/", nil)
	rec := httptest.NewRecorder()

	ImportDataset(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestImportDatasetError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := importingmocks.NewMockImporter(ctrl)
	service.EXPECT().
		ImportDataset(gomock.Any()).
		Return(nil, errors.New("dataset ilegible"))

	req := httptest.NewRequest(http.MethodGet, "/api/marketminds/import-dataset/", nil)
	rec := httptest.NewRecorder()

	ImportDataset(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
