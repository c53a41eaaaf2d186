package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lugezz/marketminds-api/infrastructure/repository/mocks"
	"github.com/lugezz/marketminds-api/internal/api/handler/router"
	"github.com/lugezz/marketminds-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListPDVs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPDVRepository(ctrl)
	repo.EXPECT().ListPDVs().Return([]*domain.PDVListItem{
		{ID: "P1", Code: "COD-001", Ubicacion: "Esquina"},
		{ID: "P2", Code: "COD-002", Ubicacion: "A mitad de cuadra"},
	}, nil)

	rt := router.New(router.WithRoutes(PDVs(repo)...))

	req := httptest.NewRequest(http.MethodGet, "/api/marketminds/pdv", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var items []*domain.PDVListItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "COD-001", items[0].Code)
}

func TestGetPDVByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	detail := &domain.PDVDetail{POIsCount: 3}
	detail.ID = "P1"
	detail.CodPDV = "COD-001"
	detail.ClientID = "C1"

	repo := mocks.NewMockPDVRepository(ctrl)
	repo.EXPECT().GetPDVByID("P1").Return(detail, nil)

	rt := router.New(router.WithRoutes(PDVs(repo)...))

	req := httptest.NewRequest(http.MethodGet, "/api/marketminds/pdv/P1", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body domain.PDVDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "P1", body.ID)
	assert.Equal(t, 3, body.POIsCount)
}

func TestGetPDVByIDNoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPDVRepository(ctrl)
	repo.EXPECT().GetPDVByID("P9").Return(nil, nil)

	rt := router.New(router.WithRoutes(PDVs(repo)...))

	req := httptest.NewRequest(http.MethodGet, "/api/marketminds/pdv/P9", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
