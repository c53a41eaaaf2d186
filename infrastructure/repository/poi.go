package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lugezz/marketminds-api/infrastructure/database/postgres"
	"github.com/lugezz/marketminds-api/internal/domain"
)

type POIRepository interface {
	ListPOISTypes() ([]*domain.POISType, error)
	ListPOIsByPDV(pdvID string) ([]*domain.POI, error)
}

type poiRepository struct {
	conn *postgres.Connection
}

func NewPOIRepository(conn *postgres.Connection) POIRepository {
	return &poiRepository{
		conn: conn,
	}
}

func (r *poiRepository) ListPOISTypes() ([]*domain.POISType, error) {
	typesSQL, typesArgs, err := squirrel.
		Select("id, name, created_at, updated_at").
		From("pois_types").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.Query(typesSQL, typesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	types := make([]*domain.POISType, 0)

	for rows.Next() {
		poisType := &domain.POISType{}
		if err := rows.Scan(&poisType.ID, &poisType.Name, &poisType.CreatedAt, &poisType.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error al deserializar el tipo de POI: %w", err)
		}
		types = append(types, poisType)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar sobre los resultados: %w", err)
	}

	return types, nil
}

// ListPOIsByPDV devuelve los puntos de interés relevados alrededor de un
// punto de venta
func (r *poiRepository) ListPOIsByPDV(pdvID string) ([]*domain.POI, error) {
	poisSQL, poisArgs, err := squirrel.
		Select("id, name, pois_type_id, pdv_id, created_at, updated_at").
		From("pois").
		Where(squirrel.Eq{"pdv_id": pdvID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.Query(poisSQL, poisArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	pois := make([]*domain.POI, 0)

	for rows.Next() {
		poi := &domain.POI{}
		var poisTypeID sql.NullString

		if err := rows.Scan(&poi.ID, &poi.Name, &poisTypeID, &poi.PDVID, &poi.CreatedAt, &poi.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error al deserializar el POI: %w", err)
		}

		poi.POISTypeID = poisTypeID.String
		pois = append(pois, poi)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar sobre los resultados: %w", err)
	}

	return pois, nil
}
