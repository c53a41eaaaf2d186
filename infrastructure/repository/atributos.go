package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lugezz/marketminds-api/infrastructure/database/postgres"
	"github.com/lugezz/marketminds-api/internal/domain"
)

// AttributeRepository lista las entidades-atributo de clientes. Un solo
// repositorio sirve a los siete kinds: comparten columnas y sólo cambia
// la tabla.
type AttributeRepository interface {
	ListAttributes(kind domain.AttributeKind) ([]*domain.ClientAttribute, error)
}

type attributeRepository struct {
	conn *postgres.Connection
}

func NewAttributeRepository(conn *postgres.Connection) AttributeRepository {
	return &attributeRepository{
		conn: conn,
	}
}

func (r *attributeRepository) ListAttributes(kind domain.AttributeKind) ([]*domain.ClientAttribute, error) {
	attrsSQL, attrsArgs, err := squirrel.
		Select("id, name, client_id, created_at, updated_at").
		From(kind.Table()).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.Query(attrsSQL, attrsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	attributes := make([]*domain.ClientAttribute, 0)

	for rows.Next() {
		attribute := &domain.ClientAttribute{Kind: kind}
		var clientID sql.NullString

		if err := rows.Scan(
			&attribute.ID,
			&attribute.Name,
			&clientID,
			&attribute.CreatedAt,
			&attribute.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error al deserializar el atributo: %w", err)
		}

		attribute.ClientID = clientID.String
		attributes = append(attributes, attribute)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar sobre los resultados: %w", err)
	}

	return attributes, nil
}
