package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lugezz/marketminds-api/infrastructure/database/postgres"
	"github.com/lugezz/marketminds-api/internal/domain"
)

type ProvinciaRepository interface {
	ListProvincias() ([]*domain.Provincia, error)
	ListDepartamentos() ([]*domain.Departamento, error)
}

type provinciaRepository struct {
	conn *postgres.Connection
}

func NewProvinciaRepository(conn *postgres.Connection) ProvinciaRepository {
	return &provinciaRepository{
		conn: conn,
	}
}

func (r *provinciaRepository) ListProvincias() ([]*domain.Provincia, error) {
	provsSQL, provsArgs, err := squirrel.
		Select("id, name, created_at, updated_at").
		From("provincias").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.Query(provsSQL, provsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	provincias := make([]*domain.Provincia, 0)

	for rows.Next() {
		provincia := &domain.Provincia{}
		if err := rows.Scan(&provincia.ID, &provincia.Name, &provincia.CreatedAt, &provincia.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error al deserializar la provincia: %w", err)
		}
		provincias = append(provincias, provincia)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar sobre los resultados: %w", err)
	}

	return provincias, nil
}

func (r *provinciaRepository) ListDepartamentos() ([]*domain.Departamento, error) {
	depsSQL, depsArgs, err := squirrel.
		Select("id, name, provincia_id, created_at, updated_at").
		From("departamentos").
		OrderBy("provincia_id ASC, name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.Query(depsSQL, depsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	departamentos := make([]*domain.Departamento, 0)

	for rows.Next() {
		departamento := &domain.Departamento{}
		if err := rows.Scan(
			&departamento.ID,
			&departamento.Name,
			&departamento.ProvinciaID,
			&departamento.CreatedAt,
			&departamento.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error al deserializar el departamento: %w", err)
		}
		departamentos = append(departamentos, departamento)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar sobre los resultados: %w", err)
	}

	return departamentos, nil
}
