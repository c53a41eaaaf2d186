package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lugezz/marketminds-api/infrastructure/database/postgres"
	"github.com/lugezz/marketminds-api/internal/domain"
)

type ClientRepository interface {
	ListClients() ([]*domain.Client, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) ListClients() ([]*domain.Client, error) {
	clientsSQL, clientsArgs, err := squirrel.
		Select("id, name, created_at, updated_at").
		From("clients").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.Query(clientsSQL, clientsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)

	for rows.Next() {
		client := &domain.Client{}
		if err := rows.Scan(&client.ID, &client.Name, &client.CreatedAt, &client.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error al deserializar el cliente: %w", err)
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar sobre los resultados: %w", err)
	}

	return clients, nil
}
