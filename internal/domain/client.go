package domain

import "time"

// Client representa la cuenta externa dueña de los puntos de venta.
// La clave natural es el id de cuenta del dataset (id_cli_suc_cuenta):
// a lo sumo un Client por id de cuenta distinto.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewClient(id, name string) *Client {
	now := UTCNow()
	return &Client{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
