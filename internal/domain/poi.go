package domain

import "time"

// POISType es el catálogo de tipos de puntos de interés (escuelas,
// bares, hoteles, etc.). Se siembra desde el script de migración.
type POISType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// POI es un punto de interés asociado a un PDV y a un POISType.
type POI struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	POISTypeID string    `json:"pois_type_id"`
	PDVID      string    `json:"pdv_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
