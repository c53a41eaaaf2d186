package domain

import (
	"fmt"
	"time"
)

// Provincia usa un id autonumérico generado por la base. Es única por
// nombre y se persiste de forma inmediata durante la importación porque
// Departamento necesita su id generado en la misma pasada.
type Provincia struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewProvincia(name string) *Provincia {
	now := UTCNow()
	return &Provincia{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Departamento pertenece a exactamente una Provincia. La unicidad es por
// el par (provincia, nombre): un mismo nombre de departamento puede
// repetirse en provincias distintas.
type Departamento struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	ProvinciaID int       `json:"provincia_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DepartamentoKey arma la clave compuesta de deduplicación de un
// departamento: el id de su provincia más el nombre.
func DepartamentoKey(provinciaID int, name string) string {
	return fmt.Sprintf("%d - %s", provinciaID, name)
}

func NewDepartamento(name string, provinciaID int) *Departamento {
	now := UTCNow()
	return &Departamento{
		Name:        name,
		ProvinciaID: provinciaID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
