package domain

import "time"

// AttributeKind identifica cada entidad-atributo asociada a un Client.
// El valor string es el que se publica como clave en registros_added.
type AttributeKind string

const (
	KindCanalDistribucion AttributeKind = "canal_distribucion"
	KindCategoria         AttributeKind = "categoria"
	KindGerenteRegional   AttributeKind = "gerente_regional"
	KindGerenteNacional   AttributeKind = "gerente_nacional"
	KindSucursal          AttributeKind = "sucursal"
	KindSubcanalAdicional AttributeKind = "subcanal_adicional"
	KindVendedor          AttributeKind = "vendedor"
)

// attributeTables mapea cada kind a su tabla. Evita el acceso dinámico a
// modelos que hacía la versión anterior del sistema.
var attributeTables = map[AttributeKind]string{
	KindCanalDistribucion: "canales_distribucion",
	KindCategoria:         "categorias",
	KindGerenteRegional:   "gerentes_regionales",
	KindGerenteNacional:   "gerentes_nacionales",
	KindSucursal:          "sucursales",
	KindSubcanalAdicional: "subcanales_adicionales",
	KindVendedor:          "vendedores",
}

// AttributeKinds lista los kinds en el orden fijo en que la importación
// los evalúa por fila.
func AttributeKinds() []AttributeKind {
	return []AttributeKind{
		KindCanalDistribucion,
		KindCategoria,
		KindGerenteNacional,
		KindGerenteRegional,
		KindSucursal,
		KindSubcanalAdicional,
		KindVendedor,
	}
}

func (k AttributeKind) Table() string {
	return attributeTables[k]
}

// ClientAttribute es una entidad-atributo de un Client (canal de
// distribución, categoría, gerente, sucursal, subcanal o vendedor).
// La clave natural es el id externo del dataset y la deduplicación es
// global por kind, independiente del cliente al que quedó asociada.
type ClientAttribute struct {
	Kind      AttributeKind `json:"-"`
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	ClientID  string        `json:"client_id"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func NewClientAttribute(kind AttributeKind, id, name, clientID string) *ClientAttribute {
	now := UTCNow()
	return &ClientAttribute{
		Kind:      kind,
		ID:        id,
		Name:      name,
		ClientID:  clientID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
