package domain

import "time"

// PDV es un punto de venta. La clave natural es id_pdv_unique del
// dataset. Los booleanos son punteros: nil representa "indeterminado"
// cuando la celda no era ni "Si" ni "No".
type PDV struct {
	ID        string     `json:"id"`
	CodPDV    string     `json:"cod_pdv"`
	FechaAlta *time.Time `json:"fecha_alta"`
	Lat       float64    `json:"lat"`
	Lon       float64    `json:"lon"`
	Geohash   string     `json:"geohash"`

	Bandejas         int `json:"bandejas"`
	M2               int `json:"m2"`
	Pasillos         int `json:"pasillos"`
	PuertasHeladeras int `json:"puertas_heladeras"`
	PuntosCobro      int `json:"puntos_cobro"`

	TieneIngreso                *bool `json:"tiene_ingreso"`
	CompraEnPlataformas         *bool `json:"compra_en_plataformas"`
	CuentaConAppsDelivery       *bool `json:"cuenta_con_apps_delivery"`
	CuentaConDeposito           *bool `json:"cuenta_con_deposito"`
	CuentaConMediosCobroDigital *bool `json:"cuenta_con_medios_cobro_digital"`
	OtrosServicios              *bool `json:"otros_servicios"`
	Abierto24h                  *bool `json:"abierto_24h"`
	Abierto7d                   *bool `json:"abierto_7d"`
	BebidasAlcoholicas          *bool `json:"bebidas_alcoholicas"`
	MedicamentosVentaLibre      *bool `json:"medicamentos_venta_libre"`
	CuidadosPersonales          *bool `json:"cuidados_personales"`
	ProductosLacteos            *bool `json:"productos_lacteos"`
	ProductosVarios             *bool `json:"productos_varios"`
	Viandas                     *bool `json:"viandas"`
	ImagenFrente                *bool `json:"imagen_frente"`
	PresenciaRedesSociales      *bool `json:"presencia_redes_sociales"`
	EventosTematicos            *bool `json:"eventos_tematicos"`

	Ubicacion string `json:"ubicacion"`
	Freezer   string `json:"freezer"`

	ClientID  string    `json:"client_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewPDV(id string) *PDV {
	now := UTCNow()
	return &PDV{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PDVListItem es la proyección reducida que devuelve el listado de PDVs.
type PDVListItem struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Ubicacion string `json:"ubicacion"`
}

// PDVDetail es el registro completo más el total de POIs asociados.
type PDVDetail struct {
	PDV
	POIsCount int `json:"pois_count"`
}
