package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lugezz/marketminds-api/infrastructure/database/postgres"
	"github.com/lugezz/marketminds-api/internal/domain"
)

type PDVRepository interface {
	ListPDVs() ([]*domain.PDVListItem, error)
	GetPDVByID(pdvID string) (*domain.PDVDetail, error)
}

type pdvRepository struct {
	conn *postgres.Connection
}

func NewPDVRepository(conn *postgres.Connection) PDVRepository {
	return &pdvRepository{
		conn: conn,
	}
}

// ListPDVs devuelve la proyección reducida (id, código, ubicación) de
// todos los puntos de venta
func (r *pdvRepository) ListPDVs() ([]*domain.PDVListItem, error) {
	pdvsSQL, pdvsArgs, err := squirrel.
		Select("id, cod_pdv, ubicacion").
		From("pdvs").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.Query(pdvsSQL, pdvsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	pdvs := make([]*domain.PDVListItem, 0)

	for rows.Next() {
		item := &domain.PDVListItem{}
		if err := rows.Scan(&item.ID, &item.Code, &item.Ubicacion); err != nil {
			return nil, fmt.Errorf("error al deserializar el PDV: %w", err)
		}
		pdvs = append(pdvs, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar sobre los resultados: %w", err)
	}

	return pdvs, nil
}

// GetPDVByID devuelve el registro completo de un PDV más la cantidad de
// POIs asociados. Devuelve nil sin error cuando no existe.
func (r *pdvRepository) GetPDVByID(pdvID string) (*domain.PDVDetail, error) {
	pdvSQL, pdvArgs, err := squirrel.
		Select(
			"p.id, p.cod_pdv, p.fecha_alta, p.lat, p.lon, p.geohash",
			"p.bandejas, p.m2, p.pasillos, p.puertas_heladeras, p.puntos_cobro",
			"p.tiene_ingreso, p.compra_en_plataformas, p.cuenta_con_apps_delivery",
			"p.cuenta_con_deposito, p.cuenta_con_medios_cobro_digital, p.otros_servicios",
			"p.abierto_24h, p.abierto_7d, p.bebidas_alcoholicas",
			"p.medicamentos_venta_libre, p.cuidados_personales, p.productos_lacteos",
			"p.productos_varios, p.viandas, p.imagen_frente",
			"p.presencia_redes_sociales, p.eventos_tematicos",
			"p.ubicacion, p.freezer, p.client_id, p.created_at, p.updated_at",
			"(SELECT COUNT(*) FROM pois po WHERE po.pdv_id = p.id) AS pois_count",
		).
		From("pdvs p").
		Where(squirrel.Eq{"p.id": pdvID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	row := r.conn.QueryRow(pdvSQL, pdvArgs...)

	detail := &domain.PDVDetail{}
	var clientID sql.NullString

	if err := row.Scan(
		&detail.ID, &detail.CodPDV, &detail.FechaAlta, &detail.Lat, &detail.Lon, &detail.Geohash,
		&detail.Bandejas, &detail.M2, &detail.Pasillos, &detail.PuertasHeladeras, &detail.PuntosCobro,
		&detail.TieneIngreso, &detail.CompraEnPlataformas, &detail.CuentaConAppsDelivery,
		&detail.CuentaConDeposito, &detail.CuentaConMediosCobroDigital, &detail.OtrosServicios,
		&detail.Abierto24h, &detail.Abierto7d, &detail.BebidasAlcoholicas,
		&detail.MedicamentosVentaLibre, &detail.CuidadosPersonales, &detail.ProductosLacteos,
		&detail.ProductosVarios, &detail.Viandas, &detail.ImagenFrente,
		&detail.PresenciaRedesSociales, &detail.EventosTematicos,
		&detail.Ubicacion, &detail.Freezer, &clientID, &detail.CreatedAt, &detail.UpdatedAt,
		&detail.POIsCount,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al deserializar el PDV: %w", err)
	}

	detail.ClientID = clientID.String

	return detail, nil
}
