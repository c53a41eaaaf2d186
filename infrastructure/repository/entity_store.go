package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/lugezz/marketminds-api/infrastructure/database/postgres"
	"github.com/lugezz/marketminds-api/internal/domain"
)

// Batch junta las entidades nuevas de una corrida de importación. Se
// persiste completo en una sola transacción al final de la corrida; las
// provincias no pasan por acá porque se comprometen de inmediato.
type Batch struct {
	Clients       []*domain.Client
	Attributes    []*domain.ClientAttribute
	Departamentos []*domain.Departamento
	PDVs          []*domain.PDV
}

// IsEmpty indica si la corrida no juntó nada para insertar
func (b *Batch) IsEmpty() bool {
	return len(b.Clients) == 0 &&
		len(b.Attributes) == 0 &&
		len(b.Departamentos) == 0 &&
		len(b.PDVs) == 0
}

// EntityStore es la vista de persistencia que necesita la importación:
// sets de claves por kind, inserción inmediata de provincias y el insert
// del lote final.
type EntityStore interface {
	ClientsMap() (map[string]*domain.Client, error)
	AttributeIDs(kind domain.AttributeKind) (map[string]struct{}, error)
	ProvinciasMap() (map[string]*domain.Provincia, error)
	DepartamentoKeys() (map[string]struct{}, error)
	PDVIDs() (map[string]struct{}, error)
	InsertProvincia(provincia *domain.Provincia) error
	SaveBatch(ctx context.Context, batch *Batch) error
}

type entityStore struct {
	conn *postgres.Connection
}

func NewEntityStore(conn *postgres.Connection) EntityStore {
	return &entityStore{
		conn: conn,
	}
}

// ClientsMap carga todos los clientes como mapa id -> entidad. La
// resolución de clientes necesita el registro completo, no sólo la clave.
func (s *entityStore) ClientsMap() (map[string]*domain.Client, error) {
	clientsSQL, clientsArgs, err := squirrel.
		Select("id, name, created_at, updated_at").
		From("clients").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := s.conn.Query(clientsSQL, clientsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return make(map[string]*domain.Client), nil
		}
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	clients := make(map[string]*domain.Client)

	for rows.Next() {
		client := &domain.Client{}
		if err := rows.Scan(&client.ID, &client.Name, &client.CreatedAt, &client.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error al deserializar el cliente: %w", err)
		}
		clients[client.ID] = client
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar sobre los resultados: %w", err)
	}

	return clients, nil
}

// AttributeIDs devuelve el set de ids ya persistidos de un kind
func (s *entityStore) AttributeIDs(kind domain.AttributeKind) (map[string]struct{}, error) {
	return s.idSet(kind.Table())
}

// PDVIDs devuelve el set de ids de PDV ya persistidos
func (s *entityStore) PDVIDs() (map[string]struct{}, error) {
	return s.idSet("pdvs")
}

func (s *entityStore) idSet(table string) (map[string]struct{}, error) {
	idsSQL, idsArgs, err := squirrel.
		Select("id").
		From(table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := s.conn.Query(idsSQL, idsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return make(map[string]struct{}), nil
		}
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error al leer el id: %w", err)
		}
		ids[id] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar sobre los resultados: %w", err)
	}

	return ids, nil
}

// ProvinciasMap carga las provincias como mapa name -> entidad, con el id
// generado incluido: los departamentos lo necesitan para el enlace.
func (s *entityStore) ProvinciasMap() (map[string]*domain.Provincia, error) {
	provsSQL, provsArgs, err := squirrel.
		Select("id, name, created_at, updated_at").
		From("provincias").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := s.conn.Query(provsSQL, provsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return make(map[string]*domain.Provincia), nil
		}
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	provincias := make(map[string]*domain.Provincia)

	for rows.Next() {
		provincia := &domain.Provincia{}
		if err := rows.Scan(&provincia.ID, &provincia.Name, &provincia.CreatedAt, &provincia.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error al deserializar la provincia: %w", err)
		}
		provincias[provincia.Name] = provincia
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar sobre los resultados: %w", err)
	}

	return provincias, nil
}

// DepartamentoKeys devuelve el set de claves compuestas
// "{provincia_id} - {name}" de los departamentos persistidos
func (s *entityStore) DepartamentoKeys() (map[string]struct{}, error) {
	depsSQL, depsArgs, err := squirrel.
		Select("provincia_id, name").
		From("departamentos").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := s.conn.Query(depsSQL, depsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return make(map[string]struct{}), nil
		}
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]struct{})

	for rows.Next() {
		var provinciaID int
		var name string
		if err := rows.Scan(&provinciaID, &name); err != nil {
			return nil, fmt.Errorf("error al leer el departamento: %w", err)
		}
		keys[domain.DepartamentoKey(provinciaID, name)] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar sobre los resultados: %w", err)
	}

	return keys, nil
}

// InsertProvincia inserta y compromete una provincia de inmediato, fuera
// del lote: el id generado tiene que existir antes de armar el
// departamento de la misma fila.
func (s *entityStore) InsertProvincia(provincia *domain.Provincia) error {
	insertSQL, insertArgs, err := squirrel.StatementBuilder.
		Insert("provincias").
		Columns("name", "created_at", "updated_at").
		Values(provincia.Name, provincia.CreatedAt, provincia.UpdatedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = s.conn.QueryRow(insertSQL, insertArgs...).Scan(&provincia.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// SaveBatch inserta todo el lote en una sola transacción. Es el único
// punto de durabilidad de la corrida además de las provincias.
func (s *entityStore) SaveBatch(ctx context.Context, batch *Batch) error {
	if batch == nil || batch.IsEmpty() {
		return nil
	}

	return s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := insertClients(tx, batch.Clients); err != nil {
			return err
		}

		if err := insertAttributes(tx, batch.Attributes); err != nil {
			return err
		}

		if err := insertDepartamentos(tx, batch.Departamentos); err != nil {
			return err
		}

		if err := insertPDVs(tx, batch.PDVs); err != nil {
			return err
		}

		return nil
	})
}

func insertClients(tx *sql.Tx, clients []*domain.Client) error {
	if len(clients) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("clients").
		Columns("id", "name", "created_at", "updated_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, client := range clients {
		query = query.Values(client.ID, client.Name, client.CreatedAt, client.UpdatedAt)
	}

	return execInsert(tx, query, "clients")
}

func insertAttributes(tx *sql.Tx, attributes []*domain.ClientAttribute) error {
	if len(attributes) == 0 {
		return nil
	}

	// Un insert por tabla: el lote mezcla kinds distintos
	byKind := make(map[domain.AttributeKind][]*domain.ClientAttribute)
	for _, attribute := range attributes {
		byKind[attribute.Kind] = append(byKind[attribute.Kind], attribute)
	}

	for kind, kindAttributes := range byKind {
		query := squirrel.StatementBuilder.
			Insert(kind.Table()).
			Columns("id", "name", "client_id", "created_at", "updated_at").
			PlaceholderFormat(squirrel.Dollar)

		for _, attribute := range kindAttributes {
			query = query.Values(
				attribute.ID,
				attribute.Name,
				attribute.ClientID,
				attribute.CreatedAt,
				attribute.UpdatedAt,
			)
		}

		if err := execInsert(tx, query, kind.Table()); err != nil {
			return err
		}
	}

	return nil
}

func insertDepartamentos(tx *sql.Tx, departamentos []*domain.Departamento) error {
	if len(departamentos) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("departamentos").
		Columns("name", "provincia_id", "created_at", "updated_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, departamento := range departamentos {
		query = query.Values(
			departamento.Name,
			departamento.ProvinciaID,
			departamento.CreatedAt,
			departamento.UpdatedAt,
		)
	}

	return execInsert(tx, query, "departamentos")
}

func insertPDVs(tx *sql.Tx, pdvs []*domain.PDV) error {
	if len(pdvs) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("pdvs").
		Columns(
			"id", "cod_pdv", "fecha_alta", "lat", "lon", "geohash",
			"bandejas", "m2", "pasillos", "puertas_heladeras", "puntos_cobro",
			"tiene_ingreso", "compra_en_plataformas", "cuenta_con_apps_delivery",
			"cuenta_con_deposito", "cuenta_con_medios_cobro_digital", "otros_servicios",
			"abierto_24h", "abierto_7d", "bebidas_alcoholicas",
			"medicamentos_venta_libre", "cuidados_personales", "productos_lacteos",
			"productos_varios", "viandas", "imagen_frente",
			"presencia_redes_sociales", "eventos_tematicos",
			"ubicacion", "freezer", "client_id", "created_at", "updated_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, pdv := range pdvs {
		query = query.Values(
			pdv.ID, pdv.CodPDV, pdv.FechaAlta, pdv.Lat, pdv.Lon, pdv.Geohash,
			pdv.Bandejas, pdv.M2, pdv.Pasillos, pdv.PuertasHeladeras, pdv.PuntosCobro,
			pdv.TieneIngreso, pdv.CompraEnPlataformas, pdv.CuentaConAppsDelivery,
			pdv.CuentaConDeposito, pdv.CuentaConMediosCobroDigital, pdv.OtrosServicios,
			pdv.Abierto24h, pdv.Abierto7d, pdv.BebidasAlcoholicas,
			pdv.MedicamentosVentaLibre, pdv.CuidadosPersonales, pdv.ProductosLacteos,
			pdv.ProductosVarios, pdv.Viandas, pdv.ImagenFrente,
			pdv.PresenciaRedesSociales, pdv.EventosTematicos,
			pdv.Ubicacion, pdv.Freezer, pdv.ClientID, pdv.CreatedAt, pdv.UpdatedAt,
		)
	}

	return execInsert(tx, query, "pdvs")
}

func execInsert(tx *sql.Tx, query squirrel.InsertBuilder, table string) error {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = tx.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error on %s: %w (code: %s)", table, pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query on %s: %w", table, err)
	}

	return nil
}
