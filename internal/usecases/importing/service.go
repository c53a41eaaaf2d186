package importing

import (
	"context"
	"sync"

	"github.com/lugezz/marketminds-api/infrastructure/repository"
	"github.com/lugezz/marketminds-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrImportRunning se devuelve cuando ya hay una corrida en curso en
// este proceso. Dos corridas simultáneas cargarían sus sets de claves
// por separado y duplicarían inserts, así que se serializan.
var ErrImportRunning = errors.New("ya hay una importación de dataset en curso")

type Importer interface {
	ImportDataset(ctx context.Context) (*domain.ImportResult, error)
}

// Service ejecuta la importación del dataset: carga los sets de claves,
// recorre las filas clasificando cada kind, junta las entidades nuevas
// en un lote y lo persiste al final en una sola transacción. Las
// provincias son la excepción: se comprometen de inmediato porque el
// departamento de la misma fila necesita el id generado.
type Service struct {
	store       repository.EntityStore
	datasetPath string

	runMutex sync.Mutex
	running  bool
}

func NewService(store repository.EntityStore, datasetPath string) *Service {
	return &Service{
		store:       store,
		datasetPath: datasetPath,
	}
}

// runState es el estado de una corrida: los working sets mutables por
// kind más el tamaño inicial de cada uno. El resumen es final - inicial
// por kind, calculado sobre los sets y no sobre un contador de inserts.
type runState struct {
	clients        map[string]*domain.Client
	initialClients int

	attrIDs      map[domain.AttributeKind]map[string]struct{}
	initialAttrs map[domain.AttributeKind]int

	provincias        map[string]*domain.Provincia
	provinciaNames    map[string]struct{}
	initialProvincias int

	departamentoKeys     map[string]struct{}
	initialDepartamentos int

	pdvIDs      map[string]struct{}
	initialPDVs int

	batch *repository.Batch
}

func (s *Service) ImportDataset(ctx context.Context) (*domain.ImportResult, error) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		return nil, ErrImportRunning
	}
	s.running = true
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.runMutex.Unlock()
	}()

	logrus.WithField("dataset", s.datasetPath).Info("Iniciando importación de dataset")

	rows, err := ReadDataset(s.datasetPath)
	if err != nil {
		return nil, err
	}

	state, err := s.loadKeySets()
	if err != nil {
		return nil, errors.Wrap(err, "error al cargar los sets de claves")
	}

	for i, row := range rows {
		if i == 0 {
			// La primera fila de datos es un segundo encabezado o
			// basura del archivo de origen; se saltea siempre
			continue
		}

		if err := s.processRow(row, state); err != nil {
			return nil, errors.Wrapf(err, "error al procesar la fila %d", i)
		}
	}

	if err := s.store.SaveBatch(ctx, state.batch); err != nil {
		return nil, errors.Wrap(err, "error al persistir el lote de importación")
	}

	result := &domain.ImportResult{
		Status:         200,
		Message:        "Importación de dataset exitosa",
		RegistrosAdded: state.registrosAdded(),
	}

	logrus.WithFields(logrus.Fields{
		"filas":           len(rows),
		"registros_added": result.RegistrosAdded,
	}).Info("Importación de dataset finalizada")

	return result, nil
}

// loadKeySets trae de la base el estado actual de cada kind, una sola
// vez y antes de procesar cualquier fila, para que los conteos
// inicial/final cierren.
func (s *Service) loadKeySets() (*runState, error) {
	state := &runState{
		attrIDs:      make(map[domain.AttributeKind]map[string]struct{}),
		initialAttrs: make(map[domain.AttributeKind]int),
		batch:        &repository.Batch{},
	}

	clients, err := s.store.ClientsMap()
	if err != nil {
		return nil, err
	}
	state.clients = clients
	state.initialClients = len(clients)

	for _, kind := range domain.AttributeKinds() {
		ids, err := s.store.AttributeIDs(kind)
		if err != nil {
			return nil, err
		}
		state.attrIDs[kind] = ids
		state.initialAttrs[kind] = len(ids)
	}

	provincias, err := s.store.ProvinciasMap()
	if err != nil {
		return nil, err
	}
	state.provincias = provincias
	state.provinciaNames = make(map[string]struct{}, len(provincias))
	for name := range provincias {
		state.provinciaNames[name] = struct{}{}
	}
	state.initialProvincias = len(state.provinciaNames)

	departamentoKeys, err := s.store.DepartamentoKeys()
	if err != nil {
		return nil, err
	}
	state.departamentoKeys = departamentoKeys
	state.initialDepartamentos = len(departamentoKeys)

	pdvIDs, err := s.store.PDVIDs()
	if err != nil {
		return nil, err
	}
	state.pdvIDs = pdvIDs
	state.initialPDVs = len(pdvIDs)

	return state, nil
}

// processRow evalúa todos los kinds sobre una fila, en orden fijo: el
// cliente primero porque el resto de las entidades de la fila se
// estampan con él.
func (s *Service) processRow(row Row, state *runState) error {
	client, err := s.resolveClient(row, state)
	if err != nil {
		return err
	}

	for _, kind := range domain.AttributeKinds() {
		columns := pairColumns[kind]

		id, name, isNew, err := classifyIDNamePair(row, columns.idKey, columns.nameKey, state.attrIDs[kind])
		if err != nil {
			return err
		}

		if isNew {
			attribute := domain.NewClientAttribute(kind, id, name, client.ID)
			state.batch.Attributes = append(state.batch.Attributes, attribute)
			state.attrIDs[kind][id] = struct{}{}
		}
	}

	provincia, err := s.resolveProvincia(row, state)
	if err != nil {
		return err
	}

	if err := s.classifyDepartamento(row, provincia, state); err != nil {
		return err
	}

	return s.classifyPDV(row, client, state)
}

// resolveClient busca el cliente de la fila por id de cuenta en el mapa
// precargado; si no existe lo construye, lo encola en el lote y lo
// registra de inmediato en el mapa para que las filas siguientes con la
// misma cuenta reutilicen la instancia en memoria.
func (s *Service) resolveClient(row Row, state *runState) (*domain.Client, error) {
	id, err := row.Get(colClientID)
	if err != nil {
		return nil, err
	}

	if client, ok := state.clients[id]; ok {
		return client, nil
	}

	name, err := row.Get(colClientName)
	if err != nil {
		return nil, err
	}

	client := domain.NewClient(id, name)
	state.batch.Clients = append(state.batch.Clients, client)
	state.clients[id] = client

	return client, nil
}

// resolveProvincia resuelve la provincia de la fila por nombre. Si no
// existe la crea y la persiste en el momento, fuera del lote: el id
// generado tiene que estar disponible antes de armar el departamento.
func (s *Service) resolveProvincia(row Row, state *runState) (*domain.Provincia, error) {
	name, isNew, err := classifyName(row, colProvincia, state.provinciaNames)
	if err != nil {
		return nil, err
	}

	if isNew {
		provincia := domain.NewProvincia(name)
		if err := s.store.InsertProvincia(provincia); err != nil {
			return nil, errors.Wrapf(err, "error al persistir la provincia %q", name)
		}

		state.provincias[name] = provincia
		state.provinciaNames[name] = struct{}{}
	}

	return state.provincias[name], nil
}

// classifyDepartamento aplica la clave compuesta (provincia, nombre):
// un mismo nombre de departamento en provincias distintas crea dos
// registros, el mismo par visto dos veces crea uno solo.
func (s *Service) classifyDepartamento(row Row, provincia *domain.Provincia, state *runState) error {
	name, err := row.Get(colDepartamento)
	if err != nil {
		return err
	}

	key := domain.DepartamentoKey(provincia.ID, name)

	if _, seen := state.departamentoKeys[key]; seen {
		return nil
	}

	departamento := domain.NewDepartamento(name, provincia.ID)
	state.batch.Departamentos = append(state.batch.Departamentos, departamento)
	state.departamentoKeys[key] = struct{}{}

	return nil
}

// classifyPDV crea el PDV cuando su id externo no fue visto; un id ya
// visto saltea la fila entera, sin actualización parcial.
func (s *Service) classifyPDV(row Row, client *domain.Client, state *runState) error {
	id, err := row.Get(colPDVID)
	if err != nil {
		return err
	}

	if _, seen := state.pdvIDs[id]; seen {
		return nil
	}

	pdv, err := buildPDV(row, id, client)
	if err != nil {
		return err
	}

	state.batch.PDVs = append(state.batch.PDVs, pdv)
	state.pdvIDs[id] = struct{}{}

	return nil
}

// registrosAdded arma el resumen por kind como diferencia de tamaño de
// los sets. Una fila que mutó el working set sin que el registro llegue
// a persistirse (caso de los nulos) igual cuenta como agregada: es el
// comportamiento del sistema original y se preserva.
func (state *runState) registrosAdded() map[string]int {
	added := map[string]int{
		"client":       len(state.clients) - state.initialClients,
		"provincia":    len(state.provinciaNames) - state.initialProvincias,
		"departamento": len(state.departamentoKeys) - state.initialDepartamentos,
		"pdv":          len(state.pdvIDs) - state.initialPDVs,
	}

	for _, kind := range domain.AttributeKinds() {
		added[string(kind)] = len(state.attrIDs[kind]) - state.initialAttrs[kind]
	}

	return added
}
