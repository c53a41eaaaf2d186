package importing

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Row es una fila del dataset con acceso por nombre de columna. Pedir
// una columna que no existe es un error fatal para toda la corrida: no
// hay aislamiento por fila.
type Row struct {
	header map[string]int
	cells  []string
}

// Get devuelve el valor recortado de una columna
func (r Row) Get(column string) (string, error) {
	idx, ok := r.header[column]
	if !ok {
		return "", errors.Errorf("columna %q inexistente en el dataset", column)
	}

	if idx >= len(r.cells) {
		return "", nil
	}

	return strings.TrimSpace(r.cells[idx]), nil
}

// ReadDataset lee el CSV completo (UTF-8, con fila de encabezados) y
// devuelve las filas de datos. La primera fila de datos es un artefacto
// del archivo de origen y la saltea el servicio, no el lector.
func ReadDataset(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "error al abrir el dataset")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	// El archivo de origen trae filas con menos celdas que el
	// encabezado; Row.Get las trata como vacías
	reader.FieldsPerRecord = -1

	headerCells, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "error al leer los encabezados del dataset")
	}

	// Mapa nombre de columna -> índice para el acceso por nombre
	header := make(map[string]int, len(headerCells))
	for i, name := range headerCells {
		header[strings.TrimSpace(name)] = i
	}

	var rows []Row

	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "error al leer una fila del dataset")
		}

		rows = append(rows, Row{header: header, cells: cells})
	}

	return rows, nil
}
