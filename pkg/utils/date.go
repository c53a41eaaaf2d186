package utils

import (
	"strings"
	"time"
)

// datasetTimestampLayout es el formato textual de id_tie_fecha_alta en el
// dataset, por ejemplo "2006-10-19T00:00:00.000Z".
const datasetTimestampLayout = "2006-01-02T15:04:05.000Z"

// DatetimeFromString parsea un timestamp del dataset. Celda vacía o no
// parseable devuelve nil; la coerción de fechas nunca falla la corrida.
func DatetimeFromString(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	t, err := time.Parse(datasetTimestampLayout, value)
	if err != nil {
		return nil
	}

	utc := t.UTC()
	return &utc
}
