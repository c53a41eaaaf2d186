package domain

// ImportResult es el resumen de una corrida de importación. Los conteos
// salen de la diferencia de tamaño de los sets de claves (final menos
// inicial), no de un contador de inserts.
type ImportResult struct {
	Status         int            `json:"status"`
	Message        string         `json:"message"`
	RegistrosAdded map[string]int `json:"registros_added"`
}
