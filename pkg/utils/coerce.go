package utils

import (
	"strconv"
	"strings"
)

// SiNoABool convierte una celda "Si"/"No" a booleano. Cualquier otro
// valor (incluido el vacío) es indeterminado y devuelve nil, nunca error.
func SiNoABool(value string) *bool {
	v := true
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "si":
		return &v
	case "no":
		v = false
		return &v
	default:
		return nil
	}
}

// IntOrZero convierte una celda numérica a int. Celda vacía o no
// parseable vale 0.
func IntOrZero(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

// FloatOrZero convierte una celda numérica a float64. Celda vacía o no
// parseable vale 0.
func FloatOrZero(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return f
}

// IsNull indica si la celda cuenta como nula para las reglas de
// clasificación: vacía o sólo espacios.
func IsNull(value string) bool {
	return strings.TrimSpace(value) == ""
}
