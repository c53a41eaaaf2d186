package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSiNoABool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected *bool
	}{
		{name: "Si devuelve verdadero", value: "Si", expected: boolPtr(true)},
		{name: "No devuelve falso", value: "No", expected: boolPtr(false)},
		{name: "Insensible a mayúsculas", value: "SI", expected: boolPtr(true)},
		{name: "Con espacios alrededor", value: "  no ", expected: boolPtr(false)},
		{name: "Celda vacía es indeterminado", value: "", expected: nil},
		{name: "Otro valor es indeterminado", value: "Tal vez", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SiNoABool(tt.value))
		})
	}
}

func TestIntOrZero(t *testing.T) {
	assert.Equal(t, 12, IntOrZero("12"))
	assert.Equal(t, 7, IntOrZero(" 7 "))
	assert.Equal(t, 0, IntOrZero(""))
	assert.Equal(t, 0, IntOrZero("doce"))
}

func TestFloatOrZero(t *testing.T) {
	assert.Equal(t, -34.6037, FloatOrZero("-34.6037"))
	assert.Equal(t, 0.0, FloatOrZero(""))
	assert.Equal(t, 0.0, FloatOrZero("n/a"))
}

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull(""))
	assert.True(t, IsNull("   "))
	assert.False(t, IsNull("0"))
	assert.False(t, IsNull("valor"))
}

func boolPtr(v bool) *bool {
	return &v
}
