package importing

import (
	"github.com/lugezz/marketminds-api/internal/domain"
	"github.com/lugezz/marketminds-api/pkg/utils"
)

// SinNombre es el nombre centinela para los kinds que no traen columna
// de nombre en el dataset. Pasado como nameKey, se usa literal.
const SinNombre = "(Sin nombre)"

// pairColumns define, por kind, las columnas de id y nombre del dataset.
// El orden de evaluación por fila es el de domain.AttributeKinds.
var pairColumns = map[domain.AttributeKind]struct {
	idKey   string
	nameKey string
}{
	domain.KindCanalDistribucion: {idKey: "id_cli_canal_dist", nameKey: "desc_cli_canal_dist"},
	domain.KindCategoria:         {idKey: "id_cli_categoria_dist", nameKey: SinNombre},
	domain.KindGerenteNacional:   {idKey: "id_cli_gte_nacional", nameKey: "desc_cli_gte_nacional"},
	domain.KindGerenteRegional:   {idKey: "id_cli_gte_regional", nameKey: "desc_cli_gte_regional"},
	domain.KindSucursal:          {idKey: "id_cli_suc_cuenta", nameKey: "desc_cli_suc_cuenta"},
	domain.KindSubcanalAdicional: {idKey: "id_cli_subcanal_adic_dist", nameKey: "desc_cli_subcanal_dist"},
	domain.KindVendedor:          {idKey: "id_cli_vendedor", nameKey: "desc_cli_vendedor"},
}

// classifyIDNamePair aplica la regla id+nombre: la fila produce una
// entidad nueva cuando el id no está en el working set, o el id o el
// nombre vienen nulos. Una fila con id o nombre nulo se trata SIEMPRE
// como nueva aunque el id ya esté en el set; es una rareza heredada del
// sistema original y se preserva a propósito (ver DESIGN.md).
func classifyIDNamePair(row Row, idKey, nameKey string, ids map[string]struct{}) (id, name string, isNew bool, err error) {
	id, err = row.Get(idKey)
	if err != nil {
		return "", "", false, err
	}

	if nameKey == SinNombre {
		name = SinNombre
	} else {
		name, err = row.Get(nameKey)
		if err != nil {
			return "", "", false, err
		}
	}

	_, seen := ids[id]
	isNew = !seen || utils.IsNull(id) || utils.IsNull(name)

	return id, name, isNew, nil
}

// classifyName aplica la regla de sólo-nombre (clave autonumérica): la
// fila produce una entidad nueva cuando el nombre no está en el set o
// viene nulo. La misma rareza del nulo aplica acá.
func classifyName(row Row, nameKey string, names map[string]struct{}) (name string, isNew bool, err error) {
	if nameKey == SinNombre {
		name = SinNombre
	} else {
		name, err = row.Get(nameKey)
		if err != nil {
			return "", false, err
		}
	}

	_, seen := names[name]
	isNew = !seen || utils.IsNull(name)

	return name, isNew, nil
}
