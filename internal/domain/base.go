package domain

import "time"

// UTCNow devuelve la hora actual en UTC. Todas las entidades estampan
// created_at/updated_at con este valor al construirse; la ruta de
// importación nunca los vuelve a tocar.
func UTCNow() time.Time {
	return time.Now().UTC()
}
