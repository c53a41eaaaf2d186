package importing

import (
	"github.com/lugezz/marketminds-api/internal/domain"
	"github.com/lugezz/marketminds-api/pkg/utils"
)

// Columnas clave del dataset
const (
	colPDVID        = "id_pdv_unique"
	colClientID     = "id_cli_suc_cuenta"
	colClientName   = "desc_cli_suc_cuenta"
	colProvincia    = "pv_pcia"
	colDepartamento = "pv_departamento"
)

// pdvField asocia una columna del dataset con el campo del PDV que la
// recibe. La coerción vive en assign: string crudo, entero con nulo->0,
// "Si"/"No" a booleano con nulo como indeterminado, o timestamp textual.
// Reemplaza el acceso dinámico por nombre de campo del sistema anterior.
type pdvField struct {
	column string
	assign func(pdv *domain.PDV, value string)
}

var pdvFields = []pdvField{
	{column: "id_cod_pdv", assign: func(p *domain.PDV, v string) { p.CodPDV = v }},
	{column: "id_tie_fecha_alta", assign: func(p *domain.PDV, v string) { p.FechaAlta = utils.DatetimeFromString(v) }},
	{column: "pv_y", assign: func(p *domain.PDV, v string) { p.Lat = utils.FloatOrZero(v) }},
	{column: "pv_x", assign: func(p *domain.PDV, v string) { p.Lon = utils.FloatOrZero(v) }},
	{column: "geohash", assign: func(p *domain.PDV, v string) { p.Geohash = v }},

	{column: "indicar_cantidad_de_bandejas", assign: func(p *domain.PDV, v string) { p.Bandejas = utils.IntOrZero(v) }},
	{column: "indique_la_cantidad_de_m2_de_la_tienda", assign: func(p *domain.PDV, v string) { p.M2 = utils.IntOrZero(v) }},
	{column: "indique_la_cantidad_de_pasillos", assign: func(p *domain.PDV, v string) { p.Pasillos = utils.IntOrZero(v) }},
	{column: "indique_la_cantidad_de_puertas_de_heladeras", assign: func(p *domain.PDV, v string) { p.PuertasHeladeras = utils.IntOrZero(v) }},
	{column: "indique_la_cantidad_de_puntos_de_cobro_cajas_del_pdv", assign: func(p *domain.PDV, v string) { p.PuntosCobro = utils.IntOrZero(v) }},

	{column: "se_puede_ingresar_al_interior_del_local", assign: func(p *domain.PDV, v string) { p.TieneIngreso = utils.SiNoABool(v) }},
	{column: "compra_en_plataformas_web_ej_bees_compre_ahora_coca_tokin", assign: func(p *domain.PDV, v string) { p.CompraEnPlataformas = utils.SiNoABool(v) }},
	{column: "cuenta_con_apps_de_delivery_ej_pedidos_ya_rappi_propia", assign: func(p *domain.PDV, v string) { p.CuentaConAppsDelivery = utils.SiNoABool(v) }},
	{column: "cuenta_con_deposito_de_mercaderia", assign: func(p *domain.PDV, v string) { p.CuentaConDeposito = utils.SiNoABool(v) }},
	{column: "cuenta_con_medios_de_cobro_digital_o_electronico_ej_posnet_apps_de_pago_qr", assign: func(p *domain.PDV, v string) { p.CuentaConMediosCobroDigital = utils.SiNoABool(v) }},
	{column: "cuenta_con_otros_servicios_ej_tarjeta_colectivos_carga_celular_cospeles_rapipago_pago_facil", assign: func(p *domain.PDV, v string) { p.OtrosServicios = utils.SiNoABool(v) }},
	{column: "la_tienda_se_encuentra_abierta_las_24_hs_del_dia", assign: func(p *domain.PDV, v string) { p.Abierto24h = utils.SiNoABool(v) }},
	{column: "la_tienda_se_encuentra_abierta_los_7_dias_de_la_semana", assign: func(p *domain.PDV, v string) { p.Abierto7d = utils.SiNoABool(v) }},
	{column: "ofrece_bebidas_alcoholicas", assign: func(p *domain.PDV, v string) { p.BebidasAlcoholicas = utils.SiNoABool(v) }},
	{column: "ofrece_medicamentos_de_venta_libre_ej_ibuprofeno_sertal_otros", assign: func(p *domain.PDV, v string) { p.MedicamentosVentaLibre = utils.SiNoABool(v) }},
	{column: "ofrece_producto_de_cuidado_personal_ej_shampoo_maquinita_de_afeitar_toallitas_femeninas", assign: func(p *domain.PDV, v string) { p.CuidadosPersonales = utils.SiNoABool(v) }},
	{column: "ofrece_productos_lacteos", assign: func(p *domain.PDV, v string) { p.ProductosLacteos = utils.SiNoABool(v) }},
	{column: "ofrece_productos_varios_ej_pilas_encendedroes_preservativos", assign: func(p *domain.PDV, v string) { p.ProductosVarios = utils.SiNoABool(v) }},
	{column: "ofrece_viandas_ej_menues_tartas_sandwiches_ensaladas", assign: func(p *domain.PDV, v string) { p.Viandas = utils.SiNoABool(v) }},
	{column: "tiene_imagen_en_el_frente_del_local", assign: func(p *domain.PDV, v string) { p.ImagenFrente = utils.SiNoABool(v) }},
	{column: "tiene_presencia_en_redes_sociales_ej_instagram_facebook_tik_tok", assign: func(p *domain.PDV, v string) { p.PresenciaRedesSociales = utils.SiNoABool(v) }},
	{column: "trabaja_los_eventos_tematicos_navidad_pascuas_halloween_seleccion_argentina", assign: func(p *domain.PDV, v string) { p.EventosTematicos = utils.SiNoABool(v) }},

	{column: "donde_se_encuentra_ubicado", assign: func(p *domain.PDV, v string) { p.Ubicacion = v }},
	{column: "tiene_freezer_cual_es", assign: func(p *domain.PDV, v string) { p.Freezer = v }},
}

// buildPDV materializa un PDV nuevo desde la fila aplicando la tabla de
// campos completa. Una columna ausente aborta la corrida.
func buildPDV(row Row, id string, client *domain.Client) (*domain.PDV, error) {
	pdv := domain.NewPDV(id)
	pdv.ClientID = client.ID

	for _, field := range pdvFields {
		value, err := row.Get(field.column)
		if err != nil {
			return nil, err
		}
		field.assign(pdv, value)
	}

	return pdv, nil
}
