package carrier

// Payload is the normalized key-value request body for one pickup, built
// fresh per shipment and discarded after the API call. Keys are the MRW
// picking API field names.
type Payload map[string]string

// MRW picking API field names.
const (
	FieldStreet    = "via"
	FieldZip       = "codigo_postal"
	FieldCity      = "poblacion"
	FieldTaxID     = "nif"
	FieldName      = "nombre"
	FieldPhone     = "telefono"
	FieldContact   = "contacto"
	FieldAttention = "atencion_de"
	FieldNotes     = "observaciones"
	FieldDate      = "fecha"
	FieldReference = "referencia"
	FieldService   = "codigo_servicio"
	FieldPackages  = "bultos"
	FieldWeight    = "peso"
	FieldCODFlag   = "reembolso"
	FieldCODAmount = "importe_reembolso"
	// FieldTracking keys a label request by tracking reference.
	FieldTracking = "numero"
)
