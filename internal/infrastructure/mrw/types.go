package mrw

import (
	"encoding/xml"

	"github.com/erp/carrier-mrw/internal/domain/carrier"
)

// credentials is the authentication block every SAGEC request carries.
type credentials struct {
	Username   string `xml:"Usuario"`
	Password   string `xml:"Password"`
	Franchise  string `xml:"Franquicia"`
	Subscriber string `xml:"Abonado"`
	Department string `xml:"Departamento"`
}

// pickupData is the shipment block of a TransmEnvio request. omitempty
// keeps optional fields (weight, COD) out of the document when the payload
// does not carry them.
type pickupData struct {
	Street    string `xml:"Via"`
	Zip       string `xml:"CodigoPostal"`
	City      string `xml:"Poblacion"`
	TaxID     string `xml:"Nif"`
	Name      string `xml:"Nombre"`
	Phone     string `xml:"Telefono"`
	Contact   string `xml:"Contacto"`
	Attention string `xml:"AtencionDe"`
	Notes     string `xml:"Observaciones"`
	Date      string `xml:"Fecha,omitempty"`
	Reference string `xml:"Referencia"`
	Service   string `xml:"CodigoServicio"`
	Packages  string `xml:"NumeroBultos"`
	Weight    string `xml:"Peso,omitempty"`
	CODFlag   string `xml:"Reembolso,omitempty"`
	CODAmount string `xml:"ImporteReembolso,omitempty"`
}

type transmRequest struct {
	XMLName     xml.Name    `xml:"TransmEnvio"`
	Credentials credentials `xml:"Credenciales"`
	Data        pickupData  `xml:"DatosEnvio"`
}

type transmResponse struct {
	XMLName   xml.Name `xml:"TransmEnvioResponse"`
	Status    string   `xml:"Estado"`
	Message   string   `xml:"Mensaje"`
	Reference string   `xml:"NumeroEnvio"`
}

type labelRequest struct {
	XMLName     xml.Name    `xml:"GetEtiquetaEnvio"`
	Credentials credentials `xml:"Credenciales"`
	Reference   string      `xml:"NumeroEnvio"`
}

type labelResponse struct {
	XMLName xml.Name `xml:"GetEtiquetaEnvioResponse"`
	Status  string   `xml:"Estado"`
	Message string   `xml:"Mensaje"`
	// File is the label PDF, base64 encoded.
	File string `xml:"EtiquetaFile"`
}

// pickupDataFromPayload maps the normalized payload onto the SAGEC
// request block.
func pickupDataFromPayload(payload carrier.Payload) pickupData {
	return pickupData{
		Street:    payload[carrier.FieldStreet],
		Zip:       payload[carrier.FieldZip],
		City:      payload[carrier.FieldCity],
		TaxID:     payload[carrier.FieldTaxID],
		Name:      payload[carrier.FieldName],
		Phone:     payload[carrier.FieldPhone],
		Contact:   payload[carrier.FieldContact],
		Attention: payload[carrier.FieldAttention],
		Notes:     payload[carrier.FieldNotes],
		Date:      payload[carrier.FieldDate],
		Reference: payload[carrier.FieldReference],
		Service:   payload[carrier.FieldService],
		Packages:  payload[carrier.FieldPackages],
		Weight:    payload[carrier.FieldWeight],
		CODFlag:   payload[carrier.FieldCODFlag],
		CODAmount: payload[carrier.FieldCODAmount],
	}
}
