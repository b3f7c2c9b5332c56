package shipping

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Address holds the delivery address fields a carrier submission needs.
type Address struct {
	// ContactName is the name at the delivery address; may be empty, in
	// which case the customer name is used for the carrier contact fields.
	ContactName string
	Street      string
	Zip         string
	City        string
}

// Shipment is an outbound delivery record owned by the host ERP. This
// module only mutates it to attach carrier tracking metadata after a
// successful submission and to flag label-print attempts.
type Shipment struct {
	ID       uuid.UUID
	TenantID uuid.UUID

	// Number is the shipment code shown to users and used as the carrier
	// reference by default.
	Number string
	// OriginNumber is the upstream order number, used as the carrier
	// reference when the config enables origin references.
	OriginNumber string

	DeliveryAddress Address
	CustomerName    string
	CustomerTaxID   string
	Phone           string
	Mobile          string

	Packages int
	// Weight is the computed shipment weight. HasWeight reports whether the
	// host model actually exposes one; a zero Weight with HasWeight=false
	// means "unknown", not "weightless".
	Weight    decimal.Decimal
	HasWeight bool
	// WeightUnit is the unit Weight is expressed in, e.g. "kg" or "g".
	// Empty when the host model does not track units.
	WeightUnit string

	CashOnDelivery bool
	CODAmount      decimal.Decimal

	CarrierNotes string
	// ServiceCode is the shipment-level carrier service selection, if any.
	ServiceCode string

	// Carrier tracking metadata, set by a successful send.
	TrackingRef  string
	ServiceSent  string
	Delivered    bool
	SendDate     *time.Time
	SendOperator *uuid.UUID
	Printed      bool
}

// ContactName returns the delivery-address contact, falling back to the
// customer name when the address carries none.
func (s *Shipment) ContactName() string {
	if s.DeliveryAddress.ContactName != "" {
		return s.DeliveryAddress.ContactName
	}
	return s.CustomerName
}

// PhoneNumber returns the phone to hand to the carrier, preferring the
// fixed line and falling back to the mobile. Empty means the shipment has
// no usable contact number.
func (s *Shipment) PhoneNumber() string {
	if s.Phone != "" {
		return s.Phone
	}
	return s.Mobile
}

// ReferenceCode returns the reference submitted to the carrier: the
// shipment number, or the upstream order number when useOrigin is set and
// an origin exists.
func (s *Shipment) ReferenceCode(useOrigin bool) string {
	if useOrigin && s.OriginNumber != "" {
		return s.OriginNumber
	}
	return s.Number
}

// IsSent reports whether the carrier has assigned a tracking reference.
func (s *Shipment) IsSent() bool {
	return s.TrackingRef != ""
}

// MarkSent attaches the carrier tracking metadata to the shipment.
func (s *Shipment) MarkSent(trackingRef, service string, sentAt time.Time, operator *uuid.UUID) {
	s.TrackingRef = trackingRef
	s.ServiceSent = service
	s.Delivered = true
	s.SendDate = &sentAt
	s.SendOperator = operator
}
