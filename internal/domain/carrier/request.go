package carrier

import (
	"strconv"
	"strings"
	"time"

	"github.com/erp/carrier-mrw/internal/domain/shared/textutil"
	"github.com/erp/carrier-mrw/internal/domain/shipping"
)

// BuildPickupRequest maps one shipment onto the MRW picking payload. It is
// a pure function of the config, the shipment and the supplied service and
// clock; it never mutates the shipment.
//
// It fails with ErrNoService when service is empty and with ErrNoCODPrice
// when the shipment is cash on delivery without an amount; callers record
// a user-facing message and skip the shipment without calling the carrier.
func BuildPickupRequest(cfg *Config, sh *shipping.Shipment, service Service, now time.Time) (Payload, error) {
	if service == "" {
		return nil, ErrNoService
	}

	packages := sh.Packages
	if packages <= 0 {
		packages = 1
	}

	contact := textutil.Unaccent(sh.ContactName())

	payload := Payload{
		FieldStreet:    textutil.Unaccent(sh.DeliveryAddress.Street),
		FieldZip:       sh.DeliveryAddress.Zip,
		FieldCity:      textutil.Unaccent(sh.DeliveryAddress.City),
		FieldTaxID:     sh.CustomerTaxID,
		FieldName:      textutil.Unaccent(sh.CustomerName),
		FieldPhone:     textutil.Unspaces(sh.PhoneNumber()),
		FieldContact:   contact,
		FieldAttention: contact,
		FieldNotes:     textutil.Unaccent(sh.CarrierNotes),
		FieldDate:      now.Format("02/01/2006"),
		FieldReference: sh.ReferenceCode(cfg.UseOriginReference),
		FieldService:   service.String(),
		FieldPackages:  strconv.Itoa(packages),
	}

	if cfg.SendWeight && sh.HasWeight {
		weight := cfg.ConvertWeight(sh.Weight, sh.WeightUnit).Round(0).IntPart()
		if weight == 0 {
			weight = 1
		}
		payload[FieldWeight] = strconv.FormatInt(weight, 10)
	}

	if sh.CashOnDelivery {
		if sh.CODAmount.IsZero() {
			return nil, ErrNoCODPrice
		}
		payload[FieldCODFlag] = "O"
		// MRW expects the Spanish decimal convention, two fractional digits.
		payload[FieldCODAmount] = strings.ReplaceAll(sh.CODAmount.StringFixed(2), ".", ",")
	}

	return payload, nil
}
