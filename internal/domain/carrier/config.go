package carrier

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MethodMRW is the carrier method code this module registers.
const MethodMRW = "mrw"

// Errors for carrier configuration
var (
	ErrConfigMissingUsername   = errors.New("carrier: username is required")
	ErrConfigMissingPassword   = errors.New("carrier: password is required")
	ErrConfigMissingFranchise  = errors.New("carrier: MRW franchise is required")
	ErrConfigMissingSubscriber = errors.New("carrier: MRW subscriber is required")
	ErrConfigMissingDepartment = errors.New("carrier: MRW department is required")
)

// Service is a carrier service code, the product/tier selection for a
// submission (e.g. urgent vs. economy).
type Service string

// String returns the string representation of Service
func (s Service) String() string {
	return string(s)
}

// WeightUnit identifies a mass unit for shipment weights.
type WeightUnit string

const (
	WeightUnitGram     WeightUnit = "g"
	WeightUnitKilogram WeightUnit = "kg"
	WeightUnitTonne    WeightUnit = "t"
	WeightUnitPound    WeightUnit = "lb"
	WeightUnitOunce    WeightUnit = "oz"
)

// gramsPerUnit is the conversion table between supported weight units.
var gramsPerUnit = map[WeightUnit]decimal.Decimal{
	WeightUnitGram:     decimal.NewFromInt(1),
	WeightUnitKilogram: decimal.NewFromInt(1000),
	WeightUnitTonne:    decimal.NewFromInt(1000000),
	WeightUnitPound:    decimal.RequireFromString("453.59237"),
	WeightUnitOunce:    decimal.RequireFromString("28.349523125"),
}

// Convert converts value from unit u into target. The second return is
// false when either unit is absent from the conversion table.
func (u WeightUnit) Convert(value decimal.Decimal, target WeightUnit) (decimal.Decimal, bool) {
	from, ok := gramsPerUnit[u]
	if !ok {
		return value, false
	}
	to, ok := gramsPerUnit[target]
	if !ok {
		return value, false
	}
	return value.Mul(from).Div(to), true
}

// Config is the account and integration settings entity for one MRW
// connection. It is owned by the host ERP's configuration store and is
// immutable for the duration of a send or label batch.
type Config struct {
	TenantID uuid.UUID
	// Method is the carrier method code; always MethodMRW for this module.
	Method string

	Username string
	Password string

	// MRW integration identifiers, all three required by the picking API.
	Franchise  string
	Subscriber string
	Department string

	Debug          bool
	TimeoutSeconds int
	Sandbox        bool

	// SendWeight controls whether shipment weights are transmitted.
	SendWeight bool
	// CarrierWeightUnit is the unit the carrier expects weights in. Empty
	// disables unit conversion.
	CarrierWeightUnit WeightUnit
	// DefaultWeightUnit is assumed for shipments that do not carry a unit.
	DefaultWeightUnit WeightUnit

	// UseOriginReference submits the upstream order number instead of the
	// shipment number as the carrier reference.
	UseOriginReference bool

	// ServiceCode is the carrier-level service selection, used when a
	// shipment does not select one itself.
	ServiceCode string
	// DefaultServiceCode is the API-level fallback service.
	DefaultServiceCode string
}

// Validate validates the carrier configuration
func (c *Config) Validate() error {
	if c.Username == "" {
		return ErrConfigMissingUsername
	}
	if c.Password == "" {
		return ErrConfigMissingPassword
	}
	if c.Franchise == "" {
		return ErrConfigMissingFranchise
	}
	if c.Subscriber == "" {
		return ErrConfigMissingSubscriber
	}
	if c.Department == "" {
		return ErrConfigMissingDepartment
	}
	if c.Method == "" {
		c.Method = MethodMRW
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	return nil
}

// DefaultService resolves the API-level default service once per batch.
// Empty means no default is configured.
func (c *Config) DefaultService() Service {
	return Service(c.DefaultServiceCode)
}

// ServiceFor resolves the service for one shipment: the shipment's own
// selection wins, then the carrier-level code, then the batch default.
func (c *Config) ServiceFor(shipmentCode string, batchDefault Service) Service {
	if shipmentCode != "" {
		return Service(shipmentCode)
	}
	if c.ServiceCode != "" {
		return Service(c.ServiceCode)
	}
	return batchDefault
}

// ConvertWeight converts a shipment weight into the carrier's expected
// unit. The source unit is the shipment's own unit when present, otherwise
// the config default. When no carrier unit or no source unit is configured
// the value is returned unconverted.
func (c *Config) ConvertWeight(value decimal.Decimal, shipmentUnit string) decimal.Decimal {
	if c.CarrierWeightUnit == "" {
		return value
	}
	source := WeightUnit(shipmentUnit)
	if source == "" {
		source = c.DefaultWeightUnit
	}
	if source == "" {
		return value
	}
	converted, ok := source.Convert(value, c.CarrierWeightUnit)
	if !ok {
		return value
	}
	return converted
}
