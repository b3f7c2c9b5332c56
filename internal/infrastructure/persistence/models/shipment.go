package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/erp/carrier-mrw/internal/domain/shipping"
)

// ShipmentModel is the persistence model for outbound shipments. Only the
// fields this module reads and writes are mapped; the host ERP owns the
// rest of the record.
type ShipmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Number       string `gorm:"type:varchar(50);not null;uniqueIndex:idx_shipment_tenant_number,priority:2"`
	OriginNumber string `gorm:"type:varchar(50)"`

	ContactName string `gorm:"type:varchar(200)"`
	Street      string `gorm:"type:varchar(200);not null"`
	Zip         string `gorm:"type:varchar(20);not null"`
	City        string `gorm:"type:varchar(100);not null"`

	CustomerName  string `gorm:"type:varchar(200);not null"`
	CustomerTaxID string `gorm:"type:varchar(30)"`
	Phone         string `gorm:"type:varchar(30)"`
	Mobile        string `gorm:"type:varchar(30)"`

	Packages   int              `gorm:"not null;default:0"`
	Weight     *decimal.Decimal `gorm:"type:decimal(18,4)"`
	WeightUnit string           `gorm:"type:varchar(10)"`

	CashOnDelivery bool            `gorm:"not null;default:false"`
	CODAmount      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`

	CarrierNotes string `gorm:"type:text"`
	ServiceCode  string `gorm:"type:varchar(20)"`

	TrackingRef  string     `gorm:"type:varchar(50);index"`
	ServiceSent  string     `gorm:"type:varchar(20)"`
	Delivered    bool       `gorm:"not null;default:false"`
	SendDate     *time.Time `gorm:"index"`
	SendOperator *uuid.UUID `gorm:"type:uuid"`
	Printed      bool       `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (ShipmentModel) TableName() string {
	return "shipments"
}

// ToDomain converts the persistence model to a domain Shipment.
func (m *ShipmentModel) ToDomain() *shipping.Shipment {
	sh := &shipping.Shipment{
		ID:           m.ID,
		TenantID:     m.TenantID,
		Number:       m.Number,
		OriginNumber: m.OriginNumber,
		DeliveryAddress: shipping.Address{
			ContactName: m.ContactName,
			Street:      m.Street,
			Zip:         m.Zip,
			City:        m.City,
		},
		CustomerName:   m.CustomerName,
		CustomerTaxID:  m.CustomerTaxID,
		Phone:          m.Phone,
		Mobile:         m.Mobile,
		Packages:       m.Packages,
		WeightUnit:     m.WeightUnit,
		CashOnDelivery: m.CashOnDelivery,
		CODAmount:      m.CODAmount,
		CarrierNotes:   m.CarrierNotes,
		ServiceCode:    m.ServiceCode,
		TrackingRef:    m.TrackingRef,
		ServiceSent:    m.ServiceSent,
		Delivered:      m.Delivered,
		SendDate:       m.SendDate,
		SendOperator:   m.SendOperator,
		Printed:        m.Printed,
	}
	// Weight presence is resolved here, at the model boundary; downstream
	// code checks the flag instead of probing for attributes.
	if m.Weight != nil {
		sh.Weight = *m.Weight
		sh.HasWeight = true
	}
	return sh
}

// FromDomain populates the persistence model from a domain Shipment.
func (m *ShipmentModel) FromDomain(sh *shipping.Shipment) {
	m.ID = sh.ID
	m.TenantID = sh.TenantID
	m.Number = sh.Number
	m.OriginNumber = sh.OriginNumber
	m.ContactName = sh.DeliveryAddress.ContactName
	m.Street = sh.DeliveryAddress.Street
	m.Zip = sh.DeliveryAddress.Zip
	m.City = sh.DeliveryAddress.City
	m.CustomerName = sh.CustomerName
	m.CustomerTaxID = sh.CustomerTaxID
	m.Phone = sh.Phone
	m.Mobile = sh.Mobile
	m.Packages = sh.Packages
	m.WeightUnit = sh.WeightUnit
	m.CashOnDelivery = sh.CashOnDelivery
	m.CODAmount = sh.CODAmount
	m.CarrierNotes = sh.CarrierNotes
	m.ServiceCode = sh.ServiceCode
	m.TrackingRef = sh.TrackingRef
	m.ServiceSent = sh.ServiceSent
	m.Delivered = sh.Delivered
	m.SendDate = sh.SendDate
	m.SendOperator = sh.SendOperator
	m.Printed = sh.Printed
	if sh.HasWeight {
		weight := sh.Weight
		m.Weight = &weight
	} else {
		m.Weight = nil
	}
}
