package shipping

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestShipment_ContactName(t *testing.T) {
	t.Run("prefers delivery address contact", func(t *testing.T) {
		s := &Shipment{
			CustomerName:    "Acme SL",
			DeliveryAddress: Address{ContactName: "Reception Desk"},
		}
		assert.Equal(t, "Reception Desk", s.ContactName())
	})

	t.Run("falls back to customer name", func(t *testing.T) {
		s := &Shipment{CustomerName: "Acme SL"}
		assert.Equal(t, "Acme SL", s.ContactName())
	})
}

func TestShipment_PhoneNumber(t *testing.T) {
	t.Run("prefers fixed line", func(t *testing.T) {
		s := &Shipment{Phone: "911234567", Mobile: "611234567"}
		assert.Equal(t, "911234567", s.PhoneNumber())
	})

	t.Run("falls back to mobile", func(t *testing.T) {
		s := &Shipment{Mobile: "611234567"}
		assert.Equal(t, "611234567", s.PhoneNumber())
	})

	t.Run("empty when neither is set", func(t *testing.T) {
		s := &Shipment{}
		assert.Empty(t, s.PhoneNumber())
	})
}

func TestShipment_ReferenceCode(t *testing.T) {
	s := &Shipment{Number: "OUT-0042", OriginNumber: "SO-0017"}

	assert.Equal(t, "OUT-0042", s.ReferenceCode(false))
	assert.Equal(t, "SO-0017", s.ReferenceCode(true))

	t.Run("origin flag without origin uses number", func(t *testing.T) {
		s := &Shipment{Number: "OUT-0042"}
		assert.Equal(t, "OUT-0042", s.ReferenceCode(true))
	})
}

func TestShipment_MarkSent(t *testing.T) {
	operator := uuid.New()
	sentAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	s := &Shipment{Number: "OUT-0042"}
	assert.False(t, s.IsSent())

	s.MarkSent("MRW123456", "0300", sentAt, &operator)

	assert.True(t, s.IsSent())
	assert.Equal(t, "MRW123456", s.TrackingRef)
	assert.Equal(t, "0300", s.ServiceSent)
	assert.True(t, s.Delivered)
	assert.Equal(t, sentAt, *s.SendDate)
	assert.Equal(t, operator, *s.SendOperator)
}
