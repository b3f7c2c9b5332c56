package shipping

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TrackingUpdate carries the fields written back onto a shipment after the
// carrier accepted it. The write is a single record update; partial writes
// of these fields are not allowed.
type TrackingUpdate struct {
	TrackingRef string
	Service     string
	Delivered   bool
	SendDate    time.Time
	Operator    *uuid.UUID
}

// ShipmentWriter is the write-back port onto the host ERP's shipment
// records. Implementations own the transaction boundary: MarkSent is one
// transactional record update, MarkPrinted one batch update.
type ShipmentWriter interface {
	MarkSent(ctx context.Context, shipmentID uuid.UUID, update TrackingUpdate) error
	MarkPrinted(ctx context.Context, shipmentIDs []uuid.UUID) error
}

// ShipmentRepository extends the writer with the lookups the carrier
// operations need.
type ShipmentRepository interface {
	ShipmentWriter
	FindByIDForTenant(ctx context.Context, tenantID, shipmentID uuid.UUID) (*Shipment, error)
	FindByNumber(ctx context.Context, tenantID uuid.UUID, number string) (*Shipment, error)
}

// LabelStore materializes label PDFs for the caller to consume. The store
// does not clean up what it writes; ownership passes to the caller with the
// returned path.
type LabelStore interface {
	Store(ctx context.Context, tenantID uuid.UUID, trackingRef string, pdf []byte) (string, error)
}
