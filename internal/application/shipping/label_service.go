package shipping

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/erp/carrier-mrw/internal/domain/carrier"
	"github.com/erp/carrier-mrw/internal/domain/shared"
	"github.com/erp/carrier-mrw/internal/domain/shipping"
)

// LabelService fetches printable MRW labels and materializes them as
// temporary PDF files for the caller to consume.
type LabelService struct {
	sessions  carrier.SessionOpener
	shipments shipping.ShipmentWriter
	store     shipping.LabelStore
	logger    *zap.Logger
}

// NewLabelService creates a new LabelService
func NewLabelService(sessions carrier.SessionOpener, shipments shipping.ShipmentWriter, store shipping.LabelStore, logger *zap.Logger) *LabelService {
	return &LabelService{
		sessions:  sessions,
		shipments: shipments,
		store:     store,
		logger:    logger.Named("mrw"),
	}
}

// PrintLabels fetches labels for the batch and returns the generated file
// paths. Shipments without a tracking reference and labels the carrier
// cannot produce are skipped with a log entry only; fetching labels for
// unsent shipments is a legitimate no-op.
//
// Every requested shipment is flagged printed afterwards, in one batch
// update. The flag records that printing was attempted, not that it
// succeeded for each shipment.
func (s *LabelService) PrintLabels(ctx context.Context, cfg *carrier.Config, shipments []*shipping.Shipment) ([]string, error) {
	session, err := s.sessions.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer s.closeSession(session)

	paths := make([]string, 0, len(shipments))
	for _, sh := range shipments {
		path, err := s.fetchAndStore(ctx, session, cfg, sh)
		if err != nil {
			return paths, err
		}
		if path != "" {
			paths = append(paths, path)
		}
	}

	ids := make([]uuid.UUID, len(shipments))
	for i, sh := range shipments {
		ids[i] = sh.ID
		sh.Printed = true
	}
	if err := s.shipments.MarkPrinted(ctx, ids); err != nil {
		return paths, err
	}

	return paths, nil
}

// PrintLabel fetches one label on demand. Unlike the batch variant it
// fails loudly: a user who asks for a single label needs to know why none
// came back.
func (s *LabelService) PrintLabel(ctx context.Context, cfg *carrier.Config, sh *shipping.Shipment) ([]byte, error) {
	if !sh.IsSent() {
		return nil, shared.NewDomainError("NO_TRACKING_REF", carrier.MsgNoTrackingReference(sh.Number))
	}

	session, err := s.sessions.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer s.closeSession(session)

	label, err := session.Label(ctx, carrier.Payload{carrier.FieldTracking: sh.TrackingRef})
	if err != nil {
		return nil, err
	}
	if len(label) == 0 {
		return nil, shared.NewDomainError("LABEL_NOT_AVAILABLE", carrier.MsgLabelNotAvailable(sh.Number))
	}
	return label, nil
}

// fetchAndStore retrieves and materializes the label for one shipment over
// an already-open session. An empty path with nil error means the shipment
// was skipped.
func (s *LabelService) fetchAndStore(ctx context.Context, session carrier.Session, cfg *carrier.Config, sh *shipping.Shipment) (string, error) {
	if !sh.IsSent() {
		s.logger.Warn("shipment has not been sent by MRW, skipping label",
			zap.String("shipment", sh.Number))
		return "", nil
	}

	label, err := session.Label(ctx, carrier.Payload{carrier.FieldTracking: sh.TrackingRef})
	if err != nil {
		return "", err
	}
	if len(label) == 0 {
		s.logger.Warn("label not available from MRW",
			zap.String("shipment", sh.Number),
			zap.String("tracking_ref", sh.TrackingRef))
		return "", nil
	}

	path, err := s.store.Store(ctx, cfg.TenantID, sh.TrackingRef, label)
	if err != nil {
		return "", err
	}
	s.logger.Info("generated label file",
		zap.String("shipment", sh.Number),
		zap.String("path", path))
	return path, nil
}

func (s *LabelService) closeSession(session carrier.Session) {
	if err := session.Close(); err != nil {
		s.logger.Warn("closing carrier session", zap.Error(err))
	}
}
