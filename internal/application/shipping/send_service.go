package shipping

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/erp/carrier-mrw/internal/domain/carrier"
	"github.com/erp/carrier-mrw/internal/domain/shared"
	"github.com/erp/carrier-mrw/internal/domain/shipping"
)

// SendService submits outbound shipments to MRW. One carrier session is
// opened per batch and shipments are processed sequentially; a carrier
// rejection is recorded per shipment and the batch continues, while a
// transport failure aborts the remainder of the batch.
type SendService struct {
	sessions  carrier.SessionOpener
	shipments shipping.ShipmentWriter
	labels    *LabelService
	logger    *zap.Logger
	now       func() time.Time
}

// NewSendService creates a new SendService
func NewSendService(sessions carrier.SessionOpener, shipments shipping.ShipmentWriter, labels *LabelService, logger *zap.Logger) *SendService {
	return &SendService{
		sessions:  sessions,
		shipments: shipments,
		labels:    labels,
		logger:    logger.Named("mrw"),
		now:       time.Now,
	}
}

// SetClock overrides the time source, used by tests for deterministic
// payload dates.
func (s *SendService) SetClock(now func() time.Time) {
	s.now = now
}

// Send submits the shipments to MRW and returns the accumulated result:
// accepted shipment numbers, generated label paths and display-ready error
// strings, all in processing order.
//
// A shipment without any usable phone number aborts the whole batch before
// a carrier session is opened; contact data that is structurally missing
// must not lead to a partially submitted batch.
func (s *SendService) Send(ctx context.Context, cfg *carrier.Config, shipments []*shipping.Shipment, operator *uuid.UUID) (*shipping.SendResult, error) {
	for _, sh := range shipments {
		if sh.PhoneNumber() == "" {
			return nil, shared.NewDomainError("MISSING_PHONE", carrier.MsgMissingPhone(sh.Number))
		}
	}

	session, err := s.sessions.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer s.closeSession(session)

	// Resolved once per batch, not per shipment.
	defaultService := cfg.DefaultService()

	result := shipping.NewSendResult()
	for _, sh := range shipments {
		service := cfg.ServiceFor(sh.ServiceCode, defaultService)

		payload, err := carrier.BuildPickupRequest(cfg, sh, service, s.now())
		switch {
		case errors.Is(err, carrier.ErrNoService):
			result.Errors = append(result.Errors, carrier.MsgSelectService())
			continue
		case errors.Is(err, carrier.ErrNoCODPrice):
			result.Errors = append(result.Errors, carrier.MsgNoCODPrice(sh.Number))
			continue
		case err != nil:
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		created, err := session.Create(ctx, payload)
		if err != nil {
			// Transport failure, e.g. a timeout. Already-written updates
			// stand; the remainder of the batch is abandoned.
			return result, err
		}

		if created.Reference != "" {
			update := shipping.TrackingUpdate{
				TrackingRef: created.Reference,
				Service:     service.String(),
				Delivered:   true,
				SendDate:    s.now(),
				Operator:    operator,
			}
			if err := s.shipments.MarkSent(ctx, sh.ID, update); err != nil {
				return result, err
			}
			sh.MarkSent(created.Reference, service.String(), update.SendDate, operator)
			result.Sent = append(result.Sent, sh.Number)
			s.logger.Info("shipment sent",
				zap.String("shipment", sh.Number),
				zap.String("tracking_ref", created.Reference))
		} else {
			s.logger.Error("shipment not sent", zap.String("shipment", sh.Number))
		}

		if created.Message != "" {
			// The reference stays authoritative for the sent status; the
			// carrier's text is preserved instead of silently dropped.
			message := carrier.MsgNotSentError(sh.Number, created.Message)
			if created.Reference != "" {
				s.logger.Warn("carrier message on accepted shipment",
					zap.String("shipment", sh.Number),
					zap.String("carrier_message", created.Message))
			} else {
				s.logger.Error("carrier rejected shipment",
					zap.String("shipment", sh.Number),
					zap.String("carrier_message", created.Message))
			}
			result.Errors = append(result.Errors, message)
		}

		path, err := s.labels.fetchAndStore(ctx, session, cfg, sh)
		if err != nil {
			return result, err
		}
		if path != "" {
			result.LabelPaths = append(result.LabelPaths, path)
		}
	}

	return result, nil
}

func (s *SendService) closeSession(session carrier.Session) {
	if err := session.Close(); err != nil {
		s.logger.Warn("closing carrier session", zap.Error(err))
	}
}
