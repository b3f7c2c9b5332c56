package shipping

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/erp/carrier-mrw/internal/domain/carrier"
	"github.com/erp/carrier-mrw/internal/domain/shared"
	"github.com/erp/carrier-mrw/internal/domain/shipping"
)

// MRWOperations bundles the carrier behaviors this module contributes to
// the host ERP and satisfies carrier.Operations for the method registry.
type MRWOperations struct {
	send     *SendService
	labels   *LabelService
	sessions carrier.SessionOpener
	logger   *zap.Logger
}

// NewMRWOperations creates the MRW operation set.
func NewMRWOperations(send *SendService, labels *LabelService, sessions carrier.SessionOpener, logger *zap.Logger) *MRWOperations {
	return &MRWOperations{
		send:     send,
		labels:   labels,
		sessions: sessions,
		logger:   logger.Named("mrw"),
	}
}

// Register binds the operations onto the registry under the MRW method
// code, the Go rendition of the host ERP's module registration hook.
func (o *MRWOperations) Register(reg *carrier.Registry) {
	reg.Register(carrier.MethodMRW, o)
}

// Send implements carrier.Operations
func (o *MRWOperations) Send(ctx context.Context, cfg *carrier.Config, shipments []*shipping.Shipment, operator *uuid.UUID) (*shipping.SendResult, error) {
	return o.send.Send(ctx, cfg, shipments, operator)
}

// PrintLabels implements carrier.Operations
func (o *MRWOperations) PrintLabels(ctx context.Context, cfg *carrier.Config, shipments []*shipping.Shipment) ([]string, error) {
	return o.labels.PrintLabels(ctx, cfg, shipments)
}

// PrintLabel implements carrier.Operations
func (o *MRWOperations) PrintLabel(ctx context.Context, cfg *carrier.Config, sh *shipping.Shipment) ([]byte, error) {
	return o.labels.PrintLabel(ctx, cfg, sh)
}

// TestConnection opens a session with the configured credentials and
// returns the carrier's verdict. Raises immediately on bad configuration.
func (o *MRWOperations) TestConnection(ctx context.Context, cfg *carrier.Config) (string, error) {
	session, err := o.sessions.Open(ctx, cfg)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := session.Close(); err != nil {
			o.logger.Warn("closing carrier session", zap.Error(err))
		}
	}()

	return session.TestConnection(ctx)
}

// Manifest always reports the service as unavailable: MRW offers no
// manifest endpoint.
func (o *MRWOperations) Manifest(ctx context.Context, cfg *carrier.Config, from, to time.Time) ([]byte, error) {
	return nil, shared.NewDomainError("MANIFEST_NOT_AVAILABLE", carrier.MsgNoManifest())
}
