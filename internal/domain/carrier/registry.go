package carrier

import (
	"context"
	"sync"
	"time"

	"github.com/erp/carrier-mrw/internal/domain/shipping"
	"github.com/google/uuid"
)

// Operations is the set of behaviors a carrier integration contributes to
// the host ERP: batch send, label printing, a connection test, and the
// manifest query.
type Operations interface {
	// Send submits a batch of shipments and returns the accumulated result.
	Send(ctx context.Context, cfg *Config, shipments []*shipping.Shipment, operator *uuid.UUID) (*shipping.SendResult, error)
	// PrintLabels fetches labels for a batch and returns the generated
	// file paths.
	PrintLabels(ctx context.Context, cfg *Config, shipments []*shipping.Shipment) ([]string, error)
	// PrintLabel fetches one label on demand and returns its raw bytes.
	PrintLabel(ctx context.Context, cfg *Config, shipment *shipping.Shipment) ([]byte, error)
	// TestConnection verifies the configured credentials.
	TestConnection(ctx context.Context, cfg *Config) (string, error)
	// Manifest queries the carrier's manifest for a date range.
	Manifest(ctx context.Context, cfg *Config, from, to time.Time) ([]byte, error)
}

// Registry maps carrier method codes to their Operations. The host ERP
// looks up the method stored on a carrier config and dispatches through
// the registry; this module registers MethodMRW.
type Registry struct {
	mu      sync.RWMutex
	methods map[string]Operations
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{methods: make(map[string]Operations)}
}

// Register adds the Operations for a carrier method code. An existing
// registration for the same code is replaced.
func (r *Registry) Register(code string, ops Operations) {
	if ops == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.methods[code] = ops
}

// Get returns the Operations for a method code.
func (r *Registry) Get(code string) (Operations, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ops, ok := r.methods[code]
	if !ok {
		return nil, ErrMethodNotRegistered
	}
	return ops, nil
}

// Codes returns all registered carrier method codes.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.methods))
	for code := range r.methods {
		codes = append(codes, code)
	}
	return codes
}
