package carrier

import (
	"context"
	"errors"
)

// Errors for carrier sessions and operations
var (
	// ErrNoService is returned by the request builder when no service can
	// be resolved for a shipment.
	ErrNoService = errors.New("carrier: no service selected for shipment")
	// ErrNoCODPrice is returned when a shipment is flagged cash on delivery
	// but exposes no amount to collect.
	ErrNoCODPrice = errors.New("carrier: cash on delivery shipment has no price")
	// ErrManifestNotAvailable is returned by the manifest operation, which
	// MRW does not offer.
	ErrManifestNotAvailable = errors.New("carrier: MRW manifest service is not available")
	// ErrMethodNotRegistered is returned by the registry for unknown
	// carrier method codes.
	ErrMethodNotRegistered = errors.New("carrier: method not registered")
)

// CreateResult is the raw outcome of a picking create call. The carrier
// may return a reference, an error message, both, or neither; callers
// treat the reference as authoritative for success and keep any message
// as a warning.
type CreateResult struct {
	Reference string
	Message   string
}

// Session is one authenticated conversation with the carrier's picking
// API. A session is opened once per batch and must be closed on every
// exit path. Implementations block until the carrier responds or the
// configured timeout expires.
type Session interface {
	// Create submits one pickup request. A transport-level failure is
	// returned as err and aborts the batch; a carrier-level rejection comes
	// back inside CreateResult.
	Create(ctx context.Context, payload Payload) (CreateResult, error)
	// Label fetches the printable label for the tracking reference in the
	// payload. A nil slice with nil error means the carrier has no label
	// for that reference.
	Label(ctx context.Context, payload Payload) ([]byte, error)
	// TestConnection verifies the credentials and returns the carrier's
	// human-readable verdict.
	TestConnection(ctx context.Context) (string, error)
	Close() error
}

// SessionOpener opens carrier sessions from a config. Implemented by the
// MRW infrastructure client; faked in tests.
type SessionOpener interface {
	Open(ctx context.Context, cfg *Config) (Session, error)
}
