package shipping

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/erp/carrier-mrw/internal/domain/carrier"
	"github.com/erp/carrier-mrw/internal/domain/shipping"
)

// fakeSession scripts carrier responses keyed by the payload reference or
// tracking number.
type fakeSession struct {
	createResults map[string]carrier.CreateResult
	createErr     map[string]error
	labels        map[string][]byte
	labelErr      error
	testMessage   string
	testErr       error

	createCalls []carrier.Payload
	labelCalls  []carrier.Payload
	closed      bool
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		createResults: make(map[string]carrier.CreateResult),
		createErr:     make(map[string]error),
		labels:        make(map[string][]byte),
	}
}

func (f *fakeSession) Create(_ context.Context, payload carrier.Payload) (carrier.CreateResult, error) {
	f.createCalls = append(f.createCalls, payload)
	ref := payload[carrier.FieldReference]
	if err := f.createErr[ref]; err != nil {
		return carrier.CreateResult{}, err
	}
	return f.createResults[ref], nil
}

func (f *fakeSession) Label(_ context.Context, payload carrier.Payload) ([]byte, error) {
	f.labelCalls = append(f.labelCalls, payload)
	if f.labelErr != nil {
		return nil, f.labelErr
	}
	return f.labels[payload[carrier.FieldTracking]], nil
}

func (f *fakeSession) TestConnection(context.Context) (string, error) {
	return f.testMessage, f.testErr
}

func (f *fakeSession) Close() error {
	f.closed = true
	return nil
}

type fakeOpener struct {
	session *fakeSession
	err     error
	opened  int
}

func (f *fakeOpener) Open(_ context.Context, _ *carrier.Config) (carrier.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.opened++
	return f.session, nil
}

// fakeWriter records write-backs without a database.
type fakeWriter struct {
	sent       map[uuid.UUID]shipping.TrackingUpdate
	printed    [][]uuid.UUID
	sentErr    error
	printedErr error
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{sent: make(map[uuid.UUID]shipping.TrackingUpdate)}
}

func (f *fakeWriter) MarkSent(_ context.Context, id uuid.UUID, update shipping.TrackingUpdate) error {
	if f.sentErr != nil {
		return f.sentErr
	}
	f.sent[id] = update
	return nil
}

func (f *fakeWriter) MarkPrinted(_ context.Context, ids []uuid.UUID) error {
	if f.printedErr != nil {
		return f.printedErr
	}
	f.printed = append(f.printed, ids)
	return nil
}

// fakeStore materializes labels into predictable fake paths.
type fakeStore struct {
	paths []string
	err   error
}

func (f *fakeStore) Store(_ context.Context, tenantID uuid.UUID, trackingRef string, _ []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	path := fmt.Sprintf("/tmp/%s-mrw-%s-1.pdf", tenantID, trackingRef)
	f.paths = append(f.paths, path)
	return path, nil
}
