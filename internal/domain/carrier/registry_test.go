package carrier

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/carrier-mrw/internal/domain/shipping"
)

type stubOperations struct{}

func (stubOperations) Send(context.Context, *Config, []*shipping.Shipment, *uuid.UUID) (*shipping.SendResult, error) {
	return shipping.NewSendResult(), nil
}

func (stubOperations) PrintLabels(context.Context, *Config, []*shipping.Shipment) ([]string, error) {
	return nil, nil
}

func (stubOperations) PrintLabel(context.Context, *Config, *shipping.Shipment) ([]byte, error) {
	return nil, nil
}

func (stubOperations) TestConnection(context.Context, *Config) (string, error) {
	return "", nil
}

func (stubOperations) Manifest(context.Context, *Config, time.Time, time.Time) ([]byte, error) {
	return nil, ErrManifestNotAvailable
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	t.Run("unknown method", func(t *testing.T) {
		_, err := reg.Get(MethodMRW)
		assert.ErrorIs(t, err, ErrMethodNotRegistered)
	})

	t.Run("register and dispatch", func(t *testing.T) {
		reg.Register(MethodMRW, stubOperations{})

		ops, err := reg.Get(MethodMRW)
		require.NoError(t, err)
		assert.NotNil(t, ops)
		assert.Equal(t, []string{MethodMRW}, reg.Codes())
	})

	t.Run("nil operations ignored", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register(MethodMRW, nil)
		_, err := reg.Get(MethodMRW)
		assert.ErrorIs(t, err, ErrMethodNotRegistered)
	})
}
