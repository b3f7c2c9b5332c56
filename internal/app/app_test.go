package app

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/carrier-mrw/internal/domain/carrier"
	"github.com/erp/carrier-mrw/internal/domain/shipping"
	"github.com/erp/carrier-mrw/internal/infrastructure/config"
	"github.com/erp/carrier-mrw/internal/infrastructure/persistence/models"
)

func testAppConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		App: config.AppConfig{Name: "carrier-mrw", Env: "test"},
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			Path:         filepath.Join(dir, "erp.db"),
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
		Log: config.LogConfig{Level: "error", Format: "console", Output: "stderr"},
		MRW: config.MRWConfig{BaseURL: baseURL, LabelDir: dir},
	}
}

func testCarrierConfig(tenantID uuid.UUID) *carrier.Config {
	return &carrier.Config{
		TenantID:       tenantID,
		Username:       "user",
		Password:       "secret",
		Franchise:      "01234",
		Subscriber:     "567890",
		Department:     "1",
		TimeoutSeconds: 5,
		ServiceCode:    "0300",
	}
}

func newSagecStub(t *testing.T) *httptest.Server {
	t.Helper()
	pdf := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 label"))
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/MRWEnvio.asmx/TransmEnvio":
			fmt.Fprint(w, `<TransmEnvioResponse><Estado>1</Estado><NumeroEnvio>MRW123456</NumeroEnvio></TransmEnvioResponse>`)
		case "/MRWEnvio.asmx/GetEtiquetaEnvio":
			fmt.Fprintf(w, `<GetEtiquetaEnvioResponse><Estado>1</Estado><EtiquetaFile>%s</EtiquetaFile></GetEtiquetaEnvioResponse>`, pdf)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func seedShipment(t *testing.T, a *App, tenantID uuid.UUID) *shipping.Shipment {
	t.Helper()
	sh := &shipping.Shipment{
		ID:       uuid.New(),
		TenantID: tenantID,
		Number:   "OUT-0001",
		DeliveryAddress: shipping.Address{
			ContactName: "Ana García",
			Street:      "Calle Mayor 1",
			Zip:         "28001",
			City:        "Madrid",
		},
		CustomerName: "Ana García",
		Phone:        "600123456",
		Packages:     1,
	}

	var model models.ShipmentModel
	model.FromDomain(sh)
	require.NoError(t, a.DB().DB.Create(&model).Error)
	return sh
}

func TestAppSendShipmentEndToEnd(t *testing.T) {
	server := newSagecStub(t)
	defer server.Close()

	a, err := NewWithConfig(testAppConfig(t, server.URL))
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.DB().DB.AutoMigrate(&models.ShipmentModel{}))

	tenantID := uuid.New()
	sh := seedShipment(t, a, tenantID)

	ops, err := a.Registry().Get(carrier.MethodMRW)
	require.NoError(t, err)

	operator := uuid.New()
	result, err := ops.Send(context.Background(), testCarrierConfig(tenantID), []*shipping.Shipment{sh}, &operator)
	require.NoError(t, err)

	assert.Equal(t, []string{"OUT-0001"}, result.Sent)
	assert.Empty(t, result.Errors)

	// Tracking data landed in the database.
	stored, err := a.Shipments().FindByNumber(context.Background(), tenantID, "OUT-0001")
	require.NoError(t, err)
	assert.Equal(t, "MRW123456", stored.TrackingRef)
	assert.Equal(t, "0300", stored.ServiceSent)
	require.NotNil(t, stored.SendDate)
	require.NotNil(t, stored.SendOperator)
	assert.Equal(t, operator, *stored.SendOperator)
	assert.False(t, stored.Printed)

	// The label was materialized next to the configured directory.
	require.Len(t, result.LabelPaths, 1)
	assert.True(t, strings.HasPrefix(filepath.Base(result.LabelPaths[0]), tenantID.String()+"-mrw-MRW123456-"))
	content, err := os.ReadFile(result.LabelPaths[0])
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 label", string(content))
}

func TestAppPrintLabelsMarksPrinted(t *testing.T) {
	server := newSagecStub(t)
	defer server.Close()

	a, err := NewWithConfig(testAppConfig(t, server.URL))
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.DB().DB.AutoMigrate(&models.ShipmentModel{}))

	tenantID := uuid.New()
	sh := seedShipment(t, a, tenantID)

	ops, err := a.Registry().Get(carrier.MethodMRW)
	require.NoError(t, err)

	operator := uuid.New()
	_, err = ops.Send(context.Background(), testCarrierConfig(tenantID), []*shipping.Shipment{sh}, &operator)
	require.NoError(t, err)

	paths, err := ops.PrintLabels(context.Background(), testCarrierConfig(tenantID), []*shipping.Shipment{sh})
	require.NoError(t, err)
	require.Len(t, paths, 1)

	stored, err := a.Shipments().FindByNumber(context.Background(), tenantID, "OUT-0001")
	require.NoError(t, err)
	assert.True(t, stored.Printed)
}

func TestAppTestConnection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<TransmEnvioResponse><Estado>0</Estado><Mensaje>Usuario autenticado</Mensaje></TransmEnvioResponse>`)
	}))
	defer server.Close()

	a, err := NewWithConfig(testAppConfig(t, server.URL))
	require.NoError(t, err)
	defer a.Close()

	ops, err := a.Registry().Get(carrier.MethodMRW)
	require.NoError(t, err)

	msg, err := ops.TestConnection(context.Background(), testCarrierConfig(uuid.New()))
	require.NoError(t, err)
	assert.Equal(t, "Usuario autenticado", msg)
}

func TestAppRegistryUnknownMethod(t *testing.T) {
	server := newSagecStub(t)
	defer server.Close()

	a, err := NewWithConfig(testAppConfig(t, server.URL))
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Registry().Get("seur")
	assert.ErrorIs(t, err, carrier.ErrMethodNotRegistered)
}
