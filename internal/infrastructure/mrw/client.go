// Package mrw implements the carrier session port over MRW's SAGEC
// picking gateway.
package mrw

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/erp/carrier-mrw/internal/domain/carrier"
)

// Opener opens SAGEC sessions from a carrier config and implements
// carrier.SessionOpener.
type Opener struct {
	logger *zap.Logger
	// BaseURL overrides the SAGEC host; tests point it at a local server.
	BaseURL string
}

// NewOpener creates a new session Opener.
func NewOpener(logger *zap.Logger) *Opener {
	return &Opener{logger: logger.Named("mrw")}
}

// Open validates the config and returns a session bound to it. The
// session's HTTP client carries the config's timeout; all calls block
// until the carrier responds or the timeout expires.
func (o *Opener) Open(_ context.Context, cfg *carrier.Config) (carrier.Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL := o.BaseURL
	if baseURL == "" {
		if cfg.Sandbox {
			baseURL = SandboxBaseURL
		} else {
			baseURL = ProductionBaseURL
		}
	}

	return &PickingClient{
		cfg:     cfg,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: o.logger,
	}, nil
}

// PickingClient is one authenticated SAGEC conversation. It implements
// carrier.Session.
type PickingClient struct {
	cfg        *carrier.Config
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Create submits one pickup request. The carrier's reference and message
// are returned as-is; transport and decoding failures are returned as
// errors and abort the caller's batch.
func (c *PickingClient) Create(ctx context.Context, payload carrier.Payload) (carrier.CreateResult, error) {
	req := transmRequest{
		Credentials: c.credentials(),
		Data:        pickupDataFromPayload(payload),
	}

	var resp transmResponse
	if err := c.post(ctx, pathTransmEnvio, req, &resp); err != nil {
		return carrier.CreateResult{}, err
	}

	return carrier.CreateResult{
		Reference: resp.Reference,
		Message:   resp.Message,
	}, nil
}

// Label fetches the label PDF for the tracking reference in the payload.
// A nil slice with nil error means SAGEC has no label for that reference.
func (c *PickingClient) Label(ctx context.Context, payload carrier.Payload) ([]byte, error) {
	req := labelRequest{
		Credentials: c.credentials(),
		Reference:   payload[carrier.FieldTracking],
	}

	var resp labelResponse
	if err := c.post(ctx, pathGetEtiqueta, req, &resp); err != nil {
		return nil, err
	}
	if resp.File == "" {
		return nil, nil
	}

	pdf, err := base64.StdEncoding.DecodeString(resp.File)
	if err != nil {
		return nil, fmt.Errorf("mrw: decoding label content: %w", err)
	}
	return pdf, nil
}

// TestConnection submits a pickup request without shipment data. SAGEC
// rejects it but authenticates the credentials first, so the returned
// message tells valid and invalid accounts apart.
func (c *PickingClient) TestConnection(ctx context.Context) (string, error) {
	req := transmRequest{Credentials: c.credentials()}

	var resp transmResponse
	if err := c.post(ctx, pathTransmEnvio, req, &resp); err != nil {
		return "", err
	}
	if resp.Message == "" {
		return "Connection unknown result", nil
	}
	return resp.Message, nil
}

// Close releases the session's network resources.
func (c *PickingClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *PickingClient) credentials() credentials {
	return credentials{
		Username:   c.cfg.Username,
		Password:   c.cfg.Password,
		Franchise:  c.cfg.Franchise,
		Subscriber: c.cfg.Subscriber,
		Department: c.cfg.Department,
	}
}

// post marshals request into XML, submits it and decodes the response into
// result.
func (c *PickingClient) post(ctx context.Context, path string, request, result any) error {
	body, err := xml.Marshal(request)
	if err != nil {
		return fmt.Errorf("mrw: encoding request: %w", err)
	}

	if c.cfg.Debug {
		c.logger.Debug("SAGEC request",
			zap.String("path", path),
			zap.ByteString("body", body))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mrw: building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "text/xml; charset=utf-8")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("mrw: %s: %w", path, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("mrw: reading response: %w", err)
	}

	if c.cfg.Debug {
		c.logger.Debug("SAGEC response",
			zap.String("path", path),
			zap.Int("status", httpResp.StatusCode),
			zap.ByteString("body", respBody))
	}

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("mrw: %s returned HTTP %d", path, httpResp.StatusCode)
	}

	if err := xml.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("mrw: decoding response: %w", err)
	}
	return nil
}
