package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ShipmentRequest is the wire format of POST /initiate_shipment.
type ShipmentRequest struct {
	OrderID         int64  `json:"order_id"`
	ShipmentService string `json:"shipment_service"`
}

// ShipmentResult is the carrier's answer to an initiation request.
type ShipmentResult struct {
	Status     string `json:"status"`
	TrackingNo string `json:"tracking_no"`
}

// ShipmentRecord is the tracked state of an existing shipment.
type ShipmentRecord struct {
	TrackingNo      string `json:"tracking_no"`
	OrderID         int64  `json:"order_id"`
	ShipmentService string `json:"shipment_service"`
	Status          string `json:"status"`
}

// ShipmentClient talks to the external shipment service.
type ShipmentClient interface {
	InitiateShipment(ctx context.Context, req ShipmentRequest) (*ShipmentResult, error)
	TrackShipment(ctx context.Context, trackingNo string) (*ShipmentRecord, error)
}

// HTTPShipmentClient is a thin HTTP adapter over the shipment contract.
type HTTPShipmentClient struct {
	baseURL string
	client  *http.Client
}

func NewShipmentClient(baseURL string, timeout time.Duration) *HTTPShipmentClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPShipmentClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type shipmentEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *HTTPShipmentClient) InitiateShipment(ctx context.Context, req ShipmentRequest) (*ShipmentResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode shipment request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/initiate_shipment", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build shipment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	var env shipmentEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUnreachable, err)
	}
	if resp.StatusCode != http.StatusOK || env.Status != "success" {
		return nil, fmt.Errorf("initiate shipment rejected: %s", env.Message)
	}
	var result ShipmentResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, fmt.Errorf("decode shipment result: %w", err)
	}
	return &result, nil
}

func (c *HTTPShipmentClient) TrackShipment(ctx context.Context, trackingNo string) (*ShipmentRecord, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/track_shipment/"+url.PathEscape(trackingNo), nil)
	if err != nil {
		return nil, fmt.Errorf("build tracking request: %w", err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	var env shipmentEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUnreachable, err)
	}
	if resp.StatusCode != http.StatusOK || env.Status != "success" {
		return nil, fmt.Errorf("track shipment failed: %s", env.Message)
	}
	var record ShipmentRecord
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return nil, fmt.Errorf("decode shipment record: %w", err)
	}
	return &record, nil
}
