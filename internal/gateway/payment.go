package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnreachable is returned when the gateway cannot be reached at all
// (connection refused, DNS failure, timeout). It is distinct from a
// business decline, which comes back as a regular PaymentResult.
var ErrUnreachable = errors.New("payment gateway unreachable")

// PaymentRequest is the wire format of POST /process_payment.
type PaymentRequest struct {
	Amount   float64 `json:"amount"`
	MethodID string  `json:"method_id"`
	OrderID  int64   `json:"order_id"`
}

// PaymentResult is the gateway's decision for one payment attempt.
type PaymentResult struct {
	TransactionID string `json:"transaction_id"`
	PaymentStatus string `json:"payment_status"`
	MethodID      string `json:"method_id"`
	OrderID       int64  `json:"order_id"`
}

// Approved reports whether the gateway authorised the payment.
func (r *PaymentResult) Approved() bool { return r.PaymentStatus == "approved" }

// PaymentClient talks to the external payment gateway.
type PaymentClient interface {
	ProcessPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
}

type paymentEnvelope struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    *PaymentResult `json:"data"`
}

// HTTPPaymentClient is a thin HTTP adapter over the gateway contract.
type HTTPPaymentClient struct {
	baseURL string
	client  *http.Client
}

func NewPaymentClient(baseURL string, timeout time.Duration) *HTTPPaymentClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPPaymentClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPPaymentClient) ProcessPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode payment request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/process_payment", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build payment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	var env paymentEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUnreachable, err)
	}

	if resp.StatusCode == http.StatusOK && env.Status == "success" && env.Data != nil {
		return env.Data, nil
	}
	// A failure envelope carrying data is a business decline; a bare
	// failure message still counts as declined, with no transaction.
	// Either way it can never authorise a payment, so an "approved"
	// status inside one is coerced to declined before it leaves the client.
	if env.Data != nil {
		if env.Data.Approved() || env.Data.PaymentStatus == "" {
			env.Data.PaymentStatus = "declined"
		}
		return env.Data, nil
	}
	return &PaymentResult{PaymentStatus: "declined", MethodID: req.MethodID, OrderID: req.OrderID}, nil
}
