package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/warrantyguard/claim-portal/internal/metrics"
	"github.com/warrantyguard/claim-portal/internal/model"
)

const (
	OpSubmitClaim      = "submit_claim"
	OpGetClaim         = "get_claim"
	OpAdvanceLogistics = "advance_logistics"
	OpAdvanceRepair    = "advance_repair"
	OpPing             = "ping"
)

// BackendClient talks to the claim backend. Every call is a single round
// trip: nothing is retried or cached.
type BackendClient struct {
	baseURL string
	client  *http.Client
}

func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &BackendClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type errorBody struct {
	Detail any `json:"detail"`
}

func (c *BackendClient) SubmitClaim(ctx context.Context, deviceID, issueText, customerID string) (*model.Claim, error) {
	var claim model.Claim
	err := c.do(ctx, OpSubmitClaim, http.MethodPost, "/request", model.NewClaim{
		CustomerID:       customerID,
		ProductIMEI:      deviceID,
		IssueDescription: issueText,
	}, &claim)
	if err != nil {
		return nil, err
	}
	if claim.ID.IsZero() {
		return nil, fmt.Errorf("%s: %w: missing id in response", OpSubmitClaim, ErrValidation)
	}
	return &claim, nil
}

func (c *BackendClient) GetClaim(ctx context.Context, id model.ClaimID) (*model.Claim, error) {
	var claim model.Claim
	path := "/request/" + url.PathEscape(id.String())
	if err := c.do(ctx, OpGetClaim, http.MethodGet, path, nil, &claim); err != nil {
		return nil, err
	}
	if claim.ID.IsZero() {
		return nil, fmt.Errorf("%s: %w: missing id in response", OpGetClaim, ErrValidation)
	}
	return &claim, nil
}

func (c *BackendClient) AdvanceLogistics(ctx context.Context, id model.ClaimID, status, agentID string) (*model.StageUpdate, error) {
	var ack model.StageUpdate
	err := c.do(ctx, OpAdvanceLogistics, http.MethodPost, "/delivery/update", model.LogisticsUpdate{
		RequestID: id,
		Status:    status,
		AgentID:   agentID,
	}, &ack)
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

func (c *BackendClient) AdvanceRepair(ctx context.Context, id model.ClaimID, status, technicianID, notes string) (*model.StageUpdate, error) {
	var ack model.StageUpdate
	err := c.do(ctx, OpAdvanceRepair, http.MethodPost, "/repair/update", model.RepairUpdate{
		RequestID:    id,
		Status:       status,
		TechnicianID: technicianID,
		Notes:        notes,
	}, &ack)
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

// Ping checks the backend root endpoint, which sits above the API prefix.
func (c *BackendClient) Ping(ctx context.Context) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("%s: invalid base url: %w", OpPing, err)
	}
	u.Path, u.RawQuery = "/", ""
	return c.send(ctx, OpPing, http.MethodGet, u.String(), nil, nil)
}

func (c *BackendClient) do(ctx context.Context, op, method, path string, in, out any) error {
	return c.send(ctx, op, method, c.baseURL+path, in, out)
}

func (c *BackendClient) send(ctx context.Context, op, method, target string, in, out any) (err error) {
	start := time.Now()
	defer func() {
		metrics.BackendRequestDuration.WithLabelValues(op, outcome(err)).Observe(time.Since(start).Seconds())
	}()

	var body io.Reader
	if in != nil {
		reqBody, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(reqBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w: read body: %w", op, ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Op:     op,
			Code:   resp.StatusCode,
			Detail: detail(respBody),
			Body:   string(respBody),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%s: %w: failed to decode json: %v body=%q", op, ErrValidation, err, string(respBody))
	}
	return nil
}

func detail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || eb.Detail == nil {
		return ""
	}
	if s, ok := eb.Detail.(string); ok {
		return s
	}
	b, err := json.Marshal(eb.Detail)
	if err != nil {
		return ""
	}
	return string(b)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrAction):
		return "rejected"
	default:
		return "error"
	}
}
