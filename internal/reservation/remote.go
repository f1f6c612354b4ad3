package reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/rehaevents/ticketing/internal/model"
)

// rpcPath is the PostgREST remote-procedure endpoint that applies the
// server-side wave and availability logic and inserts the booking.
const rpcPath = "/rest/v1/rpc/reserve_ticket"

// notOnSaleMessage is the exact error message the remote procedure
// raises when no wave is open.  It is matched case-insensitively
// because the hosted function has changed casing before.
const notOnSaleMessage = "tickets not on sale"

// RemoteClient calls the hosted reservation procedure.  The server is
// the source of truth: it assigns ticket id, wave and price.  Every
// call carries an explicit timeout; there is no automatic retry, the
// booking form resubmission is the retry path.
type RemoteClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewRemoteClient builds a client for the given endpoint.  timeout
// bounds the whole reservation call including connection setup.
func NewRemoteClient(baseURL, apiKey string, timeout time.Duration) *RemoteClient {
	return &RemoteClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// rpcParams mirrors the procedure's named parameters.
type rpcParams struct {
	FullName string `json:"p_full_name"`
	Email    string `json:"p_email"`
	Phone    string `json:"p_phone"`
	Tickets  int    `json:"p_tickets"`
}

// rpcError is the PostgREST error envelope.
type rpcError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Reserve posts the booking to the remote procedure and normalizes the
// response.  PostgREST returns either a single object or a one-element
// array depending on how the function is declared; both shapes are
// accepted here so downstream code never sees the difference.
func (c *RemoteClient) Reserve(ctx context.Context, in model.BookingInput) (*Result, error) {
	body, err := json.Marshal(rpcParams{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Tickets:  in.Tickets,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal reservation params: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+rpcPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build reservation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reservation call: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read reservation response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var rpcErr rpcError
		if err := json.Unmarshal(raw, &rpcErr); err == nil && rpcErr.Message != "" {
			if strings.EqualFold(strings.TrimSpace(rpcErr.Message), notOnSaleMessage) {
				return nil, ErrNotOnSale
			}
			return nil, fmt.Errorf("reservation rejected: %s", rpcErr.Message)
		}
		return nil, fmt.Errorf("reservation call returned status %d", resp.StatusCode)
	}

	res, err := decodeResult(raw)
	if err != nil {
		return nil, err
	}
	if res.TicketID == "" {
		return nil, fmt.Errorf("reservation response missing ticket id")
	}
	log.Printf("reservation: remote confirmed ticket_id=%s wave=%s", res.TicketID, res.WaveID)
	return res, nil
}

// decodeResult accepts both the object and one-element-array response
// shapes and produces a single Result.
func decodeResult(raw []byte) (*Result, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("empty reservation response")
	}
	if trimmed[0] == '[' {
		var list []Result
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode reservation array: %w", err)
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("empty reservation response")
		}
		return &list[0], nil
	}
	var one Result
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return nil, fmt.Errorf("decode reservation object: %w", err)
	}
	return &one, nil
}
