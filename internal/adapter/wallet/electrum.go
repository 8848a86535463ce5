// Package wallet implements the wallet RPC port against an Electrum
// JSON-RPC daemon.
package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"crypto-order-agent/internal/core/ports"
	"crypto-order-agent/pkg/apperror"
	"crypto-order-agent/pkg/retryhttp"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ElectrumClient speaks JSON-RPC 2.0 to an Electrum wallet daemon.
type ElectrumClient struct {
	http          retryhttp.Doer
	url           string
	user          string
	password      string
	requestAmount string
	log           zerolog.Logger
}

var _ ports.WalletClient = (*ElectrumClient)(nil)

// NewElectrumClient builds a wallet client for the daemon at url.
// requestAmount is the nominal BTC amount attached to every payment
// request; the real due amount is communicated to the payer separately.
func NewElectrumClient(httpClient retryhttp.Doer, url, user, password, requestAmount string, log zerolog.Logger) *ElectrumClient {
	return &ElectrumClient{
		http:          httpClient,
		url:           url,
		user:          user,
		password:      password,
		requestAmount: requestAmount,
		log:           log.With().Str("component", "electrum_client").Logger(),
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// CreateAddress allocates a fresh receive address via addrequest. The
// force flag makes the daemon hand out a new address even when unpaid
// requests already exist.
func (c *ElectrumClient) CreateAddress(ctx context.Context) (string, error) {
	params := map[string]any{
		"amount": c.requestAmount,
		"force":  true,
	}
	raw, err := c.call(ctx, "addrequest", params)
	if err != nil {
		return "", err
	}

	var result struct {
		Address string `json:"address"`
	}
	if err := json.Unmarshal(raw, &result); err != nil || result.Address == "" {
		return "", apperror.ErrMalformedWalletResponse("addrequest", fmt.Errorf("result %q: %w", raw, err))
	}
	return result.Address, nil
}

// RegisterNotify asks the daemon to hit callbackURL when address receives
// a deposit.
func (c *ElectrumClient) RegisterNotify(ctx context.Context, address, callbackURL string) error {
	_, err := c.call(ctx, "notify", []string{address, callbackURL})
	return err
}

// AddressBalance queries confirmed and unconfirmed funds on an address.
func (c *ElectrumClient) AddressBalance(ctx context.Context, address string) (ports.AddressBalance, error) {
	raw, err := c.call(ctx, "getaddressbalance", []string{address})
	if err != nil {
		return ports.AddressBalance{}, err
	}

	var result struct {
		Confirmed   decimal.Decimal `json:"confirmed"`
		Unconfirmed decimal.Decimal `json:"unconfirmed"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return ports.AddressBalance{}, apperror.ErrMalformedWalletResponse("getaddressbalance", fmt.Errorf("result %q: %w", raw, err))
	}
	return ports.AddressBalance{
		Confirmed:   result.Confirmed,
		Unconfirmed: result.Unconfirmed,
	}, nil
}

func (c *ElectrumClient) call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      "1",
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.user != "" {
		req.SetBasicAuth(c.user, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling wallet %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.ErrMalformedWalletResponse(method, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading wallet %s response: %w", method, err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(data, &rpcResp); err != nil {
		return nil, apperror.ErrMalformedWalletResponse(method, fmt.Errorf("decoding response: %w", err))
	}
	if rpcResp.Error != nil {
		return nil, apperror.ErrMalformedWalletResponse(method, fmt.Errorf("rpc error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message))
	}
	return rpcResp.Result, nil
}
