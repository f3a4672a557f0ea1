package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// rpcClient posts JSON-RPC 2.0 requests to a wallet daemon endpoint.
type rpcClient struct {
	url string
	hc  *http.Client
}

func newRPCClient(url string) *rpcClient {
	return &rpcClient{url: url, hc: &http.Client{Timeout: 30 * time.Second}}
}

func (c *rpcClient) call(ctx context.Context, method string, params, out any) error {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: "0", Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("encode rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	var envelope rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode rpc response: %w", err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("wallet rpc %s: %s (code %d)", method, envelope.Error.Message, envelope.Error.Code)
	}
	if envelope.Result == nil {
		return fmt.Errorf("wallet rpc %s: empty result", method)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("decode rpc result: %w", err)
	}
	return nil
}

// atomicAmount converts an exact decimal into the uint64 atomic-unit value
// wallet daemons expect. Fractional, negative or overflowing amounts are
// rejected before they can reach a daemon.
func atomicAmount(d decimal.Decimal) (uint64, error) {
	if d.IsNegative() {
		return 0, fmt.Errorf("negative amount %s", d)
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("amount %s is not a whole number of atomic units", d)
	}
	if d.Cmp(decimal.NewFromUint64(math.MaxUint64)) > 0 {
		return 0, fmt.Errorf("amount %s overflows atomic units", d)
	}
	return d.BigInt().Uint64(), nil
}
