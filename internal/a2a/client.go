package a2a

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Client talks to agents over HTTP.
type Client struct {
	hc *http.Client
}

func NewClient(hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{hc: hc}
}

// CardURL joins an agent base URL with the well-known card path.
func CardURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + WellKnownCardPath
}

// FetchCard downloads and validates the card served under baseURL.
func (c *Client) FetchCard(ctx context.Context, baseURL string) (AgentCard, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, CardURL(baseURL), nil)
	if err != nil {
		return AgentCard{}, fmt.Errorf("build discovery request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return AgentCard{}, fmt.Errorf("fetch agent card: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return AgentCard{}, fmt.Errorf("fetch agent card: unexpected status %d", resp.StatusCode)
	}
	var card AgentCard
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return AgentCard{}, fmt.Errorf("decode agent card: %w", err)
	}
	if err := card.Validate(); err != nil {
		return AgentCard{}, err
	}
	return card, nil
}

// SendMessage delivers msg to the agent described by card and returns the
// resulting task. JSON-RPC errors are returned as *RPCError.
func (c *Client) SendMessage(ctx context.Context, card AgentCard, msg Message) (Task, error) {
	var task Task
	if err := c.call(ctx, card.URL, MethodSendMessage, MessageSendParams{Message: msg}, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

func (c *Client) GetTask(ctx context.Context, card AgentCard, id string) (Task, error) {
	var task Task
	if err := c.call(ctx, card.URL, MethodGetTask, TaskIDParams{ID: id}, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

func (c *Client) call(ctx context.Context, url, method string, params, out any) error {
	rawParams, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encode %s params: %w", method, err)
	}
	body, err := json.Marshal(Request{JSONRPC: JSONRPCVersion, ID: uuid.NewString(), Method: method, Params: rawParams})
	if err != nil {
		return fmt.Errorf("encode %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: unexpected status %d: %s", method, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var rpcResp Response
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}
	if err := json.Unmarshal(rpcResp.Result, out); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}
