package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// Client speaks the storefront GraphQL API: a query document plus
// variables in, a typed JSON payload or an error list out.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	logger   *log.Logger
}

func NewClient(endpoint, token string, logger *log.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
	}
}

// GraphError is a well-formed response carrying a non-empty errors array.
// It is fatal for the whole call; the payload is never partially applied.
type GraphError struct {
	Messages []string
}

func (e *GraphError) Error() string {
	return "storefront graphql: " + strings.Join(e.Messages, "; ")
}

type graphRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *Client) query(ctx context.Context, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(graphRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("storefront request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("storefront api: %s", resp.Status)
	}

	var envelope graphResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		gerr := &GraphError{Messages: make([]string, 0, len(envelope.Errors))}
		for _, e := range envelope.Errors {
			gerr.Messages = append(gerr.Messages, e.Message)
		}
		if c.logger != nil {
			c.logger.Printf("graphql errors: %v", gerr.Messages)
		}
		return gerr
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return errors.New("storefront returned empty data")
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
