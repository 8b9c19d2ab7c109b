package chatwoot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client is the Chatwoot REST API client used to post agent replies.
type Client struct {
	baseURL     string
	accessToken string
	accountID   string
	httpClient  *http.Client
}

// NewClient creates a Chatwoot client for one account.
func NewClient(baseURL, accessToken, accountID string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		accountID:   accountID,
		httpClient:  &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
}

// SetHTTPClient overrides the HTTP client, mainly for tests.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// Enabled reports whether the client has what it needs to post messages.
func (c *Client) Enabled() bool {
	return c.accessToken != "" && c.accountID != ""
}

// SendMessage posts an outgoing text message to a conversation.
func (c *Client) SendMessage(ctx context.Context, conversationID, text string) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}
	if conversationID == "" {
		return ErrMissingConversation
	}

	url := fmt.Sprintf("%s/api/v1/accounts/%s/conversations/%s/messages", c.baseURL, c.accountID, conversationID)
	payload := SendMessageRequest{
		Content:     text,
		MessageType: MessageTypeOutgoing,
		Private:     false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("chatwoot: failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("chatwoot: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api_access_token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("chatwoot: failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("chatwoot: API error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}
