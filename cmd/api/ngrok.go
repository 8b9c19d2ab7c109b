package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mrdom-sdr/internal/webhook"
	"mrdom-sdr/pkg/log"
)

const (
	ngrokAttempts = 10
	ngrokInterval = 3 * time.Second
)

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// announcePublicWebhooks logs the public Chatwoot and N8N webhook URLs once an
// ngrok tunnel is up, so they can be pasted into the integrations.
func announcePublicWebhooks(ctx context.Context, l log.Logger, ngrokAPIBase string) {
	publicURL, err := detectNgrokURL(ctx, ngrokAPIBase)
	if err != nil {
		l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		return
	}

	l.Infof(ctx, "Chatwoot webhook: %s%s", publicURL, webhook.ChatwootWebhookURL)
	l.Infof(ctx, "N8N webhook: %s%s", publicURL, webhook.N8NWebhookURL)
}

// detectNgrokURL polls the ngrok local API and returns the first HTTPS tunnel URL.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	url := strings.TrimRight(ngrokAPIBase, "/") + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		publicURL, err := fetchTunnelURL(ctx, client, url)
		if err == nil {
			return publicURL, nil
		}
		lastErr = err

		if attempt < ngrokAttempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(ngrokInterval):
			}
		}
	}

	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", ngrokAttempts, lastErr)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}

	return "", fmt.Errorf("no active tunnels")
}
