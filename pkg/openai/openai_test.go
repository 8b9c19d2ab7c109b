package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrdom-sdr/pkg/openai"
)

const completedResponse = `{
	"id": "resp_1",
	"object": "response",
	"created_at": 1700000000,
	"status": "completed",
	"model": "gpt-3.5-turbo",
	"output": [
		{
			"type": "message",
			"id": "msg_1",
			"status": "completed",
			"role": "assistant",
			"content": [
				{"type": "output_text", "text": "Vamos agendar sua demo!", "annotations": []}
			]
		}
	],
	"usage": {
		"input_tokens": 20,
		"output_tokens": 6,
		"total_tokens": 26,
		"input_tokens_details": {"cached_tokens": 0},
		"output_tokens_details": {"reasoning_tokens": 0}
	}
}`

func TestConfigValidate(t *testing.T) {
	cfg := openai.Config{}
	assert.Error(t, cfg.Validate())

	cfg = openai.Config{APIKey: "sk-test"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, openai.DefaultModel, cfg.Model)
	assert.Equal(t, openai.DefaultMaxTokens, cfg.MaxTokens)
}

func TestGenerateContent(t *testing.T) {
	var got map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completedResponse))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "sk-test", BaseURL: ts.URL, HTTPClient: ts.Client()})
	require.NoError(t, err)
	assert.Equal(t, openai.DefaultModel, client.Model())

	resp, err := client.GenerateContent(context.Background(), &openai.Request{
		Instructions: "Você é um SDR.",
		Input:        "Quero uma demo",
	})
	require.NoError(t, err)
	assert.Equal(t, "Vamos agendar sua demo!", resp.Text)
	assert.Equal(t, 26, resp.Usage.TotalTokens)

	assert.Equal(t, "Quero uma demo", got["input"])
	assert.Equal(t, "Você é um SDR.", got["instructions"])
	assert.Equal(t, openai.DefaultModel, got["model"])
}

func TestGenerateContent_Unauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "sk-wrong", BaseURL: ts.URL, HTTPClient: ts.Client()})
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), &openai.Request{Input: "oi"})
	assert.ErrorIs(t, err, openai.ErrUnauthorized)
}

func TestGenerateContent_EmptyInput(t *testing.T) {
	client, err := openai.New(openai.Config{APIKey: "sk-test"})
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), &openai.Request{})
	assert.Error(t, err)
}
