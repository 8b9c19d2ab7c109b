package chatwoot_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mrdom-sdr/pkg/chatwoot"
)

func TestClient_SendMessage(t *testing.T) {
	var gotPath, gotToken string
	var gotBody chatwoot.SendMessageRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("api_access_token")
		json.NewDecoder(r.Body).Decode(&gotBody)

		if gotBody.Content == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"boom"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id": 1}`))
	}))
	defer ts.Close()

	client := chatwoot.NewClient(ts.URL+"/", "tok", "42")
	client.SetHTTPClient(ts.Client())

	t.Run("Success", func(t *testing.T) {
		if err := client.SendMessage(context.Background(), "7", "Olá!"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/api/v1/accounts/42/conversations/7/messages" {
			t.Errorf("unexpected path %s", gotPath)
		}
		if gotToken != "tok" {
			t.Errorf("expected api_access_token header, got %q", gotToken)
		}
		if gotBody.MessageType != chatwoot.MessageTypeOutgoing || gotBody.Content != "Olá!" {
			t.Errorf("unexpected body %+v", gotBody)
		}
	})

	t.Run("API Error", func(t *testing.T) {
		if err := client.SendMessage(context.Background(), "7", "cause_500"); err == nil {
			t.Error("expected error on 500")
		}
	})

	t.Run("Missing Conversation", func(t *testing.T) {
		err := client.SendMessage(context.Background(), "", "Olá!")
		if !errors.Is(err, chatwoot.ErrMissingConversation) {
			t.Errorf("expected ErrMissingConversation, got %v", err)
		}
	})
}

func TestClient_NotConfigured(t *testing.T) {
	client := chatwoot.NewClient("https://app.chatwoot.com", "", "")
	if client.Enabled() {
		t.Error("expected client to be disabled")
	}
	err := client.SendMessage(context.Background(), "1", "x")
	if !errors.Is(err, chatwoot.ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
