package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	err        error
	response   *Response
	callCount  int
	lastReq    *Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	m.lastReq = req
	if m.shouldFail {
		if m.err != nil {
			return nil, m.err
		}
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func textResponse(provider, text string) *Response {
	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: text}}},
		ProviderName: provider,
		ModelName:    provider + "-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

func TestManager_GenerateContent(t *testing.T) {
	tests := []struct {
		name            string
		primaryFails    bool
		secondaryFails  bool
		fallback        bool
		retryAttempts   int
		wantErr         error
		wantProvider    string
		wantPrimaryCall int
		wantSecondCall  int
		wantInfo        int
		wantWarn        int
	}{
		{
			name:            "primary succeeds",
			fallback:        true,
			retryAttempts:   3,
			wantProvider:    "bedrock",
			wantPrimaryCall: 1,
			wantInfo:        1,
		},
		{
			name:            "fallback to secondary",
			primaryFails:    true,
			fallback:        true,
			retryAttempts:   2,
			wantProvider:    "openai",
			wantPrimaryCall: 2,
			wantSecondCall:  1,
			wantInfo:        1,
			wantWarn:        1,
		},
		{
			name:            "all providers fail",
			primaryFails:    true,
			secondaryFails:  true,
			fallback:        true,
			retryAttempts:   2,
			wantErr:         ErrAllProvidersFailed,
			wantPrimaryCall: 2,
			wantSecondCall:  2,
			wantWarn:        2,
		},
		{
			name:            "no fallback when disabled",
			primaryFails:    true,
			retryAttempts:   2,
			wantErr:         ErrAllProvidersFailed,
			wantPrimaryCall: 2,
			wantWarn:        1,
		},
		{
			name:            "zero attempts means one call",
			primaryFails:    true,
			retryAttempts:   0,
			wantErr:         ErrAllProvidersFailed,
			wantPrimaryCall: 1,
			wantWarn:        1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &mockProvider{name: "bedrock", model: "nova", shouldFail: tt.primaryFails, response: textResponse("bedrock", "olá")}
			secondary := &mockProvider{name: "openai", model: "gpt", shouldFail: tt.secondaryFails, response: textResponse("openai", "oi")}
			logger := &mockLogger{}

			manager := NewManager([]Provider{primary, secondary}, &Config{
				FallbackEnabled: tt.fallback,
				RetryAttempts:   tt.retryAttempts,
				RetryDelay:      time.Millisecond,
			}, logger)

			resp, err := manager.GenerateContent(context.Background(), NewTextRequest("sys", "Hello"))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if resp != nil {
					t.Errorf("expected nil response, got %v", resp)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.ProviderName != tt.wantProvider {
					t.Errorf("expected provider %s, got %s", tt.wantProvider, resp.ProviderName)
				}
			}

			if primary.callCount != tt.wantPrimaryCall {
				t.Errorf("primary calls: want %d, got %d", tt.wantPrimaryCall, primary.callCount)
			}
			if secondary.callCount != tt.wantSecondCall {
				t.Errorf("secondary calls: want %d, got %d", tt.wantSecondCall, secondary.callCount)
			}
			if len(logger.infoMessages) != tt.wantInfo {
				t.Errorf("info logs: want %d, got %d", tt.wantInfo, len(logger.infoMessages))
			}
			if len(logger.warnMessages) != tt.wantWarn {
				t.Errorf("warn logs: want %d, got %d", tt.wantWarn, len(logger.warnMessages))
			}
		})
	}
}

func TestManager_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, nil, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), NewTextRequest("", "Hello"))
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
	if manager.Name() != "" || manager.Model() != "" {
		t.Error("empty manager should report empty name and model")
	}
}

func TestManager_NilUsage(t *testing.T) {
	p := &mockProvider{name: "bedrock", model: "nova", response: &Response{ProviderName: "bedrock"}}
	manager := NewManager([]Provider{p}, &Config{RetryAttempts: 1}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), NewTextRequest("", "Hello")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestManager_GlobalTimeout(t *testing.T) {
	p := &mockProvider{name: "bedrock", model: "nova", shouldFail: true}
	manager := NewManager([]Provider{p}, &Config{
		RetryAttempts:   5,
		RetryDelay:      time.Second,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, &mockLogger{})

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), NewTextRequest("", "Hello"))
	if err == nil {
		t.Fatal("expected error")
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Errorf("global timeout not honoured, took %v", time.Since(start))
	}
}

func TestNewTextRequest(t *testing.T) {
	req := NewTextRequest("system prompt", "user text")
	if req.SystemInstruction.Text() != "system prompt" {
		t.Errorf("unexpected system instruction %q", req.SystemInstruction.Text())
	}
	if len(req.Messages) != 1 || req.Messages[0].Text() != "user text" || req.Messages[0].Role != RoleUser {
		t.Errorf("unexpected messages %+v", req.Messages)
	}

	noSys := NewTextRequest("", "x")
	if noSys.SystemInstruction != nil {
		t.Error("empty system prompt should produce nil instruction")
	}
}
