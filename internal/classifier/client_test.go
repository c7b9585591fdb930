package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClassifySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s, want application/json", ct)
		}

		var req classifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Text != "some text" {
			t.Errorf("text = %q", req.Text)
		}
		if len(req.Labels) != 2 {
			t.Errorf("labels = %v, want 2 entries", req.Labels)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"topics":[{"topic":"technology","confidence_score":0.87},{"topic":"science","confidence_score":0.42}]}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second)
	topics, err := client.Classify(context.Background(), "some text", []string{"technology", "science"})
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(topics))
	}
	if topics[0].Topic != "technology" || topics[0].ConfidenceScore != 0.87 {
		t.Errorf("first topic = %+v", topics[0])
	}
}

func TestClassifyMissingTopicsField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second)
	topics, err := client.Classify(context.Background(), "text", nil)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if topics == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(topics) != 0 {
		t.Errorf("expected 0 topics, got %d", len(topics))
	}
}

func TestClassifyErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		wantStatus int
	}{
		{
			name:       "server message surfaced verbatim",
			status:     http.StatusServiceUnavailable,
			body:       `{"message":"model is warming up"}`,
			wantMsg:    "model is warming up",
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "no message falls back",
			status:     http.StatusInternalServerError,
			body:       `{"detail":"oops"}`,
			wantMsg:    FallbackMessage,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "non-json error body falls back",
			status:     http.StatusBadGateway,
			body:       "upstream exploded",
			wantMsg:    FallbackMessage,
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewHTTPClient(srv.URL, 5*time.Second)
			_, err := client.Classify(context.Background(), "text", nil)
			if err == nil {
				t.Fatal("expected error")
			}

			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("error type = %T, want *RequestError", err)
			}
			if reqErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", reqErr.Message, tt.wantMsg)
			}
			if reqErr.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", reqErr.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestClassifyMalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"topics": "not an array"`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second)
	_, err := client.Classify(context.Background(), "text", nil)

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error type = %T, want *RequestError", err)
	}
	if reqErr.Message != FallbackMessage {
		t.Errorf("message = %q, want fallback", reqErr.Message)
	}
}

func TestClassifyTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately closed so the call fails to connect

	client := NewHTTPClient(srv.URL, 1*time.Second)
	_, err := client.Classify(context.Background(), "text", nil)

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error type = %T, want *RequestError", err)
	}
	if reqErr.StatusCode != 0 {
		t.Errorf("status = %d, want 0 for transport failure", reqErr.StatusCode)
	}
	if reqErr.Message != FallbackMessage {
		t.Errorf("message = %q, want fallback", reqErr.Message)
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Even an error status means the endpoint is reachable
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second)
	if err := client.Ping(context.Background()); err != nil {
		t.Errorf("Ping returned error: %v", err)
	}

	srv.Close()
	if err := client.Ping(context.Background()); err == nil {
		t.Error("Ping should fail against a closed server")
	}
}
