package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/msull/emilytarot/internal/adapters/llm/openai"
	"github.com/msull/emilytarot/internal/domain"
	"github.com/msull/emilytarot/internal/ports"
)

func testMessages() []ports.ChatMessage {
	return []ports.ChatMessage{
		{Role: ports.RoleSystem, Content: "You are Emily."},
		{Role: ports.RoleAssistant, Content: "Welcome, seeker."},
		{Role: ports.RoleUser, Content: "I'm Sam."},
	}
}

func TestClient_Complete_Success(t *testing.T) {
	var gotReq map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("bad auth header: %s", r.Header.Get("Authorization"))
		}

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotReq)

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "Nice to meet you.\n\nPULL TAROT CARDS:1"}},
			},
			"usage": map[string]any{"total_tokens": 123},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := openai.NewClient(srv.Client(), "test-key", srv.URL, "test-model", slog.Default())

	out, err := client.Complete(context.Background(), testMessages())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Text != "Nice to meet you.\n\nPULL TAROT CARDS:1" {
		t.Errorf("unexpected text: %q", out.Text)
	}
	if out.Tokens != 123 {
		t.Errorf("unexpected token usage: %d", out.Tokens)
	}
	if gotReq["model"] != "test-model" {
		t.Errorf("request model: %v", gotReq["model"])
	}
	msgs, _ := gotReq["messages"].([]any)
	if len(msgs) != 3 {
		t.Errorf("expected 3 messages in request, got %d", len(msgs))
	}
}

func TestClient_Complete_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	client := openai.NewClient(srv.Client(), "key", srv.URL, "model", slog.Default())

	_, err := client.Complete(context.Background(), testMessages())
	if !errors.Is(err, domain.ErrUpstreamLLM) {
		t.Fatalf("expected ErrUpstreamLLM, got %v", err)
	}
}

func TestClient_Complete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[],"usage":{"total_tokens":5}}`))
	}))
	defer srv.Close()

	client := openai.NewClient(srv.Client(), "key", srv.URL, "model", slog.Default())

	_, err := client.Complete(context.Background(), testMessages())
	if !errors.Is(err, domain.ErrUpstreamLLM) {
		t.Fatalf("expected ErrUpstreamLLM, got %v", err)
	}
}

func TestClient_Moderate(t *testing.T) {
	for _, tc := range []struct {
		name    string
		flagged bool
	}{
		{"clean", false},
		{"flagged", true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/moderations" {
					t.Errorf("expected /moderations, got %s", r.URL.Path)
				}
				var req map[string]any
				body, _ := io.ReadAll(r.Body)
				_ = json.Unmarshal(body, &req)
				if req["input"] != "some answer text" {
					t.Errorf("unexpected input: %v", req["input"])
				}

				resp := map[string]any{
					"results": []map[string]any{{"flagged": tc.flagged}},
				}
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(resp)
			}))
			defer srv.Close()

			client := openai.NewClient(srv.Client(), "key", srv.URL, "model", slog.Default())

			flagged, err := client.Moderate(context.Background(), "some answer text")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if flagged != tc.flagged {
				t.Errorf("expected flagged=%v, got %v", tc.flagged, flagged)
			}
		})
	}
}

func TestClient_Moderate_EmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	client := openai.NewClient(srv.Client(), "key", srv.URL, "model", slog.Default())

	_, err := client.Moderate(context.Background(), "text")
	if !errors.Is(err, domain.ErrUpstreamLLM) {
		t.Fatalf("expected ErrUpstreamLLM, got %v", err)
	}
}
