package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"serenity-api/internal/config"
)

func testCfg(baseURL, key string) config.ChatConfig {
	return config.ChatConfig{
		APIKey:  key,
		Model:   "test-model",
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	}
}

func TestGenerate(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer k" {
			t.Errorf("auth header: %s", r.Header.Get("Authorization"))
		}
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "  That sounds heavy. I'm listening.  "}},
			},
		})
	}))
	defer srv.Close()

	c := New(testCfg(srv.URL, "k"))
	reply, err := c.Generate(context.Background(), []Turn{{Role: "user", Content: "rough week"}})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if reply != "That sounds heavy. I'm listening." {
		t.Errorf("reply: %q", reply)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Errorf("expected system preamble + 1 turn, got %d messages", len(gotReq.Messages))
	}
}

func TestGenerateTrimsHistory(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": "ok"}}},
		})
	}))
	defer srv.Close()

	turns := make([]Turn, 25)
	for i := range turns {
		turns[i] = Turn{Role: "user", Content: "x"}
	}

	c := New(testCfg(srv.URL, "k"))
	if _, err := c.Generate(context.Background(), turns); err != nil {
		t.Fatalf("generate: %v", err)
	}
	// system preamble + last 10 turns
	if len(gotReq.Messages) != 11 {
		t.Errorf("expected 11 forwarded messages, got %d", len(gotReq.Messages))
	}
}

func TestGenerateMissingKey(t *testing.T) {
	c := New(testCfg("http://unused", ""))
	_, err := c.Generate(context.Background(), []Turn{{Role: "user", Content: "hi"}})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(testCfg(srv.URL, "k"))
	_, err := c.Generate(context.Background(), []Turn{{Role: "user", Content: "hi"}})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestGenerateNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := New(testCfg(srv.URL, "k"))
	if _, err := c.Generate(context.Background(), []Turn{{Role: "user", Content: "hi"}}); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
