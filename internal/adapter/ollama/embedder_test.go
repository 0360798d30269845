package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEmbedderEncode_SendsModelAndInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/embed" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}

		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req["model"] != "all-minilm" {
			t.Fatalf("expected model all-minilm, got %v", req["model"])
		}
		inputs, ok := req["input"].([]interface{})
		if !ok || len(inputs) != 2 {
			t.Fatalf("expected 2 inputs, got %v", req["input"])
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"embeddings": [][]float32{{0.1, 0.2}, {0.3, 0.4}},
		})
	}))
	defer server.Close()

	embedder := NewEmbedder(server.URL, "all-minilm", 5)
	vectors, err := embedder.Encode(context.Background(), []string{"first", "second"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(vectors))
	}
	if vectors[1][0] != 0.3 {
		t.Fatalf("expected 0.3, got %v", vectors[1][0])
	}
}

func TestEmbedderEncode_CountMismatchFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"embeddings": [][]float32{{0.1}},
		})
	}))
	defer server.Close()

	embedder := NewEmbedder(server.URL, "all-minilm", 5)
	_, err := embedder.Encode(context.Background(), []string{"first", "second"})
	if err == nil {
		t.Fatal("expected error for embedding count mismatch")
	}
}

func TestEmbedderEncode_BadStatusFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	embedder := NewEmbedder(server.URL, "all-minilm", 5)
	_, err := embedder.Encode(context.Background(), []string{"first"})
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
}
