package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestEmbedTextsReturnsOneVectorPerInput(t *testing.T) {
	var gotReq EmbeddingsRequest
	server := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/embeddings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(EmbeddingsResponse{
			Data: []EmbeddingData{
				{Embedding: []float64{0.1, 0.2, 0.3}},
				{Embedding: []float64{0.4, 0.5, 0.6}},
			},
		})
	})

	client := NewEmbeddingsClient(server.URL, "test-key", "embed-model", 3)
	vectors, err := client.EmbedTexts(context.Background(), []string{"first", "second"})
	if err != nil {
		t.Fatalf("EmbedTexts() error = %v", err)
	}
	if len(vectors) != 2 {
		t.Fatalf("EmbedTexts() returned %d vectors, want 2", len(vectors))
	}
	if vectors[0][0] != float32(0.1) || vectors[1][2] != float32(0.6) {
		t.Fatalf("EmbedTexts() vectors = %v", vectors)
	}
	if gotReq.Model != "embed-model" || len(gotReq.Input) != 2 {
		t.Fatalf("request = %+v", gotReq)
	}
}

func TestEmbedTextsEmptyInput(t *testing.T) {
	client := NewEmbeddingsClient("http://unused", "key", "model", 3)
	if _, err := client.EmbedTexts(context.Background(), nil); err == nil {
		t.Fatal("EmbedTexts() should reject empty input")
	}
}

func TestEmbedTextsSizeMismatch(t *testing.T) {
	server := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(EmbeddingsResponse{
			Data: []EmbeddingData{{Embedding: []float64{0.1, 0.2}}},
		})
	})

	client := NewEmbeddingsClient(server.URL, "test-key", "embed-model", 3)
	if _, err := client.EmbedTexts(context.Background(), []string{"text"}); err == nil {
		t.Fatal("EmbedTexts() should reject vectors of the wrong size")
	}
}

func TestEmbedTextsCountMismatch(t *testing.T) {
	server := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(EmbeddingsResponse{
			Data: []EmbeddingData{{Embedding: []float64{0.1, 0.2, 0.3}}},
		})
	})

	client := NewEmbeddingsClient(server.URL, "test-key", "embed-model", 3)
	if _, err := client.EmbedTexts(context.Background(), []string{"one", "two"}); err == nil {
		t.Fatal("EmbedTexts() should reject a short response")
	}
}

func TestEmbedTextsBadStatus(t *testing.T) {
	server := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusBadGateway)
	})

	client := NewEmbeddingsClient(server.URL, "test-key", "embed-model", 3)
	if _, err := client.EmbedTexts(context.Background(), []string{"text"}); err == nil {
		t.Fatal("EmbedTexts() should fail on non-200 status")
	}
}
