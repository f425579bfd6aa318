package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"agentic-rag/internal/agent"
	"agentic-rag/internal/config"
	"agentic-rag/internal/http"
	"agentic-rag/internal/llm"
	"agentic-rag/internal/retrieval"
	"agentic-rag/internal/service"
	"agentic-rag/internal/storage"
	"agentic-rag/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	ctx := context.Background()

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	chunkRepo := storage.NewChunkRepo(db)

	// Build the document searcher for the configured strategy
	var searcher retrieval.Searcher
	switch cfg.RetrievalStrategy {
	case config.StrategyVector:
		vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
		if err != nil {
			log.Fatalf("Failed to create Qdrant client: %v", err)
		}
		if err := vectorStore.EnsureCollection(ctx, cfg.Collection, cfg.VectorSize); err != nil {
			log.Fatalf("Failed to ensure Qdrant collection: %v", err)
		}
		slog.Info("Qdrant collection ready", "collection", cfg.Collection, "vector_size", cfg.VectorSize)

		embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.VectorSize)
		searcher = retrieval.NewVectorSearcher(embedder, vectorStore, chunkRepo, cfg.Collection)
		slog.Info("Vector searcher initialized", "collection", cfg.Collection)

	default:
		records, err := chunkRepo.ListByCollection(ctx, cfg.Collection)
		if err != nil {
			log.Fatalf("Failed to load chunks for lexical search: %v", err)
		}
		chunks := make([]retrieval.DocumentChunk, len(records))
		for i, record := range records {
			chunks[i] = retrieval.DocumentChunk{
				ID:       record.ID,
				Text:     record.Text,
				Source:   record.Source,
				Page:     record.Page,
				Line:     record.Line,
				FileType: record.FileType,
			}
		}
		searcher = retrieval.NewLexicalSearcher(chunks)
		slog.Info("Lexical searcher initialized", "collection", cfg.Collection, "chunks", len(chunks))
	}

	// Create LLM client and loop components
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName)
	grader := agent.NewGrader(llmClient, cfg.ModelCallTimeout)
	rewriter := agent.NewRewriter(llmClient, cfg.ModelCallTimeout)
	orchestrator := agent.NewOrchestrator(llmClient, searcher, grader, rewriter)
	slog.Info("Retrieval loop initialized", "strategy", cfg.RetrievalStrategy)

	answerService := service.NewAnswerService(orchestrator, llmClient)

	router := http.NewRouter(&http.Deps{
		AnswerService: answerService,
	})

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
