package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"agentic-rag/internal/config"
	"agentic-rag/internal/ingest"
	"agentic-rag/internal/llm"
	"agentic-rag/internal/storage"
	"agentic-rag/internal/vectorstore"
)

func main() {
	var (
		dataDir    string
		collection string
	)

	rootCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest a directory of documents into the searchable corpus",
		Long: `Ingest parses every regular file in a directory (PDF, LaTeX, image,
plain text/markdown), splits it into provenance-tagged chunks, embeds the
chunks, and loads them into the document store in batches.

Per-file extraction failures are logged and skipped; a failed embed or
store write aborts the run with a non-zero exit code.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			opts := &slog.HandlerOptions{Level: cfg.LogLevel}
			var handler slog.Handler
			if cfg.LogFormat == "json" {
				handler = slog.NewJSONHandler(os.Stdout, opts)
			} else {
				handler = slog.NewTextHandler(os.Stdout, opts)
			}
			slog.SetDefault(slog.New(handler))

			if cfg.VectorSize <= 0 {
				return fmt.Errorf("VECTOR_SIZE is required for ingestion")
			}
			if dataDir == "" {
				dataDir = cfg.DocumentsDir
			}
			if collection == "" {
				collection = cfg.Collection
			}

			ctx := cmd.Context()

			db, err := storage.New(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer func() {
				_ = db.Close()
			}()
			if err := storage.Migrate(db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
			if err != nil {
				return fmt.Errorf("failed to create Qdrant client: %w", err)
			}
			if err := vectorStore.EnsureCollection(ctx, collection, cfg.VectorSize); err != nil {
				return fmt.Errorf("failed to ensure collection: %w", err)
			}

			embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.VectorSize)
			pipeline := ingest.NewPipeline(embedder, vectorStore, storage.NewChunkRepo(db))

			slog.Info("Starting ingestion", "dir", dataDir, "collection", collection)
			count, err := pipeline.Ingest(ctx, dataDir, collection)
			if err != nil {
				return err
			}

			slog.Info("Ingestion completed", "chunks_added", count)
			return nil
		},
	}

	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "directory of source documents (default \"documents\")")
	rootCmd.Flags().StringVar(&collection, "collection", "", "target collection name (default \"documents\")")

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error during ingestion: %v", err)
		os.Exit(1)
	}
}
