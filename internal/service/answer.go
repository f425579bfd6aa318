package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_answer_deps.go -package=mocks agentic-rag/internal/service QuestionResolver,Generator,AnswerService

import (
	"context"
	"log/slog"

	"agentic-rag/internal/agent"
	"agentic-rag/internal/contextutil"
	"agentic-rag/internal/llm"
)

// QuestionResolver runs the retrieval loop and returns a terminal
// resolution. Satisfied by agent.Orchestrator.
type QuestionResolver interface {
	Resolve(ctx context.Context, turns []agent.Turn) (agent.Resolution, error)
}

// Generator executes a ready answer-generation request. Satisfied by
// llm.Client.
type Generator interface {
	CompleteWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

// AnswerRequest is a question-answering request in the domain layer.
type AnswerRequest struct {
	Turns []agent.Turn
}

// RetrievedDocument is a cited chunk in a response, shaped for rendering.
type RetrievedDocument struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Source  string `json:"source"`
	Page    int    `json:"page,omitempty"`
	Line    int    `json:"line,omitempty"`
}

// AnswerResponse carries the final answer text plus, when the loop
// terminated via retrieval, the documents the answer cites.
type AnswerResponse struct {
	Answer     string
	Resolution string
	Question   string
	Documents  []RetrievedDocument
}

// AnswerService answers conversations.
type AnswerService interface {
	Answer(ctx context.Context, req AnswerRequest) (AnswerResponse, error)
}

// answerService implements AnswerService.
type answerService struct {
	resolver  QuestionResolver
	generator Generator
	logger    *slog.Logger
}

// NewAnswerService creates a new AnswerService.
func NewAnswerService(resolver QuestionResolver, generator Generator) AnswerService {
	return &answerService{
		resolver:  resolver,
		generator: generator,
		logger:    slog.Default(),
	}
}

// Answer resolves the conversation through the retrieval loop, then
// executes the terminal answer-generation request.
func (s *answerService) Answer(ctx context.Context, req AnswerRequest) (AnswerResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if len(req.Turns) == 0 {
		logger.WarnContext(ctx, "empty conversation in answer request")
		return AnswerResponse{}, &ValidationError{
			Field:   "messages",
			Message: "cannot be empty",
		}
	}

	resolution, err := s.resolver.Resolve(ctx, req.Turns)
	if err != nil {
		logger.ErrorContext(ctx, "failed to resolve question", "error", err)
		return AnswerResponse{}, WrapError(err, "failed to resolve question")
	}

	answer, err := s.generator.CompleteWithMessages(ctx, resolution.Messages, llm.ChatParams{
		Temperature: 0.7,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate answer", "error", err, "resolution", string(resolution.Kind))
		return AnswerResponse{}, WrapError(err, "failed to generate answer")
	}

	documents := make([]RetrievedDocument, 0, len(resolution.Documents))
	for _, result := range resolution.Documents {
		documents = append(documents, RetrievedDocument{
			ID:      result.Chunk.ID,
			Content: result.Chunk.Text,
			Source:  result.Chunk.Source,
			Page:    result.Chunk.Page,
			Line:    result.Chunk.Line,
		})
	}

	logger.InfoContext(ctx, "answer generated",
		"resolution", string(resolution.Kind),
		"iterations", resolution.Iterations,
		"documents", len(documents),
		"answer_length", len(answer),
	)

	return AnswerResponse{
		Answer:     answer,
		Resolution: string(resolution.Kind),
		Question:   resolution.Question,
		Documents:  documents,
	}, nil
}
