package agent_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"agentic-rag/internal/agent"
	"agentic-rag/internal/agent/mocks"
	"agentic-rag/internal/llm"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// gradeReply makes the mocked structured call unmarshal a fixed score into
// the grader's output value.
func gradeReply(score float64) func(context.Context, string, llm.JSONSchema, any) error {
	return func(_ context.Context, _ string, _ llm.JSONSchema, out any) error {
		payload, _ := json.Marshal(map[string]float64{"score": score})
		return json.Unmarshal(payload, out)
	}
}

func TestGraderReturnsModelScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := mocks.NewMockLanguageModel(ctrl)
	model.EXPECT().
		CompleteStructured(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(gradeReply(0.85))

	grader := agent.NewGrader(model, 0)
	if got := grader.Grade(context.Background(), "what is X?", "X is a thing"); got != 0.85 {
		t.Fatalf("Grade() = %v, want 0.85", got)
	}
}

func TestGraderDefaultsOnCallFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := mocks.NewMockLanguageModel(ctrl)
	model.EXPECT().
		CompleteStructured(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("model unavailable"))

	grader := agent.NewGrader(model, 0)
	if got := grader.Grade(context.Background(), "q", "ctx"); got != 0.3 {
		t.Fatalf("Grade() = %v, want 0.3 on failure", got)
	}
}

func TestGraderDefaultsOnOutOfRangeScore(t *testing.T) {
	for _, score := range []float64{-0.1, 1.5} {
		ctrl := gomock.NewController(t)
		model := mocks.NewMockLanguageModel(ctrl)
		model.EXPECT().
			CompleteStructured(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(gradeReply(score))

		grader := agent.NewGrader(model, 0)
		if got := grader.Grade(context.Background(), "q", "ctx"); got != 0.3 {
			t.Fatalf("Grade() = %v for model score %v, want 0.3", got, score)
		}
	}
}

func TestGraderPromptIncludesQuestionAndContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := mocks.NewMockLanguageModel(ctrl)

	var prompt string
	model.EXPECT().
		CompleteStructured(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p string, s llm.JSONSchema, out any) error {
			prompt = p
			return gradeReply(1)(ctx, p, s, out)
		})

	grader := agent.NewGrader(model, 0)
	grader.Grade(context.Background(), "what is LangGraph?", "LangGraph is a framework")

	if !strings.Contains(prompt, "what is LangGraph?") {
		t.Errorf("prompt missing question: %q", prompt)
	}
	if !strings.Contains(prompt, "LangGraph is a framework") {
		t.Errorf("prompt missing context: %q", prompt)
	}
}

func TestGraderAppliesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := mocks.NewMockLanguageModel(ctrl)

	var hasDeadline bool
	model.EXPECT().
		CompleteStructured(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p string, s llm.JSONSchema, out any) error {
			_, hasDeadline = ctx.Deadline()
			return gradeReply(0.6)(ctx, p, s, out)
		})

	grader := agent.NewGrader(model, 5*time.Second)
	grader.Grade(context.Background(), "q", "ctx")

	if !hasDeadline {
		t.Fatal("expected grading call context to carry a deadline")
	}
}
