package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"agentic-rag/internal/agent"
	"agentic-rag/internal/contextutil"
	"agentic-rag/internal/service"
)

// ChatHandler handles HTTP requests for question answering.
type ChatHandler struct {
	answers service.AnswerService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(answers service.AnswerService) *ChatHandler {
	return &ChatHandler{answers: answers}
}

// WirePart is one piece of structured message content on the wire.
type WirePart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// WireMessage is a conversation turn as transports deliver it. Content may
// be a plain string or an array of parts, and some transports put parts at
// the top level instead; all three shapes are accepted.
type WireMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content,omitempty"`
	Parts   []WirePart      `json:"parts,omitempty"`
}

// ChatRequest represents the HTTP request payload.
type ChatRequest struct {
	Messages []WireMessage `json:"messages"`
}

// ChatResponse represents the HTTP response payload: the answer text plus
// retrieved documents for citation rendering when the answer is grounded.
type ChatResponse struct {
	Answer     string                      `json:"answer"`
	Resolution string                      `json:"resolution"`
	Documents  []service.RetrievedDocument `json:"documents,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Turn converts the wire message to a domain turn, decoding the content
// field into whichever variant it carries.
func (m WireMessage) Turn() agent.Turn {
	turn := agent.Turn{Role: m.Role}

	if len(m.Content) > 0 {
		var text string
		if err := json.Unmarshal(m.Content, &text); err == nil {
			turn.Text = text
		} else {
			var parts []WirePart
			if err := json.Unmarshal(m.Content, &parts); err == nil {
				turn.ContentParts = convertParts(parts)
			}
		}
	}

	turn.Parts = convertParts(m.Parts)
	return turn
}

func convertParts(parts []WirePart) []agent.Part {
	if len(parts) == 0 {
		return nil
	}
	converted := make([]agent.Part, len(parts))
	for i, p := range parts {
		converted[i] = agent.Part{Type: p.Type, Text: p.Text}
	}
	return converted
}

// ServeHTTP handles HTTP requests for question answering.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	turns := make([]agent.Turn, 0, len(req.Messages))
	for _, m := range req.Messages {
		turns = append(turns, m.Turn())
	}

	resp, err := h.answers.Answer(ctx, service.AnswerRequest{Turns: turns})
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			logger.WarnContext(ctx, "validation error", "field", validationErr.Field, "error", err)
			writeError(w, http.StatusBadRequest, validationErr.Error())
		case errors.Is(err, service.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Invalid input")
		default:
			logger.ErrorContext(ctx, "failed to answer request", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to process request")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ChatResponse{
		Answer:     resp.Answer,
		Resolution: resp.Resolution,
		Documents:  resp.Documents,
	}); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
