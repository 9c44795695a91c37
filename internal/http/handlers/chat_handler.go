// README: Chat endpoint driving the conversation engine.
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/conversation"
	"wayfarer/internal/llm"
)

// Converser is the conversation surface the handler needs.
type Converser interface {
	Turn(ctx context.Context, transcript []llm.Message, userInput string) (conversation.TurnResult, error)
}

type ChatHandler struct {
	conversations Converser
}

func NewChatHandler(conversations Converser) *ChatHandler {
	return &ChatHandler{conversations: conversations}
}

type chatRequest struct {
	Messages  []llm.Message `json:"messages"`
	UserInput string        `json:"user_input"`
}

type chatResponse struct {
	Messages         []llm.Message            `json:"messages"`
	AssistantMessage string                   `json:"assistant_message"`
	Phase            conversation.Phase       `json:"phase"`
	StillNeed        []string                 `json:"still_need,omitempty"`
	Enrichment       *conversation.Enrichment `json:"enrichment,omitempty"`
}

// Handle runs one conversation turn. The client owns the transcript and
// sends it back in full on every call.
func (h *ChatHandler) Handle(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.conversations.Turn(c.Request.Context(), req.Messages, req.UserInput)
	if err != nil {
		if errors.Is(err, llm.ErrGenerationUnavailable) {
			writeError(c, http.StatusServiceUnavailable, "all language model backends are unavailable, please retry shortly")
			return
		}
		log.Printf("chat: turn failed: %v", err)
		writeError(c, http.StatusInternalServerError, "conversation turn failed")
		return
	}

	writeJSON(c, http.StatusOK, chatResponse{
		Messages:         res.Transcript,
		AssistantMessage: res.AssistantText,
		Phase:            res.Phase,
		StillNeed:        res.StillNeed,
		Enrichment:       res.Enrichment,
	})
}
