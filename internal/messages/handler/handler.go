package handler

import (
	"net/http"
	"strconv"

	"chatbot-server/internal/apierrors"
	"chatbot-server/internal/messages/processor"
	"chatbot-server/internal/observability"

	"github.com/gin-gonic/gin"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=../processor/interfaces.go -destination=mocks_test.go -package=handler

type Handler struct {
	processor processor.MessageProcessor
	logger    *observability.Logger
}

func New(processor processor.MessageProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SendMessageRequest represents the HTTP request for sending a message
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
	Role    string `json:"role,omitempty"`
}

// HandleSendMessage appends a user turn to the conversation and returns it with the assistant reply
func (h *Handler) HandleSendMessage(c *gin.Context) {
	conversationID, ok := parseID(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.SendMessage(c.Request.Context(), conversationID, processor.SendMessageRequest{
		Content: req.Content,
		Role:    req.Role,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result,
	})
}

// HandleRegenerateMessage produces a new reply for an assistant message
func (h *Handler) HandleRegenerateMessage(c *gin.Context) {
	messageID, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.processor.RegenerateMessage(c.Request.Context(), messageID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result,
	})
}

func (h *Handler) HandleListRegenerations(c *gin.Context) {
	messageID, ok := parseID(c)
	if !ok {
		return
	}

	regenerations, err := h.processor.ListRegenerations(c.Request.Context(), messageID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    regenerations,
	})
}

// parseID reads the :id path parameter, responding with a validation error when it is not a positive integer
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		apierrors.RespondWithError(c, apierrors.Validation("id must be a positive integer"))
		return 0, false
	}
	return id, true
}
