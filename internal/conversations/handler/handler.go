package handler

import (
	"net/http"
	"strconv"

	"chatbot-server/internal/apierrors"
	"chatbot-server/internal/conversations/processor"
	"chatbot-server/internal/observability"

	"github.com/gin-gonic/gin"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=../processor/interfaces.go -destination=mocks_test.go -package=handler

type Handler struct {
	processor processor.ConversationProcessor
	logger    *observability.Logger
}

func New(processor processor.ConversationProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateConversationRequest represents the HTTP request for creating a conversation
type CreateConversationRequest struct {
	UserID         string  `json:"user_id" binding:"required"`
	Title          *string `json:"title,omitempty" binding:"omitempty,max=255"`
	SystemPrompt   *string `json:"system_prompt,omitempty"`
	InitialMessage *string `json:"initial_message,omitempty"`
}

// UpdateConversationRequest represents the HTTP request for updating a conversation
type UpdateConversationRequest struct {
	Title    *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Archived *bool   `json:"archived,omitempty"`
}

// HandleCreateConversation creates a conversation and answers the optional first message
func (h *Handler) HandleCreateConversation(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: req.UserID})

	result, err := h.processor.CreateConversation(ctx, processor.CreateConversationRequest{
		UserID:         req.UserID,
		Title:          req.Title,
		SystemPrompt:   req.SystemPrompt,
		InitialMessage: req.InitialMessage,
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

// HandleListConversations lists the non-archived conversations of the user_id query parameter
func (h *Handler) HandleListConversations(c *gin.Context) {
	conversations, err := h.processor.ListConversations(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    conversations,
	})
}

func (h *Handler) HandleGetConversation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.processor.GetConversation(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

func (h *Handler) HandleUpdateConversation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	conversation, err := h.processor.UpdateConversation(c.Request.Context(), id, processor.UpdateConversationRequest{
		Title:    req.Title,
		Archived: req.Archived,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    conversation,
	})
}

func (h *Handler) HandleDeleteConversation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteConversation(c.Request.Context(), id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Conversation deleted successfully",
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
