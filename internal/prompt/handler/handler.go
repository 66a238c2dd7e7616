package handler

import (
	"net/http"

	"chatbot-server/internal/apierrors"
	"chatbot-server/internal/observability"
	"chatbot-server/internal/prompt"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	logger *observability.Logger
}

func New(logger *observability.Logger) Handler {
	return Handler{logger: logger}
}

// RenderTemplateRequest represents the HTTP request for rendering a template
type RenderTemplateRequest struct {
	Variables map[string]string `json:"variables"`
}

// HandleListTemplates lists prompt templates, optionally filtered by the category query parameter
func (h *Handler) HandleListTemplates(c *gin.Context) {
	templates := prompt.Templates()
	if category := c.Query("category"); category != "" {
		templates = prompt.TemplatesByCategory(category)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    templates,
	})
}

// HandleRenderTemplate substitutes the given variables into a template
func (h *Handler) HandleRenderTemplate(c *gin.Context) {
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "template_id", Value: c.Param("id")})

	template, err := prompt.TemplateByID(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var req RenderTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	h.logger.Debug(ctx, "Rendering prompt template")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":      template.ID,
			"content": prompt.Render(template, req.Variables),
		},
	})
}
