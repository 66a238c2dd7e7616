package api

import (
	"net/http"
	"time"

	"chatbot-server/internal/apierrors"
	conversationsHandler "chatbot-server/internal/conversations/handler"
	messagesHandler "chatbot-server/internal/messages/handler"
	promptHandler "chatbot-server/internal/prompt/handler"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "Chatbot Microservice"
	serviceVersion = "1.0.0"
)

type API struct {
	router               *gin.Engine
	environment          string
	conversationsHandler conversationsHandler.Handler
	messagesHandler      messagesHandler.Handler
	promptHandler        promptHandler.Handler
}

func New(
	router *gin.Engine,
	environment string,
	conversationsHandler conversationsHandler.Handler,
	messagesHandler messagesHandler.Handler,
	promptHandler promptHandler.Handler,
) API {
	return API{
		router:               router,
		environment:          environment,
		conversationsHandler: conversationsHandler,
		messagesHandler:      messagesHandler,
		promptHandler:        promptHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/", a.Directory)

	chatbotGroup := a.router.Group("/v1/chatbot")
	{
		conversationsGroup := chatbotGroup.Group("/conversations")
		conversationsGroup.POST("", a.conversationsHandler.HandleCreateConversation)
		conversationsGroup.GET("", a.conversationsHandler.HandleListConversations)
		conversationsGroup.GET("/:id", a.conversationsHandler.HandleGetConversation)
		conversationsGroup.PATCH("/:id", a.conversationsHandler.HandleUpdateConversation)
		conversationsGroup.DELETE("/:id", a.conversationsHandler.HandleDeleteConversation)
		conversationsGroup.POST("/:id/messages", a.messagesHandler.HandleSendMessage)

		messagesGroup := chatbotGroup.Group("/messages")
		messagesGroup.POST("/:id/regenerate", a.messagesHandler.HandleRegenerateMessage)
		messagesGroup.GET("/:id/regenerations", a.messagesHandler.HandleListRegenerations)

		templatesGroup := chatbotGroup.Group("/templates")
		templatesGroup.GET("", a.promptHandler.HandleListTemplates)
		templatesGroup.POST("/:id/render", a.promptHandler.HandleRenderTemplate)
	}

	a.router.NoRoute(apierrors.RespondRouteNotFound)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"timestamp":   time.Now().UTC().Format(time.RFC3339Nano),
			"environment": a.environment,
		})
	})
}

// Directory describes the service and its routes
func (a *API) Directory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     serviceName,
		"version":     serviceVersion,
		"description": "AI chatbot with conversation history, regeneration and prompt templates",
		"endpoints": gin.H{
			"health": "GET /health",
			"conversations": gin.H{
				"create": "POST /v1/chatbot/conversations",
				"list":   "GET /v1/chatbot/conversations?user_id=",
				"get":    "GET /v1/chatbot/conversations/:id",
				"update": "PATCH /v1/chatbot/conversations/:id",
				"delete": "DELETE /v1/chatbot/conversations/:id",
			},
			"messages": gin.H{
				"send":          "POST /v1/chatbot/conversations/:id/messages",
				"regenerate":    "POST /v1/chatbot/messages/:id/regenerate",
				"regenerations": "GET /v1/chatbot/messages/:id/regenerations",
			},
			"templates": gin.H{
				"list":   "GET /v1/chatbot/templates?category=",
				"render": "POST /v1/chatbot/templates/:id/render",
			},
		},
	})
}
