package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/dto"
	"github.com/SscSPs/payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// chatHandler forwards conversations to the assistant.
type chatHandler struct {
	chatService portssvc.ChatSvc
}

func newChatHandler(cs portssvc.ChatSvc) *chatHandler {
	return &chatHandler{chatService: cs}
}

// registerChatRoutes registers the chat route behind the given extra middleware (rate limiting).
func registerChatRoutes(rg *gin.RouterGroup, chatService portssvc.ChatSvc, mw ...gin.HandlerFunc) {
	h := newChatHandler(chatService)

	handlersChain := append(mw, h.ask)
	rg.POST("/chat", handlersChain...)
}

// ask godoc
// @Summary Ask the payroll assistant
// @Description Sends a conversation to the configured chat model, optionally with the current company totals as context
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Conversation"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string "Invalid input or chat not configured"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} map[string]string "Chat provider failed"
// @Failure 500 {object} map[string]string "Failed to get a reply"
// @Router /chat [post]
func (h *chatHandler) ask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err, "JSON for Chat")
		return
	}

	resp, err := h.chatService.Ask(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to get a reply")
		return
	}

	logger.Info("Chat reply returned", slog.String("model", resp.Model), slog.Int("messages", len(req.Messages)))
	c.JSON(http.StatusOK, resp)
}
