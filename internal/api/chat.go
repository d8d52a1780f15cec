package api

import (
	"errors"
	"net/http"
	"time"

	"pizzaiolo/internal/conversation"
	"pizzaiolo/internal/order"
	"pizzaiolo/internal/providers"

	"github.com/gin-gonic/gin"
)

// retryableMessage is what users see on a failed model call. The turn left
// no trace in conversation or order state, so resending is always safe.
const retryableMessage = "The assistant is temporarily unavailable. Please try again."

// ChatRequest is one conversational turn: the full message history so far
// plus the order accumulated across previous turns.
type ChatRequest struct {
	Messages     []conversation.Message `json:"messages" binding:"required"`
	CurrentOrder order.PartialOrder     `json:"current_order"`
}

// Chat runs one turn and returns the assistant reply, the updated order and
// the completion flag.
func (a *ChatAPI) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	started := time.Now()
	result, err := a.processor.ProcessTurn(c.Request.Context(), req.Messages, req.CurrentOrder)
	if err != nil {
		var upstream *providers.UpstreamError
		if errors.As(err, &upstream) {
			a.log.WithError(err).Warn("language model call failed")
			a.metrics.ObserveUpstreamError(upstream.Provider)
			c.JSON(http.StatusBadGateway, gin.H{"error": retryableMessage})
			return
		}
		a.log.WithError(err).Error("turn processing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": retryableMessage})
		return
	}

	a.monitor.RecordTurn(result.Complete, time.Since(started))
	a.metrics.ObserveTurn(a.provider, result.Complete, time.Since(started))

	c.JSON(http.StatusOK, result)
}
