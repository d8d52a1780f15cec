package api

import (
	"net/http"
	"strconv"

	"pizzaiolo/internal/order"

	"github.com/gin-gonic/gin"
)

// saveFailedMessage tells the user their order is complete client-side even
// though the insert failed. There is no automatic retry.
const saveFailedMessage = "Your order details are complete but couldn't be saved. Please contact us directly."

// SaveOrderRequest carries a completed order for persistence.
type SaveOrderRequest struct {
	Order order.PartialOrder `json:"order" binding:"required"`
}

// SaveOrder persists a completed order. Authenticated callers get the order
// attached to their identity; guests are allowed.
func (a *ChatAPI) SaveOrder(c *gin.Context) {
	var req SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := a.store.Save(req.Order, a.identity(c))
	if err != nil {
		a.log.WithError(err).Error("order save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": saveFailedMessage})
		return
	}

	a.monitor.IncrementMetric("orders_saved")
	a.metrics.ObserveOrderSaved()

	c.JSON(http.StatusCreated, record)
}

// ListOrders returns the caller's order history, newest first.
func (a *ChatAPI) ListOrders(c *gin.Context) {
	records, err := a.store.ListOrders(a.identity(c))
	if err != nil {
		a.log.WithError(err).Error("order listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetOrder returns a single persisted order by ID.
func (a *ChatAPI) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	record, err := a.store.GetOrder(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, record)
}
