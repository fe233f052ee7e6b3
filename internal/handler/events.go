package handler

import (
	"net/http"

	"arena-platform/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListEvents is the only unauthenticated read: all events, soonest first.
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.store.ListEvents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// RegisterForEvent adds the caller to the event's participant list and the
// event to the caller's list, in one transaction.
func (h *Handler) RegisterForEvent(c *gin.Context) {
	u := currentUser(c)

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		respondError(c, models.ErrEventNotFound)
		return
	}

	event, err := h.store.RegisterParticipant(c.Request.Context(), eventID, u.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	zap.L().Info("event registration",
		zap.String("eventID", eventID.String()),
		zap.String("userID", u.ID.String()))

	c.JSON(http.StatusOK, gin.H{"event": event})
}
