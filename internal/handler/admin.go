package handler

import (
	"net/http"

	"arena-platform/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminListUsers returns all users, newest-registered first.
func (h *Handler) AdminListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// AdminUpdateUserStatus sets a user's status. Unrecognized status values are
// rejected rather than written into the column.
func (h *Handler) AdminUpdateUserStatus(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		respondError(c, models.ErrUserNotFound)
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	status, err := models.ParseUserStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	u, err := h.store.UpdateUserStatus(c.Request.Context(), userID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	zap.L().Info("user status updated",
		zap.String("userID", userID.String()),
		zap.String("status", string(status)),
		zap.String("adminID", currentUser(c).ID.String()))

	c.JSON(http.StatusOK, u)
}

// AdminCreateEvent creates an event from admin-supplied fields. Status
// defaults to upcoming and must belong to the closed set when supplied.
func (h *Handler) AdminCreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	status := models.EventUpcoming
	if req.Status != "" {
		var err error
		status, err = models.ParseEventStatus(req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	e := &models.Event{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Venue:           req.Venue,
		Organizer:       req.Organizer,
		RegistrationFee: req.RegistrationFee,
		Status:          status,
	}
	if err := h.store.CreateEvent(c.Request.Context(), e); err != nil {
		respondError(c, err)
		return
	}

	zap.L().Info("event created",
		zap.String("eventID", e.ID.String()),
		zap.String("adminID", currentUser(c).ID.String()))

	c.JSON(http.StatusCreated, gin.H{"event": e})
}
