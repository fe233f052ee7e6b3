package handler

import (
	"net/http"

	"arena-platform/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Challenge creates a match with the caller as challenger and appends the
// match reference onto the caller's list. The opponent's list is left alone
// until an accept flow exists.
func (h *Handler) Challenge(c *gin.Context) {
	u := currentUser(c)

	var req challengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	if req.OpponentID != nil {
		if _, err := h.store.UserByID(ctx, *req.OpponentID); err != nil {
			respondError(c, err)
			return
		}
	}

	m := &models.Match{
		ChallengerID: u.ID,
		OpponentID:   req.OpponentID,
		WeightClass:  req.WeightClass,
		Date:         req.Date,
		Venue:        req.Venue,
		Referee:      req.Referee,
		Status:       models.MatchPending,
	}
	if err := h.store.CreateMatch(ctx, m); err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.AppendUserMatch(ctx, u.ID, m.ID); err != nil {
		respondError(c, err)
		return
	}

	zap.L().Info("challenge created",
		zap.String("matchID", m.ID.String()),
		zap.String("challenger", u.ID.String()))

	c.JSON(http.StatusCreated, gin.H{"match": m})
}
