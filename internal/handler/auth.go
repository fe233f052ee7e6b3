package handler

import (
	"errors"
	"net/http"

	"arena-platform/internal/auth"
	"arena-platform/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Register creates a user with default role and pending status and returns
// a fresh token alongside the sanitized record.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	hash, err := auth.HashPassword(req.Password, h.cfg.BcryptCost)
	if err != nil {
		respondError(c, err)
		return
	}

	u := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Weight:       req.Weight,
		Experience:   req.Experience,
		City:         req.City,
		Role:         models.RoleUser,
		Status:       models.UserPending,
		MatchIDs:     []uuid.UUID{},
		EventIDs:     []uuid.UUID{},
	}
	if err := h.store.CreateUser(c.Request.Context(), u); err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(u.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	registrationsTotal.Inc()
	zap.L().Info("user registered", zap.String("userID", u.ID.String()))

	c.JSON(http.StatusCreated, tokenResponse{Token: token, User: u})
}

// Login verifies credentials and issues a token. The response is identical
// for an unknown email and a wrong password.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.store.UserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			respondError(c, models.ErrInvalidCredentials)
			return
		}
		respondError(c, err)
		return
	}
	if !auth.CheckPassword(req.Password, u.PasswordHash) {
		respondError(c, models.ErrInvalidCredentials)
		return
	}

	token, err := h.tokens.Issue(u.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	loginsTotal.Inc()
	c.JSON(http.StatusOK, tokenResponse{Token: token, User: u})
}
