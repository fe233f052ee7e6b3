package handler

import (
	"net/http"

	"arena-platform/internal/auth"
	"arena-platform/internal/config"
	"arena-platform/internal/models"
	"arena-platform/internal/store"

	"github.com/gin-gonic/gin"
)

const userKey = "user"

// Handler bundles the dependencies every route needs. Authorization is done
// entirely by the Authenticate/RequireAdmin middleware; the handlers below
// only orchestrate store calls.
type Handler struct {
	store  store.Store
	tokens *auth.TokenManager
	cfg    *config.Config
}

func New(s store.Store, tokens *auth.TokenManager, cfg *config.Config) *Handler {
	return &Handler{store: s, tokens: tokens, cfg: cfg}
}

// currentUser returns the identity the Authenticate middleware resolved.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
