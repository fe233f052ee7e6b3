package handler

import (
	"errors"
	"strings"
	"time"

	"arena-platform/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Authenticate resolves the bearer token to a stored user and attaches it to
// the request context. A syntactically valid token whose user no longer
// exists is treated as unauthenticated.
func (h *Handler) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			respondError(c, models.ErrUnauthorized)
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			zap.L().Warn("invalid Authorization header format")
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			respondError(c, models.ErrTokenInvalid)
			return
		}

		userID, err := h.tokens.Verify(parts[1])
		if err != nil {
			zap.L().Warn("token verification failed", zap.Error(err))
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			respondError(c, err)
			return
		}

		u, err := h.store.UserByID(c.Request.Context(), userID)
		if err != nil {
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			if errors.Is(err, models.ErrUserNotFound) {
				zap.L().Warn("token references deleted user", zap.String("userID", userID.String()))
				respondError(c, models.ErrUnauthorized)
				return
			}
			respondError(c, err)
			return
		}

		tokenVerificationsTotal.WithLabelValues("success").Inc()
		c.Set(userKey, u)
		c.Next()
	}
}

// RequireAdmin gates admin routes. It must run after Authenticate; it never
// resolves identity itself.
func (h *Handler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			respondError(c, models.ErrUnauthorized)
			return
		}
		if !u.IsAdmin() {
			zap.L().Warn("admin route denied", zap.String("userID", u.ID.String()), zap.String("role", string(u.Role)))
			respondError(c, models.ErrForbidden)
			return
		}
		c.Next()
	}
}

// RequestLogger logs every request with zap after the handler chain ran.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zapcore.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if msg := c.Errors.ByType(gin.ErrorTypePrivate).String(); msg != "" {
			fields = append(fields, zap.String("error", msg))
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request", fields...)
		case c.Writer.Status() >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}
