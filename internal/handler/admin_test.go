package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"arena-platform/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminListUsers(t *testing.T) {
	env := newTestEnv()
	_, adminToken := env.seedUser(t, "admin@x.com", models.RoleAdmin)
	env.seedUser(t, "b@x.com", models.RoleUser)

	w := env.do(t, http.MethodGet, "/api/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}

func TestAdminUpdateUserStatus(t *testing.T) {
	env := newTestEnv()
	_, adminToken := env.seedUser(t, "admin@x.com", models.RoleAdmin)
	member, _ := env.seedUser(t, "b@x.com", models.RoleUser)

	path := "/api/admin/users/" + member.ID.String() + "/status"

	w := env.do(t, http.MethodPut, path, adminToken, map[string]any{"status": "rejected"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "rejected", decodeBody(t, w)["status"])

	t.Run("arbitrary status string rejected", func(t *testing.T) {
		w := env.do(t, http.MethodPut, path, adminToken, map[string]any{"status": "banhammer"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		// The stored status is untouched.
		u, err := env.store.UserByID(context.Background(), member.ID)
		require.NoError(t, err)
		assert.Equal(t, models.UserRejected, u.Status)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/admin/users/"+uuid.NewString()+"/status", adminToken, map[string]any{"status": "approved"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminCreateEvent(t *testing.T) {
	env := newTestEnv()
	_, adminToken := env.seedUser(t, "admin@x.com", models.RoleAdmin)

	w := env.do(t, http.MethodPost, "/api/admin/events", adminToken, map[string]any{
		"title":           "Summer Gala",
		"description":     "Annual showcase",
		"date":            "2030-07-01T18:00:00Z",
		"venue":           "Main Hall",
		"organizer":       "Club",
		"registrationFee": 25.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	event := decodeBody(t, w)["event"].(map[string]any)
	assert.Equal(t, "Summer Gala", event["title"])
	assert.Equal(t, "upcoming", event["status"], "status defaults to upcoming")
	assert.EqualValues(t, 25, event["registrationFee"])

	t.Run("missing required fields", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/admin/events", adminToken, map[string]any{
			"title": "No venue",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("arbitrary status string rejected", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/admin/events", adminToken, map[string]any{
			"title":       "Bad status",
			"description": "d",
			"date":        "2030-07-01T18:00:00Z",
			"venue":       "v",
			"status":      "cancelled-ish",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
