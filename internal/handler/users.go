package handler

import (
	"net/http"
	"time"

	"arena-platform/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Profile returns the caller's record with its match and event references
// resolved to full records, in list order.
func (h *Handler) Profile(c *gin.Context) {
	u := currentUser(c)
	ctx := c.Request.Context()

	matches, err := h.store.MatchesByIDs(ctx, u.MatchIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	events, err := h.store.EventsByIDs(ctx, u.EventIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	if matches == nil {
		matches = []models.Match{}
	}
	if events == nil {
		events = []models.Event{}
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    u,
		"matches": matches,
		"events":  events,
	})
}

// Dashboard assembles the caller's matches, upcoming events, announcements
// and aggregate stats. The reads are independent and run concurrently.
func (h *Handler) Dashboard(c *gin.Context) {
	u := currentUser(c)
	now := time.Now()

	var (
		matches       []models.Match
		events        []models.Event
		announcements []models.Event
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		matches, err = h.store.MatchesForUser(ctx, u.ID)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = h.store.UpcomingEvents(ctx, now)
		return err
	})
	g.Go(func() error {
		var err error
		announcements, err = h.store.LatestAnnouncements(ctx, 5)
		return err
	})
	if err := g.Wait(); err != nil {
		respondError(c, err)
		return
	}

	wins := 0
	for i := range matches {
		if matches[i].WonBy(u.ID) {
			wins++
		}
	}

	if matches == nil {
		matches = []models.Match{}
	}
	if events == nil {
		events = []models.Event{}
	}
	if announcements == nil {
		announcements = []models.Event{}
	}

	c.JSON(http.StatusOK, dashboardResponse{
		User:          u,
		Matches:       matches,
		Events:        events,
		Announcements: announcements,
		Stats: dashboardStats{
			TotalMatches:   len(matches),
			Wins:           wins,
			UpcomingEvents: len(events),
		},
	})
}
