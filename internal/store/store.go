package store

import (
	"context"
	"time"

	"arena-platform/internal/models"

	"github.com/google/uuid"
)

// Store is the persistence gateway over the three entity collections. Every
// operation is atomic at single-row granularity except
// RegisterParticipant, which performs its two writes in one transaction.
// Lookups for absent ids fail with the matching models sentinel, never an
// empty success value.
type Store interface {
	// Users
	CreateUser(ctx context.Context, u *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserStatus(ctx context.Context, id uuid.UUID, status models.UserStatus) (*models.User, error)
	AppendUserMatch(ctx context.Context, userID, matchID uuid.UUID) error

	// Matches
	CreateMatch(ctx context.Context, m *models.Match) error
	MatchesForUser(ctx context.Context, userID uuid.UUID) ([]models.Match, error)
	MatchesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Match, error)

	// Events
	CreateEvent(ctx context.Context, e *models.Event) error
	EventByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	UpcomingEvents(ctx context.Context, from time.Time) ([]models.Event, error)
	LatestAnnouncements(ctx context.Context, limit int) ([]models.Event, error)
	EventsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Event, error)
	RegisterParticipant(ctx context.Context, eventID, userID uuid.UUID) (*models.Event, error)
}
