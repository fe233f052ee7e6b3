package handler

import (
	"context"
	"sort"
	"sync"
	"time"

	"arena-platform/internal/models"
	"arena-platform/internal/store"

	"github.com/google/uuid"
)

// fakeStore is an in-memory Store used by the handler tests.
type fakeStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*models.User
	matches map[uuid.UUID]*models.Match
	events  map[uuid.UUID]*models.Event
}

var _ store.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[uuid.UUID]*models.User),
		matches: make(map[uuid.UUID]*models.Match),
		events:  make(map[uuid.UUID]*models.Event),
	}
}

func (f *fakeStore) CreateUser(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return models.ErrEmailTaken
		}
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.MatchIDs = []uuid.UUID{}
	u.EventIDs = []uuid.UUID{}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (f *fakeStore) UserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) ListUsers(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) UpdateUserStatus(_ context.Context, id uuid.UUID, status models.UserStatus) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	u.Status = status
	cp := *u
	return &cp, nil
}

func (f *fakeStore) AppendUserMatch(_ context.Context, userID, matchID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return models.ErrUserNotFound
	}
	u.MatchIDs = append(u.MatchIDs, matchID)
	return nil
}

func (f *fakeStore) CreateMatch(_ context.Context, m *models.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m.ID = uuid.New()
	m.CreatedAt = time.Now()
	cp := *m
	f.matches[m.ID] = &cp
	return nil
}

func (f *fakeStore) MatchesForUser(_ context.Context, userID uuid.UUID) ([]models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Match
	for _, m := range f.matches {
		if m.Involves(userID) {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeStore) MatchesByIDs(_ context.Context, ids []uuid.UUID) ([]models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Match
	for _, id := range ids {
		if m, ok := f.matches[id]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateEvent(_ context.Context, e *models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	if e.Participants == nil {
		e.Participants = []uuid.UUID{}
	}
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f *fakeStore) EventByID(_ context.Context, id uuid.UUID) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeStore) ListEvents(_ context.Context) ([]models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Event
	for _, e := range f.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeStore) UpcomingEvents(_ context.Context, from time.Time) ([]models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Event
	for _, e := range f.events {
		if !e.Date.Before(from) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeStore) LatestAnnouncements(_ context.Context, limit int) ([]models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Event
	for _, e := range f.events {
		if e.Status == models.EventUpcoming {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) EventsByIDs(_ context.Context, ids []uuid.UUID) ([]models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Event
	for _, id := range ids {
		if e, ok := f.events[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeStore) RegisterParticipant(_ context.Context, eventID, userID uuid.UUID) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[eventID]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	if e.HasParticipant(userID) {
		return nil, models.ErrAlreadyRegistered
	}
	u, ok := f.users[userID]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	e.Participants = append(e.Participants, userID)
	u.EventIDs = append(u.EventIDs, eventID)
	cp := *e
	return &cp, nil
}
