package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arena-platform/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

// DB is the subset of pgxpool.Pool the store needs. pgxmock satisfies it in
// tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

var _ Store = (*PgStore)(nil)

// PgStore implements Store on PostgreSQL.
type PgStore struct {
	db     DB
	logger *zap.Logger
}

func NewPgStore(db DB, logger *zap.Logger) *PgStore {
	return &PgStore{db: db, logger: logger.Named("PgStore")}
}

// Connect opens a pool and pings it, retrying until the deadline. The
// database container often comes up after the app in compose setups.
func Connect(ctx context.Context, url string, logger *zap.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}
	cfg.MaxConns = 10

	deadline := time.Now().Add(30 * time.Second)
	for {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		pool, err := pgxpool.NewWithConfig(pingCtx, cfg)
		if err == nil {
			pingErr := pool.Ping(pingCtx)
			if pingErr == nil {
				cancel()
				return pool, nil
			}
			pool.Close()
			err = pingErr
		}
		cancel()

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("connecting to database after retries: %w", err)
		}
		logger.Warn("database not ready, retrying", zap.Error(err))
		time.Sleep(1 * time.Second)
	}
}

/* ===================== users ===================== */

const userColumns = `id, name, email, password_hash, phone, weight, experience, city,
	role, status, profile_image, match_ids, event_ids, created_at`

func scanUser(row pgx.Row, u *models.User) error {
	return row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone,
		&u.Weight, &u.Experience, &u.City, &u.Role, &u.Status,
		&u.ProfileImage, &u.MatchIDs, &u.EventIDs, &u.CreatedAt)
}

func (s *PgStore) CreateUser(ctx context.Context, u *models.User) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, phone, weight, experience, city, role, status, profile_image)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 RETURNING id, created_at`,
		u.Name, u.Email, u.PasswordHash, u.Phone, u.Weight, u.Experience,
		u.City, u.Role, u.Status, u.ProfileImage,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			s.logger.Warn("duplicate email on registration", zap.String("email", u.Email))
			return models.ErrEmailTaken
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

func (s *PgStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	u := &models.User{}
	err := scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`, email), u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return u, nil
}

func (s *PgStore) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u := &models.User{}
	err := scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`, id), u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user by id: %w", err)
	}
	return u, nil
}

func (s *PgStore) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *PgStore) UpdateUserStatus(ctx context.Context, id uuid.UUID, status models.UserStatus) (*models.User, error) {
	u := &models.User{}
	err := scanUser(s.db.QueryRow(ctx,
		`UPDATE users SET status=$1 WHERE id=$2 RETURNING `+userColumns, status, id), u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("updating user status: %w", err)
	}
	return u, nil
}

func (s *PgStore) AppendUserMatch(ctx context.Context, userID, matchID uuid.UUID) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET match_ids = array_append(match_ids, $2) WHERE id=$1`,
		userID, matchID)
	if err != nil {
		return fmt.Errorf("appending match reference: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

/* ===================== matches ===================== */

const matchColumns = `id, challenger_id, opponent_id, weight_class, match_date, venue,
	status, result, winner_id, referee, created_at`

func scanMatch(row pgx.Row, m *models.Match) error {
	var result *string
	err := row.Scan(&m.ID, &m.ChallengerID, &m.OpponentID, &m.WeightClass,
		&m.Date, &m.Venue, &m.Status, &result, &m.WinnerID, &m.Referee,
		&m.CreatedAt)
	if err != nil {
		return err
	}
	if result != nil {
		m.Result = models.MatchResult(*result)
	}
	return nil
}

func (s *PgStore) CreateMatch(ctx context.Context, m *models.Match) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO matches (challenger_id, opponent_id, weight_class, match_date, venue, status, referee)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 RETURNING id, created_at`,
		m.ChallengerID, m.OpponentID, m.WeightClass, m.Date, m.Venue,
		m.Status, m.Referee,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating match: %w", err)
	}
	return nil
}

func (s *PgStore) MatchesForUser(ctx context.Context, userID uuid.UUID) ([]models.Match, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+matchColumns+` FROM matches
		 WHERE challenger_id=$1 OR opponent_id=$1
		 ORDER BY match_date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing matches for user: %w", err)
	}
	defer rows.Close()
	return collectMatches(rows)
}

func (s *PgStore) MatchesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Match, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.db.Query(ctx,
		`SELECT `+matchColumns+` FROM matches
		 WHERE id = ANY($1)
		 ORDER BY array_position($1::uuid[], id)`, ids)
	if err != nil {
		return nil, fmt.Errorf("listing matches by ids: %w", err)
	}
	defer rows.Close()
	return collectMatches(rows)
}

func collectMatches(rows pgx.Rows) ([]models.Match, error) {
	var out []models.Match
	for rows.Next() {
		var m models.Match
		if err := scanMatch(rows, &m); err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

/* ===================== events ===================== */

const eventColumns = `id, title, description, event_date, venue, organizer,
	participants, registration_fee, status, created_at`

func scanEvent(row pgx.Row, e *models.Event) error {
	return row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Venue,
		&e.Organizer, &e.Participants, &e.RegistrationFee, &e.Status,
		&e.CreatedAt)
}

func (s *PgStore) CreateEvent(ctx context.Context, e *models.Event) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO events (title, description, event_date, venue, organizer, registration_fee, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 RETURNING id, created_at`,
		e.Title, e.Description, e.Date, e.Venue, e.Organizer,
		e.RegistrationFee, e.Status,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating event: %w", err)
	}
	return nil
}

func (s *PgStore) EventByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	e := &models.Event{}
	err := scanEvent(s.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id=$1`, id), e)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("getting event: %w", err)
	}
	return e, nil
}

func (s *PgStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY event_date ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (s *PgStore) UpcomingEvents(ctx context.Context, from time.Time) ([]models.Event, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+eventColumns+` FROM events WHERE event_date >= $1 ORDER BY event_date ASC`, from)
	if err != nil {
		return nil, fmt.Errorf("listing upcoming events: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (s *PgStore) LatestAnnouncements(ctx context.Context, limit int) ([]models.Event, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+eventColumns+` FROM events WHERE status='upcoming'
		 ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing announcements: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (s *PgStore) EventsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.db.Query(ctx,
		`SELECT `+eventColumns+` FROM events
		 WHERE id = ANY($1)
		 ORDER BY array_position($1::uuid[], id)`, ids)
	if err != nil {
		return nil, fmt.Errorf("listing events by ids: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func collectEvents(rows pgx.Rows) ([]models.Event, error) {
	var out []models.Event
	for rows.Next() {
		var e models.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// RegisterParticipant appends the user to the event's participant list and
// the event to the user's event list in a single transaction, so the two
// reference lists cannot drift apart. The row lock makes a concurrent
// duplicate registration fail with ErrAlreadyRegistered instead of
// inserting twice.
func (s *PgStore) RegisterParticipant(ctx context.Context, eventID, userID uuid.UUID) (*models.Event, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning registration tx: %w", err)
	}
	defer tx.Rollback(ctx)

	e := &models.Event{}
	err = scanEvent(tx.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id=$1 FOR UPDATE`, eventID), e)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("locking event: %w", err)
	}
	if e.HasParticipant(userID) {
		return nil, models.ErrAlreadyRegistered
	}

	_, err = tx.Exec(ctx,
		`UPDATE events SET participants = array_append(participants, $2) WHERE id=$1`,
		eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("appending participant: %w", err)
	}
	tag, err := tx.Exec(ctx,
		`UPDATE users SET event_ids = array_append(event_ids, $2) WHERE id=$1`,
		userID, eventID)
	if err != nil {
		return nil, fmt.Errorf("appending event reference: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, models.ErrUserNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing registration: %w", err)
	}

	e.Participants = append(e.Participants, userID)
	return e, nil
}
