package models

import (
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
)

func ParseEventStatus(s string) (EventStatus, error) {
	switch EventStatus(s) {
	case EventUpcoming, EventOngoing, EventCompleted:
		return EventStatus(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// Event is an organized gathering members register for. Participants holds
// user references in registration order; a user appears at most once.
type Event struct {
	ID              uuid.UUID   `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Date            time.Time   `json:"date"`
	Venue           string      `json:"venue"`
	Organizer       string      `json:"organizer,omitempty"`
	Participants    []uuid.UUID `json:"participants"`
	RegistrationFee float64     `json:"registrationFee"`
	Status          EventStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// HasParticipant reports whether the user is already registered.
func (e *Event) HasParticipant(userID uuid.UUID) bool {
	for _, id := range e.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
