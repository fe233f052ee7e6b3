package handler

import (
	"time"

	"arena-platform/internal/models"

	"github.com/google/uuid"
)

type registerRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Phone      string `json:"phone" binding:"required"`
	Weight     string `json:"weight"`
	Experience string `json:"experience"`
	City       string `json:"city"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type challengeRequest struct {
	OpponentID  *uuid.UUID `json:"opponentId"`
	WeightClass string     `json:"weightClass" binding:"required"`
	Date        time.Time  `json:"date" binding:"required"`
	Venue       string     `json:"venue"`
	Referee     string     `json:"referee"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type createEventRequest struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description" binding:"required"`
	Date            time.Time `json:"date" binding:"required"`
	Venue           string    `json:"venue" binding:"required"`
	Organizer       string    `json:"organizer"`
	RegistrationFee float64   `json:"registrationFee"`
	Status          string    `json:"status"`
}

type dashboardStats struct {
	TotalMatches   int `json:"totalMatches"`
	Wins           int `json:"wins"`
	UpcomingEvents int `json:"upcomingEvents"`
}

type dashboardResponse struct {
	User          *models.User   `json:"user"`
	Matches       []models.Match `json:"matches"`
	Events        []models.Event `json:"events"`
	Announcements []models.Event `json:"announcements"`
	Stats         dashboardStats `json:"stats"`
}
