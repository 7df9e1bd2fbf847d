// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTimezone is used when a user has not picked an IANA timezone.
const DefaultTimezone = "UTC"

// User represents a user of the LifeHub application.
type User struct {
	ID              uuid.UUID
	Email           string
	Name            string
	PasswordHash    string
	Timezone        string // IANA name; anchors all date-only computations
	WhatsAppNumber  string // Optional, links the assistant to this account
	MilestoneAlerts bool
	HabitReminders  bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:              uuid.New(),
		Email:           email,
		Name:            name,
		PasswordHash:    passwordHash,
		Timezone:        DefaultTimezone,
		MilestoneAlerts: true,
		HabitReminders:  true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Location resolves the user's timezone, falling back to UTC on bad data.
func (u *User) Location() *time.Location {
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
