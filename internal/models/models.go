package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Profile struct {
	ProfileID string  `json:"profileId" db:"profile_id"`
	FirstName string  `json:"firstName" db:"first_name"`
	LastName  string  `json:"lastName" db:"last_name"`
	Phone     *string `json:"phone" db:"phone"`
	UserID    string  `json:"userId" db:"user_id"`
}

type Event struct {
	EventID     string    `json:"eventId" db:"event_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	StartTime   string    `json:"startTime" db:"start_time"`
	OpeningTime string    `json:"openingTime" db:"opening_time"`
	MinimumAge  bool      `json:"minimumAge" db:"minimum_age"`
	SpecialZone bool      `json:"specialZone" db:"special_zone"`
	Location    string    `json:"location" db:"location"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	UserID      string    `json:"userId" db:"user_id"`
	CategoryID  *string   `json:"categoryId" db:"category_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// EventDetails is the read model for event listings: the event row joined
// with its category name, cover image url and the structured list of
// occurrence dates.
type EventDetails struct {
	Event
	CategoryName *string     `json:"categoryName" db:"category_name"`
	ImageURL     *string     `json:"imageUrl" db:"image_url"`
	Dates        []EventDate `json:"dates" db:"-"`
}

type Category struct {
	CategoryID string `json:"categoryId" db:"category_id"`
	Name       string `json:"name" db:"name"`
}

type Image struct {
	ImageID   string    `json:"imageId" db:"image_id"`
	URL       string    `json:"url" db:"url"`
	EventID   string    `json:"eventId" db:"event_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type EventDate struct {
	DateID    string    `json:"dateId" db:"date_id"`
	Date      string    `json:"date" db:"date"`
	EventID   string    `json:"eventId" db:"event_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Attendee struct {
	AttendeeID string  `json:"attendeeId" db:"attendee_id"`
	Date       string  `json:"date" db:"date"`
	DateID     *string `json:"dateId" db:"date_id"`
	EventID    string  `json:"eventId" db:"event_id"`
	UserID     string  `json:"userId" db:"user_id"`
}
