package models

import (
	"time"
)

type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
)

const (
	EventsTable   = "events"
	SettingsTable = "site_settings"
)

// Placeholder values given to every freshly created draft.
const (
	PlaceholderTitle = "New Event"
	PlaceholderDate  = "2025-12-31"
)

type Event struct {
	ID          int64       `db:"id" json:"id"`
	Title       string      `db:"title" json:"title"`                 // e.g., "Sunrise Flow"
	Description string      `db:"description" json:"description"`     // e.g., "Gentle stretching for beginners"
	Date        string      `db:"date" json:"date"`                   // YYYY-MM-DD, compared lexically
	Status      EventStatus `db:"status" json:"status"`               // draft | published
	Tickets     Tickets     `db:"tickets" json:"tickets"`             // tier -> quantity/price
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`       // set on insert, never changed
	PublishedAt *time.Time  `db:"published_at" json:"published_at"`   // set once, on first publish
	ModifiedAt  *time.Time  `db:"last_modified_at" json:"modified_at"` // stamped by every update
}

func (e *Event) IsPublished() bool {
	return e.Status == StatusPublished
}

// EventSummary is the attendee-facing projection of a published event.
type EventSummary struct {
	ID    int64  `db:"id" json:"id"`
	Title string `db:"title" json:"title"`
	Date  string `db:"date" json:"date"`
}

// EventUpdate carries already-validated values for an update.
type EventUpdate struct {
	Title       string
	Description string
	Date        string
	Tickets     Tickets
	ModifiedAt  time.Time
}

// EventForm is the organiser edit form as submitted. Numeric fields stay as
// strings so the service can coerce and report them individually.
type EventForm struct {
	Title              string `form:"title" validate:"required"`
	Description        string `form:"description" validate:"required"`
	Date               string `form:"date" validate:"required,datetime=2006-01-02"`
	FullQuantity       string `form:"fullQuantity"`
	FullPrice          string `form:"fullPrice"`
	ConcessionQuantity string `form:"concessionQuantity"`
	ConcessionPrice    string `form:"concessionPrice"`
}
