package domain

import (
	"context"
	"time"
)

// Event names recorded for a card.
const (
	EventPageView         = "page_view"
	EventClickEmail       = "click_email"
	EventClickWhatsApp    = "click_whatsapp"
	EventClickSocial      = "click_social"
	EventClickSchedule    = "click_schedule"
	EventClickSaveContact = "click_save_contact"
)

// Event is one analytics notification about a card.
type Event struct {
	ID        string
	Name      string
	Subject   string // display name of the profile
	Slug      string
	CreatedAt time.Time
}

// EventSink receives analytics events. Track must not block the caller and
// reports nothing back.
type EventSink interface {
	Track(ctx context.Context, event Event)
}

// EventRepository persists analytics events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	// CountBySlug returns the number of events per event name for a slug.
	CountBySlug(ctx context.Context, slug string) (map[string]int, error)
}
