package entity

import (
	"strings"
	"time"
)

const DefaultTicketType = "General"

type Booking struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Event      string    `db:"event"`
	TicketType string    `db:"ticket_type"`
	CreatedAt  time.Time `db:"created_at"`
}

// BookingPatch holds the mutable fields of a booking. Nil means "leave as is".
type BookingPatch struct {
	Name       *string
	Email      *string
	Event      *string
	TicketType *string
}

func (p BookingPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Event == nil && p.TicketType == nil
}

// Apply copies the set fields of the patch onto b.
func (p BookingPatch) Apply(b *Booking) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Email != nil {
		b.Email = *p.Email
	}
	if p.Event != nil {
		b.Event = *p.Event
	}
	if p.TicketType != nil {
		b.TicketType = *p.TicketType
	}
}

func NormalizeName(s string) string  { return strings.TrimSpace(s) }
func NormalizeEvent(s string) string { return strings.TrimSpace(s) }

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
