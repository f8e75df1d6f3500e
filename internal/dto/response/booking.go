package response

import (
	"time"

	"event-booking/internal/data/entity"
)

type BookingResponse struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Event      string    `json:"event"`
	TicketType string    `json:"ticketType"`
	CreatedAt  time.Time `json:"createdAt"`
}

func BookingToResponse(b *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:         b.ID,
		Name:       b.Name,
		Email:      b.Email,
		Event:      b.Event,
		TicketType: b.TicketType,
		CreatedAt:  b.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
