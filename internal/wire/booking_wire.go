package wire

import (
	"event-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Get("/", bookingHandler.ListBookings)
		r.Post("/", bookingHandler.CreateBooking)

		// static segments win over {id} in chi
		r.Get("/search", bookingHandler.SearchByEmail)
		r.Get("/filter", bookingHandler.FilterByEvent)

		r.Get("/{id}", bookingHandler.GetBookingByID)
		r.Put("/{id}", bookingHandler.UpdateBooking)
		r.Delete("/{id}", bookingHandler.DeleteBooking)
	})
}
