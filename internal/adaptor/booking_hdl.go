package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"event-booking/internal/dto/request"
	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgServerError    = "Server error"
	msgNotFound       = "Booking not found"
	msgRequiredFields = "name, email, and event are required fields"
	msgInvalidBody    = "Invalid request body"
	msgUpdateFailed   = "Error updating booking"
	msgEmailRequired  = "Please provide email to search"
	msgEventRequired  = "Please provide event to filter"
	msgCreated        = "Booking created successfully"
	msgUpdated        = "Booking updated successfully"
	msgDeleted        = "Booking deleted successfully"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// ListBookings handles GET /api/bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		h.serverError(w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := decodeBody(r, &req); err != nil {
		h.log.Warn("Invalid create booking body", zap.Error(err))
		utils.ResponseBadRequest(w, msgInvalidBody, err)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		var validationErr *usecase.ValidationError
		if errors.As(err, &validationErr) {
			utils.ResponseBadRequest(w, msgRequiredFields, validationErr)
			return
		}
		h.serverError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, msgCreated, booking)
}

// GetBookingByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, usecase.ErrBookingNotFound) {
			utils.ResponseNotFound(w, msgNotFound)
			return
		}
		h.serverError(w, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// UpdateBooking handles PUT /api/bookings/{id}. Every failure other than a
// missing booking is reported as 400.
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	var req request.UpdateBookingRequest
	if err := decodeBody(r, &req); err != nil {
		h.log.Warn("Invalid update booking body", zap.Error(err), zap.String("booking_id", bookingID))
		utils.ResponseBadRequest(w, msgUpdateFailed, err)
		return
	}

	booking, err := h.service.UpdateBooking(r.Context(), bookingID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrBookingNotFound) {
			utils.ResponseNotFound(w, msgNotFound)
			return
		}
		h.log.Warn("update booking failed",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		utils.ResponseBadRequest(w, msgUpdateFailed, err)
		return
	}

	utils.ResponseMessage(w, msgUpdated, booking)
}

// DeleteBooking handles DELETE /api/bookings/{id}
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	if err := h.service.DeleteBooking(r.Context(), bookingID); err != nil {
		if errors.Is(err, usecase.ErrBookingNotFound) {
			utils.ResponseNotFound(w, msgNotFound)
			return
		}
		h.serverError(w, err, "delete booking")
		return
	}

	utils.ResponseMessage(w, msgDeleted, nil)
}

// SearchByEmail handles GET /api/bookings/search?email=
func (h *BookingHandler) SearchByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if isBlank(email) {
		utils.ResponseBadRequest(w, msgEmailRequired, nil)
		return
	}

	bookings, err := h.service.SearchByEmail(r.Context(), email)
	if err != nil {
		h.serverError(w, err, "search bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// FilterByEvent handles GET /api/bookings/filter?event=
func (h *BookingHandler) FilterByEvent(w http.ResponseWriter, r *http.Request) {
	event := r.URL.Query().Get("event")
	if isBlank(event) {
		utils.ResponseBadRequest(w, msgEventRequired, nil)
		return
	}

	bookings, err := h.service.FilterByEvent(r.Context(), event)
	if err != nil {
		h.serverError(w, err, "filter bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

func (h *BookingHandler) serverError(w http.ResponseWriter, err error, operation string) {
	h.log.Error("Failed to "+operation,
		zap.Error(err),
		zap.String("operation", operation),
	)
	utils.ResponseInternalError(w, msgServerError, err)
}

// isBlank reports a query parameter that is absent or whitespace only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// decodeBody reads a JSON object; an empty body decodes to the zero value.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
