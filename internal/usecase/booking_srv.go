package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"

	"go.uber.org/zap"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingService interface {
	ListBookings(ctx context.Context) ([]*response.BookingResponse, error)
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID string) error
	SearchByEmail(ctx context.Context, email string) ([]*response.BookingResponse, error)
	FilterByEvent(ctx context.Context, event string) ([]*response.BookingResponse, error)
}

type bookingService struct {
	repo repository.BookingRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewBookingService(repo repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

func (s *bookingService) ListBookings(ctx context.Context) ([]*response.BookingResponse, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	validation := ValidateBooking(*req)
	if !validation.Valid() {
		s.log.Warn("Create booking validation failed", zap.Strings("missing", validation.Missing))
		return nil, validation.Err()
	}

	// store dates have millisecond precision
	booking := validation.Booking
	booking.CreatedAt = s.now().UTC().Truncate(time.Millisecond)

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("event", booking.Event),
		zap.String("ticket_type", booking.TicketType),
	)

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrBookingNotFound)
	}
	return response.BookingToResponse(booking), nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	patch, err := ValidatePatch(*req)
	if err != nil {
		s.log.Warn("Update booking validation failed",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, err
	}

	booking, err := s.repo.Update(ctx, bookingID, patch)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrBookingNotFound)
	}

	s.log.Info("Booking updated", zap.String("booking_id", booking.ID))

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	booking, err := s.repo.Delete(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s: %w", bookingID, ErrBookingNotFound)
	}

	s.log.Info("Booking deleted", zap.String("booking_id", booking.ID))
	return nil
}

// SearchByEmail matches stored emails exactly; the query gets the same
// normalization as stored values.
func (s *bookingService) SearchByEmail(ctx context.Context, email string) ([]*response.BookingResponse, error) {
	bookings, err := s.repo.FindByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("search bookings: %w", err)
	}
	return response.BookingsToResponse(bookings), nil
}

// FilterByEvent is a case-insensitive literal substring match.
func (s *bookingService) FilterByEvent(ctx context.Context, event string) ([]*response.BookingResponse, error) {
	bookings, err := s.repo.FindByEventContains(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("filter bookings: %w", err)
	}
	return response.BookingsToResponse(bookings), nil
}
