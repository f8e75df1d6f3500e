package usecase

import (
	"event-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Health  HealthService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo.Booking, log),
		Health:  NewHealthService(repo.Health),
	}
}
