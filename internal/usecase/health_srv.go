package usecase

import (
	"context"
	"fmt"

	"event-booking/internal/data/repository"
)

type HealthService interface {
	Check(ctx context.Context) error
}

type healthService struct {
	store repository.Pinger
}

func NewHealthService(store repository.Pinger) HealthService {
	return &healthService{store: store}
}

func (s *healthService) Check(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return fmt.Errorf("store unreachable: %w", err)
	}
	return nil
}
