package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/logger"
	"samedayramps-backend/internal/repository"
)

type rentalRequestService struct {
	requestRepo repository.RentalRequestRepository
}

func NewRentalRequestService(requestRepo repository.RentalRequestRepository) RentalRequestService {
	return &rentalRequestService{requestRepo: requestRepo}
}

func (s *rentalRequestService) CreateRentalRequest(ctx context.Context, req *domain.RentalRequest) (*domain.RentalRequest, error) {
	req.RampDetails.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	req.ID = uuid.NewString()
	req.Status = domain.RentalRequestStatusPending
	req.CreatedAt = now
	req.UpdatedAt = now

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	logger.Info("rental request created", "rental_request_id", req.ID, "email", req.CustomerInfo.Email)
	return req, nil
}

func (s *rentalRequestService) GetRentalRequest(ctx context.Context, id string) (*domain.RentalRequest, error) {
	return s.requestRepo.GetByID(ctx, id)
}

func (s *rentalRequestService) ListRentalRequests(ctx context.Context) ([]domain.RentalRequest, error) {
	return s.requestRepo.List(ctx)
}

func (s *rentalRequestService) UpdateRentalRequestStatus(ctx context.Context, id string, status domain.RentalRequestStatus) (*domain.RentalRequest, error) {
	valid := false
	for _, st := range domain.RentalRequestStatuses {
		if st == status {
			valid = true
			break
		}
	}
	if !valid {
		return nil, domain.NewValidationError("status", "must be pending, approved or rejected")
	}

	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Classification only: any of the valid statuses may be set from any
	// other, and nothing downstream is triggered by the change.
	req.Status = status
	req.UpdatedAt = time.Now().UTC()
	if err := s.requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *rentalRequestService) DeleteRentalRequest(ctx context.Context, id string) error {
	return s.requestRepo.Delete(ctx, id)
}
