package service

import (
	"context"
	"fmt"

	"bloodbank-data/internal/domain"
	"bloodbank-data/internal/repository"

	"go.uber.org/zap"
)

// DonorService donor registration and listing
type DonorService struct {
	donorsRepo repository.DonorsRepository
	logger     *zap.Logger
}

func NewDonorService(donorsRepo repository.DonorsRepository, logger *zap.Logger) *DonorService {
	return &DonorService{donorsRepo: donorsRepo, logger: logger}
}

// RegisterDonorRequest donor registration form fields
type RegisterDonorRequest struct {
	DonorID    string `json:"dona_id"`
	DonorName  string `json:"dona_name"`
	BloodGroup string `json:"blood_grp"`
	Contact    string `json:"dona_contact"`
}

func (s *DonorService) RegisterDonor(ctx context.Context, req RegisterDonorRequest) (*domain.Donor, error) {
	if err := validateID("dona_id", req.DonorID); err != nil {
		return nil, err
	}
	if req.DonorName == "" {
		return nil, fmt.Errorf("dona_name is required")
	}
	if err := validateBloodGroup(req.BloodGroup); err != nil {
		return nil, err
	}
	if err := validateContact(req.Contact); err != nil {
		return nil, err
	}

	donor := &domain.Donor{
		DonorID:    req.DonorID,
		DonorName:  req.DonorName,
		BloodGroup: req.BloodGroup,
		Contact:    req.Contact,
	}
	if err := s.donorsRepo.CreateDonor(ctx, donor); err != nil {
		return nil, fmt.Errorf("failed to register donor: %w", err)
	}

	s.logger.Info("Donor registered",
		zap.String("dona_id", donor.DonorID),
		zap.String("blood_grp", donor.BloodGroup),
	)
	return donor, nil
}

func (s *DonorService) ListDonors(ctx context.Context) ([]*domain.Donor, error) {
	donors, err := s.donorsRepo.ListDonors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list donors: %w", err)
	}
	return donors, nil
}
