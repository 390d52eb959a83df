package service

import (
	"context"
	"fmt"

	"bloodbank-data/internal/domain"
	"bloodbank-data/internal/repository"

	"go.uber.org/zap"
)

// HospitalService hospital registry
type HospitalService struct {
	hospitalsRepo repository.HospitalsRepository
	logger        *zap.Logger
}

func NewHospitalService(hospitalsRepo repository.HospitalsRepository, logger *zap.Logger) *HospitalService {
	return &HospitalService{hospitalsRepo: hospitalsRepo, logger: logger}
}

// CreateHospitalRequest hospital form fields
type CreateHospitalRequest struct {
	HospitalID string `json:"hosp_id"`
	Name       string `json:"hosp_name"`
	Location   string `json:"location"`
}

func (s *HospitalService) CreateHospital(ctx context.Context, req CreateHospitalRequest) (*domain.Hospital, error) {
	if err := validateID("hosp_id", req.HospitalID); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("hosp_name is required")
	}
	if req.Location == "" {
		return nil, fmt.Errorf("location is required")
	}

	hospital := &domain.Hospital{
		HospitalID: req.HospitalID,
		Name:       req.Name,
		Location:   req.Location,
	}
	if err := s.hospitalsRepo.CreateHospital(ctx, hospital); err != nil {
		return nil, fmt.Errorf("failed to create hospital: %w", err)
	}

	s.logger.Info("Hospital created", zap.String("hosp_id", hospital.HospitalID))
	return hospital, nil
}

func (s *HospitalService) ListHospitals(ctx context.Context) ([]*domain.Hospital, error) {
	hospitals, err := s.hospitalsRepo.ListHospitals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	return hospitals, nil
}
