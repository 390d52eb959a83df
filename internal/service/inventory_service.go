package service

import (
	"context"
	"fmt"

	"bloodbank-data/internal/domain"
	"bloodbank-data/internal/repository"

	"go.uber.org/zap"
)

// InventoryService the ledger operations: placing/fulfilling/cancelling
// orders, recording supply and manual stock adjustment. The repository keeps
// each multi-statement sequence atomic; this layer adds validation, cache
// invalidation and hospital notifications.
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
	hospitalsRepo repository.HospitalsRepository
	cache         *DashboardCache
	notifier      *HospitalNotifier
	logger        *zap.Logger
}

func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	hospitalsRepo repository.HospitalsRepository,
	cache *DashboardCache,
	notifier *HospitalNotifier,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		hospitalsRepo: hospitalsRepo,
		cache:         cache,
		notifier:      notifier,
		logger:        logger,
	}
}

// PlaceOrderRequest order form fields
type PlaceOrderRequest struct {
	OrderID    string `json:"order_id"`
	HospitalID string `json:"hosp_id"`
	BloodGroup string `json:"blood_grp"`
	Quantity   int    `json:"quantity"`
}

func (s *InventoryService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*domain.Order, error) {
	if err := validateID("order_id", req.OrderID); err != nil {
		return nil, err
	}
	if err := validateID("hosp_id", req.HospitalID); err != nil {
		return nil, err
	}
	if err := validateBloodGroup(req.BloodGroup); err != nil {
		return nil, err
	}
	if err := validateQuantity(req.Quantity, 50); err != nil {
		return nil, err
	}
	// Fail on an unknown hospital before touching the ledger, so the FK
	// violation does not surface as a raw store error.
	if _, err := s.hospitalsRepo.GetHospital(ctx, req.HospitalID); err != nil {
		return nil, err
	}

	order := &domain.Order{
		OrderID:    req.OrderID,
		HospitalID: req.HospitalID,
		BloodGroup: req.BloodGroup,
		Quantity:   req.Quantity,
		Status:     domain.OrderStatusPending,
	}
	if err := s.inventoryRepo.PlaceOrder(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.OrderID),
		zap.String("blood_grp", order.BloodGroup),
		zap.Int("quantity", order.Quantity),
	)
	s.afterLedgerChange(ctx, order, "placed")
	return order, nil
}

func (s *InventoryService) FulfillOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.inventoryRepo.FulfillOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Order fulfilled", zap.String("order_id", orderID))
	s.afterLedgerChange(ctx, order, "fulfilled")
	return order, nil
}

func (s *InventoryService) CancelOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.inventoryRepo.CancelOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Order cancelled, stock returned",
		zap.String("order_id", orderID),
		zap.String("blood_grp", order.BloodGroup),
		zap.Int("quantity", order.Quantity),
	)
	s.afterLedgerChange(ctx, order, "cancelled")
	return order, nil
}

// RecordSupplyRequest supply form fields
type RecordSupplyRequest struct {
	SupplyID   string `json:"supply_id"`
	HospitalID string `json:"hosp_id"`
	BloodGroup string `json:"blood_grp"`
	Quantity   int    `json:"quantity"`
}

func (s *InventoryService) RecordSupply(ctx context.Context, req RecordSupplyRequest) (*domain.Supply, error) {
	if err := validateID("supply_id", req.SupplyID); err != nil {
		return nil, err
	}
	if err := validateID("hosp_id", req.HospitalID); err != nil {
		return nil, err
	}
	if err := validateBloodGroup(req.BloodGroup); err != nil {
		return nil, err
	}
	if err := validateQuantity(req.Quantity, 50); err != nil {
		return nil, err
	}
	if _, err := s.hospitalsRepo.GetHospital(ctx, req.HospitalID); err != nil {
		return nil, err
	}

	supply := &domain.Supply{
		SupplyID:   req.SupplyID,
		HospitalID: req.HospitalID,
		BloodGroup: req.BloodGroup,
		Quantity:   req.Quantity,
	}
	if err := s.inventoryRepo.RecordSupply(ctx, supply); err != nil {
		return nil, err
	}

	s.logger.Info("Supply recorded",
		zap.String("supply_id", supply.SupplyID),
		zap.String("blood_grp", supply.BloodGroup),
		zap.Int("quantity", supply.Quantity),
	)
	s.afterLedgerChange(ctx, nil, "")
	return supply, nil
}

// AdjustStockRequest manual inventory adjustment form fields
type AdjustStockRequest struct {
	StorageID  string `json:"storage_id"`
	BloodGroup string `json:"blood_grp"`
	Action     string `json:"action"` // "Add" | "Remove"
	Quantity   int    `json:"quantity"`
}

func (s *InventoryService) AdjustStock(ctx context.Context, req AdjustStockRequest) error {
	if err := validateID("storage_id", req.StorageID); err != nil {
		return err
	}
	if err := validateQuantity(req.Quantity, 100); err != nil {
		return err
	}

	switch req.Action {
	case "Add":
		if err := validateBloodGroup(req.BloodGroup); err != nil {
			return err
		}
		if err := s.inventoryRepo.AddStock(ctx, req.StorageID, req.BloodGroup, req.Quantity); err != nil {
			return err
		}
	case "Remove":
		if err := s.inventoryRepo.RemoveStock(ctx, req.StorageID, req.Quantity); err != nil {
			return err
		}
	default:
		return fmt.Errorf("action must be Add or Remove")
	}

	s.logger.Info("Stock adjusted",
		zap.String("storage_id", req.StorageID),
		zap.String("action", req.Action),
		zap.Int("quantity", req.Quantity),
	)
	s.afterLedgerChange(ctx, nil, "")
	return nil
}

func (s *InventoryService) ListLots(ctx context.Context) ([]*domain.StorageLot, error) {
	return s.inventoryRepo.ListLots(ctx)
}

func (s *InventoryService) Availability(ctx context.Context) ([]*domain.GroupAvailability, error) {
	return s.inventoryRepo.Availability(ctx)
}

// afterLedgerChange: drop the cached availability summary and, for order
// transitions, fire the hospital webhook. Neither failure fails the
// mutation; both are logged.
func (s *InventoryService) afterLedgerChange(ctx context.Context, order *domain.Order, event string) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("Failed to invalidate availability cache", zap.Error(err))
		}
	}
	if s.notifier != nil && order != nil {
		s.notifier.NotifyOrderEvent(order, event)
	}
}
