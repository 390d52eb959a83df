package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"bloodbank-data/internal/domain"
	"bloodbank-data/internal/repository"
	"bloodbank-data/internal/store"

	"go.uber.org/zap"
)

const (
	availabilityCacheKey = "bloodbank:dashboard:availability"
	availabilityCacheTTL = 30 * time.Second
)

// DashboardCache redis-backed cache for the availability summary, the one
// dashboard panel that is recomputed on every page load. Ledger mutations
// invalidate it; everything else tolerates 30s staleness anyway.
type DashboardCache struct {
	kv     store.KV
	logger *zap.Logger
}

func NewDashboardCache(kv store.KV, logger *zap.Logger) *DashboardCache {
	if kv == nil {
		return nil
	}
	return &DashboardCache{kv: kv, logger: logger}
}

func (c *DashboardCache) GetAvailability(ctx context.Context) ([]*domain.GroupAvailability, bool) {
	raw, err := c.kv.Get(ctx, availabilityCacheKey)
	if err != nil {
		if err != store.ErrMiss {
			c.logger.Warn("Availability cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var out []*domain.GroupAvailability
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, false
	}
	return out, true
}

func (c *DashboardCache) SetAvailability(ctx context.Context, summary []*domain.GroupAvailability) {
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := c.kv.Set(ctx, availabilityCacheKey, string(raw), availabilityCacheTTL); err != nil {
		c.logger.Warn("Availability cache write failed", zap.Error(err))
	}
}

func (c *DashboardCache) Invalidate(ctx context.Context) error {
	return c.kv.Del(ctx, availabilityCacheKey)
}

// ActivityEntry one row of the recent-activity panel (orders and supplies
// interleaved, newest first).
type ActivityEntry struct {
	Type       string    `json:"type"` // "Order" | "Supply"
	ID         string    `json:"id"`
	BloodGroup string    `json:"blood_grp"`
	Quantity   int       `json:"quantity"`
	Date       time.Time `json:"date"`
}

// DashboardOverview the four panels of the landing page.
type DashboardOverview struct {
	Availability   []*domain.GroupAvailability `json:"availability"`
	RecentDonors   []*domain.Donor             `json:"recent_donors"`
	PendingOrders  []*domain.OrderWithHospital `json:"pending_orders"`
	RecentActivity []ActivityEntry             `json:"recent_activity"`
}

// DashboardService aggregates the landing-page panels.
type DashboardService struct {
	inventoryRepo repository.InventoryRepository
	donorsRepo    repository.DonorsRepository
	ordersRepo    repository.OrdersRepository
	supplyRepo    repository.SupplyRepository
	cache         *DashboardCache
	logger        *zap.Logger
}

func NewDashboardService(
	inventoryRepo repository.InventoryRepository,
	donorsRepo repository.DonorsRepository,
	ordersRepo repository.OrdersRepository,
	supplyRepo repository.SupplyRepository,
	cache *DashboardCache,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		inventoryRepo: inventoryRepo,
		donorsRepo:    donorsRepo,
		ordersRepo:    ordersRepo,
		supplyRepo:    supplyRepo,
		cache:         cache,
		logger:        logger,
	}
}

func (s *DashboardService) Overview(ctx context.Context) (*DashboardOverview, error) {
	availability, err := s.Availability(ctx)
	if err != nil {
		return nil, err
	}
	donors, err := s.donorsRepo.ListRecentDonors(ctx, 5)
	if err != nil {
		return nil, err
	}
	pending, err := s.ordersRepo.ListPendingOrders(ctx, 5)
	if err != nil {
		return nil, err
	}
	activity, err := s.recentActivity(ctx, 3)
	if err != nil {
		return nil, err
	}

	return &DashboardOverview{
		Availability:   availability,
		RecentDonors:   donors,
		PendingOrders:  pending,
		RecentActivity: activity,
	}, nil
}

// Availability cache-through read of the per-group totals.
func (s *DashboardService) Availability(ctx context.Context) ([]*domain.GroupAvailability, error) {
	if s.cache != nil {
		if cached, ok := s.cache.GetAvailability(ctx); ok {
			return cached, nil
		}
	}
	summary, err := s.inventoryRepo.Availability(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetAvailability(ctx, summary)
	}
	return summary, nil
}

// recentActivity the latest n orders and latest n supplies, merged newest
// first.
func (s *DashboardService) recentActivity(ctx context.Context, n int) ([]ActivityEntry, error) {
	orders, err := s.ordersRepo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	supplies, err := s.supplyRepo.ListSupplies(ctx)
	if err != nil {
		return nil, err
	}

	entries := []ActivityEntry{}
	for i, o := range orders {
		if i == n {
			break
		}
		entries = append(entries, ActivityEntry{
			Type: "Order", ID: o.OrderID, BloodGroup: o.BloodGroup, Quantity: o.Quantity, Date: o.OrderDate,
		})
	}
	for i, sp := range supplies {
		if i == n {
			break
		}
		entries = append(entries, ActivityEntry{
			Type: "Supply", ID: sp.SupplyID, BloodGroup: sp.BloodGroup, Quantity: sp.Quantity, Date: sp.SupplyDate,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
	return entries, nil
}
