package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"bloodbank-data/internal/domain"
	"bloodbank-data/internal/repository"
	"bloodbank-data/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mapKV store.KV over a plain map, ignoring TTLs.
type mapKV struct {
	mu   sync.Mutex
	data map[string]string
	gets int
	sets int
}

func newMapKV() *mapKV { return &mapKV{data: map[string]string{}} }

func (m *mapKV) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	v, ok := m.data[key]
	if !ok {
		return "", store.ErrMiss
	}
	return v, nil
}

func (m *mapKV) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	m.data[key] = value
	return nil
}

func (m *mapKV) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func newDashboardFixture(t *testing.T) (*DashboardService, *InventoryService, *repository.MemoryRepo, *mapKV) {
	t.Helper()
	mem := repository.NewMemoryRepo()
	kv := newMapKV()
	cache := NewDashboardCache(kv, zap.NewNop())
	inv := NewInventoryService(mem, mem, cache, nil, zap.NewNop())
	dash := NewDashboardService(mem, mem, mem, mem, cache, zap.NewNop())

	require.NoError(t, mem.CreateHospital(context.Background(), &domain.Hospital{
		HospitalID: "HOSP1", Name: "City Hospital", Location: "Downtown",
	}))
	return dash, inv, mem, kv
}

func TestAvailabilityCacheThrough(t *testing.T) {
	dash, _, mem, kv := newDashboardFixture(t)
	ctx := context.Background()

	require.NoError(t, mem.AddStock(ctx, "STO1", "A+", 7))

	first, err := dash.Availability(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 7, first[0].TotalUnits)
	assert.Equal(t, 1, kv.sets)

	// Second read is served from the cache.
	second, err := dash.Availability(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, kv.sets)
}

func TestAvailabilityCacheInvalidatedByLedgerChange(t *testing.T) {
	dash, inv, mem, _ := newDashboardFixture(t)
	ctx := context.Background()

	require.NoError(t, mem.AddStock(ctx, "STO1", "A+", 10))
	warm, err := dash.Availability(ctx)
	require.NoError(t, err)
	require.Equal(t, 10, warm[0].TotalUnits)

	// A placed order drops the cached summary; the next read recomputes.
	_, err = inv.PlaceOrder(ctx, PlaceOrderRequest{
		OrderID: "ORD1", HospitalID: "HOSP1", BloodGroup: "A+", Quantity: 4,
	})
	require.NoError(t, err)

	fresh, err := dash.Availability(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, fresh[0].TotalUnits)
}

func TestDashboardOverviewPanels(t *testing.T) {
	dash, inv, mem, _ := newDashboardFixture(t)
	ctx := context.Background()

	require.NoError(t, mem.CreateDonor(ctx, &domain.Donor{
		DonorID: "DON100", DonorName: "Asha", BloodGroup: "A+", Contact: "9876543210",
	}))
	require.NoError(t, mem.AddStock(ctx, "STO1", "A+", 10))

	_, err := inv.RecordSupply(ctx, RecordSupplyRequest{
		SupplyID: "SUP1", HospitalID: "HOSP1", BloodGroup: "A+", Quantity: 5,
	})
	require.NoError(t, err)
	_, err = inv.PlaceOrder(ctx, PlaceOrderRequest{
		OrderID: "ORD1", HospitalID: "HOSP1", BloodGroup: "A+", Quantity: 3,
	})
	require.NoError(t, err)

	overview, err := dash.Overview(ctx)
	require.NoError(t, err)

	require.Len(t, overview.Availability, 1)
	assert.Equal(t, 12, overview.Availability[0].TotalUnits) // 10 + 5 - 3

	require.Len(t, overview.RecentDonors, 1)
	assert.Equal(t, "Asha", overview.RecentDonors[0].DonorName)

	require.Len(t, overview.PendingOrders, 1)
	assert.Equal(t, "ORD1", overview.PendingOrders[0].OrderID)
	assert.Equal(t, "City Hospital", overview.PendingOrders[0].HospitalName)

	require.Len(t, overview.RecentActivity, 2)
	for _, entry := range overview.RecentActivity {
		assert.Contains(t, []string{"Order", "Supply"}, entry.Type)
	}
}
