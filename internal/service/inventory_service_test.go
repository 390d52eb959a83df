package service

import (
	"context"
	"testing"

	"bloodbank-data/internal/domain"
	"bloodbank-data/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newInventoryFixture(t *testing.T) (*InventoryService, *repository.MemoryRepo) {
	t.Helper()
	mem := repository.NewMemoryRepo()
	svc := NewInventoryService(mem, mem, nil, nil, zap.NewNop())

	err := mem.CreateHospital(context.Background(), &domain.Hospital{
		HospitalID: "HOSP1", Name: "City Hospital", Location: "Downtown",
	})
	require.NoError(t, err)
	return svc, mem
}

func availableUnits(t *testing.T, mem *repository.MemoryRepo, group string) int {
	t.Helper()
	summary, err := mem.Availability(context.Background())
	require.NoError(t, err)
	for _, g := range summary {
		if g.BloodGroup == group {
			return g.TotalUnits
		}
	}
	return 0
}

func TestRecordSupplyCreatesLot(t *testing.T) {
	svc, mem := newInventoryFixture(t)
	ctx := context.Background()

	supply, err := svc.RecordSupply(ctx, RecordSupplyRequest{
		SupplyID: "SUP1", HospitalID: "HOSP1", BloodGroup: "A+", Quantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "SUP1", supply.SupplyID)

	lot, err := mem.GetLot(ctx, "SUPSUP1")
	require.NoError(t, err)
	assert.Equal(t, "A+", lot.BloodGroup)
	assert.Equal(t, 5, lot.Quantity)
}

func TestRecordSupplyAccumulatesExistingLot(t *testing.T) {
	svc, mem := newInventoryFixture(t)
	ctx := context.Background()

	require.NoError(t, mem.AddStock(ctx, "SUPSUP2", "B-", 4))
	_, err := svc.RecordSupply(ctx, RecordSupplyRequest{
		SupplyID: "SUP2", HospitalID: "HOSP1", BloodGroup: "B-", Quantity: 6,
	})
	require.NoError(t, err)

	lot, err := mem.GetLot(ctx, "SUPSUP2")
	require.NoError(t, err)
	assert.Equal(t, 10, lot.Quantity)
}

func TestRecordSupplyUnknownHospital(t *testing.T) {
	svc, _ := newInventoryFixture(t)
	_, err := svc.RecordSupply(context.Background(), RecordSupplyRequest{
		SupplyID: "SUP3", HospitalID: "NOPE", BloodGroup: "A+", Quantity: 5,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlaceOrderDeductsStock(t *testing.T) {
	svc, mem := newInventoryFixture(t)
	ctx := context.Background()

	require.NoError(t, mem.AddStock(ctx, "STO1", "A+", 10))

	order, err := svc.PlaceOrder(ctx, PlaceOrderRequest{
		OrderID: "ORD1", HospitalID: "HOSP1", BloodGroup: "A+", Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, 7, availableUnits(t, mem, "A+"))
}

func TestPlaceOrderSpansLots(t *testing.T) {
	svc, mem := newInventoryFixture(t)
	ctx := context.Background()

	// Two lots of the same group; the lower storage id is drained first.
	require.NoError(t, mem.AddStock(ctx, "STO1", "O-", 2))
	require.NoError(t, mem.AddStock(ctx, "STO2", "O-", 5))

	_, err := svc.PlaceOrder(ctx, PlaceOrderRequest{
		OrderID: "ORD2", HospitalID: "HOSP1", BloodGroup: "O-", Quantity: 4,
	})
	require.NoError(t, err)

	first, err := mem.GetLot(ctx, "STO1")
	require.NoError(t, err)
	assert.Equal(t, 0, first.Quantity)
	second, err := mem.GetLot(ctx, "STO2")
	require.NoError(t, err)
	assert.Equal(t, 3, second.Quantity)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	svc, mem := newInventoryFixture(t)
	ctx := context.Background()

	require.NoError(t, mem.AddStock(ctx, "STO1", "AB-", 2))

	_, err := svc.PlaceOrder(ctx, PlaceOrderRequest{
		OrderID: "ORD3", HospitalID: "HOSP1", BloodGroup: "AB-", Quantity: 5,
	})
	require.ErrorIs(t, err, repository.ErrInsufficientStock)

	// Nothing written: no order row, stock untouched.
	_, err = mem.GetOrder(ctx, "ORD3")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, 2, availableUnits(t, mem, "AB-"))
}

func TestPlaceOrderDuplicateID(t *testing.T) {
	svc, mem := newInventoryFixture(t)
	ctx := context.Background()

	require.NoError(t, mem.AddStock(ctx, "STO1", "A+", 20))
	_, err := svc.PlaceOrder(ctx, PlaceOrderRequest{
		OrderID: "ORD4", HospitalID: "HOSP1", BloodGroup: "A+", Quantity: 1,
	})
	require.NoError(t, err)

	_, err = svc.PlaceOrder(ctx, PlaceOrderRequest{
		OrderID: "ORD4", HospitalID: "HOSP1", BloodGroup: "A+", Quantity: 1,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateID)
}

func TestPlaceOrderValidation(t *testing.T) {
	svc, _ := newInventoryFixture(t)
	ctx := context.Background()

	cases := []PlaceOrderRequest{
		{OrderID: "", HospitalID: "HOSP1", BloodGroup: "A+", Quantity: 1},
		{OrderID: "ORD5", HospitalID: "HOSP1", BloodGroup: "X+", Quantity: 1},
		{OrderID: "ORD5", HospitalID: "HOSP1", BloodGroup: "A+", Quantity: 0},
		{OrderID: "ORD5", HospitalID: "HOSP1", BloodGroup: "A+", Quantity: 51},
		{OrderID: "ORD 5", HospitalID: "HOSP1", BloodGroup: "A+", Quantity: 1},
	}
	for _, req := range cases {
		_, err := svc.PlaceOrder(ctx, req)
		assert.Error(t, err, "request %+v should fail validation", req)
	}
}

func TestCancelOrderRestoresStock(t *testing.T) {
	svc, mem := newInventoryFixture(t)
	ctx := context.Background()

	require.NoError(t, mem.AddStock(ctx, "STO1", "A+", 10))
	_, err := svc.PlaceOrder(ctx, PlaceOrderRequest{
		OrderID: "ORD6", HospitalID: "HOSP1", BloodGroup: "A+", Quantity: 4,
	})
	require.NoError(t, err)
	require.Equal(t, 6, availableUnits(t, mem, "A+"))

	order, err := svc.CancelOrder(ctx, "ORD6")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, order.Status)
	assert.Equal(t, 10, availableUnits(t, mem, "A+"))

	// Terminal state: a second cancel is rejected and credits nothing.
	_, err = svc.CancelOrder(ctx, "ORD6")
	assert.ErrorIs(t, err, repository.ErrOrderNotPending)
	assert.Equal(t, 10, availableUnits(t, mem, "A+"))
}

func TestCancelOrderWithoutRemainingLots(t *testing.T) {
	svc, mem := newInventoryFixture(t)
	ctx := context.Background()

	// The order drains the group's only lot; the memory ledger still holds
	// the empty lot, so cancellation credits it back.
	require.NoError(t, mem.AddStock(ctx, "STO1", "B+", 3))
	_, err := svc.PlaceOrder(ctx, PlaceOrderRequest{
		OrderID: "ORD7", HospitalID: "HOSP1", BloodGroup: "B+", Quantity: 3,
	})
	require.NoError(t, err)
	require.Equal(t, 0, availableUnits(t, mem, "B+"))

	_, err = svc.CancelOrder(ctx, "ORD7")
	require.NoError(t, err)
	assert.Equal(t, 3, availableUnits(t, mem, "B+"))
}

func TestFulfillOrderLeavesStockAlone(t *testing.T) {
	svc, mem := newInventoryFixture(t)
	ctx := context.Background()

	require.NoError(t, mem.AddStock(ctx, "STO1", "O+", 10))
	_, err := svc.PlaceOrder(ctx, PlaceOrderRequest{
		OrderID: "ORD8", HospitalID: "HOSP1", BloodGroup: "O+", Quantity: 4,
	})
	require.NoError(t, err)

	order, err := svc.FulfillOrder(ctx, "ORD8")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusFulfilled, order.Status)
	// Units were deducted at placement; fulfilment only flips the status.
	assert.Equal(t, 6, availableUnits(t, mem, "O+"))

	_, err = svc.CancelOrder(ctx, "ORD8")
	assert.ErrorIs(t, err, repository.ErrOrderNotPending)
}

func TestAdjustStockAddAndRemove(t *testing.T) {
	svc, mem := newInventoryFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.AdjustStock(ctx, AdjustStockRequest{
		StorageID: "STO9", BloodGroup: "AB+", Action: "Add", Quantity: 5,
	}))
	lot, err := mem.GetLot(ctx, "STO9")
	require.NoError(t, err)
	require.Equal(t, 5, lot.Quantity)

	// Removing more than the lot holds clamps at zero.
	require.NoError(t, svc.AdjustStock(ctx, AdjustStockRequest{
		StorageID: "STO9", Action: "Remove", Quantity: 10,
	}))
	lot, err = mem.GetLot(ctx, "STO9")
	require.NoError(t, err)
	assert.Equal(t, 0, lot.Quantity)

	// Removing from an unknown storage id is a no-op.
	require.NoError(t, svc.AdjustStock(ctx, AdjustStockRequest{
		StorageID: "GHOST1", Action: "Remove", Quantity: 10,
	}))
	_, err = mem.GetLot(ctx, "GHOST1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAdjustStockValidation(t *testing.T) {
	svc, _ := newInventoryFixture(t)
	ctx := context.Background()

	assert.Error(t, svc.AdjustStock(ctx, AdjustStockRequest{
		StorageID: "STO9", BloodGroup: "AB+", Action: "Transfer", Quantity: 5,
	}))
	assert.Error(t, svc.AdjustStock(ctx, AdjustStockRequest{
		StorageID: "STO9", BloodGroup: "AB+", Action: "Add", Quantity: 101,
	}))
	assert.Error(t, svc.AdjustStock(ctx, AdjustStockRequest{
		StorageID: "", BloodGroup: "AB+", Action: "Add", Quantity: 5,
	}))
	assert.Error(t, svc.AdjustStock(ctx, AdjustStockRequest{
		StorageID: "STO9", BloodGroup: "ZZ", Action: "Add", Quantity: 5,
	}))
}
