package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"bloodbank-data/internal/domain"
)

// MemoryRepo: in-memory implementation of every repository interface, used
// when the DB is not reachable (dev fallback, like the no-DB stub mode) and
// by service unit tests. One mutex guards all maps, so the transactional
// ledger semantics hold trivially.
type MemoryRepo struct {
	mu sync.RWMutex

	donors    map[string]domain.Donor
	employees map[string]domain.Employee
	hospitals map[string]domain.Hospital
	lots      map[string]domain.StorageLot
	orders    map[string]domain.Order
	supplies  map[string]domain.Supply
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		donors:    map[string]domain.Donor{},
		employees: map[string]domain.Employee{},
		hospitals: map[string]domain.Hospital{},
		lots:      map[string]domain.StorageLot{},
		orders:    map[string]domain.Order{},
		supplies:  map[string]domain.Supply{},
	}
}

// ---- donors ----

func (r *MemoryRepo) ListDonors(_ context.Context) ([]*domain.Donor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Donor, 0, len(r.donors))
	for _, d := range r.donors {
		d := d
		out = append(out, &d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DonorName < out[j].DonorName })
	return out, nil
}

func (r *MemoryRepo) ListRecentDonors(ctx context.Context, limit int) ([]*domain.Donor, error) {
	all, err := r.ListDonors(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *MemoryRepo) GetDonor(_ context.Context, donorID string) (*domain.Donor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.donors[donorID]
	if !ok {
		return nil, fmt.Errorf("donor not found: dona_id=%s: %w", donorID, ErrNotFound)
	}
	return &d, nil
}

func (r *MemoryRepo) CreateDonor(_ context.Context, donor *domain.Donor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.donors[donor.DonorID]; ok {
		return fmt.Errorf("donor %s: %w", donor.DonorID, ErrDuplicateID)
	}
	r.donors[donor.DonorID] = *donor
	return nil
}

// ---- employees ----

func (r *MemoryRepo) ListEmployees(_ context.Context) ([]*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryRepo) CreateEmployee(_ context.Context, employee *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[employee.EmployeeID]; ok {
		return fmt.Errorf("employee %s: %w", employee.EmployeeID, ErrDuplicateID)
	}
	r.employees[employee.EmployeeID] = *employee
	return nil
}

// ---- hospitals ----

func (r *MemoryRepo) ListHospitals(_ context.Context) ([]*domain.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Hospital, 0, len(r.hospitals))
	for _, h := range r.hospitals {
		h := h
		out = append(out, &h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryRepo) GetHospital(_ context.Context, hospitalID string) (*domain.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.hospitals[hospitalID]
	if !ok {
		return nil, fmt.Errorf("hospital not found: hosp_id=%s: %w", hospitalID, ErrNotFound)
	}
	return &h, nil
}

func (r *MemoryRepo) CreateHospital(_ context.Context, hospital *domain.Hospital) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hospitals[hospital.HospitalID]; ok {
		return fmt.Errorf("hospital %s: %w", hospital.HospitalID, ErrDuplicateID)
	}
	r.hospitals[hospital.HospitalID] = *hospital
	return nil
}

// ---- orders (read) ----

func (r *MemoryRepo) ListOrders(_ context.Context) ([]*domain.OrderWithHospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ordersWithHospitalLocked(""), nil
}

func (r *MemoryRepo) ListPendingOrders(_ context.Context, limit int) ([]*domain.OrderWithHospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := r.ordersWithHospitalLocked(domain.OrderStatusPending)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) GetOrder(_ context.Context, orderID string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("order not found: order_id=%s: %w", orderID, ErrNotFound)
	}
	return &o, nil
}

func (r *MemoryRepo) ordersWithHospitalLocked(status string) []*domain.OrderWithHospital {
	out := []*domain.OrderWithHospital{}
	for _, o := range r.orders {
		if status != "" && o.Status != status {
			continue
		}
		item := &domain.OrderWithHospital{Order: o}
		if h, ok := r.hospitals[o.HospitalID]; ok {
			item.HospitalName = h.Name
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.After(out[j].OrderDate) })
	return out
}

// ---- supply (read) ----

func (r *MemoryRepo) ListSupplies(_ context.Context) ([]*domain.SupplyWithHospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.SupplyWithHospital{}
	for _, s := range r.supplies {
		item := &domain.SupplyWithHospital{Supply: s}
		if h, ok := r.hospitals[s.HospitalID]; ok {
			item.HospitalName = h.Name
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SupplyDate.After(out[j].SupplyDate) })
	return out, nil
}

// ---- inventory ledger ----

func (r *MemoryRepo) ListLots(_ context.Context) ([]*domain.StorageLot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.StorageLot, 0, len(r.lots))
	for _, lot := range r.lots {
		lot := lot
		out = append(out, &lot)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StorageID < out[j].StorageID })
	return out, nil
}

func (r *MemoryRepo) GetLot(_ context.Context, storageID string) (*domain.StorageLot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lot, ok := r.lots[storageID]
	if !ok {
		return nil, fmt.Errorf("storage lot not found: storage_id=%s: %w", storageID, ErrNotFound)
	}
	return &lot, nil
}

func (r *MemoryRepo) Availability(_ context.Context) ([]*domain.GroupAvailability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	totals := map[string]int{}
	for _, lot := range r.lots {
		totals[lot.BloodGroup] += lot.Quantity
	}
	out := make([]*domain.GroupAvailability, 0, len(totals))
	for g, t := range totals {
		out = append(out, &domain.GroupAvailability{BloodGroup: g, TotalUnits: t})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalUnits != out[j].TotalUnits {
			return out[i].TotalUnits > out[j].TotalUnits
		}
		return out[i].BloodGroup < out[j].BloodGroup
	})
	return out, nil
}

func (r *MemoryRepo) PlaceOrder(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.OrderID]; ok {
		return fmt.Errorf("order %s: %w", order.OrderID, ErrDuplicateID)
	}

	lots := r.groupLotsLocked(order.BloodGroup)
	total := 0
	for _, id := range lots {
		total += r.lots[id].Quantity
	}
	if total < order.Quantity {
		return fmt.Errorf("blood group %s: need %d units, have %d: %w",
			order.BloodGroup, order.Quantity, total, ErrInsufficientStock)
	}

	o := *order
	o.Status = domain.OrderStatusPending
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	r.orders[o.OrderID] = o

	remaining := order.Quantity
	for _, id := range lots {
		if remaining == 0 {
			break
		}
		lot := r.lots[id]
		take := lot.Quantity
		if take > remaining {
			take = remaining
		}
		lot.Quantity -= take
		r.lots[id] = lot
		remaining -= take
	}
	return nil
}

func (r *MemoryRepo) FulfillOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return r.finishOrder(orderID, domain.OrderStatusFulfilled)
}

func (r *MemoryRepo) CancelOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return r.finishOrder(orderID, domain.OrderStatusCancelled)
}

func (r *MemoryRepo) finishOrder(orderID, status string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok || o.Status != domain.OrderStatusPending {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrOrderNotPending)
	}
	o.Status = status
	r.orders[orderID] = o

	if status == domain.OrderStatusCancelled {
		if ids := r.groupLotsIncludingEmptyLocked(o.BloodGroup); len(ids) > 0 {
			lot := r.lots[ids[0]]
			lot.Quantity += o.Quantity
			r.lots[ids[0]] = lot
		} else {
			r.lots["RET"+o.OrderID] = domain.StorageLot{
				StorageID:  "RET" + o.OrderID,
				BloodGroup: o.BloodGroup,
				Quantity:   o.Quantity,
			}
		}
	}
	return &o, nil
}

func (r *MemoryRepo) RecordSupply(_ context.Context, supply *domain.Supply) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.supplies[supply.SupplyID]; ok {
		return fmt.Errorf("supply %s: %w", supply.SupplyID, ErrDuplicateID)
	}
	s := *supply
	if s.SupplyDate.IsZero() {
		s.SupplyDate = time.Now()
	}
	r.supplies[s.SupplyID] = s

	id := "SUP" + s.SupplyID
	lot, ok := r.lots[id]
	if !ok {
		lot = domain.StorageLot{StorageID: id, BloodGroup: s.BloodGroup}
	}
	lot.Quantity += s.Quantity
	r.lots[id] = lot
	return nil
}

func (r *MemoryRepo) AddStock(_ context.Context, storageID, bloodGroup string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lot, ok := r.lots[storageID]
	if !ok {
		lot = domain.StorageLot{StorageID: storageID, BloodGroup: bloodGroup}
	}
	lot.Quantity += quantity
	r.lots[storageID] = lot
	return nil
}

func (r *MemoryRepo) RemoveStock(_ context.Context, storageID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lot, ok := r.lots[storageID]
	if !ok {
		return nil
	}
	lot.Quantity -= quantity
	if lot.Quantity < 0 {
		lot.Quantity = 0
	}
	r.lots[storageID] = lot
	return nil
}

// groupLotsLocked non-empty lot ids for a group, lowest storage_id first.
func (r *MemoryRepo) groupLotsLocked(bloodGroup string) []string {
	ids := []string{}
	for id, lot := range r.lots {
		if lot.BloodGroup == bloodGroup && lot.Quantity > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func (r *MemoryRepo) groupLotsIncludingEmptyLocked(bloodGroup string) []string {
	ids := []string{}
	for id, lot := range r.lots {
		if lot.BloodGroup == bloodGroup {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
