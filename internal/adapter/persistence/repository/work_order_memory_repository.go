package repository

import (
	"context"
	"sort"
	"sync"

	"ordenes_xpto/internal/domain/entities"
	"ordenes_xpto/internal/usecase/interfaces"
)

// WorkOrderMemoryRepository keeps work orders in process memory.
type WorkOrderMemoryRepository struct {
	mu     sync.RWMutex
	orders map[int]*entities.WorkOrder
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderMemoryRepository)(nil)

func NewWorkOrderMemoryRepository() *WorkOrderMemoryRepository {
	return &WorkOrderMemoryRepository{orders: make(map[int]*entities.WorkOrder)}
}

func (r *WorkOrderMemoryRepository) Create(_ context.Context, order *entities.WorkOrder) (*entities.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order
	return order, nil
}

func (r *WorkOrderMemoryRepository) GetByID(_ context.Context, id int) (*entities.WorkOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.orders[id], nil
}

// List returns the orders sorted by id.
func (r *WorkOrderMemoryRepository) List(_ context.Context) ([]*entities.WorkOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*entities.WorkOrder, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}
