package interfaces

import (
	"context"

	"ordenes_xpto/internal/domain/entities"
)

//go:generate mockgen -source=work_order_repository_interface.go -destination=mocks/work_order_repository_interface_mock.go -package=mock_interfaces
//go:generate mockgen -destination=mocks/notifiable_mock.go -package=mock_interfaces ordenes_xpto/internal/domain/entities Notifiable

// IWorkOrderRepository keeps the live work orders of the process.
//
// GetByID returns (nil, nil) when the order does not exist; the use case
// turns that into ErrWorkOrderNotFound.
type IWorkOrderRepository interface {
	Create(ctx context.Context, order *entities.WorkOrder) (*entities.WorkOrder, error)
	GetByID(ctx context.Context, id int) (*entities.WorkOrder, error)
	List(ctx context.Context) ([]*entities.WorkOrder, error)
}
