package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"ordenes_xpto/internal/domain/entities"
	"ordenes_xpto/internal/usecase/interfaces"
)

var (
	ErrWorkOrderNotFound      = errors.New("work order not found")
	ErrWorkOrderAlreadyExists = errors.New("work order already exists")
	ErrInvalidWorkOrderID     = errors.New("invalid work order id")
	ErrInvalidWorkOrderClient = errors.New("invalid work order client")
	ErrInvalidWorkOrderSvc    = errors.New("invalid work order service")
	ErrInvalidStatus          = errors.New("invalid work order status")
	ErrInvalidRecipient       = errors.New("invalid recipient")
)

// IWorkOrderUseCase exposes the work order (orden de trabajo) flow:
//   - open an order for a client and a service
//   - register/unregister recipients of status notifications
//   - change the status, broadcasting the change
//   - save the order through the shared connection
type IWorkOrderUseCase interface {
	OpenOrder(ctx context.Context, id int, client *entities.Client, service entities.Service) (*entities.WorkOrder, error)
	GetOrder(ctx context.Context, id int) (*entities.WorkOrder, error)
	ListOrders(ctx context.Context) ([]*entities.WorkOrder, error)
	AddRecipient(ctx context.Context, orderID int, recipient entities.Notifiable) (entities.RecipientID, error)
	RemoveRecipient(ctx context.Context, orderID int, recipientID entities.RecipientID) error
	ChangeStatus(ctx context.Context, orderID int, status string) (*entities.WorkOrder, error)
	SaveOrder(ctx context.Context, orderID int) error
}

type WorkOrderUseCase struct {
	repo interfaces.IWorkOrderRepository
	sink interfaces.IPersistenceSink
	conn interfaces.IConnection
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, sink interfaces.IPersistenceSink, conn interfaces.IConnection) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, sink: sink, conn: conn}
}

func (u *WorkOrderUseCase) OpenOrder(ctx context.Context, id int, client *entities.Client, service entities.Service) (*entities.WorkOrder, error) {
	if id <= 0 {
		return nil, ErrInvalidWorkOrderID
	}
	if client == nil {
		return nil, ErrInvalidWorkOrderClient
	}
	if service == nil {
		return nil, ErrInvalidWorkOrderSvc
	}

	// Enforce: order ids are unique in the process.
	if existing, err := u.repo.GetByID(ctx, id); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrWorkOrderAlreadyExists
	}

	order := entities.NewWorkOrder(id, client, service)
	created, err := u.repo.Create(ctx, order)
	if err != nil {
		log.Printf("[order][usecase] create failed order_id=%d err=%v", id, err)
		return nil, err
	}
	log.Printf("[order][usecase] opened order_id=%d client_id=%d service_kind=%s status=%s", id, client.ID, service.Kind(), created.Status())
	return created, nil
}

func (u *WorkOrderUseCase) GetOrder(ctx context.Context, id int) (*entities.WorkOrder, error) {
	if id <= 0 {
		return nil, ErrInvalidWorkOrderID
	}

	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrWorkOrderNotFound
	}
	return order, nil
}

func (u *WorkOrderUseCase) ListOrders(ctx context.Context) ([]*entities.WorkOrder, error) {
	return u.repo.List(ctx)
}

func (u *WorkOrderUseCase) AddRecipient(ctx context.Context, orderID int, recipient entities.Notifiable) (entities.RecipientID, error) {
	if recipient == nil {
		return "", ErrInvalidRecipient
	}

	order, err := u.GetOrder(ctx, orderID)
	if err != nil {
		return "", err
	}

	id := order.AddRecipient(recipient)
	log.Printf("[order][usecase] recipient added order_id=%d recipient_id=%s recipients=%d", orderID, id, order.RecipientCount())
	return id, nil
}

func (u *WorkOrderUseCase) RemoveRecipient(ctx context.Context, orderID int, recipientID entities.RecipientID) error {
	order, err := u.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if err := order.RemoveRecipient(recipientID); err != nil {
		log.Printf("[order][usecase] recipient remove failed order_id=%d recipient_id=%s err=%v", orderID, recipientID, err)
		return err
	}
	log.Printf("[order][usecase] recipient removed order_id=%d recipient_id=%s recipients=%d", orderID, recipientID, order.RecipientCount())
	return nil
}

func (u *WorkOrderUseCase) ChangeStatus(ctx context.Context, orderID int, status string) (*entities.WorkOrder, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, ErrInvalidStatus
	}

	order, err := u.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	previous := order.Status()
	if err := order.ChangeStatus(ctx, entities.WorkOrderStatus(status)); err != nil {
		log.Printf("[order][usecase] broadcast failed order_id=%d status=%q err=%v", orderID, status, err)
		return nil, err
	}
	log.Printf("[order][usecase] status changed order_id=%d from=%q to=%q recipients=%d", orderID, previous, status, order.RecipientCount())
	return order, nil
}

func (u *WorkOrderUseCase) SaveOrder(ctx context.Context, orderID int) error {
	order, err := u.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if err := u.sink.Record(ctx, order.String(), u.conn.Tag()); err != nil {
		log.Printf("[order][usecase] save failed order_id=%d err=%v", orderID, err)
		return err
	}
	return nil
}
