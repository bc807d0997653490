package entities

import (
	"context"
	"fmt"
	"sync"
)

// WorkOrderStatus is the free-form status of a work order.
//
// Domain notes:
//   - The usual lifecycle is Pendiente -> En Proceso -> Completada, but any
//     status string is accepted and any transition is allowed.
//   - Every status change is broadcast to the order's recipients.
type WorkOrderStatus string

const (
	WorkOrderStatusPendiente  WorkOrderStatus = "Pendiente"
	WorkOrderStatusEnProceso  WorkOrderStatus = "En Proceso"
	WorkOrderStatusCompletada WorkOrderStatus = "Completada"
)

// WorkOrder (orden de trabajo) links a client to a service and tracks its status.
//
// It embeds NotificationHub, so recipients are registered directly on the
// order. Client and Service are shared references; the order owns only its
// recipient list.
type WorkOrder struct {
	NotificationHub

	ID      int
	Client  *Client
	Service Service

	mu     sync.Mutex
	status WorkOrderStatus
}

func NewWorkOrder(id int, client *Client, service Service) *WorkOrder {
	return &WorkOrder{
		ID:      id,
		Client:  client,
		Service: service,
		status:  WorkOrderStatusPendiente,
	}
}

func (o *WorkOrder) Status() WorkOrderStatus {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// ChangeStatus sets the status and broadcasts the change as one critical
// section. The new status is kept even when a recipient fails; the
// recipient's error is returned.
//
// Recipients must not call back into this order while being notified.
func (o *WorkOrder) ChangeStatus(ctx context.Context, newStatus WorkOrderStatus) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.status = newStatus
	return o.NotifyRecipients(ctx, StatusMessage(o.ID, newStatus))
}

// StatusMessage is the text broadcast when order id moves to status.
func StatusMessage(id int, status WorkOrderStatus) string {
	return fmt.Sprintf("La orden %d ha cambiado su estado a: %s", id, status)
}

func (o *WorkOrder) String() string {
	clientName, serviceDescription := "", ""
	if o.Client != nil {
		clientName = o.Client.Name
	}
	if o.Service != nil {
		serviceDescription = o.Service.Description()
	}
	return fmt.Sprintf("OrdenDeTrabajo[ID: %d, Cliente: %s, Servicio: %s, Estado: %s]",
		o.ID, clientName, serviceDescription, o.Status())
}
