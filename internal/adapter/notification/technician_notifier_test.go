package notification

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"ordenes_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

// TestTechnicianNotifier_Notify verifies the console line for a technician.
func TestTechnicianNotifier_Notify(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tech := entities.Technician{ID: 1, Name: "Gabriel Valeta", Specialty: "Reparación de electrodomésticos"}
	n := NewTechnicianNotifier(tech, &out)

	require.NoError(t, n.Notify(context.Background(), "La orden 1 ha cambiado su estado a: En Proceso"))
	assert.Equal(t, "Técnico Gabriel Valeta notificado: La orden 1 ha cambiado su estado a: En Proceso\n", out.String())
	assert.Equal(t, tech, n.Technician())
}

// TestTechnicianNotifier_WriteError verifies output failures are returned to the broadcaster.
func TestTechnicianNotifier_WriteError(t *testing.T) {
	t.Parallel()

	n := NewTechnicianNotifier(entities.Technician{Name: "x"}, failingWriter{})
	assert.Error(t, n.Notify(context.Background(), "m"))
}

// TestTechnicianNotifier_ThroughWorkOrder verifies the notifier works as a work order recipient.
func TestTechnicianNotifier_ThroughWorkOrder(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	svc, err := entities.NewService(entities.ServiceKindRepair, 1, "Reparación de lavadora", 150)
	require.NoError(t, err)
	order := entities.NewWorkOrder(1, &entities.Client{ID: 1, Name: "Felix Velazquez"}, svc)
	order.AddRecipient(NewTechnicianNotifier(entities.Technician{ID: 1, Name: "Gabriel Valeta"}, &out))

	require.NoError(t, order.ChangeStatus(context.Background(), entities.WorkOrderStatusEnProceso))
	require.NoError(t, order.ChangeStatus(context.Background(), entities.WorkOrderStatusCompletada))

	assert.Equal(t,
		"Técnico Gabriel Valeta notificado: La orden 1 ha cambiado su estado a: En Proceso\n"+
			"Técnico Gabriel Valeta notificado: La orden 1 ha cambiado su estado a: Completada\n",
		out.String())
}
