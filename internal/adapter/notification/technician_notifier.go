package notification

import (
	"context"
	"fmt"
	"io"

	"ordenes_xpto/internal/domain/entities"
)

// TechnicianNotifier delivers work order notifications to a technician by
// printing them to out.
type TechnicianNotifier struct {
	technician entities.Technician
	out        io.Writer
}

var _ entities.Notifiable = (*TechnicianNotifier)(nil)

func NewTechnicianNotifier(technician entities.Technician, out io.Writer) *TechnicianNotifier {
	return &TechnicianNotifier{technician: technician, out: out}
}

func (n *TechnicianNotifier) Technician() entities.Technician {
	return n.technician
}

func (n *TechnicianNotifier) Notify(_ context.Context, message string) error {
	_, err := fmt.Fprintf(n.out, "Técnico %s notificado: %s\n", n.technician.Name, message)
	return err
}
