package sink

import (
	"context"
	"fmt"
	"io"

	"ordenes_xpto/internal/usecase/interfaces"
)

// ConsoleSink is the reference persistence stub: it prints what would be
// saved and which connection would be used.
type ConsoleSink struct {
	out io.Writer
}

var _ interfaces.IPersistenceSink = (*ConsoleSink)(nil)

func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

func (s *ConsoleSink) Record(_ context.Context, description string, connectionTag string) error {
	if _, err := fmt.Fprintf(s.out, "Guardando en la base de datos: %s\n", description); err != nil {
		return err
	}
	_, err := fmt.Fprintf(s.out, "Usando conexión: %s\n", connectionTag)
	return err
}
