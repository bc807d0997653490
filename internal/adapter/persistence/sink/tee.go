package sink

import (
	"context"

	"ordenes_xpto/internal/usecase/interfaces"
)

// Tee records into every sink in order and stops at the first failure.
type Tee struct {
	sinks []interfaces.IPersistenceSink
}

var _ interfaces.IPersistenceSink = (*Tee)(nil)

func NewTee(sinks ...interfaces.IPersistenceSink) *Tee {
	return &Tee{sinks: sinks}
}

func (t *Tee) Record(ctx context.Context, description string, connectionTag string) error {
	for _, s := range t.sinks {
		if err := s.Record(ctx, description, connectionTag); err != nil {
			return err
		}
	}
	return nil
}
