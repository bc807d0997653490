package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"ordenes_xpto/internal/domain/entities"
)

var (
	ErrInvalidServiceCost = errors.New("invalid service cost")
	ErrInvalidService     = errors.New("invalid service")
)

// IServiceUseCase builds services through the factory and performs them.
type IServiceUseCase interface {
	CreateService(kind string, id int, description string, cost float64) (entities.Service, error)
	PerformService(ctx context.Context, service entities.Service) error
}

type ServiceUseCase struct {
	out io.Writer
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

// NewServiceUseCase writes service completion lines to out.
func NewServiceUseCase(out io.Writer) *ServiceUseCase {
	return &ServiceUseCase{out: out}
}

func (u *ServiceUseCase) CreateService(kind string, id int, description string, cost float64) (entities.Service, error) {
	if cost < 0 {
		return nil, ErrInvalidServiceCost
	}

	svc, err := entities.NewService(entities.ServiceKind(strings.TrimSpace(kind)), id, description, cost)
	if err != nil {
		log.Printf("[service][usecase] create failed kind=%q err=%v", kind, err)
		return nil, err
	}
	log.Printf("[service][usecase] created service_id=%d kind=%s cost=%.2f", svc.ID(), svc.Kind(), svc.Cost())
	return svc, nil
}

func (u *ServiceUseCase) PerformService(_ context.Context, service entities.Service) error {
	if service == nil {
		return ErrInvalidService
	}
	return service.Perform(u.out)
}
