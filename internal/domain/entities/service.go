package entities

import (
	"fmt"
	"io"
	"strconv"

	"ordenes_xpto/pkg"
)

// ServiceKind selects the concrete service variant built by NewService.
type ServiceKind string

const (
	ServiceKindRepair    ServiceKind = "reparacion"
	ServiceKindITSupport ServiceKind = "soporteIT"
)

// ErrInvalidServiceType is returned by the factory for an unknown kind tag.
// The message is part of the observable behavior and must not change.
var ErrInvalidServiceType = pkg.NewDomainErrorSimple("UNKNOWN_SERVICE_TYPE", "Tipo de servicio no válido.", pkg.KindInvalidArgument)

// Service is a billable service attached to a work order.
//
// The set of variants is closed: only RepairService and ITSupportService
// implement it. Perform writes the variant's completion line to w.
type Service interface {
	ID() int
	Description() string
	Cost() float64
	Kind() ServiceKind
	Perform(w io.Writer) error
	String() string

	isService()
}

// serviceData holds the fields every variant shares.
//
// Cost is expected to be non-negative. The factory does not enforce it;
// the service use case does.
type serviceData struct {
	id          int
	description string
	cost        float64
}

func (s serviceData) ID() int { return s.id }
func (s serviceData) Description() string { return s.description }
func (s serviceData) Cost() float64 { return s.cost }

func (s serviceData) String() string {
	return fmt.Sprintf("Servicio[ID: %d, Descripción: %s, Costo: %s]", s.id, s.description, strconv.FormatFloat(s.cost, 'f', 2, 64))
}

// RepairService is a repair job (reparación).
type RepairService struct {
	serviceData
}

var _ Service = (*RepairService)(nil)

func (*RepairService) Kind() ServiceKind { return ServiceKindRepair }

func (*RepairService) Perform(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Reparación realizada.")
	return err
}

func (*RepairService) isService() {}

// ITSupportService is an IT support job (soporte técnico).
type ITSupportService struct {
	serviceData
}

var _ Service = (*ITSupportService)(nil)

func (*ITSupportService) Kind() ServiceKind { return ServiceKindITSupport }

func (*ITSupportService) Perform(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Soporte técnico brindado.")
	return err
}

func (*ITSupportService) isService() {}

// NewService builds the variant selected by kind.
func NewService(kind ServiceKind, id int, description string, cost float64) (Service, error) {
	data := serviceData{id: id, description: description, cost: cost}
	switch kind {
	case ServiceKindRepair:
		return &RepairService{serviceData: data}, nil
	case ServiceKindITSupport:
		return &ITSupportService{serviceData: data}, nil
	default:
		return nil, ErrInvalidServiceType
	}
}

// ParseServiceKind validates a raw kind tag.
func ParseServiceKind(raw string) (ServiceKind, error) {
	switch k := ServiceKind(raw); k {
	case ServiceKindRepair, ServiceKindITSupport:
		return k, nil
	}
	return "", ErrInvalidServiceType
}
