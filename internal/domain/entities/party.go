package entities

import "fmt"

// Client is the customer (cliente) who owns a work order.
//
// Clients are shared between orders; an order only keeps a reference.
type Client struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Number string `json:"number" yaml:"number"`
}

func (c Client) String() string {
	return fmt.Sprintf("Cliente[ID: %d, Nombre: %s, Contacto: %s]", c.ID, c.Name, c.Number)
}

// Technician (técnico) is the staff member assigned to follow work orders.
//
// A technician receives status notifications through a Notifiable adapter
// (see adapter/notification), the entity itself stays a plain record.
type Technician struct {
	ID        int    `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Specialty string `json:"specialty" yaml:"specialty"`
}

func (t Technician) String() string {
	return fmt.Sprintf("Técnico[ID: %d, Nombre: %s, Especialidad: %s]", t.ID, t.Name, t.Specialty)
}
