package entity

import "github.com/google/uuid"

// Customer is the billed party. The address is stored as the freeform
// multi-line string entered in the customer record; structuring it is
// the QR-bill core's job.
type Customer struct {
	id      uuid.UUID
	name    string
	address string
}

func NewCustomer(name, address string) *Customer {
	return &Customer{
		id:      uuid.New(),
		name:    name,
		address: address,
	}
}

func ReconstructCustomer(id uuid.UUID, name, address string) *Customer {
	return &Customer{
		id:      id,
		name:    name,
		address: address,
	}
}

func (c *Customer) ID() uuid.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Address() string {
	return c.address
}
