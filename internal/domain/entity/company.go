package entity

// Company is the creditor profile: the billing identity printed on
// every QR bill. A single profile is configured per installation.
type Company struct {
	name    string
	address string
	qrIBAN  string
}

func NewCompany(name, address, qrIBAN string) *Company {
	return &Company{
		name:    name,
		address: address,
		qrIBAN:  qrIBAN,
	}
}

func (c *Company) Name() string {
	return c.name
}

func (c *Company) Address() string {
	return c.address
}

func (c *Company) QRIBAN() string {
	return c.qrIBAN
}
