package entity

// Customer is either a reference to a customer known by the API (ID set) or the data of a
// customer to be created alongside another resource (ID empty).
type Customer struct {
	ID       string
	Metadata *CustomerMetadata
}

type CustomerMetadata struct {
	Name      string
	Email     string
	Cellphone string
	TaxID     string
}

func (c *Customer) HasID() bool {
	return c != nil && c.ID != ""
}
