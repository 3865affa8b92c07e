package customer

import (
	"fmt"
	"time"
)

// Customer is a boarder registered under a tenant. Customers are tenant-local
// records, not login accounts.
type Customer struct {
	id        uint
	tenantID  uint
	fullName  string
	phone     string
	email     string
	ktpNumber string
	address   string
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(tenantID uint, fullName, phone, email, ktpNumber, address string) (*Customer, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if fullName == "" {
		return nil, fmt.Errorf("customer full name is required")
	}

	now := time.Now()
	return &Customer{
		tenantID:  tenantID,
		fullName:  fullName,
		phone:     phone,
		email:     email,
		ktpNumber: ktpNumber,
		address:   address,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCustomer(id, tenantID uint, fullName, phone, email, ktpNumber, address string,
	createdAt, updatedAt time.Time) (*Customer, error) {

	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}

	return &Customer{
		id:        id,
		tenantID:  tenantID,
		fullName:  fullName,
		phone:     phone,
		email:     email,
		ktpNumber: ktpNumber,
		address:   address,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Customer) ID() uint {
	return c.id
}

func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Customer) TenantID() uint {
	return c.tenantID
}

func (c *Customer) FullName() string {
	return c.fullName
}

func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) KTPNumber() string {
	return c.ktpNumber
}

func (c *Customer) Address() string {
	return c.address
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Customer) Update(fullName, phone, email, ktpNumber, address string) error {
	if fullName == "" {
		return fmt.Errorf("customer full name is required")
	}
	c.fullName = fullName
	c.phone = phone
	c.email = email
	c.ktpNumber = ktpNumber
	c.address = address
	c.updatedAt = time.Now()
	return nil
}

func (c *Customer) BelongsTo(tenantID uint) bool {
	return c.tenantID == tenantID
}
