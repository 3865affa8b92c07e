package finance

import (
	"fmt"
	"time"
)

// Expense is money spent by a tenant, categorized free-form, for example
// Maintenance, Utilities or Salary.
type Expense struct {
	id          uint
	tenantID    uint
	title       string
	amount      uint64
	category    string
	expenseDate time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewExpense(tenantID uint, title string, amount uint64, category string, expenseDate time.Time) (*Expense, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("expense title is required")
	}
	if expenseDate.IsZero() {
		expenseDate = time.Now()
	}

	now := time.Now()
	return &Expense{
		tenantID:    tenantID,
		title:       title,
		amount:      amount,
		category:    category,
		expenseDate: expenseDate,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructExpense(id, tenantID uint, title string, amount uint64, category string,
	expenseDate, createdAt, updatedAt time.Time) (*Expense, error) {

	if id == 0 {
		return nil, fmt.Errorf("expense ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}

	return &Expense{
		id:          id,
		tenantID:    tenantID,
		title:       title,
		amount:      amount,
		category:    category,
		expenseDate: expenseDate,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (e *Expense) ID() uint {
	return e.id
}

func (e *Expense) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("expense ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("expense ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Expense) TenantID() uint {
	return e.tenantID
}

func (e *Expense) Title() string {
	return e.title
}

func (e *Expense) Amount() uint64 {
	return e.amount
}

func (e *Expense) Category() string {
	return e.category
}

func (e *Expense) ExpenseDate() time.Time {
	return e.expenseDate
}

func (e *Expense) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Expense) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *Expense) BelongsTo(tenantID uint) bool {
	return e.tenantID == tenantID
}
