package finance

import "context"

type ExpenseRepository interface {
	Create(ctx context.Context, expense *Expense) error
	GetByID(ctx context.Context, id uint) (*Expense, error)
	Delete(ctx context.Context, id uint) error
	// ListByTenant returns expenses newest expense date first.
	ListByTenant(ctx context.Context, tenantID uint) ([]*Expense, error)
	SumByTenant(ctx context.Context, tenantID uint) (uint64, error)
}
