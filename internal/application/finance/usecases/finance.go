package usecases

import (
	"context"
	"fmt"
	"time"

	"kostera/internal/domain/booking"
	"kostera/internal/domain/finance"
	"kostera/internal/shared/errors"
	"kostera/internal/shared/logger"
)

type ExpenseDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Amount      uint64    `json:"amount"`
	Category    string    `json:"category"`
	ExpenseDate time.Time `json:"expense_date"`
}

func toExpenseDTO(e *finance.Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:          e.ID(),
		Title:       e.Title(),
		Amount:      e.Amount(),
		Category:    e.Category(),
		ExpenseDate: e.ExpenseDate(),
	}
}

type CreateExpenseCommand struct {
	TenantID    uint
	Title       string
	Amount      uint64
	Category    string
	ExpenseDate time.Time
}

type CreateExpenseUseCase struct {
	expenseRepo finance.ExpenseRepository
	logger      logger.Interface
}

func NewCreateExpenseUseCase(expenseRepo finance.ExpenseRepository, logger logger.Interface) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{expenseRepo: expenseRepo, logger: logger}
}

func (uc *CreateExpenseUseCase) Execute(ctx context.Context, cmd CreateExpenseCommand) (*ExpenseDTO, error) {
	expense, err := finance.NewExpense(cmd.TenantID, cmd.Title, cmd.Amount, cmd.Category, cmd.ExpenseDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid expense", err.Error())
	}
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		uc.logger.Errorw("failed to create expense", "error", err, "tenant_id", cmd.TenantID)
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	result := toExpenseDTO(expense)
	return &result, nil
}

type ListExpensesUseCase struct {
	expenseRepo finance.ExpenseRepository
	logger      logger.Interface
}

func NewListExpensesUseCase(expenseRepo finance.ExpenseRepository, logger logger.Interface) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo, logger: logger}
}

func (uc *ListExpensesUseCase) Execute(ctx context.Context, tenantID uint) ([]ExpenseDTO, error) {
	expenses, err := uc.expenseRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to list expenses", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	result := make([]ExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, toExpenseDTO(e))
	}
	return result, nil
}

type DeleteExpenseUseCase struct {
	expenseRepo finance.ExpenseRepository
	logger      logger.Interface
}

func NewDeleteExpenseUseCase(expenseRepo finance.ExpenseRepository, logger logger.Interface) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{expenseRepo: expenseRepo, logger: logger}
}

func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, tenantID, expenseID uint) error {
	expense, err := uc.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		return err
	}
	if !expense.BelongsTo(tenantID) {
		return errors.NewNotFoundError("expense not found")
	}
	if err := uc.expenseRepo.Delete(ctx, expenseID); err != nil {
		uc.logger.Errorw("failed to delete expense", "error", err, "expense_id", expenseID)
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// FinanceSummaryDTO is revenue from settled invoices minus recorded
// expenses. Net is signed since expenses can exceed revenue.
type FinanceSummaryDTO struct {
	Revenue uint64 `json:"revenue"`
	Expense uint64 `json:"expense"`
	Net     int64  `json:"net"`
}

type GetFinanceSummaryUseCase struct {
	invoiceRepo booking.InvoiceRepository
	expenseRepo finance.ExpenseRepository
	logger      logger.Interface
}

func NewGetFinanceSummaryUseCase(
	invoiceRepo booking.InvoiceRepository,
	expenseRepo finance.ExpenseRepository,
	logger logger.Interface,
) *GetFinanceSummaryUseCase {
	return &GetFinanceSummaryUseCase{
		invoiceRepo: invoiceRepo,
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *GetFinanceSummaryUseCase) Execute(ctx context.Context, tenantID uint) (*FinanceSummaryDTO, error) {
	revenue, err := uc.invoiceRepo.SumPaidByTenant(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to sum revenue", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	expense, err := uc.expenseRepo.SumByTenant(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to sum expenses", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return &FinanceSummaryDTO{
		Revenue: revenue,
		Expense: expense,
		Net:     int64(revenue) - int64(expense),
	}, nil
}
