package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kostera/internal/application/finance/usecases"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

// FinanceHandler sits behind the allowFinance feature gate.
type FinanceHandler struct {
	createExpenseUC *usecases.CreateExpenseUseCase
	listExpensesUC  *usecases.ListExpensesUseCase
	deleteExpenseUC *usecases.DeleteExpenseUseCase
	summaryUseCase  *usecases.GetFinanceSummaryUseCase
	logger          logger.Interface
}

func NewFinanceHandler(
	createExpenseUC *usecases.CreateExpenseUseCase,
	listExpensesUC *usecases.ListExpensesUseCase,
	deleteExpenseUC *usecases.DeleteExpenseUseCase,
	summaryUC *usecases.GetFinanceSummaryUseCase,
	logger logger.Interface,
) *FinanceHandler {
	return &FinanceHandler{
		createExpenseUC: createExpenseUC,
		listExpensesUC:  listExpensesUC,
		deleteExpenseUC: deleteExpenseUC,
		summaryUseCase:  summaryUC,
		logger:          logger,
	}
}

type CreateExpenseRequest struct {
	Title       string     `json:"title" binding:"required,min=2,max=100"`
	Amount      uint64     `json:"amount" binding:"required"`
	Category    string     `json:"category"`
	ExpenseDate *time.Time `json:"expense_date"`
}

func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreateExpenseCommand{
		TenantID: tenantID,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
	}
	if req.ExpenseDate != nil {
		cmd.ExpenseDate = *req.ExpenseDate
	}

	created, err := h.createExpenseUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.CreatedResponse(c, created, "expense recorded")
}

func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	expenses, err := h.listExpensesUC.Execute(c.Request.Context(), tenantID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, expenses)
}

func (h *FinanceHandler) DeleteExpense(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}
	expenseID, err := utils.ParseUintParam(c, "id", "expense")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.deleteExpenseUC.Execute(c.Request.Context(), tenantID, expenseID); err != nil {
		handleDomainError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Summary reports paid revenue against recorded expenses.
func (h *FinanceHandler) Summary(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	summary, err := h.summaryUseCase.Execute(c.Request.Context(), tenantID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, summary)
}
