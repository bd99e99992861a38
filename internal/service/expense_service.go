package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/budgetwise/internal/models"
	"github.com/mmynk/budgetwise/internal/storage"
)

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	store storage.ExpenseStore
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.ExpenseStore) *ExpenseService {
	return &ExpenseService{store: store}
}

// AddExpense records a new expense.
func (s *ExpenseService) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	slog.Info("AddExpense request received",
		"category", req.Msg.Category,
		"date", req.Msg.Date,
	)

	if len(req.Msg.Amount) == 0 || req.Msg.Category == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: amount and category are required", storage.ErrInvalidInput))
	}

	amount, err := models.ParseAmount(string(req.Msg.Amount))
	if err != nil {
		slog.Warn("AddExpense rejected", "error", err)
		return nil, toConnectError(err)
	}

	id, err := s.store.AddExpense(ctx, models.NewExpense{
		Amount:      amount,
		Category:    req.Msg.Category,
		Description: req.Msg.Description,
		Date:        req.Msg.Date,
	})
	if err != nil {
		slog.Error("AddExpense failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense created", "expense_id", id, "amount", amount)

	return connect.NewResponse(&AddExpenseResponse{
		ID:      id,
		Message: "Expense added successfully",
	}), nil
}

// ListExpenses retrieves expenses matching the request filters.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	filter := models.ExpenseFilter{
		Category:  req.Msg.Category,
		StartDate: req.Msg.StartDate,
		EndDate:   req.Msg.EndDate,
		Limit:     req.Msg.Limit,
	}
	slog.Info("ListExpenses request received", "filter", filter)

	expenses, err := s.store.ListExpenses(ctx, filter)
	if err != nil {
		slog.Error("ListExpenses failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("ListExpenses successful", "count", len(expenses))

	return connect.NewResponse(&ListExpensesResponse{Expenses: expenses}), nil
}

// DeleteExpense removes an expense by ID.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ID)

	deleted, err := s.store.DeleteExpense(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("DeleteExpense failed", "error", err)
		return nil, toConnectError(err)
	}
	if !deleted {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("expense not found: %d", req.Msg.ID))
	}

	slog.Info("Expense deleted", "expense_id", req.Msg.ID)

	return connect.NewResponse(&DeleteExpenseResponse{Message: "Expense deleted successfully"}), nil
}

// GetSummary returns total spending per expense category.
func (s *ExpenseService) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	slog.Info("GetSummary request received")

	summary, err := s.store.SummaryByCategory(ctx)
	if err != nil {
		slog.Error("GetSummary failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&GetSummaryResponse{Summary: summary}), nil
}
