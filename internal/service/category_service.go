package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/budgetwise/internal/storage"
)

// CategoryService implements the Connect CategoryService
type CategoryService struct {
	store storage.CategoryStore
}

// NewCategoryService creates a new CategoryService with the given storage backend.
func NewCategoryService(store storage.CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

// AddCategory creates a new category.
func (s *CategoryService) AddCategory(ctx context.Context, req *connect.Request[AddCategoryRequest]) (*connect.Response[AddCategoryResponse], error) {
	slog.Info("AddCategory request received", "name", req.Msg.Name)

	id, err := s.store.AddCategory(ctx, req.Msg.Name)
	if errors.Is(err, storage.ErrCategoryExists) {
		slog.Info("Category already exists", "name", req.Msg.Name)
		return nil, toConnectError(err)
	}
	if err != nil {
		slog.Error("AddCategory failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Category created", "category_id", id)

	return connect.NewResponse(&AddCategoryResponse{
		ID:      id,
		Message: "Category added successfully",
	}), nil
}

// ListCategories retrieves all categories.
func (s *CategoryService) ListCategories(ctx context.Context, req *connect.Request[ListCategoriesRequest]) (*connect.Response[ListCategoriesResponse], error) {
	slog.Info("ListCategories request received")

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		slog.Error("ListCategories failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&ListCategoriesResponse{Categories: categories}), nil
}
