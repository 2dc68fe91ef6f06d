package backend

import (
	"context"
	"fmt"

	"shopadmin/internal/apis/backend/endpoints"
	"shopadmin/internal/apis/backend/failure"
	"shopadmin/internal/apis/backend/responses"
)

type CategoryService interface {
	List(ctx context.Context, page, size int) (responses.Page[Category], error)
	Get(ctx context.Context, id int64) (Category, error)
	Create(ctx context.Context, c MinimalCategory) (Category, error)
	Edit(ctx context.Context, c MinimalCategory) (Category, error)
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	api    *endpoints.Client
	policy *failure.Policy
}

func (s *categoryService) List(ctx context.Context, page, size int) (responses.Page[Category], error) {
	out, err := s.api.ListCategories(ctx, page, size)
	return out, s.policy.Handle("list categories", err)
}

func (s *categoryService) Get(ctx context.Context, id int64) (Category, error) {
	out, err := s.api.GetCategory(ctx, id)
	return out, s.policy.Handle("get category", err)
}

func (s *categoryService) Create(ctx context.Context, c MinimalCategory) (Category, error) {
	out, err := s.api.CreateCategory(ctx, c)
	return out, s.policy.Handle("create category", err)
}

func (s *categoryService) Edit(ctx context.Context, c MinimalCategory) (Category, error) {
	if c.ID == 0 {
		return Category{}, fmt.Errorf("edit category: %w", ErrMissingID)
	}
	out, err := s.api.EditCategory(ctx, c)
	return out, s.policy.Handle("edit category", err)
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	return s.policy.Handle("delete category", s.api.DeleteCategory(ctx, id))
}
