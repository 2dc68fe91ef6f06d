package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopadmin/internal/apis/backend"
	"shopadmin/internal/apis/backend/responses"
)

func TestShopProducts_AllCategoriesNeverSendsCategory(t *testing.T) {
	ctx := context.Background()
	page := responses.Page[backend.Product]{Content: []backend.Product{{ID: 1}}, TotalPages: 1}
	all := responses.AllCategories()

	for name, category := range map[string]*backend.Category{"nil": nil, "sentinel": &all} {
		t.Run(name, func(t *testing.T) {
			m := &MockProductService{}
			m.On("ListByShop", ctx, 0, 6, int64(4)).Return(page, nil).Once()

			got, err := NewShopProducts(m, quietLog()).List(ctx, 4, category, 0, 6)
			require.NoError(t, err)
			assert.Equal(t, page, got)
			m.AssertExpectations(t)
			m.AssertNotCalled(t, "ListByShopAndCategory", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestShopProducts_WithCategory(t *testing.T) {
	ctx := context.Background()
	m := &MockProductService{}
	m.On("ListByShopAndCategory", ctx, 1, 6, int64(4), int64(9)).
		Return(responses.Page[backend.Product]{Content: []backend.Product{}}, nil).Once()

	_, err := NewShopProducts(m, quietLog()).List(ctx, 4, &backend.Category{ID: 9, Name: "Drinks"}, 1, 6)
	require.NoError(t, err)
	m.AssertExpectations(t)
}

func TestShopProducts_RequiresShop(t *testing.T) {
	m := &MockProductService{}
	_, err := NewShopProducts(m, quietLog()).List(context.Background(), 0, nil, 0, 6)
	assert.Error(t, err)
	assert.Empty(t, m.Calls)
}
