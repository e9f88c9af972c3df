package service

import (
	"ArmoryExchange/internal/model"
	"ArmoryExchange/internal/repo"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type storeMocks struct {
	stores     *mockStoreRepo
	categories *mockCategoryRepo
	products   *mockProductRepo
	orders     *mockOrderRepo
}

func newStoreService() (*StoreService, storeMocks) {
	m := storeMocks{
		stores:     new(mockStoreRepo),
		categories: new(mockCategoryRepo),
		products:   new(mockProductRepo),
		orders:     new(mockOrderRepo),
	}
	return NewStoreService(m.stores, m.categories, m.products, m.orders, zap.NewNop().Sugar()), m
}

func int64p(v int64) *int64 { return &v }

func TestStoreService_CreateStore(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		svc, m := newStoreService()
		m.stores.On("GetByOwner", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound).Once()
		m.stores.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Store) bool {
			return s.Name == "Shop" && s.UserID == 7
		})).Return(nil).Once()

		st, err := svc.CreateStore(ctx, 7, " Shop ")
		require.NoError(t, err)
		assert.Equal(t, "Shop", st.Name)
		m.stores.AssertExpectations(t)
	})

	t.Run("owner already has a store", func(t *testing.T) {
		svc, m := newStoreService()
		m.stores.On("GetByOwner", mock.Anything, int64(7)).Return(&model.Store{ID: 1, UserID: 7}, nil).Once()

		_, err := svc.CreateStore(ctx, 7, "Second")
		assert.ErrorIs(t, err, ErrAlreadyHasStore)
		m.stores.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc, m := newStoreService()
		dup := fmt.Errorf("%w: %w", repo.ErrDuplicate, errors.New("UNIQUE constraint failed: stores.name"))
		m.stores.On("GetByOwner", mock.Anything, int64(8)).Return(nil, gorm.ErrRecordNotFound).Twice()
		m.stores.On("Create", mock.Anything, mock.Anything).Return(dup).Once()

		_, err := svc.CreateStore(ctx, 8, "Shop")
		assert.ErrorIs(t, err, ErrStoreNameTaken)
		m.stores.AssertExpectations(t)
	})

	t.Run("duplicate owner lost the race", func(t *testing.T) {
		svc, m := newStoreService()
		dup := fmt.Errorf("%w: %w", repo.ErrDuplicate, errors.New("UNIQUE constraint failed: stores.user_id"))
		m.stores.On("GetByOwner", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound).Once()
		m.stores.On("Create", mock.Anything, mock.Anything).Return(dup).Once()
		m.stores.On("GetByOwner", mock.Anything, int64(9)).Return(&model.Store{ID: 3, UserID: 9}, nil).Once()

		_, err := svc.CreateStore(ctx, 9, "Shop")
		assert.ErrorIs(t, err, ErrAlreadyHasStore)
	})

	t.Run("empty name", func(t *testing.T) {
		svc, _ := newStoreService()
		_, err := svc.CreateStore(ctx, 7, " ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestStoreService_NoStore(t *testing.T) {
	ctx := context.Background()
	svc, m := newStoreService()
	m.stores.On("GetByOwner", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.MyStore(ctx, 5)
	assert.ErrorIs(t, err, ErrNoStore)
	_, err = svc.AddCategory(ctx, 5, "Ammo")
	assert.ErrorIs(t, err, ErrNoStore)
	_, err = svc.AddProduct(ctx, 5, ProductInput{Name: "Rifle", Price: 500})
	assert.ErrorIs(t, err, ErrNoStore)
	assert.ErrorIs(t, svc.DeleteStore(ctx, 5), ErrNoStore)
	_, err = svc.Sales(ctx, 5)
	assert.ErrorIs(t, err, ErrNoStore)
}

func TestStoreService_AddProduct(t *testing.T) {
	ctx := context.Background()
	own := &model.Store{ID: 3, UserID: 7, Name: "Shop"}

	t.Run("ok with own category", func(t *testing.T) {
		svc, m := newStoreService()
		m.stores.On("GetByOwner", mock.Anything, int64(7)).Return(own, nil)
		m.categories.On("GetByID", mock.Anything, int64(3), int64(11)).Return(&model.Category{ID: 11, StoreID: 3}, nil).Once()
		m.products.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
			return p.StoreID == 3 && p.Name == "Rifle" && p.Price == 500 && p.CategoryID != nil && *p.CategoryID == 11
		})).Return(nil).Once()

		p, err := svc.AddProduct(ctx, 7, ProductInput{Name: "Rifle", Price: 500, CategoryID: int64p(11)})
		require.NoError(t, err)
		assert.Equal(t, int64(3), p.StoreID)
		m.products.AssertExpectations(t)
	})

	t.Run("category of another store", func(t *testing.T) {
		svc, m := newStoreService()
		m.stores.On("GetByOwner", mock.Anything, int64(7)).Return(own, nil)
		m.categories.On("GetByID", mock.Anything, int64(3), int64(99)).Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.AddProduct(ctx, 7, ProductInput{Name: "Rifle", Price: 500, CategoryID: int64p(99)})
		assert.ErrorIs(t, err, ErrNotFound)
		m.products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("negative price", func(t *testing.T) {
		svc, m := newStoreService()
		m.stores.On("GetByOwner", mock.Anything, int64(7)).Return(own, nil)

		_, err := svc.AddProduct(ctx, 7, ProductInput{Name: "Rifle", Price: -1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("free product allowed", func(t *testing.T) {
		svc, m := newStoreService()
		m.stores.On("GetByOwner", mock.Anything, int64(7)).Return(own, nil)
		m.products.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.AddProduct(ctx, 7, ProductInput{Name: "Sticker", Price: 0})
		assert.NoError(t, err)
	})
}

func TestStoreService_EditAndDeleteProduct(t *testing.T) {
	ctx := context.Background()
	own := &model.Store{ID: 3, UserID: 7}

	t.Run("edit scoped to own store", func(t *testing.T) {
		svc, m := newStoreService()
		m.stores.On("GetByOwner", mock.Anything, int64(7)).Return(own, nil)
		m.products.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
			return p.ID == 42 && p.StoreID == 3 && p.Price == 100 && p.CategoryID == nil
		})).Return(nil).Once()

		p, err := svc.EditProduct(ctx, 7, 42, ProductInput{Name: "Rifle", Price: 100})
		require.NoError(t, err)
		assert.Equal(t, int64(42), p.ID)
	})

	t.Run("edit foreign product", func(t *testing.T) {
		svc, m := newStoreService()
		m.stores.On("GetByOwner", mock.Anything, int64(7)).Return(own, nil)
		m.products.On("Update", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound).Once()

		_, err := svc.EditProduct(ctx, 7, 42, ProductInput{Name: "Rifle", Price: 100})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		svc, m := newStoreService()
		m.stores.On("GetByOwner", mock.Anything, int64(7)).Return(own, nil)
		m.products.On("Delete", mock.Anything, int64(3), int64(42)).Return(nil).Once()
		m.products.On("Delete", mock.Anything, int64(3), int64(43)).Return(gorm.ErrRecordNotFound).Once()

		assert.NoError(t, svc.DeleteProduct(ctx, 7, 42))
		assert.ErrorIs(t, svc.DeleteProduct(ctx, 7, 43), ErrNotFound)
	})
}

func TestStoreService_Categories(t *testing.T) {
	ctx := context.Background()
	svc, m := newStoreService()
	own := &model.Store{ID: 3, UserID: 7}
	m.stores.On("GetByOwner", mock.Anything, int64(7)).Return(own, nil)
	m.categories.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
		return c.StoreID == 3 && c.Name == "Ammo"
	})).Return(nil).Once()
	m.categories.On("Delete", mock.Anything, int64(3), int64(11)).Return(nil).Once()
	m.categories.On("ListByStore", mock.Anything, int64(3)).Return([]model.Category{{ID: 12, Name: "Knives", StoreID: 3}}, nil).Once()

	c, err := svc.AddCategory(ctx, 7, "Ammo")
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.StoreID)
	require.NoError(t, svc.DeleteCategory(ctx, 7, 11))

	list, err := svc.ListCategories(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	m.categories.AssertExpectations(t)
}

func TestStoreService_DeleteStoreAndSales(t *testing.T) {
	ctx := context.Background()
	svc, m := newStoreService()
	own := &model.Store{ID: 3, UserID: 7}
	m.stores.On("GetByOwner", mock.Anything, int64(7)).Return(own, nil)
	m.orders.On("SalesByStore", mock.Anything, int64(3)).Return([]model.Sale{{OrderID: 2}, {OrderID: 1}}, nil).Once()
	m.stores.On("Delete", mock.Anything, int64(3)).Return(nil).Once()

	sales, err := svc.Sales(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), sales[0].OrderID)

	require.NoError(t, svc.DeleteStore(ctx, 7))
	m.stores.AssertExpectations(t)
	m.orders.AssertExpectations(t)
}
