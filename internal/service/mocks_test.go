package service

import (
	"ArmoryExchange/internal/model"
	"ArmoryExchange/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockStoreRepo struct{ mock.Mock }

func (m *mockStoreRepo) Create(ctx context.Context, st *model.Store) error {
	args := m.Called(ctx, st)
	if args.Error(0) == nil {
		st.ID = 1
	}
	return args.Error(0)
}

func (m *mockStoreRepo) GetByOwner(ctx context.Context, userID int64) (*model.Store, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).(*model.Store); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStoreRepo) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Store); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStoreRepo) List(ctx context.Context) ([]model.Store, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Store); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStoreRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.StoreRepository = (*mockStoreRepo)(nil)

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, storeID, id int64) (*model.Category, error) {
	args := m.Called(ctx, storeID, id)
	if v, ok := args.Get(0).(*model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) ListByStore(ctx context.Context, storeID int64) ([]model.Category, error) {
	args := m.Called(ctx, storeID)
	if v, ok := args.Get(0).([]model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, storeID, id int64) error {
	return m.Called(ctx, storeID, id).Error(0)
}

var _ repo.CategoryRepository = (*mockCategoryRepo)(nil)

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, storeID, id int64) (*model.Product, error) {
	args := m.Called(ctx, storeID, id)
	if v, ok := args.Get(0).(*model.Product); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) ListByStore(ctx context.Context, storeID int64, categoryID *int64) ([]model.Product, error) {
	args := m.Called(ctx, storeID, categoryID)
	if v, ok := args.Get(0).([]model.Product); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, storeID, id int64) error {
	return m.Called(ctx, storeID, id).Error(0)
}

var _ repo.ProductRepository = (*mockProductRepo)(nil)

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) CreateOrders(ctx context.Context, userID int64, lines []repo.OrderLineInput) ([]model.Order, error) {
	args := m.Called(ctx, userID, lines)
	if v, ok := args.Get(0).([]model.Order); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) ListByUser(ctx context.Context, userID int64) ([]model.OrderLine, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.OrderLine); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) SalesByStore(ctx context.Context, storeID int64) ([]model.Sale, error) {
	args := m.Called(ctx, storeID)
	if v, ok := args.Get(0).([]model.Sale); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.OrderRepository = (*mockOrderRepo)(nil)
