package service

import (
	"ArmoryExchange/internal/model"
	"ArmoryExchange/internal/repo"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductInput: поля товара от владельца магазина.
type ProductInput struct {
	Name        string
	Description string
	Price       int64
	CategoryID  *int64
}

// StoreService: управление собственным магазином. Магазин владельца всегда
// определяется на сервере по его ID, а все записи ограничены этим магазином.
type StoreService struct {
	stores     repo.StoreRepository
	categories repo.CategoryRepository
	products   repo.ProductRepository
	orders     repo.OrderRepository
	logger     *zap.SugaredLogger
}

func NewStoreService(
	stores repo.StoreRepository,
	categories repo.CategoryRepository,
	products repo.ProductRepository,
	orders repo.OrderRepository,
	logger *zap.SugaredLogger,
) *StoreService {
	return &StoreService{stores: stores, categories: categories, products: products, orders: orders, logger: logger}
}

// CreateStore открывает магазин. Оба ограничения (один магазин на владельца,
// уникальное имя) окончательно проверяет БД.
func (s *StoreService) CreateStore(ctx context.Context, ownerID int64, name string) (*model.Store, error) {
	name, err := cleanName("store name", name, maxNameLen)
	if err != nil {
		return nil, err
	}
	if _, err := s.stores.GetByOwner(ctx, ownerID); err == nil {
		return nil, ErrAlreadyHasStore
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check owner store: %w", err)
	}

	st := &model.Store{Name: name, UserID: ownerID}
	if err := s.stores.Create(ctx, st); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			// гонка: выясняем, какое из ограничений сработало
			if _, ownErr := s.stores.GetByOwner(ctx, ownerID); ownErr == nil {
				return nil, ErrAlreadyHasStore
			}
			return nil, ErrStoreNameTaken
		}
		return nil, fmt.Errorf("create store: %w", err)
	}
	s.logger.Infow("store created", "store_id", st.ID, "owner_id", ownerID, "name", st.Name)
	return st, nil
}

// MyStore возвращает магазин владельца или ErrNoStore.
func (s *StoreService) MyStore(ctx context.Context, ownerID int64) (*model.Store, error) {
	st, err := s.stores.GetByOwner(ctx, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoStore
	}
	if err != nil {
		return nil, fmt.Errorf("get owner store: %w", err)
	}
	return st, nil
}

// DeleteStore удаляет магазин владельца вместе с категориями и товарами.
func (s *StoreService) DeleteStore(ctx context.Context, ownerID int64) error {
	st, err := s.MyStore(ctx, ownerID)
	if err != nil {
		return err
	}
	if err := s.stores.Delete(ctx, st.ID); err != nil {
		return notFound("delete store", err)
	}
	s.logger.Infow("store deleted", "store_id", st.ID, "owner_id", ownerID)
	return nil
}

func (s *StoreService) AddCategory(ctx context.Context, ownerID int64, name string) (*model.Category, error) {
	name, err := cleanName("category name", name, maxNameLen)
	if err != nil {
		return nil, err
	}
	st, err := s.MyStore(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	c := &model.Category{Name: name, StoreID: st.ID}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// DeleteCategory удаляет категорию; её товары становятся «без категории».
func (s *StoreService) DeleteCategory(ctx context.Context, ownerID, categoryID int64) error {
	st, err := s.MyStore(ctx, ownerID)
	if err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, st.ID, categoryID); err != nil {
		return notFound("delete category", err)
	}
	return nil
}

func (s *StoreService) ListCategories(ctx context.Context, ownerID int64) ([]model.Category, error) {
	st, err := s.MyStore(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	list, err := s.categories.ListByStore(ctx, st.ID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

func (s *StoreService) ListProducts(ctx context.Context, ownerID int64) ([]model.Product, error) {
	st, err := s.MyStore(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	list, err := s.products.ListByStore(ctx, st.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

func (s *StoreService) AddProduct(ctx context.Context, ownerID int64, in ProductInput) (*model.Product, error) {
	st, err := s.MyStore(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	p, err := s.buildProduct(ctx, st.ID, in)
	if err != nil {
		return nil, err
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// EditProduct перезаписывает поля товара. Параллельные правки: last write wins.
func (s *StoreService) EditProduct(ctx context.Context, ownerID, productID int64, in ProductInput) (*model.Product, error) {
	st, err := s.MyStore(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	p, err := s.buildProduct(ctx, st.ID, in)
	if err != nil {
		return nil, err
	}
	p.ID = productID
	if err := s.products.Update(ctx, p); err != nil {
		return nil, notFound("update product", err)
	}
	return p, nil
}

func (s *StoreService) DeleteProduct(ctx context.Context, ownerID, productID int64) error {
	st, err := s.MyStore(ctx, ownerID)
	if err != nil {
		return err
	}
	if err := s.products.Delete(ctx, st.ID, productID); err != nil {
		return notFound("delete product", err)
	}
	return nil
}

// Sales возвращает продажи магазина владельца, новые первыми.
func (s *StoreService) Sales(ctx context.Context, ownerID int64) ([]model.Sale, error) {
	st, err := s.MyStore(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	sales, err := s.orders.SalesByStore(ctx, st.ID)
	if err != nil {
		return nil, fmt.Errorf("store sales: %w", err)
	}
	return sales, nil
}

func (s *StoreService) buildProduct(ctx context.Context, storeID int64, in ProductInput) (*model.Product, error) {
	name, err := cleanName("product name", in.Name, maxNameLen)
	if err != nil {
		return nil, err
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if in.CategoryID != nil {
		// категория обязана принадлежать этому же магазину
		if _, err := s.categories.GetByID(ctx, storeID, *in.CategoryID); err != nil {
			return nil, notFound("category", err)
		}
	}
	return &model.Product{
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		StoreID:     storeID,
		CategoryID:  in.CategoryID,
	}, nil
}
