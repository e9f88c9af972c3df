package service

import (
	"ArmoryExchange/internal/model"
	"ArmoryExchange/internal/repo"
	"context"
	"fmt"
)

// MarketService: просмотр чужих магазинов, только чтение.
type MarketService struct {
	stores     repo.StoreRepository
	categories repo.CategoryRepository
	products   repo.ProductRepository
}

func NewMarketService(stores repo.StoreRepository, categories repo.CategoryRepository, products repo.ProductRepository) *MarketService {
	return &MarketService{stores: stores, categories: categories, products: products}
}

func (s *MarketService) ListStores(ctx context.Context) ([]model.Store, error) {
	list, err := s.stores.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return list, nil
}

func (s *MarketService) ListCategories(ctx context.Context, storeID int64) ([]model.Category, error) {
	if _, err := s.stores.GetByID(ctx, storeID); err != nil {
		return nil, notFound("store", err)
	}
	list, err := s.categories.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

// ListProducts возвращает товары магазина; categoryID == nil означает «All».
func (s *MarketService) ListProducts(ctx context.Context, storeID int64, categoryID *int64) ([]model.Product, error) {
	if _, err := s.stores.GetByID(ctx, storeID); err != nil {
		return nil, notFound("store", err)
	}
	list, err := s.products.ListByStore(ctx, storeID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

func (s *MarketService) GetProduct(ctx context.Context, storeID, productID int64) (*model.Product, error) {
	p, err := s.products.GetByID(ctx, storeID, productID)
	if err != nil {
		return nil, notFound("product", err)
	}
	return p, nil
}
