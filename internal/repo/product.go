package repo

import (
	"ArmoryExchange/internal/model"
	"context"

	"gorm.io/gorm"
)

// ProductRepository контракт доступа к товарам. Запись всегда ограничена store_id.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	GetByID(ctx context.Context, storeID, id int64) (*model.Product, error)
	// ListByStore возвращает товары магазина. categoryID == nil: без фильтра.
	ListByStore(ctx context.Context, storeID int64, categoryID *int64) ([]model.Product, error)
	// Update перезаписывает name, description, price и category_id товара p.ID в магазине p.StoreID.
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, storeID, id int64) error
}

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository создаёт реализацию репозитория товаров.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return classify(r.db.WithContext(ctx).Create(p).Error)
}

func (r *productRepo) GetByID(ctx context.Context, storeID, id int64) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).Where("id = ? AND store_id = ?", id, storeID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) ListByStore(ctx context.Context, storeID int64, categoryID *int64) ([]model.Product, error) {
	q := r.db.WithContext(ctx).Where("store_id = ?", storeID)
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	var list []model.Product
	if err := q.Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	tx := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND store_id = ?", p.ID, p.StoreID).
		Updates(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"category_id": p.CategoryID,
		})
	if tx.Error != nil {
		return classify(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, storeID, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Product
		if err := tx.Where("id = ? AND store_id = ?", id, storeID).First(&p).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Order{}).Where("product_id = ?", id).
			Update("product_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	return classify(err)
}
