package repo

import (
	"ArmoryExchange/internal/model"
	"context"

	"gorm.io/gorm"
)

// CategoryRepository контракт доступа к категориям. Все операции ограничены магазином.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	GetByID(ctx context.Context, storeID, id int64) (*model.Category, error)
	ListByStore(ctx context.Context, storeID int64) ([]model.Category, error)
	// Delete удаляет категорию, предварительно обнуляя category_id у её товаров.
	Delete(ctx context.Context, storeID, id int64) error
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository создаёт реализацию репозитория категорий.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return classify(r.db.WithContext(ctx).Create(c).Error)
}

func (r *categoryRepo) GetByID(ctx context.Context, storeID, id int64) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).Where("id = ? AND store_id = ?", id, storeID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) ListByStore(ctx context.Context, storeID int64) ([]model.Category, error) {
	var list []model.Category
	if err := r.db.WithContext(ctx).Where("store_id = ?", storeID).Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *categoryRepo) Delete(ctx context.Context, storeID, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c model.Category
		if err := tx.Where("id = ? AND store_id = ?", id, storeID).First(&c).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Product{}).Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&c).Error
	})
	return classify(err)
}
