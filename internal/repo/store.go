package repo

import (
	"ArmoryExchange/internal/model"
	"context"

	"gorm.io/gorm"
)

// StoreRepository контракт доступа к магазинам.
type StoreRepository interface {
	// Create вставляет магазин. Занятое имя или второй магазин владельца дают ErrDuplicate.
	Create(ctx context.Context, store *model.Store) error
	GetByOwner(ctx context.Context, userID int64) (*model.Store, error)
	GetByID(ctx context.Context, id int64) (*model.Store, error)
	// List возвращает все магазины по имени.
	List(ctx context.Context) ([]model.Store, error)
	// Delete удаляет магазин вместе с товарами и категориями одной транзакцией.
	Delete(ctx context.Context, id int64) error
}

type storeRepo struct {
	db *gorm.DB
}

// NewStoreRepository создаёт реализацию репозитория магазинов.
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepo{db: db}
}

func (r *storeRepo) Create(ctx context.Context, store *model.Store) error {
	return classify(r.db.WithContext(ctx).Create(store).Error)
}

func (r *storeRepo) GetByOwner(ctx context.Context, userID int64) (*model.Store, error) {
	var s model.Store
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *storeRepo) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	var s model.Store
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *storeRepo) List(ctx context.Context) ([]model.Store, error) {
	var list []model.Store
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *storeRepo) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s model.Store
		if err := tx.First(&s, id).Error; err != nil {
			return err
		}
		// заказы остаются в истории, ссылка на товар обнуляется
		products := tx.Model(&model.Product{}).Select("id").Where("store_id = ?", id)
		if err := tx.Model(&model.Order{}).Where("product_id IN (?)", products).
			Update("product_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("store_id = ?", id).Delete(&model.Product{}).Error; err != nil {
			return err
		}
		if err := tx.Where("store_id = ?", id).Delete(&model.Category{}).Error; err != nil {
			return err
		}
		return tx.Delete(&s).Error
	})
	return classify(err)
}
