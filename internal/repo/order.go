package repo

import (
	"ArmoryExchange/internal/model"
	"context"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
)

// OrderLineInput: одна строка корзины на оформление.
type OrderLineInput struct {
	ProductID   int64
	ProductName string
	Quantity    int64
	UnitPrice   int64
}

// OrderRepository контракт доступа к истории заказов.
type OrderRepository interface {
	// CreateOrders создаёт по заказу на каждую строку одной транзакцией.
	// Любая ошибка откатывает все строки.
	CreateOrders(ctx context.Context, userID int64, lines []OrderLineInput) ([]model.Order, error)
	// ListByUser возвращает заказы покупателя, новые первыми.
	ListByUser(ctx context.Context, userID int64) ([]model.OrderLine, error)
	// SalesByStore возвращает продажи магазина, новые первыми, включая проданные и затем удалённые товары.
	SalesByStore(ctx context.Context, storeID int64) ([]model.Sale, error)
}

type orderRepo struct {
	db  *gorm.DB
	now func() time.Time
}

// NewOrderRepository создаёт реализацию репозитория заказов.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db, now: time.Now}
}

func (r *orderRepo) CreateOrders(ctx context.Context, userID int64, lines []OrderLineInput) ([]model.Order, error) {
	ts := r.now().UTC()
	orders := make([]model.Order, 0, len(lines))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, l := range lines {
			var p model.Product
			if err := tx.Select("id", "store_id").First(&p, l.ProductID).Error; err != nil {
				return fmt.Errorf("product %d: %w", l.ProductID, err)
			}
			total, err := lineTotal(l.Quantity, l.UnitPrice)
			if err != nil {
				return fmt.Errorf("product %d: %w", l.ProductID, err)
			}
			pid, sid := l.ProductID, p.StoreID
			o := model.Order{
				UserID:            userID,
				ProductID:         &pid,
				StoreID:           &sid,
				ProductName:       l.ProductName,
				UnitPrice:         l.UnitPrice,
				QuantityPurchased: l.Quantity,
				TotalPrice:        total,
				Timestamp:         ts,
			}
			if err := tx.Create(&o).Error; err != nil {
				return fmt.Errorf("insert order for product %d: %w", l.ProductID, classify(err))
			}
			orders = append(orders, o)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// lineTotal считает quantity * unit_price. Переполнение int64 считается нарушением ограничения,
// иначе в total_price попало бы обрезанное значение.
func lineTotal(quantity, unitPrice int64) (int64, error) {
	if quantity > 0 && unitPrice > 0 && quantity > math.MaxInt64/unitPrice {
		return 0, fmt.Errorf("%w: total price overflows (%d x %d)", ErrConstraint, quantity, unitPrice)
	}
	return quantity * unitPrice, nil
}

func (r *orderRepo) ListByUser(ctx context.Context, userID int64) ([]model.OrderLine, error) {
	var lines []model.OrderLine
	err := r.db.WithContext(ctx).Table("orders").
		Select("orders.id AS order_id, orders.timestamp AS timestamp, orders.product_id AS product_id, " +
			"COALESCE(products.name, orders.product_name) AS product_name, " +
			"orders.quantity_purchased AS quantity_purchased, orders.total_price AS total_price").
		Joins("LEFT JOIN products ON products.id = orders.product_id").
		Where("orders.user_id = ?", userID).
		Order("orders.timestamp DESC").Order("orders.id DESC").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *orderRepo) SalesByStore(ctx context.Context, storeID int64) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Table("orders").
		Select("orders.id AS order_id, orders.timestamp AS timestamp, users.username AS buyer_username, " +
			"orders.product_id AS product_id, COALESCE(products.name, orders.product_name) AS product_name, " +
			"orders.quantity_purchased AS quantity_purchased, orders.total_price AS total_price").
		Joins("LEFT JOIN products ON products.id = orders.product_id").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.store_id = ?", storeID).
		Order("orders.timestamp DESC").Order("orders.id DESC").
		Scan(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}
