package model

import "time"

// Order: строка истории покупок. Создаётся только при оформлении корзины
// и после этого не меняется.
type Order struct {
	ID     int64 `gorm:"primaryKey" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE" json:"-"`

	// ProductID обнуляется при удалении товара, история остаётся
	// благодаря снимку имени и цены.
	ProductID *int64   `gorm:"index" json:"product_id"`
	Product   *Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`

	// StoreID: магазин продавца на момент покупки. Продажи остаются в отчёте
	// магазина и после удаления товара.
	StoreID *int64 `gorm:"index" json:"store_id"`
	Store   *Store `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`

	ProductName       string `gorm:"not null" json:"product_name"`
	UnitPrice         int64  `gorm:"not null;check:chk_orders_unit_price,unit_price >= 0" json:"unit_price"`
	QuantityPurchased int64  `gorm:"not null;check:chk_orders_quantity,quantity_purchased > 0" json:"quantity_purchased"`
	TotalPrice        int64  `gorm:"not null;check:chk_orders_total_price,total_price >= 0" json:"total_price"`

	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
}
