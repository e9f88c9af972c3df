package model

// Product: товар магазина. Цена в минимальных денежных единицах.
type Product struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null;check:chk_products_price,price >= 0" json:"price"`

	StoreID int64  `gorm:"not null;index" json:"store_id"`
	Store   *Store `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	// CategoryID == nil: товар без категории.
	CategoryID *int64    `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
