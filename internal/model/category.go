package model

// Category: категория товаров внутри одного магазина.
// Имя не уникально глобально.
type Category struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	StoreID int64  `gorm:"not null;index" json:"store_id"`

	Store *Store `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
