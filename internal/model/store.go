package model

// Store: витрина продавца. У пользователя не больше одного магазина:
// уникальность обеспечивается индексом на user_id, а не только кодом сервиса.
type Store struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"uniqueIndex;not null" json:"name"`
	UserID int64  `gorm:"uniqueIndex;not null" json:"user_id"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
