package model

import "time"

// Sale: строка отчёта о продажах магазина. ProductID пуст, если товар удалён.
type Sale struct {
	OrderID           int64     `json:"order_id"`
	Timestamp         time.Time `json:"timestamp"`
	BuyerUsername     string    `json:"buyer"`
	ProductID         *int64    `json:"product_id"`
	ProductName       string    `json:"product_name"`
	QuantityPurchased int64     `json:"quantity_purchased"`
	TotalPrice        int64     `json:"total_price"`
}

// OrderLine: заказ покупателя вместе с текущим названием товара.
type OrderLine struct {
	OrderID           int64     `json:"order_id"`
	Timestamp         time.Time `json:"timestamp"`
	ProductID         *int64    `json:"product_id"`
	ProductName       string    `json:"product_name"`
	QuantityPurchased int64     `json:"quantity_purchased"`
	TotalPrice        int64     `json:"total_price"`
}
