package commands

import (
	"fmt"
	"strconv"
	"time"
)

// Ответы сервера в том виде, в котором их показывает CLI.

type storeView struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"user_id"`
}

type categoryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type productView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	CategoryID  *int64 `json:"category_id"`
}

type cartItemView struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

type cartView struct {
	Items []cartItemView `json:"items"`
	Total int64          `json:"total"`
}

type orderView struct {
	ID                int64     `json:"id"`
	ProductName       string    `json:"product_name"`
	QuantityPurchased int64     `json:"quantity_purchased"`
	TotalPrice        int64     `json:"total_price"`
	Timestamp         time.Time `json:"timestamp"`
}

type checkoutView struct {
	Orders []orderView `json:"orders"`
	Total  int64       `json:"total"`
}

type orderLineView struct {
	OrderID           int64     `json:"order_id"`
	Timestamp         time.Time `json:"timestamp"`
	ProductName       string    `json:"product_name"`
	QuantityPurchased int64     `json:"quantity_purchased"`
	TotalPrice        int64     `json:"total_price"`
}

type saleView struct {
	OrderID           int64     `json:"order_id"`
	Timestamp         time.Time `json:"timestamp"`
	Buyer             string    `json:"buyer"`
	ProductName       string    `json:"product_name"`
	QuantityPurchased int64     `json:"quantity_purchased"`
	TotalPrice        int64     `json:"total_price"`
}

const timeLayout = "2006-01-02 15:04:05"

func printProducts(list []productView) {
	if len(list) == 0 {
		fmt.Fprintln(Out, "No products")
		return
	}
	for _, p := range list {
		cat := "-"
		if p.CategoryID != nil {
			cat = strconv.FormatInt(*p.CategoryID, 10)
		}
		fmt.Fprintf(Out, "- #%d  %s  %s  category=%s\n", p.ID, p.Name, money(p.Price), cat)
		if p.Description != "" {
			fmt.Fprintf(Out, "      %s\n", p.Description)
		}
	}
}

func printCategories(list []categoryView) {
	if len(list) == 0 {
		fmt.Fprintln(Out, "No categories")
		return
	}
	for _, c := range list {
		fmt.Fprintf(Out, "- #%d  %s\n", c.ID, c.Name)
	}
}

func printCart(c cartView) {
	if len(c.Items) == 0 {
		fmt.Fprintln(Out, "Cart is empty")
		return
	}
	for i, it := range c.Items {
		fmt.Fprintf(Out, "[%d] %s x%d @ %s = %s\n", i, it.Name, it.Quantity, money(it.UnitPrice), money(it.Quantity*it.UnitPrice))
	}
	fmt.Fprintf(Out, "Total: %s\n", money(c.Total))
}
