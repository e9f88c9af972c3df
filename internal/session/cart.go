package session

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyCart: оформлять нечего.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoSuchLine: индекс строки корзины вне диапазона.
	ErrNoSuchLine = errors.New("no such cart line")
	// ErrTotalOverflow: сумма строки или корзины не помещается в int64.
	ErrTotalOverflow = errors.New("cart total overflows")
)

// CartItem: строка корзины. Цена фиксируется в момент добавления.
type CartItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// Subtotal: стоимость строки. Для строк, принятых Cart.Add, переполнения не бывает.
func (i CartItem) Subtotal() int64 { return i.Quantity * i.UnitPrice }

func (i CartItem) checkedSubtotal() (int64, error) {
	if i.Quantity < 0 || i.UnitPrice < 0 {
		return 0, fmt.Errorf("negative quantity or price in cart line for product %d", i.ProductID)
	}
	if i.UnitPrice != 0 && i.Quantity > math.MaxInt64/i.UnitPrice {
		return 0, fmt.Errorf("%w: %d x %d", ErrTotalOverflow, i.Quantity, i.UnitPrice)
	}
	return i.Quantity * i.UnitPrice, nil
}

// Cart: упорядоченный список строк. Повторное добавление товара создаёт новую строку.
type Cart struct {
	items []CartItem
}

// Add дописывает строку. Строка, с которой итог корзины переполнил бы int64, отклоняется,
// так что Total всегда точен.
func (c *Cart) Add(item CartItem) error {
	sub, err := item.checkedSubtotal()
	if err != nil {
		return err
	}
	if c.Total() > math.MaxInt64-sub {
		return fmt.Errorf("%w: adding product %d", ErrTotalOverflow, item.ProductID)
	}
	c.items = append(c.items, item)
	return nil
}

// Remove удаляет строку по индексу, сохраняя порядок остальных.
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("%w: %d", ErrNoSuchLine, index)
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

// Items возвращает копию строк.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Total() int64 {
	var t int64
	for _, it := range c.items {
		t += it.Subtotal()
	}
	return t
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) Clear() { c.items = nil }
