package service

import (
	"ArmoryExchange/internal/model"
	"ArmoryExchange/internal/repo"
	"ArmoryExchange/internal/session"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// MaxQuantity: наибольшее количество товара в одной строке корзины.
const MaxQuantity = 10000

// OrderService: корзина, оформление и история покупок.
type OrderService struct {
	orders repo.OrderRepository
	market *MarketService
	logger *zap.SugaredLogger
}

func NewOrderService(orders repo.OrderRepository, market *MarketService, logger *zap.SugaredLogger) *OrderService {
	return &OrderService{orders: orders, market: market, logger: logger}
}

// AddToCart кладёт товар в корзину сессии по текущей цене.
func (s *OrderService) AddToCart(ctx context.Context, sess *session.Session, storeID, productID, quantity int64) (session.CartItem, error) {
	if quantity < 1 {
		return session.CartItem{}, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}
	if quantity > MaxQuantity {
		return session.CartItem{}, fmt.Errorf("%w: quantity must be at most %d", ErrInvalidInput, MaxQuantity)
	}
	p, err := s.market.GetProduct(ctx, storeID, productID)
	if err != nil {
		return session.CartItem{}, err
	}
	item := session.CartItem{ProductID: p.ID, Name: p.Name, Quantity: quantity, UnitPrice: p.Price}
	if err := sess.AddToCart(item); err != nil {
		if errors.Is(err, session.ErrTotalOverflow) {
			return session.CartItem{}, fmt.Errorf("%w: cart total is too large", ErrInvalidInput)
		}
		return session.CartItem{}, err
	}
	return item, nil
}

// RemoveFromCart убирает строку корзины по индексу.
func (s *OrderService) RemoveFromCart(sess *session.Session, index int) error {
	if err := sess.RemoveFromCart(index); err != nil {
		if errors.Is(err, session.ErrNoSuchLine) {
			return fmt.Errorf("cart line %d: %w", index, ErrNotFound)
		}
		return err
	}
	return nil
}

// Checkout превращает корзину в заказы одной транзакцией.
// Корзина очищается только после коммита.
func (s *OrderService) Checkout(ctx context.Context, sess *session.Session) ([]model.Order, error) {
	var placed []model.Order
	err := sess.Checkout(func(items []session.CartItem) error {
		lines := make([]repo.OrderLineInput, 0, len(items))
		for _, it := range items {
			lines = append(lines, repo.OrderLineInput{
				ProductID:   it.ProductID,
				ProductName: it.Name,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
			})
		}
		orders, err := s.orders.CreateOrders(ctx, sess.UserID, lines)
		if err != nil {
			return err
		}
		placed = orders
		return nil
	})
	switch {
	case errors.Is(err, session.ErrEmptyCart):
		return nil, ErrEmptyCart
	case err != nil:
		s.logger.Warnw("checkout rolled back", "user_id", sess.UserID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrCheckoutFailed, err)
	}
	s.logger.Infow("checkout committed", "user_id", sess.UserID, "orders", len(placed))
	return placed, nil
}

// Orders возвращает историю покупок, новые первыми.
func (s *OrderService) Orders(ctx context.Context, userID int64) ([]model.OrderLine, error) {
	lines, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return lines, nil
}
