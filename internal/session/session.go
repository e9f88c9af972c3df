// Package session хранит состояние пользовательской сессии: личность, корзину и выбор навигации.
// Корзина живёт только в памяти сервера и не сохраняется в БД.
package session

import (
	"sync"
	"time"
)

// Selection: последний выбранный магазин и категория при просмотре витрины.
type Selection struct {
	StoreID    int64  `json:"store_id,omitempty"`
	CategoryID *int64 `json:"category_id,omitempty"`
}

// Session: состояние одной сессии. Методы безопасны для конкурентных запросов.
// ID, UserID и Username задаются при создании и дальше не меняются,
// поэтому читаются без блокировки.
type Session struct {
	ID       string
	UserID   int64
	Username string

	mu        sync.Mutex
	cart      Cart
	selection Selection
	lastSeen  time.Time
}

// AddToCart добавляет строку в конец корзины.
func (s *Session) AddToCart(item CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Add(item)
}

// RemoveFromCart удаляет строку по индексу.
func (s *Session) RemoveFromCart(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Remove(index)
}

// CartItems возвращает снимок корзины.
func (s *Session) CartItems() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

func (s *Session) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// Checkout передаёт строки корзины в commit и очищает корзину только если commit вернул nil.
// Блокировка держится всё время, чтобы параллельное добавление не потерялось при очистке.
func (s *Session) Checkout(commit func(items []CartItem) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart.Len() == 0 {
		return ErrEmptyCart
	}
	if err := commit(s.cart.Items()); err != nil {
		return err
	}
	s.cart.Clear()
	return nil
}

// Select запоминает выбор навигации.
func (s *Session) Select(sel Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = sel
}

func (s *Session) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// Reset сбрасывает корзину и навигацию при выходе из аккаунта.
// Личность не трогается: сессию делает недействительной удаление из Manager.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.selection = Selection{}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
