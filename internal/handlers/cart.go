package handlers

import (
	"ArmoryExchange/internal/model"
	"ArmoryExchange/internal/service"
	"ArmoryExchange/internal/session"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CartHandler: корзина, оформление и история покупок.
type CartHandler struct {
	OrderService *service.OrderService
	Logger       *zap.SugaredLogger
}

func NewCartHandler(orders *service.OrderService, logger *zap.SugaredLogger) *CartHandler {
	return &CartHandler{OrderService: orders, Logger: logger}
}

type cartResponse struct {
	Items []session.CartItem `json:"items"`
	Total int64              `json:"total"`
}

type addItemRequest struct {
	StoreID   int64 `json:"store_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type checkoutResponse struct {
	Orders []model.Order `json:"orders"`
	Total  int64         `json:"total"`
}

func cartOf(sess *session.Session) cartResponse {
	items := sess.CartItems()
	if items == nil {
		items = []session.CartItem{}
	}
	return cartResponse{Items: items, Total: sess.CartTotal()}
}

func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cartOf(sessionFrom(r)))
}

// AddItem кладёт товар в корзину. Без store_id берётся магазин из последнего просмотра.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	sess := sessionFrom(r)
	if req.StoreID == 0 {
		req.StoreID = sess.Selection().StoreID
	}
	if req.StoreID == 0 || req.ProductID == 0 {
		http.Error(w, "store_id and product_id are required", http.StatusBadRequest)
		return
	}
	if _, err := h.OrderService.AddToCart(r.Context(), sess, req.StoreID, req.ProductID, req.Quantity); err != nil {
		fail(w, h.Logger, "AddToCart", err)
		return
	}
	writeJSON(w, http.StatusOK, cartOf(sess))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid line index", http.StatusBadRequest)
		return
	}
	sess := sessionFrom(r)
	if err := h.OrderService.RemoveFromCart(sess, index); err != nil {
		fail(w, h.Logger, "RemoveFromCart", err)
		return
	}
	writeJSON(w, http.StatusOK, cartOf(sess))
}

// Checkout оформляет всю корзину одной транзакцией.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	orders, err := h.OrderService.Checkout(r.Context(), sessionFrom(r))
	if err != nil {
		fail(w, h.Logger, "Checkout", err)
		return
	}
	var total int64
	for _, o := range orders {
		total += o.TotalPrice
	}
	writeJSON(w, http.StatusCreated, checkoutResponse{Orders: orders, Total: total})
}

func (h *CartHandler) Orders(w http.ResponseWriter, r *http.Request) {
	lines, err := h.OrderService.Orders(r.Context(), sessionFrom(r).UserID)
	if err != nil {
		fail(w, h.Logger, "Orders", err)
		return
	}
	if lines == nil {
		lines = []model.OrderLine{}
	}
	writeJSON(w, http.StatusOK, lines)
}
