package handlers

import (
	"ArmoryExchange/internal/service"
	"ArmoryExchange/internal/session"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// MarketHandler: просмотр магазинов, категорий и товаров.
type MarketHandler struct {
	Market *service.MarketService
	Logger *zap.SugaredLogger
}

func NewMarketHandler(market *service.MarketService, logger *zap.SugaredLogger) *MarketHandler {
	return &MarketHandler{Market: market, Logger: logger}
}

func (h *MarketHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.Market.ListStores(r.Context())
	if err != nil {
		fail(w, h.Logger, "ListStores", err)
		return
	}
	writeJSON(w, http.StatusOK, stores)
}

func (h *MarketHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	storeID, ok := pathID(r, "storeID")
	if !ok {
		http.Error(w, "invalid store id", http.StatusBadRequest)
		return
	}
	cats, err := h.Market.ListCategories(r.Context(), storeID)
	if err != nil {
		fail(w, h.Logger, "ListCategories", err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

// ListProducts отдаёт товары магазина. ?category=ID фильтрует по категории,
// без параметра возвращаются все товары, включая товары без категории.
// Выбор запоминается в сессии.
func (h *MarketHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	storeID, ok := pathID(r, "storeID")
	if !ok {
		http.Error(w, "invalid store id", http.StatusBadRequest)
		return
	}
	var categoryID *int64
	if raw := r.URL.Query().Get("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "invalid category id", http.StatusBadRequest)
			return
		}
		categoryID = &id
	}

	products, err := h.Market.ListProducts(r.Context(), storeID, categoryID)
	if err != nil {
		fail(w, h.Logger, "ListProducts", err)
		return
	}
	if sess := sessionFrom(r); sess != nil {
		sess.Select(session.Selection{StoreID: storeID, CategoryID: categoryID})
	}
	writeJSON(w, http.StatusOK, products)
}
