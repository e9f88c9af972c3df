package handlers

import (
	"ArmoryExchange/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// StoreHandler: действия владельца над своим магазином.
// Магазин определяется по сессии, ID магазина от клиента не принимается.
type StoreHandler struct {
	Stores *service.StoreService
	Logger *zap.SugaredLogger
}

func NewStoreHandler(stores *service.StoreService, logger *zap.SugaredLogger) *StoreHandler {
	return &StoreHandler{Stores: stores, Logger: logger}
}

type nameRequest struct {
	Name string `json:"name"`
}

type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	CategoryID  *int64 `json:"category_id"`
}

func (p productRequest) input() service.ProductInput {
	return service.ProductInput{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
	}
}

func (h *StoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.Stores.MyStore(r.Context(), sessionFrom(r).UserID)
	if err != nil {
		fail(w, h.Logger, "MyStore", err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *StoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	st, err := h.Stores.CreateStore(r.Context(), sessionFrom(r).UserID, req.Name)
	if err != nil {
		fail(w, h.Logger, "CreateStore", err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

func (h *StoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Stores.DeleteStore(r.Context(), sessionFrom(r).UserID); err != nil {
		fail(w, h.Logger, "DeleteStore", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StoreHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Stores.ListCategories(r.Context(), sessionFrom(r).UserID)
	if err != nil {
		fail(w, h.Logger, "ListMyCategories", err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

func (h *StoreHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	c, err := h.Stores.AddCategory(r.Context(), sessionFrom(r).UserID, req.Name)
	if err != nil {
		fail(w, h.Logger, "AddCategory", err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *StoreHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "categoryID")
	if !ok {
		http.Error(w, "invalid category id", http.StatusBadRequest)
		return
	}
	if err := h.Stores.DeleteCategory(r.Context(), sessionFrom(r).UserID, id); err != nil {
		fail(w, h.Logger, "DeleteCategory", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StoreHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Stores.ListProducts(r.Context(), sessionFrom(r).UserID)
	if err != nil {
		fail(w, h.Logger, "ListMyProducts", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *StoreHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	p, err := h.Stores.AddProduct(r.Context(), sessionFrom(r).UserID, req.input())
	if err != nil {
		fail(w, h.Logger, "AddProduct", err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *StoreHandler) EditProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "productID")
	if !ok {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	p, err := h.Stores.EditProduct(r.Context(), sessionFrom(r).UserID, id, req.input())
	if err != nil {
		fail(w, h.Logger, "EditProduct", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *StoreHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "productID")
	if !ok {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	if err := h.Stores.DeleteProduct(r.Context(), sessionFrom(r).UserID, id); err != nil {
		fail(w, h.Logger, "DeleteProduct", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StoreHandler) Sales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Stores.Sales(r.Context(), sessionFrom(r).UserID)
	if err != nil {
		fail(w, h.Logger, "Sales", err)
		return
	}
	writeJSON(w, http.StatusOK, sales)
}
