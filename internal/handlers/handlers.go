package handlers

import (
	"ArmoryExchange/internal/config"
	"ArmoryExchange/internal/middleware"
	"ArmoryExchange/internal/service"
	"ArmoryExchange/internal/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// Services: сервисы, которые нужны хендлерам.
type Services struct {
	Users  *service.UserService
	Stores *service.StoreService
	Market *service.MarketService
	Orders *service.OrderService
}

// NewHandler разводящий для хендлеров
func NewHandler(
	svc Services,
	sessions *session.Manager,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(svc.Users, sessions, logger, config)
	marketHandler := NewMarketHandler(svc.Market, logger)
	storeHandler := NewStoreHandler(svc.Stores, logger)
	cartHandler := NewCartHandler(svc.Orders, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/logout", userHandler.Logout)
	r.Get("/api/user/status", userHandler.Status)

	// Всё остальное требует живой сессии
	r.Group(func(r chi.Router) {
		r.Use(requireSession(sessions))

		r.Get("/api/stores", marketHandler.ListStores)
		r.Get("/api/stores/{storeID}/categories", marketHandler.ListCategories)
		r.Get("/api/stores/{storeID}/products", marketHandler.ListProducts)

		r.Route("/api/my/store", func(r chi.Router) {
			r.Get("/", storeHandler.Get)
			r.Post("/", storeHandler.Create)
			r.Delete("/", storeHandler.Delete)
			r.Get("/categories", storeHandler.ListCategories)
			r.Post("/categories", storeHandler.AddCategory)
			r.Delete("/categories/{categoryID}", storeHandler.DeleteCategory)
			r.Get("/products", storeHandler.ListProducts)
			r.Post("/products", storeHandler.AddProduct)
			r.Put("/products/{productID}", storeHandler.EditProduct)
			r.Delete("/products/{productID}", storeHandler.DeleteProduct)
			r.Get("/sales", storeHandler.Sales)
		})

		r.Get("/api/cart", cartHandler.View)
		r.Post("/api/cart/items", cartHandler.AddItem)
		r.Delete("/api/cart/items/{index}", cartHandler.RemoveItem)
		r.Post("/api/cart/checkout", cartHandler.Checkout)
		r.Get("/api/orders", cartHandler.Orders)
	})

	return &Handler{Router: r}
}
