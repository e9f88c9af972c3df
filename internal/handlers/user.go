package handlers

import (
	"ArmoryExchange/internal/config"
	"ArmoryExchange/internal/middleware"
	"ArmoryExchange/internal/model"
	"ArmoryExchange/internal/service"
	"ArmoryExchange/internal/session"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler: регистрация, вход и выход.
type UserHandler struct {
	UserService *service.UserService
	Sessions    *session.Manager
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, sessions *session.Manager, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Sessions: sessions, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Register создаёт пользователя и сразу открывает ему сессию.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	user, err := h.UserService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		fail(w, h.Logger, "Register", err)
		return
	}
	h.Logger.Infow("user registered", "user_id", user.ID, "username", user.Username)
	h.startSession(w, r, user)
}

// Login проверяет учётные данные и открывает новую сессию с пустой корзиной.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	user, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		fail(w, h.Logger, "Login", err)
		return
	}
	h.startSession(w, r, user)
}

// Logout сбрасывает сессию: корзина и выбор навигации теряются.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sid, ok := middleware.GetSessionIDFromContext(r.Context()); ok {
		h.Sessions.Delete(sid)
	}
	middleware.ClearLoginCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

type statusResponse struct {
	Result    string             `json:"result"`
	UserID    int64              `json:"user_id,omitempty"`
	Username  string             `json:"username,omitempty"`
	CartItems int                `json:"cart_items"`
	Selection *session.Selection `json:"selection,omitempty"`
}

// Status сообщает, кто вошёл, и краткое состояние сессии.
func (h *UserHandler) Status(w http.ResponseWriter, r *http.Request) {
	sess, ok := lookupSession(r, h.Sessions)
	if !ok {
		writeJSON(w, http.StatusOK, statusResponse{Result: "anonymous"})
		return
	}
	sel := sess.Selection()
	writeJSON(w, http.StatusOK, statusResponse{
		Result:    fmt.Sprintf("User ID = %d", sess.UserID),
		UserID:    sess.UserID,
		Username:  sess.Username,
		CartItems: len(sess.CartItems()),
		Selection: &sel,
	})
}

func (h *UserHandler) startSession(w http.ResponseWriter, r *http.Request, user *model.User) {
	// прежняя сессия этого браузера больше не нужна
	if sid, ok := middleware.GetSessionIDFromContext(r.Context()); ok {
		h.Sessions.Delete(sid)
	}
	sess := h.Sessions.Create(user.ID, user.Username)
	if err := middleware.SetLoginCookie(w, user.ID, sess.ID, h.Config.AuthSecret, h.Config.AuthTTL); err != nil {
		h.Sessions.Delete(sess.ID)
		h.Logger.Errorw("failed to issue token", "user_id", user.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}
