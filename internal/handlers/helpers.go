package handlers

import (
	"ArmoryExchange/internal/middleware"
	"ArmoryExchange/internal/service"
	"ArmoryExchange/internal/session"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ctxKey int

const sessionKey ctxKey = 0

// requireSession пропускает только запросы с валидным токеном и живой серверной сессией.
func requireSession(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := lookupSession(r, sessions)
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func lookupSession(r *http.Request, sessions *session.Manager) (*session.Session, bool) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return nil, false
	}
	sid, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		return nil, false
	}
	sess, ok := sessions.Get(sid)
	if !ok || sess.UserID != uid {
		return nil, false
	}
	return sess, true
}

func sessionFrom(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(sessionKey).(*session.Session)
	return sess
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// statusFor сопоставляет бизнес-ошибку с HTTP-статусом.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrNoStore):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrStoreNameTaken),
		errors.Is(err, service.ErrAlreadyHasStore),
		errors.Is(err, service.ErrCheckoutFailed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail пишет ошибку клиенту. Внутренние детали наружу не уходят.
func fail(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Errorw(op+": service error", "error", err)
		http.Error(w, "internal error", status)
		return
	}
	logger.Debugw(op+": rejected", "status", status, "error", err)
	msg := err.Error()
	if errors.Is(err, service.ErrCheckoutFailed) {
		msg = service.ErrCheckoutFailed.Error()
	}
	http.Error(w, msg, status)
}
