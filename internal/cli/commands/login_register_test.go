package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	fsrepo "ArmoryExchange/internal/cli/repo/fs"
	"ArmoryExchange/internal/config"
)

// --- login tests ---
func TestLogin_Run_SuccessAndErrors(t *testing.T) {
	// HTTP сервер имитирует /api/user/login
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/api/user/login") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		// успех: 200 + Set-Cookie
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "tok-123"})
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":1,"username":"alice"}`))
	}))
	defer ts.Close()

	cfg := withTempConfig(t, ts.URL)
	cmd := loginCmd{}
	if err := cmd.Run(context.Background(), cfg, []string{"alice", "secret"}); err != nil {
		t.Fatalf("login should succeed: %v", err)
	}
	// проверим, что токен сохранён
	tok, err := fsrepo.AuthFSStore{Path: cfg.TokenFile}.Load()
	if err != nil || tok != "tok-123" {
		t.Fatalf("auth token not saved: %q %v", tok, err)
	}

	// 401 Unauthorized
	ts401 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	}))
	defer ts401.Close()
	err = cmd.Run(context.Background(), withTempConfig(t, ts401.URL), []string{"alice", "bad"})
	if err == nil || !strings.Contains(err.Error(), "invalid username or password") {
		t.Fatalf("expected credentials error for 401, got %v", err)
	}

	// недостаточно аргументов → ErrUsage
	if err := cmd.Run(context.Background(), cfg, []string{"onlyLogin"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}

	// server 500 → ошибка
	ts500 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts500.Close()
	if err := cmd.Run(context.Background(), withTempConfig(t, ts500.URL), []string{"a", "b"}); err == nil {
		t.Fatalf("expected error for 500")
	}

	// 200 без cookie: сохранять нечего
	tsNoCookie := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer tsNoCookie.Close()
	if err := cmd.Run(context.Background(), withTempConfig(t, tsNoCookie.URL), []string{"a", "b"}); err == nil {
		t.Fatalf("expected error when cookie is missing")
	}
}

// --- register tests ---
func TestRegister_Run_SuccessAndErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/api/user/register") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "tok-xyz"})
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":2,"username":"bob"}`))
	}))
	defer ts.Close()

	cfg := withTempConfig(t, ts.URL)
	cmd := registerCmd{}
	if err := cmd.Run(context.Background(), cfg, []string{"bob", "pwd"}); err != nil {
		t.Fatalf("register should succeed: %v", err)
	}
	if _, err := os.Stat(cfg.TokenFile); err != nil {
		t.Fatalf("token not saved: %v", err)
	}

	// 409 Conflict
	ts409 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "username already exists", http.StatusConflict)
	}))
	defer ts409.Close()
	err := cmd.Run(context.Background(), withTempConfig(t, ts409.URL), []string{"bob", "pwd"})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected conflict error, got %v", err)
	}

	// недостаточно аргументов → ErrUsage
	if err := cmd.Run(context.Background(), cfg, []string{"onlyLogin"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

// --- logout tests ---
func TestLogout_ClearsTokenEvenIfServerFails(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL, TokenFile: withTempConfig(t, ts.URL).TokenFile}
	store := fsrepo.AuthFSStore{Path: cfg.TokenFile}
	if err := store.Save("tok"); err != nil {
		t.Fatalf("save: %v", err)
	}
	out := withStdoutCapture(t, func() {
		if err := (logoutCmd{}).Run(context.Background(), cfg, nil); err != nil {
			t.Fatalf("logout: %v", err)
		}
	})
	if !strings.Contains(out, "warning") || !strings.Contains(out, "Logged out") {
		t.Fatalf("unexpected output: %s", out)
	}
	if _, err := store.Load(); err == nil {
		t.Fatalf("token must be removed")
	}
}
