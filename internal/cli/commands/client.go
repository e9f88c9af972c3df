package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"ArmoryExchange/internal/cli/api"
	fsrepo "ArmoryExchange/internal/cli/repo/fs"
	"ArmoryExchange/internal/config"

	"github.com/dustin/go-humanize"
)

// ErrNotLoggedIn: нет токена или серверная сессия истекла.
var ErrNotLoggedIn = errors.New("not logged in (run: mktcli login <username> <password>)")

func tokenStore(cfg *config.Config) fsrepo.AuthFSStore {
	return fsrepo.AuthFSStore{Path: cfg.TokenFile}
}

func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

// call выполняет запрос с сохранённым токеном и декодирует ответ в out.
func call(ctx context.Context, cfg *config.Config, method, path string, payload any, want int, out any) error {
	token, _ := tokenStore(cfg).Load()
	resp, body, err := api.Do(ctx, method, endpoint(cfg, path), payload, token)
	if err != nil {
		return err
	}
	err = api.Expect(resp, body, want, out)
	var se *api.StatusError
	if errors.As(err, &se) && se.Code == http.StatusUnauthorized {
		return ErrNotLoggedIn
	}
	return err
}

// money форматирует цену с разделителями разрядов: 1000 -> $1,000.
func money(v int64) string {
	return "$" + humanize.Comma(v)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", ErrUsage, s)
	}
	return id, nil
}

func parsePrice(s string) (int64, error) {
	p, err := strconv.ParseInt(strings.TrimPrefix(s, "$"), 10, 64)
	if err != nil || p < 0 {
		return 0, fmt.Errorf("%w: invalid price %q", ErrUsage, s)
	}
	return p, nil
}
