package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ArmoryExchange/internal/cli/api"
	"ArmoryExchange/internal/config"
)

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// authenticate отправляет учётные данные и сохраняет выданный токен.
func authenticate(ctx context.Context, cfg *config.Config, path, username, password string) error {
	req := CredentialsRequest{Username: username, Password: password}
	resp, body, err := api.Do(ctx, http.MethodPost, endpoint(cfg, path), req, "")
	if err != nil {
		return err
	}
	if err := api.Expect(resp, body, http.StatusOK, nil); err != nil {
		return err
	}
	if err := api.PersistAuthFromResponse(resp, tokenStore(cfg)); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	return nil
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth cookie" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	err := authenticate(ctx, cfg, "/api/user/login", args[0], args[1])
	var se *api.StatusError
	if errors.As(err, &se) && se.Code == http.StatusUnauthorized {
		return errors.New("invalid username or password")
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and log in" }
func (registerCmd) Usage() string       { return "register <username> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	err := authenticate(ctx, cfg, "/api/user/register", args[0], args[1])
	var se *api.StatusError
	if errors.As(err, &se) && se.Code == http.StatusConflict {
		return errors.New("username already exists")
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Registered and logged in as %s\n", args[0])
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Log out and forget the stored token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	// серверную сессию закрываем по возможности, локальный токен удаляем всегда
	if err := call(ctx, cfg, http.MethodPost, "/api/user/logout", nil, http.StatusNoContent, nil); err != nil {
		fmt.Fprintf(Out, "warning: server logout failed: %v\n", err)
	}
	if err := tokenStore(cfg).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(registerCmd{})
	RegisterCmd(logoutCmd{})
}
