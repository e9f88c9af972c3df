package commands

import (
	"context"
	"fmt"
	"net/http"

	"ArmoryExchange/internal/config"
)

type statusResponse struct {
	Result    string `json:"result"`
	Username  string `json:"username"`
	CartItems int    `json:"cart_items"`
	Selection *struct {
		StoreID    int64  `json:"store_id"`
		CategoryID *int64 `json:"category_id"`
	} `json:"selection"`
}

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show who is logged in" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var st statusResponse
	if err := call(ctx, cfg, http.MethodGet, "/api/user/status", nil, http.StatusOK, &st); err != nil {
		return err
	}
	if st.Username == "" {
		fmt.Fprintln(Out, "Status:", st.Result)
		return nil
	}
	fmt.Fprintf(Out, "Status: logged in as %s (%s)\n", st.Username, st.Result)
	fmt.Fprintf(Out, "Cart: %d item(s)\n", st.CartItems)
	if st.Selection != nil && st.Selection.StoreID != 0 {
		if st.Selection.CategoryID != nil {
			fmt.Fprintf(Out, "Browsing: store %d, category %d\n", st.Selection.StoreID, *st.Selection.CategoryID)
		} else {
			fmt.Fprintf(Out, "Browsing: store %d, all categories\n", st.Selection.StoreID)
		}
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
