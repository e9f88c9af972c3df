package commands

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"ArmoryExchange/internal/config"
)

type cartCmd struct{}

func (cartCmd) Name() string        { return "cart" }
func (cartCmd) Description() string { return "Show your cart" }
func (cartCmd) Usage() string       { return "cart" }

func (cartCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var c cartView
	if err := call(ctx, cfg, http.MethodGet, "/api/cart", nil, http.StatusOK, &c); err != nil {
		return err
	}
	printCart(c)
	return nil
}

type cartAddCmd struct{}

func (cartAddCmd) Name() string        { return "cart-add" }
func (cartAddCmd) Description() string { return "Add a product to your cart" }
func (cartAddCmd) Usage() string       { return "cart-add <storeID> <productID> [quantity]" }

func (cartAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	storeID, err := parseID(args[0])
	if err != nil {
		return err
	}
	productID, err := parseID(args[1])
	if err != nil {
		return err
	}
	qty := int64(1)
	if len(args) == 3 {
		if qty, err = parseID(args[2]); err != nil {
			return err
		}
	}
	req := map[string]int64{"store_id": storeID, "product_id": productID, "quantity": qty}
	var c cartView
	if err := call(ctx, cfg, http.MethodPost, "/api/cart/items", req, http.StatusOK, &c); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Added to cart")
	printCart(c)
	return nil
}

type cartRemoveCmd struct{}

func (cartRemoveCmd) Name() string        { return "cart-remove" }
func (cartRemoveCmd) Description() string { return "Remove a cart line by its index" }
func (cartRemoveCmd) Usage() string       { return "cart-remove <index>" }

func (cartRemoveCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 0 {
		return ErrUsage
	}
	var c cartView
	if err := call(ctx, cfg, http.MethodDelete, fmt.Sprintf("/api/cart/items/%d", index), nil, http.StatusOK, &c); err != nil {
		return err
	}
	printCart(c)
	return nil
}

type checkoutCmd struct{}

func (checkoutCmd) Name() string        { return "checkout" }
func (checkoutCmd) Description() string { return "Place orders for everything in your cart" }
func (checkoutCmd) Usage() string       { return "checkout" }

func (checkoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var res checkoutView
	if err := call(ctx, cfg, http.MethodPost, "/api/cart/checkout", nil, http.StatusCreated, &res); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Order placed: %d line(s), total %s\n", len(res.Orders), money(res.Total))
	return nil
}

type ordersCmd struct{}

func (ordersCmd) Name() string        { return "orders" }
func (ordersCmd) Description() string { return "Show your purchase history, newest first" }
func (ordersCmd) Usage() string       { return "orders" }

func (ordersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var list []orderLineView
	if err := call(ctx, cfg, http.MethodGet, "/api/orders", nil, http.StatusOK, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No orders yet")
		return nil
	}
	for _, o := range list {
		fmt.Fprintf(Out, "- %s  %s x%d  %s\n",
			o.Timestamp.Local().Format(timeLayout), o.ProductName, o.QuantityPurchased, money(o.TotalPrice))
	}
	return nil
}

func init() {
	RegisterCmd(cartCmd{})
	RegisterCmd(cartAddCmd{})
	RegisterCmd(cartRemoveCmd{})
	RegisterCmd(checkoutCmd{})
	RegisterCmd(ordersCmd{})
}
