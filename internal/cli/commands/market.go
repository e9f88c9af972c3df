package commands

import (
	"context"
	"fmt"
	"net/http"

	"ArmoryExchange/internal/config"
)

type storesCmd struct{}

func (storesCmd) Name() string        { return "stores" }
func (storesCmd) Description() string { return "List all stores" }
func (storesCmd) Usage() string       { return "stores" }

func (storesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var list []storeView
	if err := call(ctx, cfg, http.MethodGet, "/api/stores", nil, http.StatusOK, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No stores yet")
		return nil
	}
	for _, s := range list {
		fmt.Fprintf(Out, "- #%d  %s\n", s.ID, s.Name)
	}
	return nil
}

type categoriesCmd struct{}

func (categoriesCmd) Name() string        { return "categories" }
func (categoriesCmd) Description() string { return "List categories of a store" }
func (categoriesCmd) Usage() string       { return "categories <storeID>" }

func (categoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	storeID, err := parseID(args[0])
	if err != nil {
		return err
	}
	var list []categoryView
	if err := call(ctx, cfg, http.MethodGet, fmt.Sprintf("/api/stores/%d/categories", storeID), nil, http.StatusOK, &list); err != nil {
		return err
	}
	printCategories(list)
	return nil
}

type productsCmd struct{}

func (productsCmd) Name() string { return "products" }
func (productsCmd) Description() string {
	return "List products of a store, optionally one category"
}
func (productsCmd) Usage() string { return "products <storeID> [categoryID]" }

func (productsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	storeID, err := parseID(args[0])
	if err != nil {
		return err
	}
	path := fmt.Sprintf("/api/stores/%d/products", storeID)
	if len(args) == 2 {
		categoryID, err := parseID(args[1])
		if err != nil {
			return err
		}
		path += fmt.Sprintf("?category=%d", categoryID)
	}
	var list []productView
	if err := call(ctx, cfg, http.MethodGet, path, nil, http.StatusOK, &list); err != nil {
		return err
	}
	printProducts(list)
	return nil
}

func init() {
	RegisterCmd(storesCmd{})
	RegisterCmd(categoriesCmd{})
	RegisterCmd(productsCmd{})
}
