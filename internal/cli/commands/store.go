package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ArmoryExchange/internal/config"
)

type myStoreCmd struct{}

func (myStoreCmd) Name() string        { return "store" }
func (myStoreCmd) Description() string { return "Show your store" }
func (myStoreCmd) Usage() string       { return "store" }

func (myStoreCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var st storeView
	if err := call(ctx, cfg, http.MethodGet, "/api/my/store", nil, http.StatusOK, &st); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Store #%d: %s\n", st.ID, st.Name)
	return nil
}

type storeCreateCmd struct{}

func (storeCreateCmd) Name() string        { return "store-create" }
func (storeCreateCmd) Description() string { return "Open your store (one per user)" }
func (storeCreateCmd) Usage() string       { return "store-create <name>" }

func (storeCreateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	var st storeView
	req := map[string]string{"name": strings.Join(args, " ")}
	if err := call(ctx, cfg, http.MethodPost, "/api/my/store", req, http.StatusCreated, &st); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Store %q created (#%d)\n", st.Name, st.ID)
	return nil
}

type storeDeleteCmd struct{}

func (storeDeleteCmd) Name() string { return "store-delete" }
func (storeDeleteCmd) Description() string {
	return "Delete your store with all its categories and products"
}
func (storeDeleteCmd) Usage() string { return "store-delete" }

func (storeDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := call(ctx, cfg, http.MethodDelete, "/api/my/store", nil, http.StatusNoContent, nil); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Store deleted")
	return nil
}

type myCategoriesCmd struct{}

func (myCategoriesCmd) Name() string        { return "my-categories" }
func (myCategoriesCmd) Description() string { return "List categories of your store" }
func (myCategoriesCmd) Usage() string       { return "my-categories" }

func (myCategoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var list []categoryView
	if err := call(ctx, cfg, http.MethodGet, "/api/my/store/categories", nil, http.StatusOK, &list); err != nil {
		return err
	}
	printCategories(list)
	return nil
}

type categoryAddCmd struct{}

func (categoryAddCmd) Name() string        { return "category-add" }
func (categoryAddCmd) Description() string { return "Add a category to your store" }
func (categoryAddCmd) Usage() string       { return "category-add <name>" }

func (categoryAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	var c categoryView
	req := map[string]string{"name": strings.Join(args, " ")}
	if err := call(ctx, cfg, http.MethodPost, "/api/my/store/categories", req, http.StatusCreated, &c); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Category %q added (#%d)\n", c.Name, c.ID)
	return nil
}

type categoryDeleteCmd struct{}

func (categoryDeleteCmd) Name() string { return "category-delete" }
func (categoryDeleteCmd) Description() string {
	return "Delete a category, its products become uncategorized"
}
func (categoryDeleteCmd) Usage() string { return "category-delete <categoryID>" }

func (categoryDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := call(ctx, cfg, http.MethodDelete, fmt.Sprintf("/api/my/store/categories/%d", id), nil, http.StatusNoContent, nil); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Category deleted")
	return nil
}

type myProductsCmd struct{}

func (myProductsCmd) Name() string        { return "my-products" }
func (myProductsCmd) Description() string { return "List products of your store" }
func (myProductsCmd) Usage() string       { return "my-products" }

func (myProductsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var list []productView
	if err := call(ctx, cfg, http.MethodGet, "/api/my/store/products", nil, http.StatusOK, &list); err != nil {
		return err
	}
	printProducts(list)
	return nil
}

type productPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	CategoryID  *int64 `json:"category_id"`
}

// parseProductArgs разбирает [-desc text] [-category id] и позиционные аргументы.
func parseProductArgs(name string, args []string, positional int) (productPayload, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	desc := fs.String("desc", "", "product description")
	category := fs.Int64("category", 0, "category id")
	if err := fs.Parse(args); err != nil {
		return productPayload{}, nil, ErrUsage
	}
	rest := fs.Args()
	if len(rest) != positional {
		return productPayload{}, nil, ErrUsage
	}
	p := productPayload{Description: *desc}
	if *category > 0 {
		p.CategoryID = category
	}
	return p, rest, nil
}

type productAddCmd struct{}

func (productAddCmd) Name() string        { return "product-add" }
func (productAddCmd) Description() string { return "Add a product to your store" }
func (productAddCmd) Usage() string {
	return "product-add [-desc text] [-category id] <name> <price>"
}

func (c productAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	p, rest, err := parseProductArgs(c.Name(), args, 2)
	if err != nil {
		return err
	}
	p.Name = rest[0]
	if p.Price, err = parsePrice(rest[1]); err != nil {
		return err
	}
	var created productView
	if err := call(ctx, cfg, http.MethodPost, "/api/my/store/products", p, http.StatusCreated, &created); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Product %q added (#%d) at %s\n", created.Name, created.ID, money(created.Price))
	return nil
}

type productEditCmd struct{}

func (productEditCmd) Name() string        { return "product-edit" }
func (productEditCmd) Description() string { return "Replace name, price, description and category of a product" }
func (productEditCmd) Usage() string {
	return "product-edit [-desc text] [-category id] <productID> <name> <price>"
}

func (c productEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	p, rest, err := parseProductArgs(c.Name(), args, 3)
	if err != nil {
		return err
	}
	id, err := parseID(rest[0])
	if err != nil {
		return err
	}
	p.Name = rest[1]
	if p.Price, err = parsePrice(rest[2]); err != nil {
		return err
	}
	var updated productView
	if err := call(ctx, cfg, http.MethodPut, fmt.Sprintf("/api/my/store/products/%d", id), p, http.StatusOK, &updated); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Product #%d updated: %s at %s\n", updated.ID, updated.Name, money(updated.Price))
	return nil
}

type productDeleteCmd struct{}

func (productDeleteCmd) Name() string        { return "product-delete" }
func (productDeleteCmd) Description() string { return "Delete a product from your store" }
func (productDeleteCmd) Usage() string       { return "product-delete <productID>" }

func (productDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := call(ctx, cfg, http.MethodDelete, fmt.Sprintf("/api/my/store/products/%d", id), nil, http.StatusNoContent, nil); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Product deleted")
	return nil
}

type salesCmd struct{}

func (salesCmd) Name() string        { return "sales" }
func (salesCmd) Description() string { return "Show sales of your store, newest first" }
func (salesCmd) Usage() string       { return "sales" }

func (salesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var list []saleView
	if err := call(ctx, cfg, http.MethodGet, "/api/my/store/sales", nil, http.StatusOK, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No sales yet")
		return nil
	}
	for _, s := range list {
		fmt.Fprintf(Out, "- %s  %s bought %s x%d for %s\n",
			s.Timestamp.Local().Format(timeLayout), s.Buyer, s.ProductName, s.QuantityPurchased, money(s.TotalPrice))
	}
	return nil
}

func init() {
	RegisterCmd(myStoreCmd{})
	RegisterCmd(storeCreateCmd{})
	RegisterCmd(storeDeleteCmd{})
	RegisterCmd(myCategoriesCmd{})
	RegisterCmd(categoryAddCmd{})
	RegisterCmd(categoryDeleteCmd{})
	RegisterCmd(myProductsCmd{})
	RegisterCmd(productAddCmd{})
	RegisterCmd(productEditCmd{})
	RegisterCmd(productDeleteCmd{})
	RegisterCmd(salesCmd{})
}
