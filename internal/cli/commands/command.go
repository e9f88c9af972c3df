package commands

import (
	"ArmoryExchange/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "login".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "login <login> <password>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// registry holds available commands by name.
var registry = map[string]Command{}

// Out: общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// RegisterCmd adds a command to the registry. Should be called from init() of each command.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// commandGroups places each command under a help section. Unlisted commands go to "Other".
var commandGroups = map[string]string{
	"register": "Account", "login": "Account", "logout": "Account", "status": "Account",
	"stores": "Marketplace", "categories": "Marketplace", "products": "Marketplace",
	"cart": "Cart and orders", "cart-add": "Cart and orders", "cart-remove": "Cart and orders",
	"checkout": "Cart and orders", "orders": "Cart and orders",
	"store": "My store", "store-create": "My store", "store-delete": "My store",
	"my-categories": "My store", "category-add": "My store", "category-delete": "My store",
	"my-products": "My store", "product-add": "My store", "product-edit": "My store",
	"product-delete": "My store", "sales": "My store",
}

var groupOrder = []string{"Account", "Marketplace", "Cart and orders", "My store", "Other"}

func groupOf(name string) string {
	if g, ok := commandGroups[name]; ok {
		return g
	}
	return "Other"
}

// FormatGlobalUsage builds a help text for all commands grouped by section, followed by a short walkthrough.
func FormatGlobalUsage() string {
	lines := []string{
		"Armory Exchange CLI",
		"",
		"Usage:",
		"  mktcli [--base-url <host:port>] [--token-file <path>] <command> [args]",
		"  mktcli help <command>",
	}
	byGroup := map[string][]Command{}
	for _, c := range List() {
		g := groupOf(c.Name())
		byGroup[g] = append(byGroup[g], c)
	}
	for _, g := range groupOrder {
		cmds := byGroup[g]
		if len(cmds) == 0 {
			continue
		}
		lines = append(lines, "", g+":")
		for _, c := range cmds {
			lines = append(lines, fmt.Sprintf("  %-44s %s", c.Usage(), c.Description()))
		}
	}
	lines = append(lines,
		"",
		"Examples:",
		"  mktcli register alice s3cret",
		"  mktcli store-create \"Alice Armory\"",
		"  mktcli category-add Rifles",
		"  mktcli product-add -category 1 -desc \"Bolt action\" \"M24\" 1500",
		"  mktcli stores",
		"  mktcli products 1",
		"  mktcli cart-add 1 1 2",
		"  mktcli checkout",
	)
	return strings.Join(lines, "\n") + "\n"
}

// FormatCommandUsage builds the help text of a single command.
func FormatCommandUsage(c Command) string {
	out := fmt.Sprintf("Usage: mktcli %s\n", c.Usage())
	if d := c.Description(); d != "" {
		out += d + "\n"
	}
	return out
}
