package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/osse101/BrandishEconomy/internal/config"
	"github.com/osse101/BrandishEconomy/internal/item"
	"github.com/osse101/BrandishEconomy/internal/pricing"
)

type CheckCatalogCommand struct{}

func (c *CheckCatalogCommand) Name() string {
	return "check-catalog"
}

func (c *CheckCatalogCommand) Description() string {
	return "Validate the items config and print shop prices"
}

func (c *CheckCatalogCommand) Run(args []string) error {
	path := getEnv("ITEMS_CONFIG_PATH", config.ConfigPathItems)
	if len(args) > 0 {
		path = args[0]
	}

	PrintHeader(fmt.Sprintf("Checking catalog %s", path))
	return checkCatalog(context.Background(), path, os.Stdout)
}

func checkCatalog(ctx context.Context, path string, w io.Writer) error {
	catalog, err := item.LoadCatalog(ctx, path)
	if err != nil {
		return err
	}

	quotes := pricing.NewEngine(catalog).ShopQuotes()
	for _, q := range quotes {
		fmt.Fprintf(w, "  %-24s %-10s buy %6d  sell %6d\n", q.ItemID, q.Rarity, q.BuyPrice, q.SellPrice)
	}

	PrintSuccess("%d items valid, %d in the shop", len(catalog.All()), len(quotes))
	return nil
}
