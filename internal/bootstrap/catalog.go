package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/BrandishEconomy/internal/config"
	"github.com/osse101/BrandishEconomy/internal/item"
)

// LoadCatalog loads and validates the item catalog named by ITEMS_CONFIG_PATH
func LoadCatalog(ctx context.Context, cfg *config.Config) (*item.MemoryCatalog, error) {
	path := cfg.ItemsConfigPath
	if path == "" {
		path = config.ConfigPathItems
	}

	slog.Info(LogMsgLoadingCatalog, "path", path)
	catalog, err := item.LoadCatalog(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
	}

	slog.Info(LogMsgCatalogLoaded, "items", len(catalog.All()))
	return catalog, nil
}
