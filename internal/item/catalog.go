package item

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/logger"
)

// Catalog is the read-only set of item definitions the services price and
// apply effects from.
type Catalog interface {
	Get(itemID string) (*domain.ItemDefinition, error)
	FindByName(query string) (*domain.ItemDefinition, error)
	All() []domain.ItemDefinition
}

// MemoryCatalog is a Catalog held in memory and swappable by Reload
type MemoryCatalog struct {
	mu     sync.RWMutex
	byID   map[string]domain.ItemDefinition
	byName map[string]string
	hash   string
	loader Loader
}

// NewCatalog builds a catalog from already-validated definitions
func NewCatalog(defs []domain.ItemDefinition) *MemoryCatalog {
	c := &MemoryCatalog{}
	c.swap(defs, "")
	return c
}

// LoadCatalog reads, validates and indexes the catalog file at path
func LoadCatalog(ctx context.Context, path string) (*MemoryCatalog, error) {
	loader, err := NewLoader()
	if err != nil {
		return nil, err
	}
	c := &MemoryCatalog{loader: loader}
	if _, err := c.Reload(ctx, path); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads path and swaps the definitions in when the file changed.
// It reports whether a swap happened.
func (c *MemoryCatalog) Reload(ctx context.Context, path string) (bool, error) {
	log := logger.FromContext(ctx)

	if c.loader == nil {
		loader, err := NewLoader()
		if err != nil {
			return false, err
		}
		c.loader = loader
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])
	c.mu.RLock()
	unchanged := hash == c.hash
	c.mu.RUnlock()
	if unchanged {
		log.Debug(LogMsgCatalogUnchanged, "path", path)
		return false, nil
	}

	config, err := c.loader.Parse(data, path)
	if err != nil {
		return false, err
	}
	if err := c.loader.Validate(config); err != nil {
		return false, err
	}

	for _, def := range config.Items {
		for _, eff := range def.Effects {
			if eff.Type.Category() == domain.CategoryUnknown {
				log.Warn(LogMsgUnknownEffect, "item_id", def.ItemID, "effect", eff.Type)
			}
		}
	}

	c.swap(config.Items, hash)
	log.Info(LogMsgCatalogLoaded, "path", path, "items", len(config.Items), "version", config.Version)
	return true, nil
}

func (c *MemoryCatalog) swap(defs []domain.ItemDefinition, hash string) {
	byID := make(map[string]domain.ItemDefinition, len(defs))
	byName := make(map[string]string, len(defs))
	for _, def := range defs {
		byID[def.ItemID] = def
		byName[Fold(def.Name)] = def.ItemID
	}

	c.mu.Lock()
	c.byID = byID
	c.byName = byName
	c.hash = hash
	c.mu.Unlock()
}

// Get returns the definition for itemID
func (c *MemoryCatalog) Get(itemID string) (*domain.ItemDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.byID[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	return &def, nil
}

// FindByName resolves a case-insensitive item name or id
func (c *MemoryCatalog) FindByName(query string) (*domain.ItemDefinition, error) {
	c.mu.RLock()
	id, ok := c.byName[Fold(query)]
	c.mu.RUnlock()
	if ok {
		return c.Get(id)
	}
	return c.Get(strings.TrimSpace(query))
}

// All returns every definition sorted by item id
func (c *MemoryCatalog) All() []domain.ItemDefinition {
	c.mu.RLock()
	defs := make([]domain.ItemDefinition, 0, len(c.byID))
	for _, def := range c.byID {
		defs = append(defs, def)
	}
	c.mu.RUnlock()

	sort.Slice(defs, func(i, j int) bool { return defs[i].ItemID < defs[j].ItemID })
	return defs
}

var _ Catalog = (*MemoryCatalog)(nil)
