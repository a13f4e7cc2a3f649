package pricing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/item"
)

func newTestEngine(rnd func() float64) *engine {
	catalog := item.NewCatalog([]domain.ItemDefinition{
		{ItemID: "stick", Name: "Stick", BasePrice: 10, Rarity: domain.RarityCommon, ShopStock: -1},
		{ItemID: "gem", Name: "Gem", BasePrice: 100, Rarity: domain.RarityRare, ShopStock: 3},
		{ItemID: "odd", Name: "Odd", BasePrice: 7, Rarity: domain.RarityUncommon},
		{ItemID: "free", Name: "Free", BasePrice: 0, Rarity: domain.RarityMythical, ShopStock: -1},
	})
	return &engine{catalog: catalog, rnd: rnd}
}

func TestRarityMultiplier(t *testing.T) {
	tests := []struct {
		rarity domain.Rarity
		want   string
	}{
		{domain.RarityCommon, "1"},
		{domain.RarityUncommon, "1.5"},
		{domain.RarityRare, "2.5"},
		{domain.RarityEpic, "4"},
		{domain.RarityLegendary, "7"},
		{domain.RarityMythical, "12"},
		{"unknown", "1"},
	}
	for _, tt := range tests {
		t.Run(string(tt.rarity), func(t *testing.T) {
			assert.Equal(t, tt.want, RarityMultiplier(tt.rarity).String())
		})
	}
}

func TestGetItemPrice_Sell(t *testing.T) {
	e := newTestEngine(func() float64 { return 0.5 })

	tests := []struct {
		itemID string
		want   int64
	}{
		{"stick", 7},  // 10 × 1 × 0.7
		{"gem", 175},  // 100 × 2.5 × 0.7
		{"odd", 7},    // 7 × 1.5 × 0.7 = 7.35
		{"free", 0},
	}
	for _, tt := range tests {
		t.Run(tt.itemID, func(t *testing.T) {
			got, err := e.GetItemPrice(tt.itemID, DirectionSell)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetItemPrice_SellIsDeterministic(t *testing.T) {
	e := newTestEngine(rand.Float64)

	first, err := e.GetItemPrice("gem", DirectionSell)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := e.GetItemPrice("gem", DirectionSell)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestGetItemPrice_BuyBounds(t *testing.T) {
	tests := []struct {
		name string
		rnd  float64
		want int64
	}{
		{"lowest roll", 0, 200},        // 250 × 0.8
		{"middle roll", 0.5, 250},      // 250 × 1.0
		{"near highest", 0.9999, 299},  // 250 × 1.19996
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(func() float64 { return tt.rnd })
			got, err := e.GetItemPrice("gem", DirectionBuy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestGetItemPrice_BuyRandomWithinBand checks buy ∈ [0.8, 1.2] × base × multiplier
func TestGetItemPrice_BuyRandomWithinBand(t *testing.T) {
	e := newTestEngine(rand.Float64)

	for i := 0; i < 500; i++ {
		got, err := e.GetItemPrice("gem", DirectionBuy)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, int64(200))
		assert.LessOrEqual(t, got, int64(300))
	}
}

func TestGetItemPrice_Errors(t *testing.T) {
	e := newTestEngine(func() float64 { return 0 })

	_, err := e.GetItemPrice("missing", DirectionBuy)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = e.GetItemPrice("gem", Direction("lend"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShopQuotes(t *testing.T) {
	e := newTestEngine(func() float64 { return 0.5 })

	quotes := e.ShopQuotes()

	ids := make([]string, 0, len(quotes))
	for _, q := range quotes {
		ids = append(ids, q.ItemID)
	}
	assert.Equal(t, []string{"free", "gem", "stick"}, ids, "items with zero shop stock are not listed")
	assert.Equal(t, int64(250), quotes[1].BuyPrice)
	assert.Equal(t, int64(175), quotes[1].SellPrice)
}
