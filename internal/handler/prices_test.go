package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/pricing"
	"github.com/osse101/BrandishEconomy/mocks"
)

func TestHandleGetPrices(t *testing.T) {
	m := mocks.NewMockPricingEngine(t)
	m.On("ShopQuotes").Return([]pricing.Quote{
		{ItemID: "diamond", Name: "Diamond", Rarity: domain.RarityRare, BuyPrice: 260, SellPrice: 175, ShopStock: -1},
	})

	rec := httptest.NewRecorder()
	HandleGetPrices(m)(rec, httptest.NewRequest(http.MethodGet, "/prices", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	quotes := decodeBody[[]pricing.Quote](t, rec)
	assert.Len(t, quotes, 1)
	assert.Equal(t, int64(175), quotes[0].SellPrice)
}

func TestHandleGetItemPrice(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(*mocks.MockPricingEngine)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Defaults To Sell",
			setupMock: func(m *mocks.MockPricingEngine) {
				m.On("GetItemPrice", "diamond", pricing.DirectionSell).Return(int64(175), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"item_id":"diamond","direction":"sell","price":175}`,
		},
		{
			name:  "Buy",
			query: "?direction=buy",
			setupMock: func(m *mocks.MockPricingEngine) {
				m.On("GetItemPrice", "diamond", pricing.DirectionBuy).Return(int64(240), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"item_id":"diamond","direction":"buy","price":240}`,
		},
		{
			name:           "Bad Direction",
			query:          "?direction=sideways",
			setupMock:      func(m *mocks.MockPricingEngine) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid direction. Valid options: buy, sell"}`,
		},
		{
			name: "Unknown Item",
			setupMock: func(m *mocks.MockPricingEngine) {
				m.On("GetItemPrice", "diamond", pricing.DirectionSell).Return(int64(0), domain.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Item not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mocks.NewMockPricingEngine(t)
			tt.setupMock(m)

			rec := serve(http.MethodGet, "/prices/{itemID}", HandleGetItemPrice(m),
				httptest.NewRequest(http.MethodGet, "/prices/diamond"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}
