package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeServerTime(t *testing.T) {
	st, err := DecodeServerTime(`{"serverTime":1499827319559}`)

	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(1499827319559).UTC(), st.ServerTime)
}

func TestDecodeServerTime_Invalid(t *testing.T) {
	_, err := DecodeServerTime(`not json`)
	assert.Error(t, err)
}

func TestDecodeOrderBook(t *testing.T) {
	raw := `{
		"lastUpdateId": 1027024,
		"E": 1589436922972,
		"T": 1589436922959,
		"bids": [["4.00000000", "431.00000000"], ["3.99", "12"]],
		"asks": [["4.00000200", "12.00000000"]]
	}`

	book, err := DecodeOrderBook(raw)

	require.NoError(t, err)
	assert.Equal(t, int64(1027024), book.LastUpdateID)
	assert.Equal(t, time.UnixMilli(1589436922972).UTC(), book.EventTime)
	assert.Equal(t, time.UnixMilli(1589436922959).UTC(), book.TransactTime)
	require.Len(t, book.Bids, 2)
	require.Len(t, book.Asks, 1)
	assert.Equal(t, "4.00000000", book.Bids[0].Price.String())
	assert.Equal(t, "431.00000000", book.Bids[0].Quantity.String())
	assert.Equal(t, "4.00000200", book.Asks[0].Price.String())
}

func TestDecodeOrderBook_InvalidLevel(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"short_level", `{"bids":[["4.0"]],"asks":[]}`},
		{"bad_price", `{"bids":[["abc","1"]],"asks":[]}`},
		{"bad_quantity", `{"bids":[],"asks":[["1","x"]]}`},
		{"not_json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeOrderBook(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestDecodeKlines(t *testing.T) {
	raw := `[
		[1499040000000, "0.01634790", "0.80000000", "0.01575800", "0.01577100", "148976.11427815",
		 1499644799999, "2434.19055334", 308, "1756.87402397", "28.46694368", "0"]
	]`

	klines, err := DecodeKlines(raw)

	require.NoError(t, err)
	require.Len(t, klines, 1)
	k := klines[0]
	assert.Equal(t, time.UnixMilli(1499040000000).UTC(), k.OpenTime)
	assert.Equal(t, time.UnixMilli(1499644799999).UTC(), k.CloseTime)
	assert.Equal(t, "0.01634790", k.Open.String())
	assert.Equal(t, "0.80000000", k.High.String())
	assert.Equal(t, "0.01575800", k.Low.String())
	assert.Equal(t, "0.01577100", k.Close.String())
	assert.Equal(t, "148976.11427815", k.Volume.String())
	assert.Equal(t, "2434.19055334", k.QuoteVolume.String())
	assert.Equal(t, int64(308), k.NumTrades)
	assert.Equal(t, "1756.87402397", k.TakerBuyBaseVolume.String())
	assert.Equal(t, "28.46694368", k.TakerBuyQuoteVolume.String())
}

func TestDecodeKlines_Empty(t *testing.T) {
	klines, err := DecodeKlines(`[]`)

	require.NoError(t, err)
	assert.Empty(t, klines)
}

func TestDecodeKlines_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"short_row", `[[1499040000000, "1", "2"]]`},
		{"string_open_time", `[["x", "1", "1", "1", "1", "1", 1, "1", 1, "1", "1", "0"]]`},
		{"bad_decimal", `[[1, "one", "1", "1", "1", "1", 1, "1", 1, "1", "1", "0"]]`},
		{"object", `{"code":-1121}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeKlines(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestDecodeExchangeInfo(t *testing.T) {
	raw := `{
		"timezone": "UTC",
		"serverTime": 1565246363776,
		"rateLimits": [{"rateLimitType": "REQUEST_WEIGHT", "interval": "MINUTE", "intervalNum": 1, "limit": 2400}],
		"assets": [{"asset": "BUSD", "marginAvailable": true, "autoAssetExchange": "0"}],
		"symbols": [{
			"symbol": "BLZUSDT",
			"pair": "BLZUSDT",
			"contractType": "PERPETUAL",
			"deliveryDate": 4133404800000,
			"onboardDate": 1598252400000,
			"status": "TRADING",
			"baseAsset": "BLZ",
			"quoteAsset": "USDT",
			"marginAsset": "USDT",
			"pricePrecision": 5,
			"quantityPrecision": 0,
			"orderTypes": ["LIMIT", "MARKET"],
			"timeInForce": ["GTC", "IOC"],
			"filters": [
				{"filterType": "PRICE_FILTER", "maxPrice": "300", "minPrice": "0.0001", "tickSize": "0.0001"},
				{"filterType": "LOT_SIZE", "maxQty": "10000000", "minQty": "1", "stepSize": "1"}
			]
		}]
	}`

	info, err := DecodeExchangeInfo(raw)

	require.NoError(t, err)
	assert.Equal(t, "UTC", info.Timezone)
	assert.Equal(t, time.UnixMilli(1565246363776).UTC(), info.ServerTime)
	require.Len(t, info.RateLimits, 1)
	assert.Equal(t, 2400, info.RateLimits[0].Limit)
	require.Len(t, info.Assets, 1)
	assert.True(t, info.Assets[0].MarginAvailable)

	sym, ok := info.Symbol("BLZUSDT")
	require.True(t, ok)
	assert.Equal(t, "PERPETUAL", sym.ContractType)
	assert.Equal(t, 5, sym.PricePrecision)
	assert.Equal(t, time.UnixMilli(1598252400000).UTC(), sym.OnboardDate)
	assert.Equal(t, []string{"LIMIT", "MARKET"}, sym.OrderTypes)

	tick, ok := sym.TickSize()
	require.True(t, ok)
	assert.Equal(t, "0.0001", tick.String())

	step, ok := sym.StepSize()
	require.True(t, ok)
	assert.Equal(t, "1", step.String())

	_, ok = info.Symbol("ETHUSDT")
	assert.False(t, ok)
}

func TestSymbol_MissingFilter(t *testing.T) {
	sym := &Symbol{Filters: []map[string]any{{"filterType": "MARKET_LOT_SIZE", "stepSize": "1"}}}

	_, ok := sym.TickSize()
	assert.False(t, ok)
	_, ok = sym.StepSize()
	assert.False(t, ok)
}
