package derivatives

import (
	"context"
	"fmt"

	"fapi/pkg/core"
)

var (
	testConnectivity    = core.Public("/fapi/v1/ping", 1)
	checkServerTime     = core.Public("/fapi/v1/time", 1)
	exchangeInformation = core.Public("/fapi/v1/exchangeInfo", 10)
	orderBook           = core.Public("/fapi/v1/depth", 10)
	klineCandlestick    = core.Public("/fapi/v1/klines", 5)
)

// Market groups the market data endpoints. Every method returns the response body verbatim.
type Market struct {
	client *Client
}

// NewMarket returns the market endpoints bound to client.
func NewMarket(client *Client) *Market {
	return &Market{client: client}
}

// TestConnectivity tests connectivity to the REST API.
// Weight(IP): 1.
func (m *Market) TestConnectivity(ctx context.Context) (string, error) {
	return m.client.SendPublic(ctx, testConnectivity, nil)
}

// CheckServerTime tests connectivity and returns the current server time.
// Weight(IP): 1.
func (m *Market) CheckServerTime(ctx context.Context) (string, error) {
	return m.client.SendPublic(ctx, checkServerTime, nil)
}

// ExchangeInformation returns the current exchange trading rules and symbol information.
// Weight(IP): 10.
func (m *Market) ExchangeInformation(ctx context.Context) (string, error) {
	return m.client.SendPublic(ctx, exchangeInformation, nil)
}

// OrderBook returns the order book of symbol. WithLimit selects the depth; valid limits are
// 5, 10, 20, 50, 100, 500 and 1000, anything else is rejected by the server.
// Weight(IP): 2 for limit up to 50, 5 for 100, 10 for 500, 20 for 1000.
func (m *Market) OrderBook(ctx context.Context, symbol string, opts ...CallOption) (string, error) {
	if symbol == "" {
		return "", fmt.Errorf("order book: symbol: %w", core.ErrMissingParameter)
	}
	options := applyCallOptions(opts...)

	ep := orderBook
	if options.Limit != nil {
		ep.Weight = depthWeight(*options.Limit)
	}

	params := core.Params{
		"symbol": symbol,
		"limit":  options.Limit,
	}
	return m.client.SendPublic(ctx, ep, params)
}

// KlineCandlestickData returns candlestick bars of symbol, identified by their open time.
// Without a time range the most recent bars are returned. WithLimit defaults to 500 on the
// server, maximum 1500.
// Weight(IP): 1 for limit below 100, 2 below 500, 5 up to 1000, 10 above.
func (m *Market) KlineCandlestickData(ctx context.Context, symbol string, interval KlineInterval, opts ...CallOption) (string, error) {
	if symbol == "" {
		return "", fmt.Errorf("klines: symbol: %w", core.ErrMissingParameter)
	}
	if interval == "" {
		return "", fmt.Errorf("klines: interval: %w", core.ErrMissingParameter)
	}
	if !interval.Valid() {
		return "", fmt.Errorf("klines: interval %q: %w", interval, core.ErrInvalidParameter)
	}
	options := applyCallOptions(opts...)

	ep := klineCandlestick
	if options.Limit != nil {
		ep.Weight = klinesWeight(*options.Limit)
	}

	params := core.Params{
		"symbol":    symbol,
		"interval":  interval,
		"startTime": options.StartTime,
		"endTime":   options.EndTime,
		"limit":     options.Limit,
	}
	return m.client.SendPublic(ctx, ep, params)
}

func depthWeight(limit int) int {
	switch {
	case limit <= 50:
		return 2
	case limit <= 100:
		return 5
	case limit <= 500:
		return 10
	default:
		return 20
	}
}

func klinesWeight(limit int) int {
	switch {
	case limit < 100:
		return 1
	case limit < 500:
		return 2
	case limit <= 1000:
		return 5
	default:
		return 10
	}
}
