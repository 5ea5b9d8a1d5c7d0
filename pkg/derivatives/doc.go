// Package derivatives implements a client for the Binance USDⓈ-M futures REST API.
//
// The package includes:
//   - Client: the request dispatcher for public, API-key and signed endpoints
//   - Market: market data endpoints returning raw response bodies
//
// Every call is a single independent round trip. Non-2xx answers surface as
// *core.APIError, failed round trips as *core.TransportError. Nothing is retried.
//
// Example usage:
//
//	client, err := derivatives.New(core.DefaultConfig())
//	body, err := client.Market().OrderBook(ctx, "BNBUSDT", derivatives.WithLimit(5))
package derivatives
