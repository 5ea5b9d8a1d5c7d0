// Package model decodes raw market responses into typed values.
// Prices and quantities are apd decimals; timestamps are UTC.
package model

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"
)

// ServerTime is the body of the server time endpoint.
type ServerTime struct {
	ServerTime time.Time
}

// OrderBookLevel represents a single price level in the order book.
type OrderBookLevel struct {
	Price    apd.Decimal `json:"price"`
	Quantity apd.Decimal `json:"quantity"`
}

// OrderBook is the body of the depth endpoint.
type OrderBook struct {
	LastUpdateID int64 `json:"last_update_id"`
	// EventTime is the message output time.
	EventTime time.Time `json:"event_time"`
	// TransactTime is the matching engine time.
	TransactTime time.Time        `json:"transact_time"`
	Bids         []OrderBookLevel `json:"bids"`
	Asks         []OrderBookLevel `json:"asks"`
}

// Kline represents one candlestick bar.
type Kline struct {
	OpenTime            time.Time   `json:"open_time"`
	Open                apd.Decimal `json:"open"`
	High                apd.Decimal `json:"high"`
	Low                 apd.Decimal `json:"low"`
	Close               apd.Decimal `json:"close"`
	Volume              apd.Decimal `json:"volume"`
	CloseTime           time.Time   `json:"close_time"`
	QuoteVolume         apd.Decimal `json:"quote_volume"`
	NumTrades           int64       `json:"num_trades"`
	TakerBuyBaseVolume  apd.Decimal `json:"taker_buy_base_volume"`
	TakerBuyQuoteVolume apd.Decimal `json:"taker_buy_quote_volume"`
}

type serverTimeDTO struct {
	ServerTime int64 `json:"serverTime"`
}

type orderBookDTO struct {
	LastUpdateID int64      `json:"lastUpdateId"`
	E            int64      `json:"E"`
	T            int64      `json:"T"`
	Bids         [][]string `json:"bids"`
	Asks         [][]string `json:"asks"`
}

// DecodeServerTime decodes the server time body.
func DecodeServerTime(raw string) (*ServerTime, error) {
	var data serverTimeDTO
	if err := sonic.UnmarshalString(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal server time: %w", err)
	}
	return &ServerTime{ServerTime: millis(data.ServerTime)}, nil
}

// DecodeOrderBook decodes the depth body.
func DecodeOrderBook(raw string) (*OrderBook, error) {
	var data orderBookDTO
	if err := sonic.UnmarshalString(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal order book: %w", err)
	}

	book := &OrderBook{
		LastUpdateID: data.LastUpdateID,
		EventTime:    millis(data.E),
		TransactTime: millis(data.T),
	}

	var err error
	if book.Bids, err = decodeLevels(data.Bids); err != nil {
		return nil, fmt.Errorf("decode bids: %w", err)
	}
	if book.Asks, err = decodeLevels(data.Asks); err != nil {
		return nil, fmt.Errorf("decode asks: %w", err)
	}
	return book, nil
}

func decodeLevels(levels [][]string) ([]OrderBookLevel, error) {
	result := make([]OrderBookLevel, 0, len(levels))
	for _, level := range levels {
		if len(level) < 2 {
			return nil, fmt.Errorf("insufficient level elements: %d", len(level))
		}

		var obl OrderBookLevel
		if err := parseDecimal(&obl.Price, level[0]); err != nil {
			return nil, fmt.Errorf("parse price: %w", err)
		}
		if err := parseDecimal(&obl.Quantity, level[1]); err != nil {
			return nil, fmt.Errorf("parse quantity: %w", err)
		}
		result = append(result, obl)
	}
	return result, nil
}

// DecodeKlines decodes the klines body, an array of 12-element arrays.
func DecodeKlines(raw string) ([]Kline, error) {
	var data [][]any
	if err := sonic.UnmarshalString(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal klines: %w", err)
	}

	klines := make([]Kline, 0, len(data))
	for i, row := range data {
		k, err := decodeKline(row)
		if err != nil {
			return nil, fmt.Errorf("decode kline %d: %w", i, err)
		}
		klines = append(klines, *k)
	}
	return klines, nil
}

func decodeKline(row []any) (*Kline, error) {
	if len(row) < 11 {
		return nil, fmt.Errorf("insufficient kline data elements: %d", len(row))
	}

	k := &Kline{}
	var err error
	if k.OpenTime, err = timeFromAny(row[0]); err != nil {
		return nil, fmt.Errorf("parse open time: %w", err)
	}
	if k.CloseTime, err = timeFromAny(row[6]); err != nil {
		return nil, fmt.Errorf("parse close time: %w", err)
	}
	if n, ok := row[8].(float64); ok {
		k.NumTrades = int64(n)
	} else {
		return nil, fmt.Errorf("parse trade count: unsupported type %T", row[8])
	}

	fields := []struct {
		name string
		dest *apd.Decimal
		val  any
	}{
		{"open", &k.Open, row[1]},
		{"high", &k.High, row[2]},
		{"low", &k.Low, row[3]},
		{"close", &k.Close, row[4]},
		{"volume", &k.Volume, row[5]},
		{"quote volume", &k.QuoteVolume, row[7]},
		{"taker buy base volume", &k.TakerBuyBaseVolume, row[9]},
		{"taker buy quote volume", &k.TakerBuyQuoteVolume, row[10]},
	}
	for _, f := range fields {
		if err := parseDecimalFromAny(f.dest, f.val); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.name, err)
		}
	}
	return k, nil
}

func millis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

func timeFromAny(val any) (time.Time, error) {
	v, ok := val.(float64)
	if !ok {
		return time.Time{}, fmt.Errorf("unsupported type for timestamp: %T", val)
	}
	return millis(int64(v)), nil
}

func parseDecimal(dest *apd.Decimal, s string) error {
	if s == "" {
		*dest = apd.Decimal{}
		return nil
	}

	_, _, err := apd.BaseContext.SetString(dest, s)
	if err != nil {
		return fmt.Errorf("set decimal from string: %w", err)
	}

	return nil
}

func parseDecimalFromAny(dest *apd.Decimal, val any) error {
	switch v := val.(type) {
	case string:
		return parseDecimal(dest, v)
	case float64:
		_, _, err := apd.BaseContext.SetString(dest, fmt.Sprintf("%v", v))
		return err
	default:
		return fmt.Errorf("unsupported type for decimal: %T", val)
	}
}
