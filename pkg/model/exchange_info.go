package model

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"
)

// RateLimit is one entry of the exchange rate limit rules.
type RateLimit struct {
	RateLimitType string `json:"rateLimitType"`
	Interval      string `json:"interval"`
	IntervalNum   int    `json:"intervalNum"`
	Limit         int    `json:"limit"`
}

// Asset is a margin asset of the exchange.
type Asset struct {
	Asset             string `json:"asset"`
	MarginAvailable   bool   `json:"marginAvailable"`
	AutoAssetExchange string `json:"autoAssetExchange"`
}

// Symbol describes the trading rules of a contract.
type Symbol struct {
	Symbol            string           `json:"symbol"`
	Pair              string           `json:"pair"`
	ContractType      string           `json:"contractType"`
	Status            string           `json:"status"`
	BaseAsset         string           `json:"baseAsset"`
	QuoteAsset        string           `json:"quoteAsset"`
	MarginAsset       string           `json:"marginAsset"`
	PricePrecision    int              `json:"pricePrecision"`
	QuantityPrecision int              `json:"quantityPrecision"`
	OrderTypes        []string         `json:"orderTypes"`
	TimeInForce       []string         `json:"timeInForce"`
	Filters           []map[string]any `json:"filters"`
	DeliveryDate      time.Time        `json:"-"`
	OnboardDate       time.Time        `json:"-"`
}

// TickSize returns the PRICE_FILTER tick size of the symbol, if present.
func (s *Symbol) TickSize() (apd.Decimal, bool) {
	return s.filterDecimal("PRICE_FILTER", "tickSize")
}

// StepSize returns the LOT_SIZE step size of the symbol, if present.
func (s *Symbol) StepSize() (apd.Decimal, bool) {
	return s.filterDecimal("LOT_SIZE", "stepSize")
}

func (s *Symbol) filterDecimal(filterType, key string) (apd.Decimal, bool) {
	var d apd.Decimal
	for _, f := range s.Filters {
		if f["filterType"] != filterType {
			continue
		}
		v, ok := f[key].(string)
		if !ok {
			return d, false
		}
		if err := parseDecimal(&d, v); err != nil {
			return d, false
		}
		return d, true
	}
	return d, false
}

// ExchangeInfo is the body of the exchange information endpoint.
type ExchangeInfo struct {
	Timezone   string      `json:"timezone"`
	ServerTime time.Time   `json:"-"`
	RateLimits []RateLimit `json:"rateLimits"`
	Assets     []Asset     `json:"assets"`
	Symbols    []Symbol    `json:"symbols"`
}

// Symbol returns the rules of the named contract.
func (e *ExchangeInfo) Symbol(name string) (*Symbol, bool) {
	for i := range e.Symbols {
		if e.Symbols[i].Symbol == name {
			return &e.Symbols[i], true
		}
	}
	return nil, false
}

type exchangeInfoDTO struct {
	Timezone   string      `json:"timezone"`
	ServerTime int64       `json:"serverTime"`
	RateLimits []RateLimit `json:"rateLimits"`
	Assets     []Asset     `json:"assets"`
	Symbols    []symbolDTO `json:"symbols"`
}

type symbolDTO struct {
	Symbol            string           `json:"symbol"`
	Pair              string           `json:"pair"`
	ContractType      string           `json:"contractType"`
	DeliveryDate      int64            `json:"deliveryDate"`
	OnboardDate       int64            `json:"onboardDate"`
	Status            string           `json:"status"`
	BaseAsset         string           `json:"baseAsset"`
	QuoteAsset        string           `json:"quoteAsset"`
	MarginAsset       string           `json:"marginAsset"`
	PricePrecision    int              `json:"pricePrecision"`
	QuantityPrecision int              `json:"quantityPrecision"`
	OrderTypes        []string         `json:"orderTypes"`
	TimeInForce       []string         `json:"timeInForce"`
	Filters           []map[string]any `json:"filters"`
}

// DecodeExchangeInfo decodes the exchange information body.
func DecodeExchangeInfo(raw string) (*ExchangeInfo, error) {
	var data exchangeInfoDTO
	if err := sonic.UnmarshalString(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal exchange info: %w", err)
	}

	info := &ExchangeInfo{
		Timezone:   data.Timezone,
		ServerTime: millis(data.ServerTime),
		RateLimits: data.RateLimits,
		Assets:     data.Assets,
		Symbols:    make([]Symbol, 0, len(data.Symbols)),
	}
	for _, s := range data.Symbols {
		info.Symbols = append(info.Symbols, Symbol{
			Symbol:            s.Symbol,
			Pair:              s.Pair,
			ContractType:      s.ContractType,
			DeliveryDate:      millis(s.DeliveryDate),
			OnboardDate:       millis(s.OnboardDate),
			Status:            s.Status,
			BaseAsset:         s.BaseAsset,
			QuoteAsset:        s.QuoteAsset,
			MarginAsset:       s.MarginAsset,
			PricePrecision:    s.PricePrecision,
			QuantityPrecision: s.QuantityPrecision,
			OrderTypes:        s.OrderTypes,
			TimeInForce:       s.TimeInForce,
			Filters:           s.Filters,
		})
	}
	return info, nil
}
