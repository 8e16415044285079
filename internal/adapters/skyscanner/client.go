// Package skyscanner quotes one-way flights and hotel stays through the
// Skyscanner RapidAPI endpoints.
package skyscanner

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"travel_planner/internal/adapters/apiclient"
	"travel_planner/internal/domain"
)

const (
	DefaultHost = "skyscanner89.p.rapidapi.com"

	// Entity ids the one-way list endpoint expects alongside the airport codes.
	DefaultOriginID      = "27537542"
	DefaultDestinationID = "95673827"
)

type Config struct {
	Base          string // defaults to https://<Host>
	Host          string
	Key           string
	OriginID      string
	DestinationID string
	Timeout       time.Duration
}

type Client struct {
	api           *apiclient.Client
	hasKey        bool
	originID      string
	destinationID string
}

func New(cfg Config) *Client {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Base == "" {
		cfg.Base = "https://" + cfg.Host
	}
	if cfg.OriginID == "" {
		cfg.OriginID = DefaultOriginID
	}
	if cfg.DestinationID == "" {
		cfg.DestinationID = DefaultDestinationID
	}
	headers := map[string]string{
		"x-rapidapi-host": cfg.Host,
		"x-rapidapi-key":  cfg.Key,
	}
	return &Client{
		api:           apiclient.New("skyscanner", cfg.Base, cfg.Timeout, headers),
		hasKey:        cfg.Key != "",
		originID:      cfg.OriginID,
		destinationID: cfg.DestinationID,
	}
}

// OneWayPrice returns the first quote's amount.
func (c *Client) OneWayPrice(ctx context.Context, q domain.FlightQuery) (float64, error) {
	if !c.hasKey {
		return 0, apiclient.ErrNoAPIKey
	}
	v := url.Values{}
	v.Set("origin", q.OriginCode)
	v.Set("originId", c.originID)
	v.Set("destination", q.DestinationCode)
	v.Set("destinationId", c.destinationID)

	var payload map[string]any
	if err := c.api.GetJSON(ctx, "flights_one_way", "/flights/one-way/list", v, &payload); err != nil {
		return 0, err
	}
	price, ok := toFloat(lookupAny(payload, "content.results.quotes.0.price.amount"))
	if !ok {
		return 0, fmt.Errorf("flight %s->%s: %w", q.OriginCode, q.DestinationCode, domain.ErrNoQuote)
	}
	return price, nil
}

// HotelPrices returns every hotel price in the answer, skipping entries without one.
func (c *Client) HotelPrices(ctx context.Context, q domain.HotelQuery) ([]float64, error) {
	if !c.hasKey {
		return nil, apiclient.ErrNoAPIKey
	}
	currency := q.Currency
	if currency == "" {
		currency = "USD"
	}
	adults := q.Adults
	if adults <= 0 {
		adults = 2
	}
	v := url.Values{}
	v.Set("market", q.Market)
	v.Set("locale", "en-US")
	v.Set("checkin_date", q.CheckIn.Format(time.DateOnly))
	v.Set("checkout_date", q.CheckOut.Format(time.DateOnly))
	v.Set("currency", currency)
	v.Set("adults", strconv.Itoa(adults))

	var payload map[string]any
	if err := c.api.GetJSON(ctx, "hotels_price", "/hotels/price", v, &payload); err != nil {
		return nil, err
	}
	hotels, _ := lookupAny(payload, "results.hotels").([]any)
	prices := make([]float64, 0, len(hotels))
	for _, h := range hotels {
		hm, ok := h.(map[string]any)
		if !ok {
			continue
		}
		if p, ok := toFloat(hm["price"]); ok {
			prices = append(prices, p)
		}
	}
	return prices, nil
}
