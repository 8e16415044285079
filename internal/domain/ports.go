package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNoQuote is returned by quoters when the upstream answered but carried no price.
var ErrNoQuote = errors.New("no price quoted")

type SearchResult struct {
	Title string
}

type SearchClient interface {
	Search(ctx context.Context, query string, num int) ([]SearchResult, error)
}

type FlightQuery struct {
	OriginCode      string
	OriginName      string
	DestinationCode string
	DestinationName string
}

type FlightQuoter interface {
	OneWayPrice(ctx context.Context, q FlightQuery) (float64, error)
}

type HotelQuery struct {
	Market   string
	CheckIn  time.Time
	CheckOut time.Time
	Currency string
	Adults   int
}

type HotelQuoter interface {
	// HotelPrices returns one whole-stay price per quoted hotel.
	HotelPrices(ctx context.Context, q HotelQuery) ([]float64, error)
}

type LanguageModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ReportWriter interface {
	WriteReports(reports []string, path string) error
}

// Catalog is the read-only reference data the pipeline consults.
type Catalog interface {
	Regions() []string
	Destinations(region string) ([]Destination, bool)
	Lookup(name string) (Destination, bool)
	FoodCost(name string) float64
	Reviews(name string) []string
}
