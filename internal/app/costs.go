package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"travel_planner/internal/adapters/observability"
	"travel_planner/internal/domain"
)

const (
	checkInLeadDays = 30
	hotelCurrency   = "USD"
	hotelAdults     = 2
)

// CostAggregator prices the three legs of a trip. Each leg that cannot be
// priced counts as 0; one failing leg never blocks the others.
type CostAggregator struct {
	flights domain.FlightQuoter
	hotels  domain.HotelQuoter
	catalog domain.Catalog
	now     func() time.Time
}

func NewCostAggregator(f domain.FlightQuoter, h domain.HotelQuoter, c domain.Catalog) *CostAggregator {
	return &CostAggregator{flights: f, hotels: h, catalog: c, now: time.Now}
}

// WithClock replaces the clock used for hotel dates.
func (a *CostAggregator) WithClock(now func() time.Time) *CostAggregator {
	a.now = now
	return a
}

func (a *CostAggregator) Estimate(ctx context.Context, dest domain.Destination, originCode, originName string, nights int) (domain.CostBreakdown, error) {
	flight := a.FlightPrice(ctx, originName, dest.Name, originCode, dest.FlightCode)
	hotel := a.HotelPrice(ctx, dest.Name, nights)
	food := a.FoodPrice(dest.Name)
	return domain.NewCostBreakdown(hotel, flight, food, nights)
}

func (a *CostAggregator) FlightPrice(ctx context.Context, originName, destName, originCode, destCode string) float64 {
	price, err := a.flights.OneWayPrice(ctx, domain.FlightQuery{
		OriginCode:      originCode,
		OriginName:      originName,
		DestinationCode: destCode,
		DestinationName: destName,
	})
	if err != nil || price < 0 {
		log.Warn().Err(err).Str("destination", destName).Str("origin", originCode).Msg("flight price unavailable")
		observability.ObserveFallback("flight", "quote_error")
		return 0
	}
	return price
}

// HotelPrice returns the average nightly rate across quoted hotels.
func (a *CostAggregator) HotelPrice(ctx context.Context, destName string, nights int) float64 {
	if nights <= 0 {
		return 0
	}
	var market string
	if d, ok := a.catalog.Lookup(destName); ok {
		market = d.HotelMarket
	}
	today := a.now()
	checkIn := today.AddDate(0, 0, checkInLeadDays)

	prices, err := a.hotels.HotelPrices(ctx, domain.HotelQuery{
		Market:   market,
		CheckIn:  checkIn,
		CheckOut: checkIn.AddDate(0, 0, nights),
		Currency: hotelCurrency,
		Adults:   hotelAdults,
	})
	if err != nil {
		log.Warn().Err(err).Str("destination", destName).Str("market", market).Msg("hotel price unavailable")
		observability.ObserveFallback("hotel", "quote_error")
		return 0
	}
	if len(prices) == 0 {
		observability.ObserveFallback("hotel", "no_quotes")
		return 0
	}
	var sum float64
	for _, p := range prices {
		sum += p
	}
	perNight := sum / float64(len(prices)) / float64(nights)
	if perNight < 0 {
		return 0
	}
	return perNight
}

func (a *CostAggregator) FoodPrice(destName string) float64 {
	return a.catalog.FoodCost(destName)
}
