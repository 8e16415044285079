package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCost = errors.New("invalid cost breakdown")

// CostBreakdown is one trip estimate. The total is never stored; it is
// derived from the legs every time it is read.
type CostBreakdown struct {
	HotelPerNight float64
	Flight        float64
	DailyFood     float64
	Nights        int
}

func NewCostBreakdown(hotelPerNight, flight, dailyFood float64, nights int) (CostBreakdown, error) {
	if nights <= 0 {
		return CostBreakdown{}, fmt.Errorf("%w: nights must be positive, got %d", ErrInvalidCost, nights)
	}
	if hotelPerNight < 0 || flight < 0 || dailyFood < 0 {
		return CostBreakdown{}, fmt.Errorf("%w: negative leg (hotel=%v flight=%v food=%v)", ErrInvalidCost, hotelPerNight, flight, dailyFood)
	}
	return CostBreakdown{HotelPerNight: hotelPerNight, Flight: flight, DailyFood: dailyFood, Nights: nights}, nil
}

func (c CostBreakdown) Total() float64 {
	n := float64(c.Nights)
	return c.HotelPerNight*n + c.Flight + c.DailyFood*n
}
