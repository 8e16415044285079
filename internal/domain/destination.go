package domain

// Destination is a catalog entry. Name is unique across all regions.
type Destination struct {
	Name        string
	Popularity  int
	FlightCode  string
	HotelMarket string
}

// Region groups the catalog destinations offered for one area, in catalog order.
type Region struct {
	Name         string
	Destinations []Destination
}
