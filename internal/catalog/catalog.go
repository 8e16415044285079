// Package catalog holds the fixed reference data: trending destinations per
// region, mock daily food costs and mock reviews. A Catalog is built once and
// never mutated, so it is safe to share between goroutines.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"travel_planner/internal/domain"
)

//go:embed catalog.yaml
var embedded []byte

var ErrInvalidCatalog = errors.New("catalog: invalid")

type fileDestination struct {
	Name        string   `yaml:"name"`
	Popularity  int      `yaml:"popularity"`
	FlightCode  string   `yaml:"flight_code"`
	HotelMarket string   `yaml:"hotel_market"`
	FoodCost    *float64 `yaml:"food_cost"`
	Reviews     []string `yaml:"reviews"`
}

type fileRegion struct {
	Name         string            `yaml:"name"`
	Destinations []fileDestination `yaml:"destinations"`
}

type file struct {
	DefaultFoodCost float64      `yaml:"default_food_cost"`
	DefaultReviews  []string     `yaml:"default_reviews"`
	Regions         []fileRegion `yaml:"regions"`
}

type entry struct {
	dest     domain.Destination
	region   string
	foodCost *float64
	reviews  []string
}

type Catalog struct {
	regions         []domain.Region
	byRegion        map[string]int
	byName          map[string]entry
	defaultFoodCost float64
	defaultReviews  []string
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load(bytes.NewReader(embedded))
	})
	return defaultCat, defaultErr
}

// MustDefault is Default for callers that cannot continue without a catalog.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Open reads a catalog file from disk, or the embedded one when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func Load(r io.Reader) (*Catalog, error) {
	var raw file
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(raw.Regions) == 0 {
		return nil, fmt.Errorf("%w: no regions", ErrInvalidCatalog)
	}
	if raw.DefaultFoodCost < 0 {
		return nil, fmt.Errorf("%w: negative default_food_cost", ErrInvalidCatalog)
	}
	c := &Catalog{
		byRegion:        make(map[string]int, len(raw.Regions)),
		byName:          make(map[string]entry),
		defaultFoodCost: raw.DefaultFoodCost,
		defaultReviews:  raw.DefaultReviews,
	}
	if len(c.defaultReviews) == 0 {
		c.defaultReviews = []string{"No reviews available."}
	}

	for _, fr := range raw.Regions {
		name := strings.TrimSpace(fr.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: region without a name", ErrInvalidCatalog)
		}
		if _, dup := c.byRegion[name]; dup {
			return nil, fmt.Errorf("%w: duplicate region %q", ErrInvalidCatalog, name)
		}
		region := domain.Region{Name: name}
		for _, fd := range fr.Destinations {
			if strings.TrimSpace(fd.Name) == "" {
				return nil, fmt.Errorf("%w: unnamed destination in %q", ErrInvalidCatalog, name)
			}
			if prev, dup := c.byName[fd.Name]; dup {
				return nil, fmt.Errorf("%w: destination %q listed in %q and %q", ErrInvalidCatalog, fd.Name, prev.region, name)
			}
			if fd.FoodCost != nil && *fd.FoodCost < 0 {
				return nil, fmt.Errorf("%w: negative food_cost for %q", ErrInvalidCatalog, fd.Name)
			}
			d := domain.Destination{
				Name:        fd.Name,
				Popularity:  fd.Popularity,
				FlightCode:  fd.FlightCode,
				HotelMarket: fd.HotelMarket,
			}
			region.Destinations = append(region.Destinations, d)
			c.byName[d.Name] = entry{dest: d, region: name, foodCost: fd.FoodCost, reviews: fd.Reviews}
		}
		c.byRegion[name] = len(c.regions)
		c.regions = append(c.regions, region)
	}
	return c, nil
}

// Regions returns the region names in catalog order.
func (c *Catalog) Regions() []string {
	out := make([]string, len(c.regions))
	for i, r := range c.regions {
		out[i] = r.Name
	}
	return out
}

// Destinations returns a copy of the region's list; ok is false for an unknown region.
func (c *Catalog) Destinations(region string) ([]domain.Destination, bool) {
	i, ok := c.byRegion[region]
	if !ok {
		return nil, false
	}
	src := c.regions[i].Destinations
	out := make([]domain.Destination, len(src))
	copy(out, src)
	return out, true
}

// All returns every region with its destinations.
func (c *Catalog) All() []domain.Region {
	out := make([]domain.Region, len(c.regions))
	for i, r := range c.regions {
		out[i] = domain.Region{Name: r.Name}
		out[i].Destinations, _ = c.Destinations(r.Name)
	}
	return out
}

// Lookup finds a destination by exact name across all regions.
func (c *Catalog) Lookup(name string) (domain.Destination, bool) {
	e, ok := c.byName[name]
	return e.dest, ok
}

func (c *Catalog) FoodCost(name string) float64 {
	if e, ok := c.byName[name]; ok && e.foodCost != nil {
		return *e.foodCost
	}
	return c.defaultFoodCost
}

func (c *Catalog) Reviews(name string) []string {
	src := c.defaultReviews
	if e, ok := c.byName[name]; ok && len(e.reviews) > 0 {
		src = e.reviews
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
