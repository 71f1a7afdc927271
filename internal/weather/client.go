package weather

import (
	"strings"
	"sync"
	"time"

	"github.com/guonaihong/gout"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"github.com/sagar1314-oops/ArecaMart/config"
)

// Known arecanut-belt districts with coordinates for the forecast lookup.
// Unknown district names fall back to the first entry.
var districts = []District{
	{Name: "Shivamogga", Latitude: 13.93, Longitude: 75.56},
	{Name: "Davangere", Latitude: 14.46, Longitude: 75.92},
	{Name: "Chikkamagaluru", Latitude: 13.32, Longitude: 75.77},
	{Name: "Uttara Kannada", Latitude: 14.80, Longitude: 74.13},
	{Name: "Dakshina Kannada", Latitude: 12.84, Longitude: 75.25},
	{Name: "Tumakuru", Latitude: 13.34, Longitude: 77.10},
}

type District struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Report is the subset of the forecast the storefront renders.
type Report struct {
	District    string    `json:"district"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	WeatherCode int       `json:"weather_code"`
	FetchedAt   time.Time `json:"fetched_at"`
}

type cacheEntry struct {
	report  *Report
	expires time.Time
}

// Client fetches forecasts from the configured open-meteo style endpoint,
// caching per district and collapsing concurrent fetches.
type Client struct {
	cfg    config.WeatherConfig
	mu     sync.RWMutex
	cache  map[string]cacheEntry
	flight singleflight.Group
}

func NewClient(cfg config.WeatherConfig) *Client {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 600
	}
	return &Client{cfg: cfg, cache: make(map[string]cacheEntry)}
}

// Districts returns the supported district list.
func (c *Client) Districts() []District {
	return districts
}

func findDistrict(name string) District {
	for _, d := range districts {
		if strings.EqualFold(d.Name, name) {
			return d
		}
	}
	return districts[0]
}

// Fetch returns the current weather for a district, from cache when fresh.
func (c *Client) Fetch(name string) (*Report, error) {
	d := findDistrict(name)

	c.mu.RLock()
	entry, hit := c.cache[d.Name]
	c.mu.RUnlock()
	if hit && time.Now().Before(entry.expires) {
		return entry.report, nil
	}

	v, err, _ := c.flight.Do(d.Name, func() (interface{}, error) {
		report, err := c.fetchRemote(d)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cache[d.Name] = cacheEntry{
			report:  report,
			expires: time.Now().Add(time.Duration(c.cfg.CacheTTL) * time.Second),
		}
		c.mu.Unlock()
		return report, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Report), nil
}

type currentWeather struct {
	Temperature float64 `json:"temperature_2m"`
	Humidity    float64 `json:"relative_humidity_2m"`
	WindSpeed   float64 `json:"wind_speed_10m"`
	WeatherCode int     `json:"weather_code"`
}

type forecastResponse struct {
	Current currentWeather `json:"current"`
}

func (c *Client) fetchRemote(d District) (*Report, error) {
	var resp forecastResponse
	err := gout.GET(c.cfg.ApiURL).
		SetQuery(gout.H{
			"latitude":  d.Latitude,
			"longitude": d.Longitude,
			"current":   "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code",
		}).
		SetTimeout(10 * time.Second).
		BindJSON(&resp).
		Do()
	if err != nil {
		return nil, errors.Wrapf(err, "fetch weather for %s", d.Name)
	}
	return &Report{
		District:    d.Name,
		Temperature: resp.Current.Temperature,
		Humidity:    resp.Current.Humidity,
		WindSpeed:   resp.Current.WindSpeed,
		WeatherCode: resp.Current.WeatherCode,
		FetchedAt:   time.Now(),
	}, nil
}
