// README: Open-Meteo geocoding and daily forecast client.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	geocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	forecastURL = "https://api.open-meteo.com/v1/forecast"
)

// wmoConditions maps WMO weather interpretation codes to readable text.
var wmoConditions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snowfall",
	73: "Moderate snowfall",
	75: "Heavy snowfall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

func conditionText(code int) string {
	if c, ok := wmoConditions[code]; ok {
		return c
	}
	return fmt.Sprintf("Unknown conditions (code %d)", code)
}

type Client struct {
	http *http.Client
}

func NewClient() *Client {
	return &Client{http: &http.Client{Timeout: 15 * time.Second}}
}

type geocodeResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Name      string  `json:"name"`
		Country   string  `json:"country"`
	} `json:"results"`
}

// Geocode resolves a place name to coordinates via the Open-Meteo
// geocoding API. The first result wins.
func (c *Client) Geocode(ctx context.Context, place string) (lat, lon float64, err error) {
	q := url.Values{}
	q.Set("name", place)
	q.Set("count", "1")
	q.Set("language", "en")
	q.Set("format", "json")

	var resp geocodeResponse
	if err := c.getJSON(ctx, geocodeURL+"?"+q.Encode(), &resp); err != nil {
		return 0, 0, fmt.Errorf("geocode %q: %w", place, err)
	}
	if len(resp.Results) == 0 {
		return 0, 0, fmt.Errorf("geocode %q: no results", place)
	}
	return resp.Results[0].Latitude, resp.Results[0].Longitude, nil
}

type forecastResponse struct {
	Daily struct {
		Time                     []string  `json:"time"`
		WeatherCode              []int     `json:"weather_code"`
		TemperatureMax           []float64 `json:"temperature_2m_max"`
		TemperatureMin           []float64 `json:"temperature_2m_min"`
		PrecipitationSum         []float64 `json:"precipitation_sum"`
		PrecipitationProbability []int     `json:"precipitation_probability_max"`
		WindSpeedMax             []float64 `json:"wind_speed_10m_max"`
		Sunrise                  []string  `json:"sunrise"`
		Sunset                   []string  `json:"sunset"`
	} `json:"daily"`
}

// DailyForecast fetches day-level conditions for a coordinate and an
// inclusive YYYY-MM-DD date range.
func (c *Client) DailyForecast(ctx context.Context, lat, lon float64, startDate, endDate string) ([]Forecast, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum,precipitation_probability_max,wind_speed_10m_max,sunrise,sunset")
	q.Set("timezone", "auto")
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)

	var resp forecastResponse
	if err := c.getJSON(ctx, forecastURL+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}

	var out []Forecast
	for i, date := range resp.Daily.Time {
		f := Forecast{Date: date}
		if i < len(resp.Daily.WeatherCode) {
			f.Condition = conditionText(resp.Daily.WeatherCode[i])
		}
		if i < len(resp.Daily.TemperatureMax) {
			f.TempMaxC = resp.Daily.TemperatureMax[i]
		}
		if i < len(resp.Daily.TemperatureMin) {
			f.TempMinC = resp.Daily.TemperatureMin[i]
		}
		if i < len(resp.Daily.PrecipitationSum) {
			f.PrecipitationMM = resp.Daily.PrecipitationSum[i]
		}
		if i < len(resp.Daily.PrecipitationProbability) {
			f.PrecipitationChance = resp.Daily.PrecipitationProbability[i]
		}
		if i < len(resp.Daily.WindSpeedMax) {
			f.WindSpeedKmh = resp.Daily.WindSpeedMax[i]
		}
		if i < len(resp.Daily.Sunrise) {
			f.Sunrise = resp.Daily.Sunrise[i]
		}
		if i < len(resp.Daily.Sunset) {
			f.Sunset = resp.Daily.Sunset[i]
		}
		out = append(out, f)
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
