// README: Standalone weather lookup endpoint.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/prefs"
	"wayfarer/internal/weather"
)

// Forecaster is the weather surface the handler needs.
type Forecaster interface {
	TripForecast(ctx context.Context, p prefs.TripPreferences) ([]weather.Forecast, error)
}

type WeatherHandler struct {
	forecasts Forecaster
}

func NewWeatherHandler(forecasts Forecaster) *WeatherHandler {
	return &WeatherHandler{forecasts: forecasts}
}

// Handle serves GET /api/weather?city=..&country=..&start=..&end=..
func (h *WeatherHandler) Handle(c *gin.Context) {
	p := prefs.TripPreferences{
		City:      c.Query("city"),
		Country:   c.Query("country"),
		StartDate: c.Query("start"),
		EndDate:   c.Query("end"),
	}
	forecasts, err := h.forecasts.TripForecast(c.Request.Context(), p)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"forecasts": forecasts,
		"summary":   weather.Summary(forecasts),
	})
}
