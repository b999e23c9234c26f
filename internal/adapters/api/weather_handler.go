package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ghumash/WeatherApp/internal/core/weather"
	"github.com/ghumash/WeatherApp/pkg/errors"
	"github.com/ghumash/WeatherApp/pkg/validation"
)

// CityRequest is the body of POST /api/city
type CityRequest struct {
	City string `json:"city" form:"city" binding:"required,cityname"`
}

// ValidateCityName is registered with gin's validator under the "cityname" tag
func ValidateCityName(fl validator.FieldLevel) bool {
	return validation.IsValidCityName(fl.Field().String())
}

// CycleResponse acknowledges a started fetch cycle
type CycleResponse struct {
	CycleID    string `json:"cycleId"`
	Generation uint64 `json:"generation"`
	Trigger    string `json:"trigger"`
	City       string `json:"city"`
	Unit       string `json:"unit"`
}

type QueryResponse struct {
	City string `json:"city"`
	Unit string `json:"unit"`
}

type UnitsResponse struct {
	Temperature string `json:"temperature"`
	WindSpeed   string `json:"windSpeed"`
}

type CurrentWeatherResponse struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	TempMin     float64 `json:"tempMin"`
	TempMax     float64 `json:"tempMax"`
	Humidity    float64 `json:"humidity"`
	Pressure    float64 `json:"pressure"`
	WindSpeed   float64 `json:"windSpeed"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type ForecastEntryResponse struct {
	Timestamp   string  `json:"timestamp"`
	Weekday     string  `json:"weekday"`
	MaxTemp     float64 `json:"maxTemp"`
	MinTemp     float64 `json:"minTemp"`
	Description string  `json:"description"`
}

type CurrentWeatherSlotResponse struct {
	Status string                  `json:"status"`
	Data   *CurrentWeatherResponse `json:"data,omitempty"`
	Error  string                  `json:"error,omitempty"`
}

type ForecastSlotResponse struct {
	Status  string                  `json:"status"`
	Entries []ForecastEntryResponse `json:"entries,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

// PanelResponse is what the results region shows. In content, a missing
// region carries the no-data message instead of data.
type PanelResponse struct {
	Kind                  string                  `json:"kind"`
	Message               string                  `json:"message,omitempty"`
	CurrentWeather        *CurrentWeatherResponse `json:"currentWeather,omitempty"`
	CurrentWeatherMessage string                  `json:"currentWeatherMessage,omitempty"`
	Forecast              []ForecastEntryResponse `json:"forecast,omitempty"`
	ForecastMessage       string                  `json:"forecastMessage,omitempty"`
}

// StateResponse represents the HTTP response for GET /api/state
type StateResponse struct {
	Query           QueryResponse              `json:"query"`
	IsLoading       bool                       `json:"isLoading"`
	InputLocked     bool                       `json:"inputLocked"`
	Units           UnitsResponse              `json:"units"`
	CurrentWeather  CurrentWeatherSlotResponse `json:"currentWeather"`
	Forecast        ForecastSlotResponse       `json:"forecast"`
	SampledForecast []ForecastEntryResponse    `json:"sampledForecast"`
	Panel           PanelResponse              `json:"panel"`
}

// getState handles GET /api/state requests
func (s *HTTPServerAdapter) getState(c *gin.Context) {
	c.JSON(http.StatusOK, newStateResponse(s.session.Snapshot()))
}

// submitCity handles POST /api/city requests
func (s *HTTPServerAdapter) submitCity(c *gin.Context) {
	var req CityRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("city is required and must be a valid city name"))
		return
	}

	cycle, err := s.session.SubmitCity(req.City)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, newCycleResponse(cycle))
}

// toggleUnit handles POST /api/unit/toggle requests
func (s *HTTPServerAdapter) toggleUnit(c *gin.Context) {
	cycle := s.session.ToggleUnit()
	c.JSON(http.StatusAccepted, newCycleResponse(cycle))
}

func newCycleResponse(cycle *weather.Cycle) CycleResponse {
	return CycleResponse{
		CycleID:    cycle.ID,
		Generation: cycle.Generation,
		Trigger:    string(cycle.Trigger),
		City:       cycle.Query.CityName,
		Unit:       cycle.Query.Unit.String(),
	}
}

func newStateResponse(snapshot weather.Snapshot) StateResponse {
	resp := StateResponse{
		Query: QueryResponse{
			City: snapshot.Query.CityName,
			Unit: snapshot.Query.Unit.String(),
		},
		IsLoading:   snapshot.IsLoading,
		InputLocked: snapshot.InputLocked(),
		Units: UnitsResponse{
			Temperature: snapshot.Query.Unit.TemperatureSymbol(),
			WindSpeed:   snapshot.Query.Unit.WindSpeedUnit(),
		},
		CurrentWeather: CurrentWeatherSlotResponse{
			Status: snapshot.CurrentWeather.Status().String(),
		},
		Forecast: ForecastSlotResponse{
			Status: snapshot.Forecast.Status().String(),
		},
		SampledForecast: newForecastEntries(snapshot.SampledForecast),
		Panel:           newPanelResponse(snapshot.Panel()),
	}

	if w, ok := snapshot.CurrentWeather.Weather(); ok {
		resp.CurrentWeather.Data = newCurrentWeatherResponse(w)
	}
	if message, ok := snapshot.CurrentWeather.Failure(); ok {
		resp.CurrentWeather.Error = message
	}
	if entries, ok := snapshot.Forecast.Entries(); ok {
		resp.Forecast.Entries = newForecastEntries(entries)
	}
	if message, ok := snapshot.Forecast.Failure(); ok {
		resp.Forecast.Error = message
	}

	return resp
}

func newPanelResponse(panel weather.Panel) PanelResponse {
	resp := PanelResponse{
		Kind:    panel.Kind.String(),
		Message: panel.Message,
	}
	if panel.Kind != weather.PanelContent {
		return resp
	}

	if panel.CurrentWeather != nil {
		resp.CurrentWeather = newCurrentWeatherResponse(*panel.CurrentWeather)
	} else {
		resp.CurrentWeatherMessage = weather.NoDataMessage
	}
	if len(panel.Forecast) > 0 {
		resp.Forecast = newForecastEntries(panel.Forecast)
	} else {
		resp.ForecastMessage = weather.NoDataMessage
	}
	return resp
}

func newCurrentWeatherResponse(w weather.CurrentWeather) *CurrentWeatherResponse {
	return &CurrentWeatherResponse{
		City:        w.Name,
		Temperature: w.Temperature,
		FeelsLike:   w.FeelsLike,
		TempMin:     w.TempMin,
		TempMax:     w.TempMax,
		Humidity:    w.Humidity,
		Pressure:    w.Pressure,
		WindSpeed:   w.WindSpeed,
		Description: w.Description,
		Latitude:    w.Coordinates.Latitude,
		Longitude:   w.Coordinates.Longitude,
	}
}

func newForecastEntries(entries []weather.ForecastEntry) []ForecastEntryResponse {
	out := make([]ForecastEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ForecastEntryResponse{
			Timestamp:   e.Timestamp,
			Weekday:     e.Weekday(),
			MaxTemp:     e.MaxTemp,
			MinTemp:     e.MinTemp,
			Description: e.Description,
		})
	}
	return out
}
