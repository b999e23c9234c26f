// Package external provides adapters for external services.
// The OpenWeatherMap gateway and its decorators implement the WeatherGateway port.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ghumash/WeatherApp/internal/ports"
	"github.com/ghumash/WeatherApp/pkg/errors"
)

const (
	defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org"
	currentWeatherPath           = "/data/2.5/weather"
	forecastPath                 = "/data/2.5/forecast"

	// statusFailureFormat is the generic failure text for a non-2xx response
	statusFailureFormat = "Request failed with status code %d"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapGateway implements WeatherGateway port for OpenWeatherMap
type OpenWeatherMapGateway struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapGatewayParams holds parameters for creating the OpenWeatherMap gateway
type OpenWeatherMapGatewayParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

type openWeatherMapCurrentResponse struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Name string `json:"name"`
}

type openWeatherMapForecastResponse struct {
	List []struct {
		Main struct {
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		DtTxt string `json:"dt_txt"`
	} `json:"list"`
}

// openWeatherMapErrorResponse is the body OpenWeatherMap sends with a rejected request
type openWeatherMapErrorResponse struct {
	Code    json.RawMessage `json:"cod"`
	Message string          `json:"message"`
}

// NewOpenWeatherMapGateway creates a new OpenWeatherMap gateway
func NewOpenWeatherMapGateway(params OpenWeatherMapGatewayParams) *OpenWeatherMapGateway {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}

	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: params.Timeout}
	}

	return &OpenWeatherMapGateway{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// FetchCurrentWeather retrieves the current conditions for a city by name
func (g *OpenWeatherMapGateway) FetchCurrentWeather(ctx context.Context, city string, unit string) (*ports.CurrentWeatherData, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("units", unit)

	resp, err := g.get(ctx, currentWeatherPath, query)
	if err != nil {
		return nil, err
	}
	defer g.closeBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, g.rejection(resp)
	}

	var apiResp openWeatherMapCurrentResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode current weather response", err)
	}

	description := ""
	if len(apiResp.Weather) > 0 {
		description = apiResp.Weather[0].Description
	}

	return &ports.CurrentWeatherData{
		Temperature: apiResp.Main.Temp,
		FeelsLike:   apiResp.Main.FeelsLike,
		TempMin:     apiResp.Main.TempMin,
		TempMax:     apiResp.Main.TempMax,
		Humidity:    apiResp.Main.Humidity,
		Pressure:    apiResp.Main.Pressure,
		WindSpeed:   apiResp.Wind.Speed,
		Description: description,
		Name:        apiResp.Name,
		Coordinates: ports.Coordinates{
			Latitude:  apiResp.Coord.Lat,
			Longitude: apiResp.Coord.Lon,
		},
	}, nil
}

// FetchForecast retrieves the three-hourly forecast for a coordinate pair.
// Rejections carry only the status code; the provider message is not read.
func (g *OpenWeatherMapGateway) FetchForecast(ctx context.Context, coords ports.Coordinates, unit string) ([]ports.ForecastEntryData, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	query.Set("units", unit)

	resp, err := g.get(ctx, forecastPath, query)
	if err != nil {
		return nil, err
	}
	defer g.closeBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewExternalAPIError(fmt.Sprintf(statusFailureFormat, resp.StatusCode), nil)
	}

	var apiResp openWeatherMapForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode forecast response", err)
	}

	entries := make([]ports.ForecastEntryData, 0, len(apiResp.List))
	for _, item := range apiResp.List {
		description := ""
		if len(item.Weather) > 0 {
			description = item.Weather[0].Description
		}
		entries = append(entries, ports.ForecastEntryData{
			Timestamp:   item.DtTxt,
			TempMax:     item.Main.TempMax,
			TempMin:     item.Main.TempMin,
			Description: description,
		})
	}

	return entries, nil
}

// GetGatewayName returns the name of this gateway
func (g *OpenWeatherMapGateway) GetGatewayName() string {
	return "openweathermap"
}

func (g *OpenWeatherMapGateway) get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	query.Set("APPID", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build OpenWeatherMap request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call OpenWeatherMap", err)
	}
	return resp, nil
}

// rejection turns a non-2xx current weather response into an error. A readable
// provider message makes it a ProviderError shown to the user verbatim.
func (g *OpenWeatherMapGateway) rejection(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf(statusFailureFormat, resp.StatusCode), err)
	}

	var apiErr openWeatherMapErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
		return errors.NewExternalAPIError(fmt.Sprintf(statusFailureFormat, resp.StatusCode), nil)
	}

	return errors.NewProviderError(apiErr.Message)
}

func (g *OpenWeatherMapGateway) closeBody(resp *http.Response) {
	if closeErr := resp.Body.Close(); closeErr != nil {
		g.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
	}
}
