package ports

import "context"

// Coordinates is a geographic position as reported by the weather provider
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// CurrentWeatherData represents current conditions for a city
type CurrentWeatherData struct {
	Temperature float64
	FeelsLike   float64
	TempMin     float64
	TempMax     float64
	Humidity    float64
	Pressure    float64
	WindSpeed   float64
	Description string
	Name        string
	Coordinates Coordinates
}

// ForecastEntryData represents one 3-hour slot of a forecast
type ForecastEntryData struct {
	Timestamp   string
	TempMax     float64
	TempMin     float64
	Description string
}

// WeatherGateway defines the contract for the remote weather provider.
//
// FetchCurrentWeather reports provider-side failures (unknown city, bad key) as
// errors.ProviderError carrying the provider's message. FetchForecast does not
// inspect provider error bodies.
type WeatherGateway interface {
	FetchCurrentWeather(ctx context.Context, city string, unit string) (*CurrentWeatherData, error)
	FetchForecast(ctx context.Context, coords Coordinates, unit string) ([]ForecastEntryData, error)
	GetGatewayName() string
}
