package weather

import (
	"fmt"
	"strings"
	"time"
)

// ForecastTimestampLayout is the provider's dt_txt format
const ForecastTimestampLayout = "2006-01-02 15:04:05"

// Unit is the unit system requested from the provider
type Unit int

const (
	UnitUnknown Unit = iota
	UnitMetric
	UnitImperial
)

// String returns the provider query value of the unit
func (u Unit) String() string {
	switch u {
	case UnitMetric:
		return "metric"
	case UnitImperial:
		return "imperial"
	default:
		return "unknown"
	}
}

// IsValid checks if the unit is one of the supported systems
func (u Unit) IsValid() bool {
	return u == UnitMetric || u == UnitImperial
}

// UnitFromString converts string to Unit enum
func UnitFromString(s string) Unit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric":
		return UnitMetric
	case "imperial":
		return UnitImperial
	default:
		return UnitUnknown
	}
}

// Toggle returns the other unit system. An unknown unit toggles to metric.
func (u Unit) Toggle() Unit {
	if u == UnitMetric {
		return UnitImperial
	}
	return UnitMetric
}

// TemperatureSymbol returns the display symbol for temperatures in this unit
func (u Unit) TemperatureSymbol() string {
	if u == UnitImperial {
		return "°F"
	}
	return "°C"
}

// WindSpeedUnit returns the display unit the provider uses for wind speed
func (u Unit) WindSpeedUnit() string {
	if u == UnitImperial {
		return "mph"
	}
	return "m/s"
}

// MarshalText implements encoding.TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	parsed := UnitFromString(string(text))
	if !parsed.IsValid() {
		return fmt.Errorf("unsupported unit %q", string(text))
	}
	*u = parsed
	return nil
}

// CityQuery is what the user asked for: one city in one unit system
type CityQuery struct {
	CityName string
	Unit     Unit
}

// Normalize trims the city name
func (q *CityQuery) Normalize() {
	q.CityName = strings.TrimSpace(q.CityName)
}

// IsValid validates the query
func (q CityQuery) IsValid() error {
	if strings.TrimSpace(q.CityName) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	if !q.Unit.IsValid() {
		return fmt.Errorf("unit must be metric or imperial")
	}
	return nil
}

// Coordinates links the current weather lookup to the forecast lookup
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// CurrentWeather holds current conditions in the unit system of the query that produced them
type CurrentWeather struct {
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

// String returns a string representation of the weather
func (w CurrentWeather) String() string {
	return fmt.Sprintf("%s: %.1f, feels like %.1f, %.0f%% humidity, %s",
		w.Name, w.Temperature, w.FeelsLike, w.Humidity, w.Description)
}

// ForecastEntry is one 3-hour slot of the forecast
type ForecastEntry struct {
	Timestamp   string
	MaxTemp     float64
	MinTemp     float64
	Description string
}

// ClockTime returns the time-of-day part of the timestamp ("12:00:00"),
// or an empty string when the timestamp has no time part.
func (e ForecastEntry) ClockTime() string {
	_, clock, found := strings.Cut(e.Timestamp, " ")
	if !found {
		return ""
	}
	return clock
}

// Time parses the timestamp. Provider timestamps are UTC.
func (e ForecastEntry) Time() (time.Time, error) {
	return time.Parse(ForecastTimestampLayout, e.Timestamp)
}

// Weekday returns the short weekday name of the entry ("Mon"), empty if the timestamp is malformed
func (e ForecastEntry) Weekday() string {
	t, err := e.Time()
	if err != nil {
		return ""
	}
	return t.Weekday().String()[:3]
}
