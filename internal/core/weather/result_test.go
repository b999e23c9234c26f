package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentWeatherResult_Variants(t *testing.T) {
	var idle CurrentWeatherResult
	assert.Equal(t, StatusIdle, idle.Status())
	assert.False(t, idle.IsPending())

	loading := CurrentWeatherLoading()
	assert.True(t, loading.IsPending())
	_, hasWeather := loading.Weather()
	_, hasFailure := loading.Failure()
	assert.False(t, hasWeather)
	assert.False(t, hasFailure)

	success := CurrentWeatherSuccess(CurrentWeather{Name: "Paris"})
	weather, ok := success.Weather()
	assert.True(t, ok)
	assert.Equal(t, "Paris", weather.Name)
	_, hasFailure = success.Failure()
	assert.False(t, hasFailure)
	assert.True(t, success.Status().IsTerminal())

	failure := CurrentWeatherFailure("city not found")
	message, ok := failure.Failure()
	assert.True(t, ok)
	assert.Equal(t, "city not found", message)
	_, hasWeather = failure.Weather()
	assert.False(t, hasWeather)
	assert.True(t, failure.Status().IsTerminal())
}

func TestForecastResult_Variants(t *testing.T) {
	entries := []ForecastEntry{{Timestamp: "2024-01-01 12:00:00"}, {Timestamp: "2024-01-01 15:00:00"}}
	success := ForecastSuccess(entries)

	// the result owns its entries
	entries[0].Timestamp = "mutated"
	got, ok := success.Entries()
	assert.True(t, ok)
	assert.Equal(t, "2024-01-01 12:00:00", got[0].Timestamp)

	got[1].Timestamp = "mutated"
	again, _ := success.Entries()
	assert.Equal(t, "2024-01-01 15:00:00", again[1].Timestamp)

	failure := ForecastFailure("Request failed with status code 500")
	_, ok = failure.Entries()
	assert.False(t, ok)
	message, ok := failure.Failure()
	assert.True(t, ok)
	assert.Equal(t, "Request failed with status code 500", message)

	assert.True(t, ForecastLoading().IsPending())
	assert.False(t, ForecastResult{}.IsPending())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "failure", StatusFailure.String())
	assert.False(t, StatusLoading.IsTerminal())
	assert.False(t, StatusIdle.IsTerminal())
}
