// Command mock-openweathermap serves canned OpenWeatherMap responses for local
// runs and end-to-end tests. Point OPENWEATHERMAP_API_BASE_URL at it.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghumash/WeatherApp/internal/core/weather"
)

type city struct {
	Name        string
	Lat         float64
	Lon         float64
	TempC       float64
	Humidity    float64
	Pressure    float64
	WindMS      float64
	Description string
}

var cities = map[string]city{
	"yerevan": {Name: "Yerevan", Lat: 40.1811, Lon: 44.5136, TempC: 24, Humidity: 35, Pressure: 1014, WindMS: 2.6, Description: "clear sky"},
	"london":  {Name: "London", Lat: 51.5085, Lon: -0.1257, TempC: 15, Humidity: 76, Pressure: 1009, WindMS: 5.1, Description: "broken clouds"},
	"paris":   {Name: "Paris", Lat: 48.8534, Lon: 2.3488, TempC: 18, Humidity: 68, Pressure: 1011, WindMS: 3.6, Description: "scattered clouds"},
	"tokyo":   {Name: "Tokyo", Lat: 35.6895, Lon: 139.6917, TempC: 27, Humidity: 70, Pressure: 1006, WindMS: 4.2, Description: "light rain"},
}

const forecastSlots = 40

func main() {
	port := os.Getenv("MOCK_OPENWEATHERMAP_PORT")
	if port == "" {
		port = "8081"
	}

	gin.SetMode(gin.ReleaseMode)
	router := newRouter(func() time.Time { return time.Now().UTC() })

	slog.Info("Mock OpenWeatherMap server starting", "port", port)
	if err := router.Run(":" + port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func newRouter(now func() time.Time) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/data/2.5/weather", func(c *gin.Context) {
		if !requireKey(c) {
			return
		}

		name := strings.ToLower(strings.TrimSpace(c.Query("q")))
		switch name {
		case "":
			c.JSON(http.StatusBadRequest, gin.H{"cod": "400", "message": "Nothing to geocode"})
			return
		case "servererror":
			c.JSON(http.StatusInternalServerError, gin.H{"cod": 500, "message": "Internal error"})
			return
		}

		ct, ok := cities[name]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"cod": "404", "message": "city not found"})
			return
		}

		imperial := c.Query("units") == weather.UnitImperial.String()
		c.JSON(http.StatusOK, gin.H{
			"coord":   gin.H{"lat": ct.Lat, "lon": ct.Lon},
			"weather": []gin.H{{"description": ct.Description}},
			"main": gin.H{
				"temp":       temperature(ct.TempC, imperial),
				"feels_like": temperature(ct.TempC-1, imperial),
				"temp_min":   temperature(ct.TempC-2, imperial),
				"temp_max":   temperature(ct.TempC+2, imperial),
				"pressure":   ct.Pressure,
				"humidity":   ct.Humidity,
			},
			"wind": gin.H{"speed": windSpeed(ct.WindMS, imperial)},
			"name": ct.Name,
		})
	})

	r.GET("/data/2.5/forecast", func(c *gin.Context) {
		if !requireKey(c) {
			return
		}

		lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
		lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
		if errLat != nil || errLon != nil {
			c.JSON(http.StatusBadRequest, gin.H{"cod": "400", "message": "wrong latitude or longitude"})
			return
		}

		ct, ok := cityAt(lat, lon)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"cod": "404", "message": "city not found"})
			return
		}

		imperial := c.Query("units") == weather.UnitImperial.String()
		start := now().Truncate(3 * time.Hour)
		list := make([]gin.H, 0, forecastSlots)
		for i := 0; i < forecastSlots; i++ {
			swing := float64(i%8-4) / 2
			list = append(list, gin.H{
				"main": gin.H{
					"temp_min": temperature(ct.TempC+swing-1, imperial),
					"temp_max": temperature(ct.TempC+swing+1, imperial),
				},
				"weather": []gin.H{{"description": ct.Description}},
				"dt_txt":  start.Add(time.Duration(i) * 3 * time.Hour).Format(weather.ForecastTimestampLayout),
			})
		}

		c.JSON(http.StatusOK, gin.H{"cod": "200", "cnt": len(list), "list": list})
	})

	return r
}

func requireKey(c *gin.Context) bool {
	if c.Query("APPID") == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"cod":     401,
			"message": "Invalid API key. Please see https://openweathermap.org/faq#error401 for more info.",
		})
		return false
	}
	return true
}

func cityAt(lat, lon float64) (city, bool) {
	key := fmt.Sprintf("%.2f,%.2f", lat, lon)
	for _, ct := range cities {
		if fmt.Sprintf("%.2f,%.2f", ct.Lat, ct.Lon) == key {
			return ct, true
		}
	}
	return city{}, false
}

func temperature(celsius float64, imperial bool) float64 {
	if imperial {
		return celsius*9/5 + 32
	}
	return celsius
}

func windSpeed(ms float64, imperial bool) float64 {
	if imperial {
		return ms * 2.23694
	}
	return ms
}
