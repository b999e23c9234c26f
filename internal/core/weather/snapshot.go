package weather

// NoDataMessage is shown in place of a data region that has nothing to display
const NoDataMessage = "No Data Found"

// Snapshot is a consistent view of the session for one render
type Snapshot struct {
	Query           CityQuery
	CurrentWeather  CurrentWeatherResult
	Forecast        ForecastResult
	IsLoading       bool
	SampledForecast []ForecastEntry
}

// InputLocked reports whether the city input should be read-only
func (s Snapshot) InputLocked() bool {
	return s.IsLoading
}

type PanelKind int

const (
	PanelLoading PanelKind = iota
	PanelError
	PanelContent
)

func (k PanelKind) String() string {
	switch k {
	case PanelError:
		return "error"
	case PanelContent:
		return "content"
	default:
		return "loading"
	}
}

// MarshalText implements encoding.TextMarshaler
func (k PanelKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Panel describes what the results region shows
type Panel struct {
	Kind    PanelKind
	Message string

	// Content only. CurrentWeather is nil when there is none to show.
	CurrentWeather *CurrentWeather
	Forecast       []ForecastEntry
}

// Panel derives the results region: a loading indicator while anything is in
// flight, then the current weather error, then the forecast error, then content.
func (s Snapshot) Panel() Panel {
	if s.IsLoading {
		return Panel{Kind: PanelLoading}
	}
	if message, failed := s.CurrentWeather.Failure(); failed {
		return Panel{Kind: PanelError, Message: message}
	}
	if message, failed := s.Forecast.Failure(); failed {
		return Panel{Kind: PanelError, Message: message}
	}

	panel := Panel{Kind: PanelContent, Forecast: s.SampledForecast}
	if weather, ok := s.CurrentWeather.Weather(); ok {
		panel.CurrentWeather = &weather
	}
	if panel.Forecast == nil {
		panel.Forecast = []ForecastEntry{}
	}
	return panel
}
