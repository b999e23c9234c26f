package weather

// Status is the state of one asynchronous result slot
type Status int

const (
	// StatusIdle means the slot was never requested
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "idle"
	}
}

// MarshalText implements encoding.TextMarshaler
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsTerminal reports whether the slot holds a settled result
func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailure
}

// CurrentWeatherResult is Idle, Loading, Success(weather) or Failure(message).
// The zero value is Idle.
type CurrentWeatherResult struct {
	status  Status
	weather CurrentWeather
	message string
}

func CurrentWeatherLoading() CurrentWeatherResult {
	return CurrentWeatherResult{status: StatusLoading}
}

func CurrentWeatherSuccess(w CurrentWeather) CurrentWeatherResult {
	return CurrentWeatherResult{status: StatusSuccess, weather: w}
}

func CurrentWeatherFailure(message string) CurrentWeatherResult {
	return CurrentWeatherResult{status: StatusFailure, message: message}
}

func (r CurrentWeatherResult) Status() Status {
	return r.status
}

func (r CurrentWeatherResult) IsPending() bool {
	return r.status == StatusLoading
}

// Weather returns the payload of a Success
func (r CurrentWeatherResult) Weather() (CurrentWeather, bool) {
	if r.status != StatusSuccess {
		return CurrentWeather{}, false
	}
	return r.weather, true
}

// Failure returns the message of a Failure
func (r CurrentWeatherResult) Failure() (string, bool) {
	if r.status != StatusFailure {
		return "", false
	}
	return r.message, true
}

// ForecastResult is Idle, Loading, Success(entries) or Failure(message).
// The zero value is Idle. Entries keep the provider order.
type ForecastResult struct {
	status  Status
	entries []ForecastEntry
	message string
}

func ForecastLoading() ForecastResult {
	return ForecastResult{status: StatusLoading}
}

func ForecastSuccess(entries []ForecastEntry) ForecastResult {
	return ForecastResult{status: StatusSuccess, entries: copyEntries(entries)}
}

func ForecastFailure(message string) ForecastResult {
	return ForecastResult{status: StatusFailure, message: message}
}

func (r ForecastResult) Status() Status {
	return r.status
}

func (r ForecastResult) IsPending() bool {
	return r.status == StatusLoading
}

// Entries returns a copy of the entries of a Success
func (r ForecastResult) Entries() ([]ForecastEntry, bool) {
	if r.status != StatusSuccess {
		return nil, false
	}
	return copyEntries(r.entries), true
}

// Failure returns the message of a Failure
func (r ForecastResult) Failure() (string, bool) {
	if r.status != StatusFailure {
		return "", false
	}
	return r.message, true
}

func copyEntries(entries []ForecastEntry) []ForecastEntry {
	out := make([]ForecastEntry, len(entries))
	copy(out, entries)
	return out
}
