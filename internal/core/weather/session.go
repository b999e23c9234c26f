package weather

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ghumash/WeatherApp/internal/ports"
	"github.com/ghumash/WeatherApp/pkg/errors"
	"github.com/ghumash/WeatherApp/pkg/validation"
)

// Trigger names what started a fetch cycle
type Trigger string

const (
	TriggerMount      Trigger = "mount"
	TriggerSubmit     Trigger = "submit"
	TriggerUnitToggle Trigger = "unit_toggle"
)

const (
	outcomeSuccess         = "success"
	outcomeCurrentFailure  = "current_failure"
	outcomeForecastFailure = "forecast_failure"
	outcomeStale           = "stale"

	slotCurrent  = "current"
	slotForecast = "forecast"
)

// Cycle is one current-weather fetch followed by the dependent forecast fetch
type Cycle struct {
	ID         string
	Generation uint64
	Trigger    Trigger
	Query      CityQuery

	done chan struct{}
}

// Done is closed once the cycle has written its last result (or given up as stale)
func (c *Cycle) Done() <-chan struct{} {
	return c.done
}

// Session is the state container behind the lookup page. It holds the current
// city query and the two result slots, and runs fetch cycles against the gateway.
//
// Cycles are never cancelled. Unless stale discarding is configured, a cycle
// that settles after a newer one has started still writes its results, so the
// last response to arrive wins.
type Session struct {
	gateway      ports.WeatherGateway
	logger       ports.Logger
	metrics      ports.MetricsCollector
	discardStale bool

	ctx    context.Context
	cancel context.CancelFunc

	mu            sync.RWMutex
	query         CityQuery
	current       CurrentWeatherResult
	forecast      ForecastResult
	generation    uint64
	forecastOwner uint64

	inFlight sync.WaitGroup
}

type SessionDependencies struct {
	Gateway ports.WeatherGateway
	Config  ports.ConfigProvider
	Logger  ports.Logger
	Metrics ports.MetricsCollector
}

func NewSession(deps SessionDependencies) (*Session, error) {
	if deps.Gateway == nil {
		return nil, errors.NewValidationError("weather gateway is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	cfg := deps.Config.GetSessionConfig()
	query := CityQuery{CityName: cfg.DefaultCity, Unit: UnitFromString(cfg.DefaultUnit)}
	query.Normalize()
	if err := query.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid default query: " + err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Session{
		gateway:      deps.Gateway,
		logger:       deps.Logger,
		metrics:      deps.Metrics,
		discardStale: cfg.DiscardStaleResponses,
		ctx:          ctx,
		cancel:       cancel,
		query:        query,
	}, nil
}

// Mount runs the initial cycle for the default query
func (s *Session) Mount() *Cycle {
	return s.startCycle(TriggerMount, func(*CityQuery) {})
}

// SubmitCity replaces the city of the query and starts a new cycle
func (s *Session) SubmitCity(name string) (*Cycle, error) {
	if !validation.IsNotEmpty(name) {
		return nil, errors.NewValidationError("city cannot be empty")
	}
	if !validation.IsValidCityName(name) {
		return nil, errors.NewValidationError("city name is invalid")
	}

	return s.startCycle(TriggerSubmit, func(q *CityQuery) {
		q.CityName = name
		q.Normalize()
	}), nil
}

// ToggleUnit flips the unit system and starts a new cycle for the city currently held
func (s *Session) ToggleUnit() *Cycle {
	return s.startCycle(TriggerUnitToggle, func(q *CityQuery) {
		q.Unit = q.Unit.Toggle()
	})
}

func (s *Session) startCycle(trigger Trigger, update func(*CityQuery)) *Cycle {
	s.mu.Lock()
	update(&s.query)
	s.generation++
	cycle := &Cycle{
		ID:         uuid.NewString(),
		Generation: s.generation,
		Trigger:    trigger,
		Query:      s.query,
		done:       make(chan struct{}),
	}
	s.current = CurrentWeatherLoading()
	s.inFlight.Add(1)
	s.mu.Unlock()

	s.metrics.RecordCycleStarted(s.ctx, string(trigger))
	s.logger.Info("Fetch cycle started",
		ports.F("cycle_id", cycle.ID),
		ports.F("generation", cycle.Generation),
		ports.F("trigger", string(trigger)),
		ports.F("city", cycle.Query.CityName),
		ports.F("unit", cycle.Query.Unit.String()))

	go s.run(cycle)
	return cycle
}

func (s *Session) run(cycle *Cycle) {
	defer s.inFlight.Done()
	defer close(cycle.done)

	coords, outcome := s.resolveCurrentWeather(cycle)
	if outcome == "" {
		outcome = s.resolveForecast(cycle, coords)
	}

	s.metrics.RecordCycleSettled(s.ctx, outcome)
	s.logger.Debug("Fetch cycle settled",
		ports.F("cycle_id", cycle.ID),
		ports.F("outcome", outcome))
}

// resolveCurrentWeather settles the current weather slot. An empty outcome
// means the forecast step should run with the returned coordinates.
func (s *Session) resolveCurrentWeather(cycle *Cycle) (Coordinates, string) {
	data, err := s.gateway.FetchCurrentWeather(s.ctx, cycle.Query.CityName, cycle.Query.Unit.String())

	var result CurrentWeatherResult
	if err != nil {
		result = CurrentWeatherFailure(errors.MessageOf(err))
		s.logCurrentWeatherFailure(cycle, err)
	} else {
		result = CurrentWeatherSuccess(currentWeatherFromPorts(data))
	}

	s.mu.Lock()
	if s.discardStale && cycle.Generation < s.generation {
		s.mu.Unlock()
		s.discardStaleResponse(cycle, slotCurrent)
		return Coordinates{}, outcomeStale
	}
	s.current = result
	weather, ok := result.Weather()
	if ok {
		// Claimed in the same critical section so the loading signal never
		// drops between the two steps.
		s.forecast = ForecastLoading()
		s.forecastOwner = cycle.Generation
	}
	s.mu.Unlock()

	if !ok {
		return Coordinates{}, outcomeCurrentFailure
	}
	return weather.Coordinates, ""
}

func (s *Session) resolveForecast(cycle *Cycle, coords Coordinates) string {
	entries, err := s.gateway.FetchForecast(s.ctx, ports.Coordinates{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	}, cycle.Query.Unit.String())

	var result ForecastResult
	outcome := outcomeSuccess
	if err != nil {
		result = ForecastFailure(errors.MessageOf(err))
		outcome = outcomeForecastFailure
		s.logger.Error("Forecast request failed",
			ports.F("cycle_id", cycle.ID),
			ports.F("latitude", coords.Latitude),
			ports.F("longitude", coords.Longitude),
			ports.F("error", err.Error()))
	} else {
		result = ForecastSuccess(forecastEntriesFromPorts(entries))
	}

	s.mu.Lock()
	// Only a newer cycle that has itself claimed the forecast slot makes this write stale.
	if s.discardStale && cycle.Generation < s.forecastOwner {
		s.mu.Unlock()
		s.discardStaleResponse(cycle, slotForecast)
		return outcomeStale
	}
	s.forecast = result
	s.mu.Unlock()

	return outcome
}

func (s *Session) logCurrentWeatherFailure(cycle *Cycle, err error) {
	if errors.IsProviderError(err) {
		s.logger.Info("Current weather rejected by provider",
			ports.F("cycle_id", cycle.ID),
			ports.F("city", cycle.Query.CityName),
			ports.F("message", errors.MessageOf(err)))
		return
	}
	s.logger.Error("Current weather request failed",
		ports.F("cycle_id", cycle.ID),
		ports.F("city", cycle.Query.CityName),
		ports.F("error", err.Error()))
}

func (s *Session) discardStaleResponse(cycle *Cycle, slot string) {
	s.metrics.RecordStaleResponse(s.ctx, slot)
	s.logger.Warn("Discarding response from superseded cycle",
		ports.F("cycle_id", cycle.ID),
		ports.F("generation", cycle.Generation),
		ports.F("slot", slot))
}

// Query returns the query of the most recent cycle
func (s *Session) Query() CityQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

func (s *Session) CurrentWeather() CurrentWeatherResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Session) Forecast() ForecastResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.forecast
}

// IsLoading reports whether either slot is waiting for a response
func (s *Session) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.IsPending() || s.forecast.IsPending()
}

// SampledForecast returns one forecast entry per day, empty unless the forecast slot holds a Success
func (s *Session) SampledForecast() []ForecastEntry {
	entries, _ := s.Forecast().Entries()
	return SampleDaily(entries)
}

// Snapshot reads every value the renderer needs under one lock
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	snapshot := Snapshot{
		Query:          s.query,
		CurrentWeather: s.current,
		Forecast:       s.forecast,
		IsLoading:      s.current.IsPending() || s.forecast.IsPending(),
	}
	s.mu.RUnlock()

	entries, _ := snapshot.Forecast.Entries()
	snapshot.SampledForecast = SampleDaily(entries)
	return snapshot
}

// Wait blocks until every started cycle has finished or ctx is done
func (s *Session) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inFlight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for fetch cycles: %w", ctx.Err())
	}
}

// Close aborts in-flight gateway calls. Meant for process shutdown only.
func (s *Session) Close() {
	s.cancel()
}

func currentWeatherFromPorts(data *ports.CurrentWeatherData) CurrentWeather {
	return CurrentWeather{
		Temperature: data.Temperature,
		FeelsLike:   data.FeelsLike,
		TempMin:     data.TempMin,
		TempMax:     data.TempMax,
		Humidity:    data.Humidity,
		Pressure:    data.Pressure,
		WindSpeed:   data.WindSpeed,
		Description: data.Description,
		Name:        data.Name,
		Coordinates: Coordinates{
			Latitude:  data.Coordinates.Latitude,
			Longitude: data.Coordinates.Longitude,
		},
	}
}

func forecastEntriesFromPorts(data []ports.ForecastEntryData) []ForecastEntry {
	entries := make([]ForecastEntry, 0, len(data))
	for _, d := range data {
		entries = append(entries, ForecastEntry{
			Timestamp:   d.Timestamp,
			MaxTemp:     d.TempMax,
			MinTemp:     d.TempMin,
			Description: d.Description,
		})
	}
	return entries
}
