package weather

// SampleDaily picks one entry per day from a 3-hour forecast series: every
// entry whose time of day equals the time of day of the first entry.
// The provider returns eight slots per day, so this yields a compact
// multi-day outlook without any date arithmetic. Input order is kept.
func SampleDaily(entries []ForecastEntry) []ForecastEntry {
	sampled := make([]ForecastEntry, 0, len(entries)/8+1)
	if len(entries) == 0 {
		return sampled
	}

	reference := entries[0].ClockTime()
	for _, entry := range entries {
		if entry.ClockTime() == reference {
			sampled = append(sampled, entry)
		}
	}
	return sampled
}
