package weather

// Snapshot is the immutable per-frame weather summary the render core
// consumes. It is derived once per fetch; the core never inspects raw
// weather codes.
type Snapshot struct {
	Condition Condition

	IsRaining      bool // liquid precipitation, thunderstorm excluded
	IsSnowing      bool
	IsThunderstorm bool
	IsCloudy       bool
	IsDay          bool

	RainIntensity float64 // [0,1]
	SnowIntensity float64 // [0,1]

	Temperature float64 // °C
	MoonPhase   float64 // [0,1], 0.5 = full
}

// NewSnapshot derives the flag vector from a condition. IsRaining already
// excludes thunderstorms so a plain-rain check needs no extra guard.
func NewSnapshot(cond Condition, isDay bool, temperature float64) Snapshot {
	thunder := cond.IsThunderstorm()
	return Snapshot{
		Condition:      cond,
		IsRaining:      cond.IsRaining() && !thunder,
		IsSnowing:      cond.IsSnowing(),
		IsThunderstorm: thunder,
		IsCloudy:       cond.IsCloudy(),
		IsDay:          isDay,
		RainIntensity:  cond.RainIntensity(),
		SnowIntensity:  cond.SnowIntensity(),
		Temperature:    temperature,
		MoonPhase:      0.5,
	}
}

// Default is the snapshot assumed before the first fetch arrives:
// a clear day with no precipitation.
func Default() Snapshot {
	return NewSnapshot(Clear, true, 18.0)
}

// ShowSun reports whether the sun should render: daytime under a clear or
// partly cloudy sky.
func (s Snapshot) ShowSun() bool {
	if !s.IsDay {
		return false
	}
	return s.Condition == Clear || s.Condition == PartlyCloudy
}

// ShowFireflies reports whether fireflies should render: a warm, clear,
// dry night.
func (s Snapshot) ShowFireflies() bool {
	if s.IsDay {
		return false
	}
	clearNight := s.Condition == Clear || s.Condition == PartlyCloudy
	return s.Temperature > 15.0 && clearNight &&
		!s.IsRaining && !s.IsThunderstorm && !s.IsSnowing
}

// ShowStars reports whether the star field and moon should render.
func (s Snapshot) ShowStars() bool {
	if s.IsDay {
		return false
	}
	return s.Condition == Clear || s.Condition == PartlyCloudy
}
