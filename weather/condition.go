package weather

import (
	"fmt"
	"strings"
)

// Condition is the discrete weather condition bucket used by the scene.
type Condition int

const (
	Clear Condition = iota
	PartlyCloudy
	Cloudy
	Overcast
	Fog
	Drizzle
	FreezingRain
	Rain
	RainShowers
	Snow
	SnowGrains
	SnowShowers
	Thunderstorm
	ThunderstormHail
)

// String returns the display name shown in the HUD.
func (c Condition) String() string {
	switch c {
	case Clear:
		return "Clear"
	case PartlyCloudy:
		return "Partly Cloudy"
	case Cloudy:
		return "Cloudy"
	case Overcast:
		return "Overcast"
	case Fog:
		return "Fog"
	case Drizzle:
		return "Drizzle"
	case FreezingRain:
		return "Freezing Rain"
	case Rain:
		return "Rain"
	case RainShowers:
		return "Rain Showers"
	case Snow:
		return "Snow"
	case SnowGrains:
		return "Snow Grains"
	case SnowShowers:
		return "Snow Showers"
	case Thunderstorm:
		return "Thunderstorm"
	case ThunderstormHail:
		return "Thunderstorm with Hail"
	default:
		return "Unknown"
	}
}

// ParseCondition maps a -simulate argument to a condition.
func ParseCondition(s string) (Condition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clear":
		return Clear, nil
	case "partly-cloudy", "partlycloudy", "partly":
		return PartlyCloudy, nil
	case "cloudy":
		return Cloudy, nil
	case "overcast":
		return Overcast, nil
	case "fog":
		return Fog, nil
	case "drizzle":
		return Drizzle, nil
	case "freezing-rain", "freezingrain":
		return FreezingRain, nil
	case "rain":
		return Rain, nil
	case "rain-showers", "showers":
		return RainShowers, nil
	case "snow":
		return Snow, nil
	case "snow-grains":
		return SnowGrains, nil
	case "snow-showers":
		return SnowShowers, nil
	case "thunderstorm", "storm":
		return Thunderstorm, nil
	case "thunderstorm-hail", "hail":
		return ThunderstormHail, nil
	}
	return Clear, fmt.Errorf("unknown weather condition %q", s)
}

// ConditionFromWMO maps an Open-Meteo WMO weather code to a condition.
// Unknown codes fall back to Cloudy rather than erroring.
func ConditionFromWMO(code int) Condition {
	switch {
	case code == 0:
		return Clear
	case code == 1 || code == 2:
		return PartlyCloudy
	case code == 3:
		return Overcast
	case code == 45 || code == 48:
		return Fog
	case code >= 51 && code <= 55:
		return Drizzle
	case code == 56 || code == 57 || code == 66 || code == 67:
		return FreezingRain
	case code >= 61 && code <= 65:
		return Rain
	case code == 71 || code == 73 || code == 75:
		return Snow
	case code == 77:
		return SnowGrains
	case code >= 80 && code <= 82:
		return RainShowers
	case code == 85 || code == 86:
		return SnowShowers
	case code == 95:
		return Thunderstorm
	case code == 96 || code == 99:
		return ThunderstormHail
	default:
		return Cloudy
	}
}

// IsRaining reports whether the condition carries liquid precipitation.
// Thunderstorms count: the orchestrator, not this predicate, decides which
// subsystem draws the rain.
func (c Condition) IsRaining() bool {
	switch c {
	case Drizzle, FreezingRain, Rain, RainShowers, Thunderstorm, ThunderstormHail:
		return true
	}
	return false
}

// IsSnowing reports whether the condition carries frozen precipitation.
func (c Condition) IsSnowing() bool {
	switch c {
	case Snow, SnowGrains, SnowShowers:
		return true
	}
	return false
}

// IsThunderstorm reports whether the condition is a thunderstorm variant.
func (c Condition) IsThunderstorm() bool {
	return c == Thunderstorm || c == ThunderstormHail
}

// IsCloudy reports whether cloud cover should render.
func (c Condition) IsCloudy() bool {
	switch c {
	case Cloudy, PartlyCloudy, Overcast, Fog,
		Drizzle, FreezingRain, Rain, RainShowers,
		Snow, SnowShowers, Thunderstorm, ThunderstormHail:
		return true
	}
	return false
}

// RainIntensity returns the rain density scalar in [0,1] for the condition.
func (c Condition) RainIntensity() float64 {
	switch c {
	case Drizzle:
		return 0.3
	case FreezingRain:
		return 0.5
	case Rain:
		return 0.6
	case RainShowers:
		return 0.8
	case Thunderstorm, ThunderstormHail:
		return 1.0
	default:
		return 0.0
	}
}

// SnowIntensity returns the snow density scalar in [0,1] for the condition.
func (c Condition) SnowIntensity() float64 {
	switch c {
	case SnowGrains:
		return 0.4
	case Snow:
		return 0.6
	case SnowShowers:
		return 0.8
	default:
		return 0.0
	}
}
