package weather

import "testing"

func TestConditionFromWMO(t *testing.T) {
	cases := []struct {
		code int
		want Condition
	}{
		{0, Clear},
		{1, PartlyCloudy},
		{2, PartlyCloudy},
		{3, Overcast},
		{45, Fog},
		{48, Fog},
		{51, Drizzle},
		{55, Drizzle},
		{56, FreezingRain},
		{61, Rain},
		{65, Rain},
		{66, FreezingRain},
		{71, Snow},
		{75, Snow},
		{77, SnowGrains},
		{80, RainShowers},
		{82, RainShowers},
		{85, SnowShowers},
		{86, SnowShowers},
		{95, Thunderstorm},
		{96, ThunderstormHail},
		{99, ThunderstormHail},
		{42, Cloudy}, // unknown code falls back to cloudy
	}
	for _, c := range cases {
		if got := ConditionFromWMO(c.code); got != c.want {
			t.Errorf("code %d: got %v, want %v", c.code, got, c.want)
		}
	}
}

func TestParseCondition(t *testing.T) {
	cond, err := ParseCondition("  Thunderstorm ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cond != Thunderstorm {
		t.Errorf("got %v, want Thunderstorm", cond)
	}

	if _, err := ParseCondition("sharknado"); err == nil {
		t.Error("expected error for unknown condition")
	}
}

func TestIntensityOrdering(t *testing.T) {
	// Relative rarity/density ordering is the contract, not exact values
	if !(Drizzle.RainIntensity() < Rain.RainIntensity()) {
		t.Error("drizzle should be lighter than rain")
	}
	if !(Rain.RainIntensity() < RainShowers.RainIntensity()) {
		t.Error("rain should be lighter than showers")
	}
	if Thunderstorm.RainIntensity() != 1.0 {
		t.Errorf("thunderstorm rain intensity = %v, want 1.0", Thunderstorm.RainIntensity())
	}
	if Clear.RainIntensity() != 0 || Clear.SnowIntensity() != 0 {
		t.Error("clear sky must carry no precipitation intensity")
	}
	if !(SnowGrains.SnowIntensity() < Snow.SnowIntensity()) {
		t.Error("snow grains should be lighter than snow")
	}
}

func TestSnapshotThunderstormSuppressesRain(t *testing.T) {
	s := NewSnapshot(Thunderstorm, false, 12.0)
	if !s.IsThunderstorm {
		t.Error("IsThunderstorm should be true")
	}
	if s.IsRaining {
		t.Error("plain IsRaining must be false during a thunderstorm")
	}
	if s.RainIntensity != 1.0 {
		t.Errorf("storm rain intensity = %v, want 1.0", s.RainIntensity)
	}
}

func TestSnapshotPredicates(t *testing.T) {
	day := NewSnapshot(Clear, true, 20.0)
	if !day.ShowSun() {
		t.Error("clear day should show sun")
	}
	if day.ShowFireflies() || day.ShowStars() {
		t.Error("daytime must suppress fireflies and stars")
	}

	warmNight := NewSnapshot(Clear, false, 20.0)
	if !warmNight.ShowFireflies() {
		t.Error("warm clear night should show fireflies")
	}
	if !warmNight.ShowStars() {
		t.Error("clear night should show stars")
	}
	if warmNight.ShowSun() {
		t.Error("night must suppress sun")
	}

	coldNight := NewSnapshot(Clear, false, 5.0)
	if coldNight.ShowFireflies() {
		t.Error("cold night must suppress fireflies")
	}

	rainyNight := NewSnapshot(Rain, false, 20.0)
	if rainyNight.ShowFireflies() {
		t.Error("rain must suppress fireflies")
	}
}

func TestDefaultSnapshot(t *testing.T) {
	d := Default()
	if !d.IsDay || d.IsRaining || d.IsSnowing || d.IsThunderstorm {
		t.Errorf("default snapshot should be a clear day, got %+v", d)
	}
}
