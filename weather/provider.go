package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Location is a point on the globe to fetch weather for.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Provider fetches current conditions from the Open-Meteo API.
type Provider struct {
	client  *http.Client
	baseURL string
}

// NewProvider creates a provider with a bounded request timeout.
func NewProvider() *Provider {
	return &Provider{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
	}
}

// NewProviderWithBase creates a provider against a custom endpoint.
func NewProviderWithBase(baseURL string) *Provider {
	p := NewProvider()
	p.baseURL = baseURL
	return p
}

type currentResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		WeatherCode int     `json:"weather_code"`
		IsDay       int     `json:"is_day"`
	} `json:"current"`
}

// Current fetches the current conditions for a location and derives a
// snapshot from them.
func (p *Provider) Current(ctx context.Context, loc Location) (Snapshot, error) {
	url := fmt.Sprintf("%s?latitude=%.4f&longitude=%.4f&current=temperature_2m,weather_code,is_day",
		p.baseURL, loc.Latitude, loc.Longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Snapshot{}, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return Snapshot{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Snapshot{}, fmt.Errorf("open-meteo: unexpected status %s", resp.Status)
	}

	var body currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Snapshot{}, fmt.Errorf("open-meteo: decode: %w", err)
	}

	cond := ConditionFromWMO(body.Current.WeatherCode)
	return NewSnapshot(cond, body.Current.IsDay != 0, body.Current.Temperature), nil
}

// Result is one poll outcome delivered to the frame loop.
type Result struct {
	Snapshot Snapshot
	Err      error
}

// Poller fetches on an interval and delivers over a capacity-1 channel.
// When the frame loop has not consumed the previous result the new one is
// dropped; rendering never waits on the network.
type Poller struct {
	provider *Provider
	loc      Location
	interval time.Duration
	ch       chan Result
}

// NewPoller creates a poller for the given location.
func NewPoller(provider *Provider, loc Location, interval time.Duration) *Poller {
	return &Poller{
		provider: provider,
		loc:      loc,
		interval: interval,
		ch:       make(chan Result, 1),
	}
}

// Results returns the channel the frame loop drains non-blockingly.
func (p *Poller) Results() <-chan Result {
	return p.ch
}

// Start launches the poll loop. It fetches immediately, then on every
// interval tick until the context is cancelled.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		p.deliver(ctx)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.deliver(ctx)
			}
		}
	}()
}

func (p *Poller) deliver(ctx context.Context) {
	snap, err := p.provider.Current(ctx, p.loc)
	select {
	case p.ch <- Result{Snapshot: snap, Err: err}:
	default: // frame loop hasn't drained the last result, drop this one
	}
}
