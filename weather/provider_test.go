package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestProviderCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("latitude") == "" || q.Get("longitude") == "" {
			t.Errorf("missing coordinates in query: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"current":{"temperature_2m":21.5,"weather_code":61,"is_day":1}}`))
	}))
	defer srv.Close()

	p := NewProviderWithBase(srv.URL)
	snap, err := p.Current(context.Background(), Location{Latitude: 52.52, Longitude: 13.41})
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if snap.Condition != Rain {
		t.Errorf("condition = %v, want Rain", snap.Condition)
	}
	if !snap.IsDay {
		t.Error("is_day=1 should map to IsDay")
	}
	if snap.Temperature != 21.5 {
		t.Errorf("temperature = %v, want 21.5", snap.Temperature)
	}
}

func TestProviderBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewProviderWithBase(srv.URL)
	if _, err := p.Current(context.Background(), Location{}); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestPollerDropsWhenFull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current":{"temperature_2m":10,"weather_code":0,"is_day":0}}`))
	}))
	defer srv.Close()

	p := NewPoller(NewProviderWithBase(srv.URL), Location{}, time.Hour)

	// Fill the channel, then deliver again: must not block
	ctx := context.Background()
	p.deliver(ctx)
	done := make(chan struct{})
	go func() {
		p.deliver(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("deliver blocked on a full channel")
	}

	// Exactly one result is buffered
	select {
	case res := <-p.Results():
		if res.Err != nil {
			t.Errorf("unexpected error: %v", res.Err)
		}
		if res.Snapshot.Condition != Clear {
			t.Errorf("condition = %v, want Clear", res.Snapshot.Condition)
		}
	default:
		t.Fatal("expected a buffered result")
	}
	select {
	case <-p.Results():
		t.Error("second result should have been dropped")
	default:
	}
}
