package weather

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

type fakeGeocoder struct {
	loc   Location
	err   error
	calls int
}

func (f *fakeGeocoder) Resolve(ctx context.Context, city string) (Location, error) {
	f.calls++
	return f.loc, f.err
}

type fakeForecasts struct {
	resp  ForecastResponse
	err   error
	calls int
}

func (f *fakeForecasts) Fetch(ctx context.Context, loc Location) (ForecastResponse, error) {
	f.calls++
	return f.resp, f.err
}

func newTestService(g Geocoder, f ForecastSource) *Service {
	return NewService(g, f).WithClock(func() time.Time { return fixedNow })
}

func TestGetWeatherDataLive(t *testing.T) {
	geo := &fakeGeocoder{loc: london}
	fc := &fakeForecasts{resp: decodeForecast(t, sampleForecastJSON(24, 7))}

	data, err := newTestService(geo, fc).GetWeatherData(context.Background(), "london")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.City != "London" || data.Country != "United Kingdom" || data.Temperature != 23 {
		t.Fatalf("unexpected live data: %+v", data)
	}
	if len(data.HourlyData) != 24 {
		t.Fatalf("expected live hourly data, got %d points", len(data.HourlyData))
	}
	if geo.calls != 1 || fc.calls != 1 {
		t.Fatalf("expected one call each, got geocode=%d forecast=%d", geo.calls, fc.calls)
	}
}

func TestGetWeatherDataGeocodeNotFound(t *testing.T) {
	geo := &fakeGeocoder{err: &NotFoundError{City: "Nowhereville"}}
	fc := &fakeForecasts{}

	_, err := newTestService(geo, fc).GetWeatherData(context.Background(), "Nowhereville")
	if !IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if fc.calls != 0 {
		t.Fatalf("forecast must not be requested after not found, got %d calls", fc.calls)
	}
}

func TestGetWeatherDataFetchFailureUsesFallback(t *testing.T) {
	geo := &fakeGeocoder{loc: Location{Name: "Mumbai", Country: "India", Latitude: 19.07, Longitude: 72.88}}
	fc := &fakeForecasts{err: &TransientError{Op: "forecast request", Err: errors.New("connection refused")}}

	data, err := newTestService(geo, fc).GetWeatherData(context.Background(), "Mumbai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, _ := Fallback("Mumbai", fixedNow)
	if !reflect.DeepEqual(data, want) {
		t.Fatalf("expected fallback data\n got: %+v\nwant: %+v", data, want)
	}
	if data.Temperature != 29 || data.Condition != ConditionRainy || data.Country != "IN" {
		t.Fatalf("unexpected fallback fields: %+v", data)
	}
	if data.Forecast[1].Temperature != 27 || data.Forecast[2].Temperature != 30 {
		t.Fatalf("unexpected fallback forecast: %+v", data.Forecast)
	}
	if fc.calls != 1 {
		t.Fatalf("fallback must not retry the network, got %d calls", fc.calls)
	}
}

func TestGetWeatherDataGeocodeTransientUsesFallback(t *testing.T) {
	geo := &fakeGeocoder{err: &TransientError{Op: "geocoding request", Err: errors.New("timeout")}}
	fc := &fakeForecasts{}

	data, err := newTestService(geo, fc).GetWeatherData(context.Background(), "paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.City != "Paris" || data.Country != "FR" {
		t.Fatalf("expected Paris fallback, got %+v", data)
	}
	if fc.calls != 0 {
		t.Fatalf("forecast must not be requested without a location, got %d calls", fc.calls)
	}
}

func TestGetWeatherDataMalformedPayloadUsesFallback(t *testing.T) {
	resp := decodeForecast(t, sampleForecastJSON(24, 7))
	resp.Daily = nil

	geo := &fakeGeocoder{loc: Location{Name: "Tokyo", Country: "Japan"}}
	fc := &fakeForecasts{resp: resp}

	data, err := newTestService(geo, fc).GetWeatherData(context.Background(), "Tokyo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Partial live results are discarded.
	if data.HourlyData != nil || data.Country != "JP" {
		t.Fatalf("expected pure fallback data, got %+v", data)
	}
}

func TestGetWeatherDataFallbackMiss(t *testing.T) {
	geo := &fakeGeocoder{loc: Location{Name: "Smallville"}}
	fc := &fakeForecasts{err: errors.New("boom")}

	_, err := newTestService(geo, fc).GetWeatherData(context.Background(), "invalidcityname12345")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
	if nf.City != "invalidcityname12345" {
		t.Fatalf("error should carry the raw input, got %q", nf.City)
	}
}

func TestGetWeatherDataIdempotent(t *testing.T) {
	raw := sampleForecastJSON(24, 7)
	svc := newTestService(&fakeGeocoder{loc: london}, &fakeForecasts{resp: decodeForecast(t, raw)})

	a, err := svc.GetWeatherData(context.Background(), "London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := svc.GetWeatherData(context.Background(), "London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same upstream payload produced different results")
	}
}
