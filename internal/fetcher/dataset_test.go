package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const sampleJSON = `{
  "baseTemperature": 8.66,
  "monthlyVariance": [
    {"year": 1753, "month": 1, "variance": -1.366},
    {"year": 1753, "month": 2, "variance": -2.223},
    {"year": 2015, "month": 9, "variance": 1.191}
  ]
}`

func TestParseDataset_success(t *testing.T) {
	ds, err := ParseDataset(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ParseDataset() = %v; want nil", err)
	}
	if ds.BaseTemperature != 8.66 {
		t.Errorf("BaseTemperature = %v; want 8.66", ds.BaseTemperature)
	}
	if len(ds.MonthlyVariance) != 3 {
		t.Fatalf("len(MonthlyVariance) = %d; want 3", len(ds.MonthlyVariance))
	}
	want := TemperatureRecord{Year: 2015, Month: 9, Variance: 1.191}
	if ds.MonthlyVariance[2] != want {
		t.Errorf("MonthlyVariance[2] = %+v; want %+v", ds.MonthlyVariance[2], want)
	}
}

func TestParseDataset_badJSON(t *testing.T) {
	if _, err := ParseDataset(strings.NewReader("{")); err == nil {
		t.Fatal("ParseDataset(\"{\") = nil; want error")
	}
}

func TestParseDataset_empty(t *testing.T) {
	_, err := ParseDataset(strings.NewReader(`{"baseTemperature": 8.66, "monthlyVariance": []}`))
	if !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("ParseDataset(empty) = %v; want ErrEmptyDataset", err)
	}
}

func TestParseDataset_monthOutOfRange(t *testing.T) {
	for _, month := range []string{"0", "13"} {
		doc := `{"baseTemperature": 8.66, "monthlyVariance": [{"year": 1800, "month": ` + month + `, "variance": 0}]}`
		if _, err := ParseDataset(strings.NewReader(doc)); err == nil {
			t.Errorf("ParseDataset(month %s) = nil; want error", month)
		}
	}
}

func TestDataset_Temperature(t *testing.T) {
	ds := &Dataset{
		BaseTemperature: 8.0,
		MonthlyVariance: []TemperatureRecord{{Year: 2000, Month: 1, Variance: 0.5}},
	}
	if got := ds.Temperature(ds.MonthlyVariance[0]); got != 8.5 {
		t.Errorf("Temperature() = %v; want 8.5", got)
	}
	if got := ds.Temperatures(); len(got) != 1 || got[0] != 8.5 {
		t.Errorf("Temperatures() = %v; want [8.5]", got)
	}
}

func TestNewClient_defaultURL(t *testing.T) {
	if got := NewClient("", 0).URL(); got != DefaultURL {
		t.Errorf("URL() = %q; want %q", got, DefaultURL)
	}
}

func TestFetchDataset_success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s; want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	ds, err := NewClient(srv.URL, 5*time.Second).FetchDataset(context.Background())
	if err != nil {
		t.Fatalf("FetchDataset() = %v; want nil", err)
	}
	if len(ds.MonthlyVariance) != 3 {
		t.Errorf("len(MonthlyVariance) = %d; want 3", len(ds.MonthlyVariance))
	}
}

func TestFetchDataset_non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 5*time.Second).FetchDataset(context.Background())
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("FetchDataset() = %v; want ErrUnexpectedStatus", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("err = %q; want status code in message", err.Error())
	}
}

func TestFetchDataset_makesOneRequestPerCall(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, 5*time.Second).FetchDataset(context.Background()); err == nil {
		t.Fatal("FetchDataset() = nil; want error")
	}
	if calls != 1 {
		t.Errorf("server saw %d requests; want 1 (no retry)", calls)
	}
}

func TestFetchDataset_circuitOpensAfterFailures(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	for i := 0; i < 3; i++ {
		if _, err := c.FetchDataset(context.Background()); !errors.Is(err, ErrUnexpectedStatus) {
			t.Fatalf("FetchDataset() #%d = %v; want ErrUnexpectedStatus", i, err)
		}
	}

	_, err := c.FetchDataset(context.Background())
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("FetchDataset() after failures = %v; want ErrCircuitOpen", err)
	}
	if calls != 3 {
		t.Errorf("server saw %d requests; want 3", calls)
	}
}

func TestFetchDataset_canceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewClient(srv.URL, 5*time.Second).FetchDataset(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("FetchDataset(canceled) = %v; want context.Canceled", err)
	}
}
