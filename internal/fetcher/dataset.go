package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sony/gobreaker"
)

// DefaultURL is the global land-surface temperature dataset.
const DefaultURL = "https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/global-temperature.json"

var (
	// ErrUnexpectedStatus is returned when the dataset endpoint answers with a non-200 status.
	ErrUnexpectedStatus = errors.New("unexpected status code")
	// ErrCircuitOpen is returned while the breaker refuses requests after repeated failures.
	ErrCircuitOpen = errors.New("circuit breaker open")
	// ErrEmptyDataset is returned when the document holds no monthly records.
	ErrEmptyDataset = errors.New("dataset has no monthly records")
)

var validate = validator.New()

// TemperatureRecord is one month of one year.
type TemperatureRecord struct {
	Year     int     `json:"year"`
	Month    int     `json:"month" validate:"min=1,max=12"`
	Variance float64 `json:"variance"`
}

// Dataset is the decoded global-temperature document.
type Dataset struct {
	BaseTemperature float64             `json:"baseTemperature"`
	MonthlyVariance []TemperatureRecord `json:"monthlyVariance" validate:"dive"`
}

// Temperature returns the absolute temperature of rec.
func (d *Dataset) Temperature(rec TemperatureRecord) float64 {
	return d.BaseTemperature + rec.Variance
}

// Temperatures returns the absolute temperature of every record, in record order.
func (d *Dataset) Temperatures() []float64 {
	temps := make([]float64, len(d.MonthlyVariance))
	for i, rec := range d.MonthlyVariance {
		temps[i] = d.Temperature(rec)
	}
	return temps
}

// ParseDataset decodes and validates a dataset document.
func ParseDataset(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if len(ds.MonthlyVariance) == 0 {
		return nil, ErrEmptyDataset
	}
	if err := validate.Struct(ds); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	return &ds, nil
}

// Client fetches the dataset from a single URL.
type Client struct {
	url     string
	http    *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewClient returns a Client for url. A zero timeout leaves the request
// bounded only by the caller's context.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "dataset",
		MaxRequests: 1,
		Interval:    0,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	return &Client{
		url:     url,
		http:    &http.Client{Timeout: timeout},
		circuit: cb,
	}
}

// URL returns the dataset location.
func (c *Client) URL() string {
	return c.url
}

// FetchDataset issues one GET for the dataset. Failures are returned, never retried.
func (c *Client) FetchDataset(ctx context.Context) (*Dataset, error) {
	result, err := c.circuit.Execute(func() (interface{}, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}
		return nil, err
	}
	ds, ok := result.(*Dataset)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return ds, nil
}

func (c *Client) fetch(ctx context.Context) (*Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return ParseDataset(resp.Body)
}
