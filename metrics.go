package cachet

import (
	"context"
	"fmt"
	"net/url"
)

// MetricsService manages metrics. The remote API has no update operation
// for metrics, so this service intentionally exposes none; data points are
// managed through PointsService.
type MetricsService struct {
	transport *httpTransport
}

// MetricCreate holds the fields for creating a metric.
// Name, Suffix and Description are required; DefaultValue defaults to 0
// when nil.
type MetricCreate struct {
	// Name is the display name of the metric. Required.
	Name string `json:"name"`
	// Suffix is the unit shown next to values, e.g. "ms". Required.
	Suffix string `json:"suffix"`
	// Description explains what the metric measures. Required.
	Description string `json:"description"`
	// DefaultValue is the value used when no point exists for an
	// interval. Defaults to 0 when nil.
	DefaultValue *float64 `json:"default_value"`
	// DisplayChart controls whether the chart is rendered on the
	// status page.
	DisplayChart *int `json:"display_chart,omitempty"`
	// Places is the optional number of decimal places.
	Places int `json:"places,omitempty"`
}

func (r *MetricCreate) applyDefaults() {
	if r.DefaultValue == nil {
		r.DefaultValue = Float64(0)
	}
}

func (r *MetricCreate) validate() error {
	if r.Name == "" {
		return &MissingArgumentError{Field: "name"}
	}
	if r.Suffix == "" {
		return &MissingArgumentError{Field: "suffix"}
	}
	if r.Description == "" {
		return &MissingArgumentError{Field: "description"}
	}
	return nil
}

// List requests GET metrics with params forwarded as query string
// parameters.
func (s *MetricsService) List(ctx context.Context, params url.Values) (string, error) {
	return s.transport.get(ctx, "metrics", params)
}

// Get requests GET metrics/{id}.
func (s *MetricsService) Get(ctx context.Context, id int, params url.Values) (string, error) {
	return s.transport.get(ctx, fmt.Sprintf("metrics/%d", id), params)
}

// Create requests POST metrics. Requires an API token.
func (s *MetricsService) Create(ctx context.Context, req MetricCreate) (string, error) {
	if err := s.transport.requireToken(); err != nil {
		return "", err
	}
	req.applyDefaults()
	if err := req.validate(); err != nil {
		return "", err
	}
	return s.transport.post(ctx, "metrics", req)
}

// Delete requests DELETE metrics/{id}. Requires an API token.
func (s *MetricsService) Delete(ctx context.Context, id int) (bool, error) {
	if err := s.transport.requireToken(); err != nil {
		return false, err
	}
	return s.transport.delete(ctx, fmt.Sprintf("metrics/%d", id))
}
