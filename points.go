package cachet

import (
	"context"
	"fmt"
	"net/url"
)

// PointsService manages the data points of a metric. Every operation is
// scoped to a metric id (metrics/{metric_id}/points); listing fails before
// dispatch when none is given.
type PointsService struct {
	transport *httpTransport
}

// PointCreate holds the fields for adding a data point to a metric.
// MetricID and Value are required. The metric id is carried in the wire
// body under the key "id", matching the remote API.
type PointCreate struct {
	// MetricID identifies the metric the point belongs to. Required.
	MetricID int `json:"id"`
	// Value is the measured value. Required; use cachet.Float64(0) for
	// an explicit zero.
	Value *float64 `json:"value"`
	// Timestamp optionally backdates the point (unix seconds).
	Timestamp int64 `json:"timestamp,omitempty"`
}

func (r *PointCreate) validate() error {
	if r.MetricID == 0 {
		return &MissingArgumentError{Field: "id"}
	}
	if r.Value == nil {
		return &MissingArgumentError{Field: "value"}
	}
	return nil
}

// List requests GET metrics/{metric_id}/points. A metric id is required
// and checked before any request is made.
//
// Example:
//
//	body, err := client.Points.List(ctx, 7, nil)
func (s *PointsService) List(ctx context.Context, metricID int, params url.Values) (string, error) {
	if metricID == 0 {
		return "", &MissingArgumentError{Field: "metric_id"}
	}
	return s.transport.get(ctx, fmt.Sprintf("metrics/%d/points", metricID), params)
}

// Create requests POST metrics/{metric_id}/points. Requires an API token.
//
// Example:
//
//	body, err := client.Points.Create(ctx, cachet.PointCreate{
//	    MetricID: 7,
//	    Value:    cachet.Float64(123.4),
//	})
func (s *PointsService) Create(ctx context.Context, req PointCreate) (string, error) {
	if err := s.transport.requireToken(); err != nil {
		return "", err
	}
	if err := req.validate(); err != nil {
		return "", err
	}
	return s.transport.post(ctx, fmt.Sprintf("metrics/%d/points", req.MetricID), req)
}

// Delete requests DELETE metrics/{metric_id}/points/{point_id}. Requires
// an API token.
func (s *PointsService) Delete(ctx context.Context, metricID, pointID int) (bool, error) {
	if err := s.transport.requireToken(); err != nil {
		return false, err
	}
	if metricID == 0 {
		return false, &MissingArgumentError{Field: "metric_id"}
	}
	if pointID == 0 {
		return false, &MissingArgumentError{Field: "point_id"}
	}
	return s.transport.delete(ctx, fmt.Sprintf("metrics/%d/points/%d", metricID, pointID))
}
