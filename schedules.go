package cachet

import (
	"context"
	"fmt"
	"net/url"
)

// SchedulesService manages scheduled maintenance windows.
type SchedulesService struct {
	transport *httpTransport
}

// ScheduleCreate holds the fields for creating a schedule.
// Name, Status and ScheduledAt are required; Enabled defaults to true when
// nil.
type ScheduleCreate struct {
	// Name is the schedule title. Required.
	Name string `json:"name"`
	// Status is the schedule status code (0 upcoming, 1 in progress,
	// 2 complete). Required; use cachet.Int(0) for an explicit upcoming.
	Status *int `json:"status"`
	// ScheduledAt is when the maintenance window starts. Required.
	ScheduledAt string `json:"scheduled_at"`
	// Message optionally describes the maintenance, markdown allowed.
	Message string `json:"message,omitempty"`
	// CompletedAt optionally records when the window ended.
	CompletedAt string `json:"completed_at,omitempty"`
	// Enabled defaults to true when nil.
	Enabled *bool `json:"enabled"`
}

func (r *ScheduleCreate) applyDefaults() {
	if r.Enabled == nil {
		r.Enabled = Bool(true)
	}
}

func (r *ScheduleCreate) validate() error {
	if r.Name == "" {
		return &MissingArgumentError{Field: "name"}
	}
	if r.Status == nil {
		return &MissingArgumentError{Field: "status"}
	}
	if r.ScheduledAt == "" {
		return &MissingArgumentError{Field: "scheduled_at"}
	}
	return nil
}

// ScheduleUpdate holds the fields for updating a schedule. ID is required.
type ScheduleUpdate struct {
	// ID identifies the schedule to update. Required.
	ID int `json:"id"`

	Name        string `json:"name,omitempty"`
	Status      *int   `json:"status,omitempty"`
	ScheduledAt string `json:"scheduled_at,omitempty"`
	Message     string `json:"message,omitempty"`
	CompletedAt string `json:"completed_at,omitempty"`
	Enabled     *bool  `json:"enabled,omitempty"`
}

// List requests GET schedules with params forwarded as query string
// parameters.
func (s *SchedulesService) List(ctx context.Context, params url.Values) (string, error) {
	return s.transport.get(ctx, "schedules", params)
}

// Get requests GET schedules/{id}.
func (s *SchedulesService) Get(ctx context.Context, id int, params url.Values) (string, error) {
	return s.transport.get(ctx, fmt.Sprintf("schedules/%d", id), params)
}

// Create requests POST schedules. Requires an API token.
func (s *SchedulesService) Create(ctx context.Context, req ScheduleCreate) (string, error) {
	if err := s.transport.requireToken(); err != nil {
		return "", err
	}
	req.applyDefaults()
	if err := req.validate(); err != nil {
		return "", err
	}
	return s.transport.post(ctx, "schedules", req)
}

// Update requests PUT schedules/{id}. Requires an API token.
func (s *SchedulesService) Update(ctx context.Context, req ScheduleUpdate) (string, error) {
	if err := s.transport.requireToken(); err != nil {
		return "", err
	}
	if req.ID == 0 {
		return "", &MissingArgumentError{Field: "id"}
	}
	return s.transport.put(ctx, fmt.Sprintf("schedules/%d", req.ID), req)
}

// Delete requests DELETE schedules/{id}. Requires an API token.
func (s *SchedulesService) Delete(ctx context.Context, id int) (bool, error) {
	if err := s.transport.requireToken(); err != nil {
		return false, err
	}
	return s.transport.delete(ctx, fmt.Sprintf("schedules/%d", id))
}
