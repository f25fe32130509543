package cachet

import (
	"context"
	"fmt"
	"net/url"
)

// IncidentsService manages incidents. An incident can optionally drive the
// status of a component it is attached to.
type IncidentsService struct {
	transport *httpTransport
}

// IncidentCreate holds the fields for creating an incident.
// Name, Message and Status are required; Visible defaults to true and
// Notify defaults to false when nil.
type IncidentCreate struct {
	// Name is the incident title. Required.
	Name string `json:"name"`
	// Message is the incident body, markdown allowed. Required.
	Message string `json:"message"`
	// Status is the incident status code (1 investigating .. 4 fixed).
	// Required.
	Status int `json:"status"`
	// Visible defaults to true when nil.
	Visible *bool `json:"visible"`
	// Notify defaults to false when nil.
	Notify *bool `json:"notify"`
	// ComponentID optionally attaches the incident to a component.
	ComponentID int `json:"component_id,omitempty"`
	// ComponentStatus sets the attached component's status
	// (1 operational .. 4 major outage); only meaningful together with
	// ComponentID.
	ComponentStatus int `json:"component_status,omitempty"`
}

func (r *IncidentCreate) applyDefaults() {
	if r.Visible == nil {
		r.Visible = Bool(true)
	}
	if r.Notify == nil {
		r.Notify = Bool(false)
	}
}

func (r *IncidentCreate) validate() error {
	if r.Name == "" {
		return &MissingArgumentError{Field: "name"}
	}
	if r.Message == "" {
		return &MissingArgumentError{Field: "message"}
	}
	if r.Status == 0 {
		return &MissingArgumentError{Field: "status"}
	}
	return nil
}

// IncidentUpdate holds the fields for updating an incident. ID is required.
type IncidentUpdate struct {
	// ID identifies the incident to update. Required.
	ID int `json:"id"`

	Name            string `json:"name,omitempty"`
	Message         string `json:"message,omitempty"`
	Status          *int   `json:"status,omitempty"`
	Visible         *bool  `json:"visible,omitempty"`
	Notify          *bool  `json:"notify,omitempty"`
	ComponentID     int    `json:"component_id,omitempty"`
	ComponentStatus int    `json:"component_status,omitempty"`
}

// List requests GET incidents with params forwarded as query string
// parameters.
func (s *IncidentsService) List(ctx context.Context, params url.Values) (string, error) {
	return s.transport.get(ctx, "incidents", params)
}

// Get requests GET incidents/{id}.
func (s *IncidentsService) Get(ctx context.Context, id int, params url.Values) (string, error) {
	return s.transport.get(ctx, fmt.Sprintf("incidents/%d", id), params)
}

// Create requests POST incidents. Requires an API token.
//
// Example:
//
//	body, err := client.Incidents.Create(ctx, cachet.IncidentCreate{
//	    Name:    "Degraded API performance",
//	    Message: "We are investigating elevated latency.",
//	    Status:  1,
//	})
func (s *IncidentsService) Create(ctx context.Context, req IncidentCreate) (string, error) {
	if err := s.transport.requireToken(); err != nil {
		return "", err
	}
	req.applyDefaults()
	if err := req.validate(); err != nil {
		return "", err
	}
	return s.transport.post(ctx, "incidents", req)
}

// Update requests PUT incidents/{id}. Requires an API token.
func (s *IncidentsService) Update(ctx context.Context, req IncidentUpdate) (string, error) {
	if err := s.transport.requireToken(); err != nil {
		return "", err
	}
	if req.ID == 0 {
		return "", &MissingArgumentError{Field: "id"}
	}
	return s.transport.put(ctx, fmt.Sprintf("incidents/%d", req.ID), req)
}

// Delete requests DELETE incidents/{id}. Requires an API token.
func (s *IncidentsService) Delete(ctx context.Context, id int) (bool, error) {
	if err := s.transport.requireToken(); err != nil {
		return false, err
	}
	return s.transport.delete(ctx, fmt.Sprintf("incidents/%d", id))
}
