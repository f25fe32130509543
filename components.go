package cachet

import (
	"context"
	"fmt"
	"net/url"
)

// ComponentsService manages the components shown on the status page.
// Listing and fetching single components works anonymously; creating,
// updating and deleting require an API token.
type ComponentsService struct {
	transport *httpTransport
}

// ComponentCreate holds the fields for creating a component.
// Name and Status are required; Enabled defaults to true when nil.
type ComponentCreate struct {
	// Name is the display name of the component. Required.
	Name string `json:"name"`
	// Status is the component status code (1 operational .. 4 major
	// outage). Required.
	Status int `json:"status"`
	// Description is an optional description shown under the name.
	Description string `json:"description,omitempty"`
	// Link is an optional URL the component name points to.
	Link string `json:"link,omitempty"`
	// Order is the optional sort order inside its group.
	Order int `json:"order,omitempty"`
	// GroupID optionally places the component in a group.
	GroupID int `json:"group_id,omitempty"`
	// Enabled defaults to true when nil.
	Enabled *bool `json:"enabled"`
}

func (r *ComponentCreate) applyDefaults() {
	if r.Enabled == nil {
		r.Enabled = Bool(true)
	}
}

func (r *ComponentCreate) validate() error {
	if r.Name == "" {
		return &MissingArgumentError{Field: "name"}
	}
	if r.Status == 0 {
		return &MissingArgumentError{Field: "status"}
	}
	return nil
}

// ComponentUpdate holds the fields for updating a component. ID is
// required; nil or zero fields are left untouched on the remote side.
type ComponentUpdate struct {
	// ID identifies the component to update. Required.
	ID int `json:"id"`

	Name        string `json:"name,omitempty"`
	Status      *int   `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
	Order       *int   `json:"order,omitempty"`
	GroupID     *int   `json:"group_id,omitempty"`
	Enabled     *bool  `json:"enabled,omitempty"`
}

// List requests GET components, forwarding params as query string
// parameters (page, per_page, name, status, ...).
//
// Example:
//
//	body, err := client.Components.List(ctx, url.Values{"status": {"1"}})
func (s *ComponentsService) List(ctx context.Context, params url.Values) (string, error) {
	return s.transport.get(ctx, "components", params)
}

// Get requests GET components/{id}. Extra query parameters may be passed
// via params; nil is fine.
func (s *ComponentsService) Get(ctx context.Context, id int, params url.Values) (string, error) {
	return s.transport.get(ctx, fmt.Sprintf("components/%d", id), params)
}

// Create requests POST components. Requires an API token.
//
// Example:
//
//	body, err := client.Components.Create(ctx, cachet.ComponentCreate{
//	    Name:   "API",
//	    Status: 1,
//	})
func (s *ComponentsService) Create(ctx context.Context, req ComponentCreate) (string, error) {
	if err := s.transport.requireToken(); err != nil {
		return "", err
	}
	req.applyDefaults()
	if err := req.validate(); err != nil {
		return "", err
	}
	return s.transport.post(ctx, "components", req)
}

// Update requests PUT components/{id}. Requires an API token.
func (s *ComponentsService) Update(ctx context.Context, req ComponentUpdate) (string, error) {
	if err := s.transport.requireToken(); err != nil {
		return "", err
	}
	if req.ID == 0 {
		return "", &MissingArgumentError{Field: "id"}
	}
	return s.transport.put(ctx, fmt.Sprintf("components/%d", req.ID), req)
}

// Delete requests DELETE components/{id} and reports success as a boolean.
// Requires an API token.
func (s *ComponentsService) Delete(ctx context.Context, id int) (bool, error) {
	if err := s.transport.requireToken(); err != nil {
		return false, err
	}
	return s.transport.delete(ctx, fmt.Sprintf("components/%d", id))
}
