package cachet

import (
	"context"
	"fmt"
	"net/url"
)

// GroupsService manages component groups. The resource lives under the
// components path prefix (components/groups).
type GroupsService struct {
	transport *httpTransport
}

// GroupCreate holds the fields for creating a component group.
// Name is the only required field.
type GroupCreate struct {
	// Name is the display name of the group. Required.
	Name string `json:"name"`
	// Order is the optional sort order of the group.
	Order int `json:"order,omitempty"`
	// Collapsed controls the initial rendering of the group
	// (0 expanded, 1 collapsed, 2 collapsed unless a member is degraded).
	Collapsed *int `json:"collapsed,omitempty"`
}

func (r *GroupCreate) validate() error {
	if r.Name == "" {
		return &MissingArgumentError{Field: "name"}
	}
	return nil
}

// GroupUpdate holds the fields for updating a component group. ID is
// required.
type GroupUpdate struct {
	// ID identifies the group to update. Required.
	ID int `json:"id"`

	Name      string `json:"name,omitempty"`
	Order     *int   `json:"order,omitempty"`
	Collapsed *int   `json:"collapsed,omitempty"`
}

// List requests GET components/groups with params forwarded as query
// string parameters.
func (s *GroupsService) List(ctx context.Context, params url.Values) (string, error) {
	return s.transport.get(ctx, "components/groups", params)
}

// Get requests GET components/groups/{id}.
func (s *GroupsService) Get(ctx context.Context, id int, params url.Values) (string, error) {
	return s.transport.get(ctx, fmt.Sprintf("components/groups/%d", id), params)
}

// Create requests POST components/groups. Requires an API token.
func (s *GroupsService) Create(ctx context.Context, req GroupCreate) (string, error) {
	if err := s.transport.requireToken(); err != nil {
		return "", err
	}
	if err := req.validate(); err != nil {
		return "", err
	}
	return s.transport.post(ctx, "components/groups", req)
}

// Update requests PUT components/groups/{id}. Requires an API token.
func (s *GroupsService) Update(ctx context.Context, req GroupUpdate) (string, error) {
	if err := s.transport.requireToken(); err != nil {
		return "", err
	}
	if req.ID == 0 {
		return "", &MissingArgumentError{Field: "id"}
	}
	return s.transport.put(ctx, fmt.Sprintf("components/groups/%d", req.ID), req)
}

// Delete requests DELETE components/groups/{id}. Requires an API token.
func (s *GroupsService) Delete(ctx context.Context, id int) (bool, error) {
	if err := s.transport.requireToken(); err != nil {
		return false, err
	}
	return s.transport.delete(ctx, fmt.Sprintf("components/groups/%d", id))
}
