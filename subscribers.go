package cachet

import (
	"context"
	"fmt"
	"net/url"
)

// SubscribersService manages e-mail subscribers. The remote API exposes no
// single-subscriber fetch, so there is no Get; listing is the only read.
type SubscribersService struct {
	transport *httpTransport
}

// SubscriberCreate holds the fields for subscribing an e-mail address.
// Email is the only required field.
type SubscriberCreate struct {
	// Email is the address to subscribe. Required.
	Email string `json:"email"`
	// Verify skips the verification e-mail when true.
	Verify *bool `json:"verify,omitempty"`
}

func (r *SubscriberCreate) validate() error {
	if r.Email == "" {
		return &MissingArgumentError{Field: "email"}
	}
	return nil
}

// List requests GET subscribers with params forwarded as query string
// parameters.
func (s *SubscribersService) List(ctx context.Context, params url.Values) (string, error) {
	return s.transport.get(ctx, "subscribers", params)
}

// Create requests POST subscribers. Requires an API token.
func (s *SubscribersService) Create(ctx context.Context, req SubscriberCreate) (string, error) {
	if err := s.transport.requireToken(); err != nil {
		return "", err
	}
	if err := req.validate(); err != nil {
		return "", err
	}
	return s.transport.post(ctx, "subscribers", req)
}

// Delete requests DELETE subscribers/{id}. Requires an API token.
func (s *SubscribersService) Delete(ctx context.Context, id int) (bool, error) {
	if err := s.transport.requireToken(); err != nil {
		return false, err
	}
	return s.transport.delete(ctx, fmt.Sprintf("subscribers/%d", id))
}
