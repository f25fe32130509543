package cachet

import (
	"context"
	"net/url"
)

// Client provides access to every resource of a Cachet status page. Each
// resource is exposed as a service field implementing exactly the
// operations the remote API supports for it; unsupported operations (such
// as updating a metric) do not exist on the corresponding service.
//
// A Client holds no mutable state beyond the connection pool, so it is safe
// for concurrent use.
//
// Example:
//
//	config := cachet.NewConfig("https://status.example.com/api/v1").
//	    WithAPIToken("secret-token")
//	client, err := cachet.NewClient(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	body, err := client.Incidents.List(ctx, nil)
type Client struct {
	transport *httpTransport

	// Ping checks that the API is responding.
	Ping *PingService
	// Version reports the Cachet version of the remote install.
	Version *VersionService
	// Components manages the components shown on the status page.
	Components *ComponentsService
	// Groups manages component groups.
	Groups *GroupsService
	// Incidents manages incidents.
	Incidents *IncidentsService
	// Metrics manages metrics.
	Metrics *MetricsService
	// Points manages the data points of a metric.
	Points *PointsService
	// Subscribers manages e-mail subscribers.
	Subscribers *SubscribersService
	// Schedules manages scheduled maintenance windows.
	Schedules *SchedulesService
}

// NewClient creates a new Cachet client with the provided configuration.
// The configuration must at least carry an endpoint; NewClient returns
// ErrMissingEndpoint otherwise, without any network activity.
//
// Example:
//
//	client, err := cachet.NewClient(cachet.NewConfig("http://localhost/api/v1"))
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	transport, err := newHTTPTransport(config)
	if err != nil {
		return nil, err
	}

	return &Client{
		transport:   transport,
		Ping:        &PingService{transport: transport},
		Version:     &VersionService{transport: transport},
		Components:  &ComponentsService{transport: transport},
		Groups:      &GroupsService{transport: transport},
		Incidents:   &IncidentsService{transport: transport},
		Metrics:     &MetricsService{transport: transport},
		Points:      &PointsService{transport: transport},
		Subscribers: &SubscribersService{transport: transport},
		Schedules:   &SchedulesService{transport: transport},
	}, nil
}

// Capability interfaces for callers that dispatch on a resource at runtime.
// A service implements an interface only when the remote API supports the
// operation; a failed type assertion maps to UnsupportedOperationError.
//
// Example:
//
//	var svc interface{} = client.Subscribers
//	getter, ok := svc.(cachet.Getter)
//	if !ok {
//	    return &cachet.UnsupportedOperationError{Resource: "subscribers", Operation: "get"}
//	}
type (
	// Lister lists a resource collection, forwarding params as query
	// string parameters.
	Lister interface {
		List(ctx context.Context, params url.Values) (string, error)
	}

	// Getter fetches a single resource by id, optionally with extra
	// query parameters.
	Getter interface {
		Get(ctx context.Context, id int, params url.Values) (string, error)
	}

	// Deleter removes a single resource by id.
	Deleter interface {
		Delete(ctx context.Context, id int) (bool, error)
	}
)

// Bool returns a pointer to the given bool, for optional request fields.
//
// Example:
//
//	req := cachet.ComponentCreate{
//	    Name:    "API",
//	    Status:  1,
//	    Enabled: cachet.Bool(false),
//	}
func Bool(v bool) *bool { return &v }

// Int returns a pointer to the given int, for optional request fields.
func Int(v int) *int { return &v }

// Float64 returns a pointer to the given float64, for optional request fields.
func Float64(v float64) *float64 { return &v }
