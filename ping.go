package cachet

import "context"

// PingService exposes the ping endpoint, which answers with a pong message
// when the API is reachable. It needs no authentication.
type PingService struct {
	transport *httpTransport
}

// Get requests GET ping and returns the response as a pretty-printed JSON
// string.
//
// Example:
//
//	pong, err := client.Ping.Get(ctx)
func (s *PingService) Get(ctx context.Context) (string, error) {
	return s.transport.get(ctx, "ping", nil)
}
