package cachet

import "context"

// VersionService exposes the version endpoint, reporting the Cachet release
// running on the remote install. It needs no authentication.
type VersionService struct {
	transport *httpTransport
}

// Get requests GET version and returns the response as a pretty-printed
// JSON string.
func (s *VersionService) Get(ctx context.Context) (string, error) {
	return s.transport.get(ctx, "version", nil)
}
