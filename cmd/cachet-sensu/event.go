package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// event is the subset of a Sensu event document the handler cares about.
type event struct {
	// Action is the Sensu event action: create, resolve or flapping.
	Action string      `json:"action"`
	Client eventClient `json:"client"`
	Check  eventCheck  `json:"check"`
}

type eventClient struct {
	Name string `json:"name"`
	// Datacenter is a custom client attribute used to build dashboard
	// links.
	Datacenter string `json:"datacenter"`
}

type eventCheck struct {
	Name   string `json:"name"`
	Output string `json:"output"`
	// ComponentID is a custom check attribute mapping the check to a
	// Cachet component. Zero means the check has no component.
	ComponentID int `json:"component_id"`
}

// decodeEvent parses a Sensu event document from r (normally stdin).
func decodeEvent(r io.Reader) (*event, error) {
	var ev event
	if err := json.NewDecoder(r).Decode(&ev); err != nil {
		return nil, fmt.Errorf("unable to parse event JSON: %w", err)
	}
	return &ev, nil
}
