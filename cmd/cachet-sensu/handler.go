package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"

	cachet "github.com/statusbird/cachet-go"
)

// Lookup tables mapping Sensu event actions to Cachet status codes:
//   - incident: 1 investigating, 2 identified, 4 fixed
//   - component: 1 operational, 3 partial outage
//
// Unknown actions are treated as a fresh issue under investigation.
var (
	incidentStatuses = map[string]int{
		"create":   2,
		"resolve":  4,
		"flapping": 1,
		"unknown":  1,
	}
	componentStatuses = map[string]int{
		"create":   3,
		"resolve":  1,
		"flapping": 3,
		"unknown":  3,
	}
	incidentTitles = map[string]string{
		"create":   "Incident: %s",
		"resolve":  "Resolved incident: %s",
		"flapping": "Incident: %s",
		"unknown":  "Incident: %s",
	}
)

const newIncidentMessage = `### {{.Component}}
Our monitoring infrastructure detected an issue for this service.

The details of the problem are as follows:
` + "```" + `
# Host: {{.Host}}
# Check: {{.Check}}
{{.Output}}
` + "```" + `

More details are available on the [monitoring dashboard]({{.CheckURL}}).
`

const resolvedIncidentMessage = `### {{.Component}}
Our monitoring infrastructure considers an issue resolved for this service.

The details of the resolution are as follows:
` + "```" + `
# Host: {{.Host}}
# Check: {{.Check}}
{{.Output}}
` + "```" + `

More details are available on the [monitoring dashboard]({{.CheckURL}}).
`

var (
	newIncidentTmpl      = template.Must(template.New("new").Parse(newIncidentMessage))
	resolvedIncidentTmpl = template.Must(template.New("resolved").Parse(resolvedIncidentMessage))
)

// messageData feeds the incident message templates.
type messageData struct {
	Component string
	Host      string
	Check     string
	Output    string
	CheckURL  string
}

// handler drives a Cachet status page from monitoring events.
type handler struct {
	client    *cachet.Client
	dashboard string
	log       *logrus.Logger
}

func newHandler(cfg *handlerConfig, log *logrus.Logger) (*handler, error) {
	client, err := cachet.NewClient(cachet.NewConfig(cfg.Endpoint).WithAPIToken(cfg.APIToken))
	if err != nil {
		return nil, err
	}
	return &handler{
		client:    client,
		dashboard: strings.TrimRight(cfg.Uchiwa, "/"),
		log:       log,
	}, nil
}

// componentInfo is the slice of a component payload the handler needs.
type componentInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Handle maps the event to incident and component statuses and creates the
// incident unless a matching one already exists. Sensu re-sends create
// events for ongoing issues, so the duplicate check is what keeps the
// status page quiet.
func (h *handler) Handle(ctx context.Context, ev *event) error {
	action := ev.Action
	if _, ok := incidentStatuses[action]; !ok {
		action = "unknown"
	}

	component, err := h.component(ctx, ev.Check.ComponentID)
	if err != nil {
		return fmt.Errorf("fetching component %d: %w", ev.Check.ComponentID, err)
	}

	componentName := ev.Check.Name
	if component != nil {
		componentName = component.Name
	}

	checkURL := fmt.Sprintf("%s/#/client/%s/%s?check=%s",
		h.dashboard, ev.Client.Datacenter, ev.Client.Name, ev.Check.Name)

	name := fmt.Sprintf(incidentTitles[action], ev.Check.Name)
	status := incidentStatuses[action]

	message, err := renderMessage(action, messageData{
		Component: componentName,
		Host:      ev.Client.Name,
		Check:     ev.Check.Name,
		Output:    ev.Check.Output,
		CheckURL:  checkURL,
	})
	if err != nil {
		return err
	}

	exists, err := h.incidentExists(ctx, name, message, status)
	if err != nil {
		return fmt.Errorf("checking for existing incident: %w", err)
	}
	if exists {
		h.log.WithFields(logrus.Fields{
			"incident": name,
			"status":   status,
		}).Info("matching incident already exists, nothing to do")
		return nil
	}

	req := cachet.IncidentCreate{
		Name:    name,
		Message: message,
		Status:  status,
	}
	if component != nil {
		req.ComponentID = component.ID
		req.ComponentStatus = componentStatuses[action]
	}

	if _, err := h.client.Incidents.Create(ctx, req); err != nil {
		return fmt.Errorf("creating incident: %w", err)
	}

	h.log.WithFields(logrus.Fields{
		"incident":  name,
		"status":    status,
		"component": componentName,
	}).Info("incident created")
	return nil
}

// component fetches the Cachet component a check is mapped to. A zero id
// means the check has no component.
func (h *handler) component(ctx context.Context, id int) (*componentInfo, error) {
	if id == 0 {
		return nil, nil
	}

	body, err := h.client.Components.Get(ctx, id, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data componentInfo `json:"data"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return nil, fmt.Errorf("parsing component payload: %w", err)
	}
	return &envelope.Data, nil
}

// incidentExists reports whether an incident with the same name, status and
// trimmed message is already present.
func (h *handler) incidentExists(ctx context.Context, name, message string, status int) (bool, error) {
	body, err := h.client.Incidents.List(ctx, nil)
	if err != nil {
		return false, err
	}

	var envelope struct {
		Data []struct {
			Name    string `json:"name"`
			Status  int    `json:"status"`
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return false, fmt.Errorf("parsing incidents payload: %w", err)
	}

	for _, incident := range envelope.Data {
		if incident.Name == name &&
			incident.Status == status &&
			strings.TrimSpace(incident.Message) == strings.TrimSpace(message) {
			return true, nil
		}
	}
	return false, nil
}

func renderMessage(action string, data messageData) (string, error) {
	tmpl := newIncidentTmpl
	if action == "resolve" {
		tmpl = resolvedIncidentTmpl
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering incident message: %w", err)
	}
	return b.String(), nil
}
