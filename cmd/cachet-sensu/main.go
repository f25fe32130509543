// Package main implements a Sensu handler that posts monitoring events to a
// Cachet status page. Sensu pipes the event JSON to stdin; the handler maps
// the event action to Cachet incident and component statuses, skips events
// that already have a matching open incident, and otherwise creates the
// incident and drives the affected component's status.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "cachet-sensu",
	Short: "Post Sensu events to a Cachet status page",
	Long: `cachet-sensu is a Sensu handler. It reads a Sensu event JSON document
from stdin and creates or resolves incidents on a Cachet status page,
updating the status of the component the check is mapped to.

Requirements:
  - a configuration file (default: ` + defaultConfigPath + `):
      endpoint: http://status.domain.tld/api/v1
      api_token: token
      uchiwa: http://uchiwa.tld
  - a "datacenter" attribute on Sensu clients and a "component_id"
    attribute on checks, to link events to dashboard URLs and Cachet
    components.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the handler configuration file")
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	event, err := decodeEvent(cmd.InOrStdin())
	if err != nil {
		return err
	}

	h, err := newHandler(cfg, log)
	if err != nil {
		return err
	}

	return h.Handle(cmd.Context(), event)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
