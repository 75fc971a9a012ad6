package cmd

import (
	"github.com/facetkit/facet/internal/httpapi"
	"github.com/spf13/cobra"
)

// serveCmd exposes the decision engine over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Facet HTTP API server",
	Long: `Launch a local HTTP server exposing the decision engine as a JSON API.

Endpoints:
  POST /api/v1/analyze     - classify one inline dataset (count, values or categories)
  POST /api/v1/resolve     - resolve a field order from inline rules or a hints file
  GET  /api/v1/heuristics  - thresholds and detectors used by the analyzer
  GET  /healthz            - liveness probe

The server works on inline payloads only; it never touches the dataset
cache or the decision history store.

Examples:
  # Serve on the default address
  facet serve

  # Serve on a custom address
  facet serve --listen :9090

  # Classify a numeric sequence
  curl -s localhost:8080/api/v1/analyze -d '{"values": [10, 20, 30]}'

  # Resolve a field order with inline rules
  curl -s localhost:8080/api/v1/resolve -d '{"fields": ["b", "a"], "rules": {"explicit_order": ["a"]}}'`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return httpapi.StartHTTPServer(rootCtx, cfg, cacheManager)
	},
}
