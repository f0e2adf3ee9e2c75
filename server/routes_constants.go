package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// RouteCallback is both the provider redirect target and the landing page.
	RouteCallback = "/{$}"

	// RouteAuthorize starts the provider login flow.
	RouteAuthorize = "/authorize"

	// RouteHealth reports liveness and whether credentials are configured.
	RouteHealth = "/healthz"

	// Static Asset Routes (patterns)
	RouteStaticCSS = "/css/{file}"
)
