// Package cli is the interactive terminal front end of the community
// platform client. It wires the session manager, the status-gated router,
// and the REST API client into a command loop: every view-opening command is
// first passed through the router, and redirects are followed until a view
// may render.
package cli
