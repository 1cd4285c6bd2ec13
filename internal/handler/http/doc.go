// Package http implements the REST transport of the card-keeper server.
//
// It wires the chi router, the request middleware (trace id, access log,
// Prometheus metrics, bearer authentication) and the card, user and deck
// handlers. Handlers decode requests, call the service layer and write
// either the resulting JSON or the [app.Error] the services returned.
package http
