// Package http serves the client-visible part of the Foodle settings.
//
// Browser clients need a few settings at startup: the Google OAuth client
// ID, the name of the header that carries the authentication token, and
// the token lifetime. This package exposes them without ever sending
// secrets or the database URL.
//
// # Endpoints
//
//   - GET /api/config: PublicSettings as JSON
//   - GET /healthz: {"status":"ok"} when the database answers a ping, 503 otherwise
//
// # Usage
//
//	handler := http.NewHandler(&http.HandlerConfig{
//	    Settings: settings,
//	    CORS:     cfg.CORS,
//	}, db)
//
//	server := &nethttp.Server{Addr: ":5000", Handler: handler.Router()}
//
// # CORS
//
// When CORS is enabled the token header is always added to the allowed and
// exposed headers, so clients can both send and read Authentication-Token.
//
// # Error Responses
//
// All errors are returned as JSON:
//
//	{"error": "unavailable", "message": "Service unavailable", "request_id": "..."}
package http
