// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-card-keeper/internal/app"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// chi calls it only when the path exists but the method is not registered
// for it, including paths served by a mounted subrouter. The request is
// answered with 404 Not Found and the not-found [app.Error] body instead of
// chi's default 405, so callers cannot probe which methods a route has.
// The request is never routed again.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod())
func CheckHTTPMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, app.NewResourceNotFoundError(""))
	}
}
