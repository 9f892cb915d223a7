// Package server contains middleware & handlers for the farewell page web service.
//
// # REST API
//
// The Person collection is exposed under /api with a fixed wire contract:
//
//	GET    /api/persons         → 200 array of Person
//	GET    /api/persons/{id}    → 200 Person | 400 bad id | 404 missing
//	POST   /api/persons         → 201 created Person | 400 validation
//	PATCH  /api/persons/{id}    → 200 merged Person | 400 bad id or validation | 404 missing
//	DELETE /api/persons/{id}    → 204 empty | 400 bad id | 404 missing
//	GET    /api/persons/{id}/qr → 200 image/png | 400 bad id | 404 missing
//
// Input-shape errors (non-numeric id, malformed or invalid body) are rejected
// before any store call. Store-reported absence becomes 404 with
// {"message":"Person not found"}. Unexpected store failures are logged with
// operation context and surfaced as a 500 with a generic message; the process
// keeps serving.
//
// Validation failures respond with
// {"message":"Validation error","errors":{field: issue}} using the rule set
// declared in the models package.
//
// # Middleware
//
// [Middleware] wraps handlers in the standard func(http.Handler) http.Handler
// shape, compatible with mux.Router.Use. The stack applied by [New] is request
// id tagging, request logging, panic recovery, and (on /api only) rate
// limiting.
package server
