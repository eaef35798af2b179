// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request ids, request-scoped logging, CORS, rate limiting, tracing and
// panic recovery, and funnel every returned error into one JSON shape.
package middleware
