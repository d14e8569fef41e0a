// Package middleware provides HTTP middleware for Loom servers:
// Prometheus request metrics and OpenTelemetry request tracing.
//
// Both are standard net/http middleware and compose with chi:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus(middleware.WithNamespace("myapp")))
//	r.Use(middleware.OpenTelemetry(middleware.WithTracerName("myapp")))
package middleware
